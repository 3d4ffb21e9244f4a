// Package healthtest provides a recording sink for collector tests.
package healthtest

import (
	"fmt"
	"strings"

	"syshealth/pkg/health"
)

// Line kinds, matching the Sink method that produced them.
const (
	KindSection = "section"
	KindInfo    = "info"
	KindSuccess = "success"
	KindNote    = "note"
	KindWarn    = "warn"
	KindError   = "error"
	KindItem    = "item"
	KindDetail  = "detail"
)

// Line is one recorded report line.
type Line struct {
	Kind string
	Text string
}

// Sink records report lines in order instead of rendering them.
type Sink struct {
	Lines []Line
}

// NewRecorder returns a Recorder writing to a fresh recording sink,
// plus the sink for assertions.
func NewRecorder() (*health.Recorder, *Sink) {
	s := &Sink{}
	return health.NewRecorder(s), s
}

func (s *Sink) add(kind, format string, args ...any) {
	s.Lines = append(s.Lines, Line{Kind: kind, Text: fmt.Sprintf(format, args...)})
}

func (s *Sink) Section(title string)                { s.add(KindSection, "%s", title) }
func (s *Sink) Infof(format string, args ...any)    { s.add(KindInfo, format, args...) }
func (s *Sink) Successf(format string, args ...any) { s.add(KindSuccess, format, args...) }
func (s *Sink) Notef(format string, args ...any)    { s.add(KindNote, format, args...) }
func (s *Sink) Warnf(format string, args ...any)    { s.add(KindWarn, format, args...) }
func (s *Sink) Errorf(format string, args ...any)   { s.add(KindError, format, args...) }
func (s *Sink) Itemf(format string, args ...any)    { s.add(KindItem, format, args...) }
func (s *Sink) Detailf(format string, args ...any)  { s.add(KindDetail, format, args...) }

// Texts returns the recorded lines of one kind, in order.
func (s *Sink) Texts(kind string) []string {
	var out []string
	for _, l := range s.Lines {
		if l.Kind == kind {
			out = append(out, l.Text)
		}
	}
	return out
}

// Contains reports whether any line of the given kind contains substr.
func (s *Sink) Contains(kind, substr string) bool {
	for _, l := range s.Lines {
		if l.Kind == kind && strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

// All returns every recorded line's text joined by newlines.
func (s *Sink) All() string {
	var b strings.Builder
	for _, l := range s.Lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
