// Package output renders the health report to the console and mirrors it
// into the run log.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	itemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Console writes styled report lines to a terminal and mirrors each line,
// unstyled, into the run log so the file reads like the screen did.
type Console struct {
	out io.Writer
	log *logrus.Logger
}

// NewConsole creates a console sink writing to out and mirroring to log.
func NewConsole(out io.Writer, log *logrus.Logger) *Console {
	return &Console{out: out, log: log}
}

// Section opens a titled report section with a banner.
func (c *Console) Section(title string) {
	banner := fmt.Sprintf("%s %s %s", strings.Repeat("=", 10), strings.ToUpper(title), strings.Repeat("=", 10))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, sectionStyle.Render(banner))
	c.log.Infof("--- %s ---", title)
}

// Infof writes a plain informational line.
func (c *Console) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, msg)
	c.log.Info(msg)
}

// Successf writes a positive finding.
func (c *Console) Successf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, successStyle.Render("✅ "+msg))
	c.log.Info(msg)
}

// Notef writes a capability note: the queried feature is absent or not
// supported on this host. Notes never carry a penalty.
func (c *Console) Notef(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, noteStyle.Render("❕ "+msg))
	c.log.Info(msg)
}

// Warnf writes a threshold warning.
func (c *Console) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, warnStyle.Render("⚠️  "+msg))
	c.log.Warn(msg)
}

// Errorf writes a query failure.
func (c *Console) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, errorStyle.Render("❌ "+msg))
	c.log.Error(msg)
}

// Itemf writes a list entry.
func (c *Console) Itemf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, itemStyle.Render("🔹 ")+msg)
	c.log.Info(msg)
}

// Detailf writes an indented continuation of the previous entry.
func (c *Console) Detailf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, "   "+dimStyle.Render(msg))
	c.log.Info("   " + msg)
}
