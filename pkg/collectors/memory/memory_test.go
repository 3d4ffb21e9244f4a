package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syshealth/pkg/health"
	"syshealth/pkg/health/healthtest"
)

func TestReportHighUsage(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	New().report(rec, Reading{
		TotalBytes:     16 << 30,
		UsedBytes:      15 << 30,
		AvailableBytes: 1 << 30,
		UsedPercent:    93.7,
	})

	infos := sink.Texts(healthtest.KindInfo)
	assert.Contains(t, infos, "Total Memory: 16.00 GB")
	assert.Contains(t, infos, "Used Memory: 15.00 GB")
	assert.Contains(t, infos, "Available Memory: 1.00 GB")
	assert.Contains(t, infos, "Memory Usage: 93.7%")

	warns := sink.Texts(healthtest.KindWarn)
	require.Len(t, warns, 1)
	assert.Equal(t, "High RAM usage detected (93.7%).", warns[0])
	assert.Equal(t, health.MemoryPenalty, rec.Card().TotalPenalty())
}

func TestReportWithinLimit(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	New().report(rec, Reading{TotalBytes: 8 << 30, UsedBytes: 4 << 30, UsedPercent: 50})

	assert.Empty(t, sink.Texts(healthtest.KindWarn))
	assert.Equal(t, 100, rec.Score())
}

func TestReportSwapIsInformational(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	New().report(rec, Reading{
		TotalBytes:  8 << 30,
		UsedBytes:   4 << 30,
		UsedPercent: 50,
		SwapTotal:   2 << 30,
		SwapUsed:    1 << 30,
		SwapPercent: 50,
	})

	assert.Contains(t, sink.Texts(healthtest.KindInfo), "Swap Usage: 1.00 GB of 2.00 GB (50.0%)")
	assert.Equal(t, 100, rec.Score(), "swap usage never deducts")
}

func TestReportOmitsAbsentSwap(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	New().report(rec, Reading{TotalBytes: 8 << 30, UsedBytes: 4 << 30, UsedPercent: 50})

	for _, line := range sink.Texts(healthtest.KindInfo) {
		assert.NotContains(t, line, "Swap")
	}
}
