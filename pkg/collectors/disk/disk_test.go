package disk

import (
	"errors"
	"os"
	"testing"

	gdisk "github.com/shirou/gopsutil/v3/disk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syshealth/pkg/health"
	"syshealth/pkg/health/healthtest"
)

func fakeCollector(parts []gdisk.PartitionStat, usages map[string]*gdisk.UsageStat, usageErr map[string]error) *Collector {
	return &Collector{
		partitions: func(bool) ([]gdisk.PartitionStat, error) {
			return parts, nil
		},
		usage: func(path string) (*gdisk.UsageStat, error) {
			if err, ok := usageErr[path]; ok {
				return nil, err
			}
			return usages[path], nil
		},
	}
}

func part(device, mount string) gdisk.PartitionStat {
	return gdisk.PartitionStat{Device: device, Mountpoint: mount, Fstype: "ext4"}
}

func usage(percent float64) *gdisk.UsageStat {
	return &gdisk.UsageStat{
		Total:       500 << 30,
		Used:        uint64(float64(500<<30) * percent / 100),
		Free:        uint64(float64(500<<30) * (100 - percent) / 100),
		UsedPercent: percent,
	}
}

func TestEveryFullPartitionDeductsSeparately(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector(
		[]gdisk.PartitionStat{part("/dev/sda1", "/"), part("/dev/sdb1", "/data"), part("/dev/sdc1", "/backup")},
		map[string]*gdisk.UsageStat{"/": usage(95), "/data": usage(91.5), "/backup": usage(99)},
		nil,
	)

	require.NoError(t, c.Collect(rec))

	warns := sink.Texts(healthtest.KindWarn)
	require.Len(t, warns, 3)
	assert.Equal(t, "Drive /dev/sda1 is nearly full (95.0%).", warns[0])
	assert.Equal(t, 3*health.DiskPenalty, rec.Card().TotalPenalty())
	assert.Equal(t, 70, rec.Score())
}

func TestAtLimitIsNotABreach(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector(
		[]gdisk.PartitionStat{part("/dev/sda1", "/")},
		map[string]*gdisk.UsageStat{"/": usage(90)},
		nil,
	)

	require.NoError(t, c.Collect(rec))

	assert.Empty(t, sink.Texts(healthtest.KindWarn))
	assert.Equal(t, 100, rec.Score())
}

func TestPermissionDeniedSkipsPartitionOnly(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector(
		[]gdisk.PartitionStat{part("/dev/sda1", "/"), part("/dev/sdb1", "/restricted"), part("/dev/sdc1", "/data")},
		map[string]*gdisk.UsageStat{"/": usage(50), "/data": usage(95)},
		map[string]error{"/restricted": os.ErrPermission},
	)

	require.NoError(t, c.Collect(rec))

	errs := sink.Texts(healthtest.KindError)
	require.Len(t, errs, 1)
	assert.Equal(t, "Access denied for drive /dev/sdb1.", errs[0])

	// The partitions around the denied one still report and score.
	items := sink.Texts(healthtest.KindItem)
	require.Len(t, items, 2)
	assert.Equal(t, "Drive: /dev/sda1 (/)", items[0])
	assert.Equal(t, "Drive: /dev/sdc1 (/data)", items[1])
	assert.Equal(t, health.DiskPenalty, rec.Card().TotalPenalty())
}

func TestOtherUsageErrorsAreReportedAndSkipped(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector(
		[]gdisk.PartitionStat{part("/dev/sda1", "/"), part("/dev/sdb1", "/flaky")},
		map[string]*gdisk.UsageStat{"/": usage(10)},
		map[string]error{"/flaky": errors.New("device not ready")},
	)

	require.NoError(t, c.Collect(rec))

	errs := sink.Texts(healthtest.KindError)
	require.Len(t, errs, 1)
	assert.Equal(t, "Failed to get disk information for /dev/sdb1: device not ready", errs[0])
	assert.Len(t, sink.Texts(healthtest.KindItem), 1)
}

func TestEmptyPartitionsAreSkipped(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector(
		[]gdisk.PartitionStat{part("/dev/loop0", "/snap")},
		map[string]*gdisk.UsageStat{"/snap": {Total: 0}},
		nil,
	)

	require.NoError(t, c.Collect(rec))

	assert.Empty(t, sink.Lines)
}

func TestEnumerationFailureIsAnError(t *testing.T) {
	rec, _ := healthtest.NewRecorder()

	c := &Collector{
		partitions: func(bool) ([]gdisk.PartitionStat, error) {
			return nil, errors.New("mounts unreadable")
		},
	}

	err := c.Collect(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerate partitions")
}

func TestDetailLines(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector(
		[]gdisk.PartitionStat{part("/dev/sda1", "/")},
		map[string]*gdisk.UsageStat{"/": usage(50)},
		nil,
	)

	require.NoError(t, c.Collect(rec))

	details := sink.Texts(healthtest.KindDetail)
	assert.Contains(t, details, "Filesystem: ext4")
	assert.Contains(t, details, "Total Space: 500.00 GB")
	assert.Contains(t, details, "Used Space: 250.00 GB")
	assert.Contains(t, details, "Free Space: 250.00 GB")
	assert.Contains(t, details, "Usage Percentage: 50.0%")
}
