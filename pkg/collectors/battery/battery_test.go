package battery

import (
	"errors"
	"testing"

	dbattery "github.com/distatus/battery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syshealth/pkg/health"
	"syshealth/pkg/health/healthtest"
)

func fakeCollector(batteries []*dbattery.Battery, err error) *Collector {
	return &Collector{get: func() ([]*dbattery.Battery, error) {
		return batteries, err
	}}
}

func TestLowAndDischargingDeducts(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector([]*dbattery.Battery{
		{Current: 20, Full: 100, State: dbattery.Discharging},
	}, nil)

	require.NoError(t, c.Collect(rec))

	infos := sink.Texts(healthtest.KindInfo)
	assert.Contains(t, infos, "Charge Level: 20%")
	assert.Contains(t, infos, "Status: On Battery")

	warns := sink.Texts(healthtest.KindWarn)
	require.Len(t, warns, 1)
	assert.Equal(t, "Low battery level and not plugged in.", warns[0])
	assert.Equal(t, health.BatteryPenalty, rec.Card().TotalPenalty())
}

func TestLowButPluggedInNeverDeducts(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector([]*dbattery.Battery{
		{Current: 10, Full: 100, State: dbattery.Charging},
	}, nil)

	require.NoError(t, c.Collect(rec))

	assert.Contains(t, sink.Texts(healthtest.KindInfo), "Status: Plugged In")
	assert.Empty(t, sink.Texts(healthtest.KindWarn))
	assert.Equal(t, 100, rec.Score())
}

func TestHostWithoutBatteryNotes(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector(nil, errors.New("no battery bus"))

	require.NoError(t, c.Collect(rec), "battery absence is a note, not an error")
	assert.True(t, sink.Contains(healthtest.KindNote, "Battery information not available."))
	assert.Equal(t, 100, rec.Score())
}

func TestUnreadableBatteryEntriesNote(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector([]*dbattery.Battery{nil, {Full: 0}}, nil)

	require.NoError(t, c.Collect(rec))
	assert.True(t, sink.Contains(healthtest.KindNote, "Battery information not available."))
}

func TestMultipleBatteriesAreNumbered(t *testing.T) {
	rec, sink := healthtest.NewRecorder()

	c := fakeCollector([]*dbattery.Battery{
		{Current: 90, Full: 100, State: dbattery.Full},
		{Current: 20, Full: 100, State: dbattery.Discharging},
	}, nil)

	require.NoError(t, c.Collect(rec))

	items := sink.Texts(healthtest.KindItem)
	require.Len(t, items, 2)
	assert.Equal(t, "Battery 1", items[0])
	assert.Equal(t, "Battery 2", items[1])

	// Only the discharging low battery deducts.
	assert.Equal(t, health.BatteryPenalty, rec.Card().TotalPenalty())
}
