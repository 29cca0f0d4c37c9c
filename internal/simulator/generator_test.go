package simulator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: func() time.Time { return testClock },
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		want    Mode
		wantErr bool
	}{
		{name: "normal", input: 1, want: ModeNormal},
		{name: "greater", input: 2, want: ModeGreater},
		{name: "zero", input: 0, wantErr: true},
		{name: "out of range", input: 3, wantErr: true},
		{name: "negative", input: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestInitialEnergyRanges(t *testing.T) {
	g := newTestGenerator(1)

	for i := 0; i < 1000; i++ {
		normal, err := g.InitialEnergy(ModeNormal)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, normal, 0.5)
		assert.LessOrEqual(t, normal, 1.0)

		greater, err := g.InitialEnergy(ModeGreater)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, greater, 150.0)
		assert.LessOrEqual(t, greater, 250.0)
	}
}

func TestInitialEnergyInvalidMode(t *testing.T) {
	g := newTestGenerator(1)

	_, err := g.InitialEnergy(Mode(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestSampleRanges(t *testing.T) {
	g := newTestGenerator(42)

	for i := 0; i < 1000; i++ {
		rec := g.Sample(1.234)

		assert.GreaterOrEqual(t, rec.Voltage, 225.0)
		assert.LessOrEqual(t, rec.Voltage, 245.0)
		assert.GreaterOrEqual(t, rec.Current, 0.01)
		assert.LessOrEqual(t, rec.Current, 1.0)
		assert.GreaterOrEqual(t, rec.PowerFactor, 0.8)
		assert.LessOrEqual(t, rec.PowerFactor, 0.9)
		assert.GreaterOrEqual(t, rec.Frequency, 49.8)
		assert.LessOrEqual(t, rec.Frequency, 49.9)

		wantPower := rec.Voltage * rec.Current * rec.PowerFactor
		assert.InDelta(t, wantPower, rec.Power, 0.005+1e-9)

		assert.InDelta(t, 1.234, rec.Energy, 1e-9)
	}
}

func TestSampleStampsClock(t *testing.T) {
	g := newTestGenerator(9)

	rec := g.Sample(0.5)

	assert.Equal(t, "2024-03-15", rec.Date)
	assert.Equal(t, "02:30:05 PM", rec.Time)
	assert.Equal(t, testClock, rec.CreatedAt)
}

func TestGenerateCoversEveryDay(t *testing.T) {
	g := newTestGenerator(7)
	start := time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 18, 45, 0, 0, time.UTC)

	records, err := g.Generate(start, end, ModeNormal)
	require.NoError(t, err)

	// 2024 is a leap year: 31 + 29 + 1 days.
	require.Len(t, records, 61)

	expect := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, rec := range records {
		assert.Equal(t, expect.Format("2006-01-02"), rec.Date)
		expect = expect.AddDate(0, 0, 1)
	}
}

func TestGenerateSingleDayRange(t *testing.T) {
	g := newTestGenerator(11)
	day := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	records, err := g.Generate(day, day, ModeNormal)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-06-10", records[0].Date)
}

func TestGenerateEnergySteps(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		step float64
	}{
		{name: "normal steps by 0.003", mode: ModeNormal, step: 0.003},
		{name: "greater steps by 0.5", mode: ModeGreater, step: 0.5},
	}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(21)

			records, err := g.Generate(start, end, tt.mode)
			require.NoError(t, err)
			require.Len(t, records, 10)

			for i := 1; i < len(records); i++ {
				diff := records[i].Energy - records[i-1].Energy
				assert.InDelta(t, tt.step, diff, 1e-9)
				assert.GreaterOrEqual(t, records[i].Energy, records[i-1].Energy)
			}
		})
	}
}

func TestGenerateInvalidMode(t *testing.T) {
	g := newTestGenerator(1)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records, err := g.Generate(start, start.AddDate(0, 0, 3), Mode(5))
	require.Error(t, err)
	assert.Nil(t, records)
}

func TestSeriesFixedInitialEnergy(t *testing.T) {
	g := newTestGenerator(3)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	records := g.series(start, end, 0.500, normalStep)
	require.Len(t, records, 3)

	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	wantEnergy := []float64{0.500, 0.503, 0.506}
	for i, rec := range records {
		assert.Equal(t, wantDates[i], rec.Date)
		assert.InDelta(t, wantEnergy[i], rec.Energy, 1e-9)
	}
}
