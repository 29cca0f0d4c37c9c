// Package simulator generates synthetic power-meter telemetry series.
//
// A series covers an inclusive date range with exactly one record per
// calendar day. All electrical quantities are re-randomized per record;
// only the cumulative energy carries state across the series, stepping
// by a fixed per-mode increment each day.
package simulator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"meterseed/internal/models"
)

// Mode selects the magnitude and growth rate of the simulated energy
// accumulation.
type Mode int

const (
	// ModeNormal simulates household-scale consumption.
	ModeNormal Mode = iota + 1
	// ModeGreater simulates a heavy consumer with large daily increments.
	ModeGreater
)

const (
	minVoltage     = 225.0
	maxVoltage     = 245.0
	minCurrent     = 0.01
	maxCurrent     = 1.0
	minPowerFactor = 0.8
	maxPowerFactor = 0.9
	minFrequency   = 49.8
	maxFrequency   = 49.9

	normalStep  = 0.003
	greaterStep = 0.5

	dateLayout = "2006-01-02"
	timeLayout = "03:04:05 PM"
)

// ParseMode validates a numeric mode selection. Anything outside {1, 2}
// is rejected rather than defaulted.
func ParseMode(v int) (Mode, error) {
	switch v {
	case 1:
		return ModeNormal, nil
	case 2:
		return ModeGreater, nil
	default:
		return 0, fmt.Errorf("invalid mode: %d", v)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeGreater:
		return "greater"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// step returns the per-day energy increment for the mode.
func (m Mode) step() float64 {
	if m == ModeGreater {
		return greaterStep
	}
	return normalStep
}

// Generator produces ordered daily telemetry records. The random source
// and clock are fields so tests can pin them.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Generator seeded from the current time.
func New() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// InitialEnergy samples the starting cumulative energy for a series,
// rounded to 3 decimals. Returns an error for an unknown mode.
func (g *Generator) InitialEnergy(mode Mode) (float64, error) {
	switch mode {
	case ModeNormal:
		return round3(g.uniform(0.5, 1.0)), nil
	case ModeGreater:
		return round3(g.uniform(150.0, 250.0)), nil
	default:
		return 0, fmt.Errorf("invalid mode: %d", int(mode))
	}
}

// Sample produces one reading carrying the supplied cumulative energy.
// Voltage, current, power factor and frequency are drawn independently;
// power is derived from them and rounded to 2 decimals.
func (g *Generator) Sample(energy float64) models.TelemetryRecord {
	now := g.now()
	voltage := g.uniform(minVoltage, maxVoltage)
	current := g.uniform(minCurrent, maxCurrent)
	powerFactor := g.uniform(minPowerFactor, maxPowerFactor)

	return models.TelemetryRecord{
		Voltage:     voltage,
		Current:     current,
		PowerFactor: powerFactor,
		Power:       round2(voltage * current * powerFactor),
		Energy:      round3(energy),
		Frequency:   g.uniform(minFrequency, maxFrequency),
		Date:        now.Format(dateLayout),
		Time:        now.Format(timeLayout),
		CreatedAt:   now,
	}
}

// Generate emits one record per calendar day in [start, end] inclusive,
// ascending, starting from a fresh InitialEnergy for the mode.
func (g *Generator) Generate(start, end time.Time, mode Mode) ([]models.TelemetryRecord, error) {
	energy, err := g.InitialEnergy(mode)
	if err != nil {
		return nil, err
	}
	return g.series(start, end, energy, mode.step()), nil
}

// series walks the date range a calendar day at a time, stamping each
// sample with the iterated date and advancing the cumulative energy.
func (g *Generator) series(start, end time.Time, energy, step float64) []models.TelemetryRecord {
	var records []models.TelemetryRecord
	last := truncateToDay(end)
	for d := truncateToDay(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		rec := g.Sample(energy)
		rec.Date = d.Format(dateLayout)
		records = append(records, rec)
		energy = round3(energy + step)
	}
	return records
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
