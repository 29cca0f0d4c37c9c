package models

import "time"

// TelemetryRecord represents a single day's simulated power-meter reading.
//
// Date carries the simulated calendar day (YYYY-MM-DD); CreatedAt is the
// moment the record was generated, not the simulated date.
type TelemetryRecord struct {
	Voltage     float64   `bson:"voltage" json:"voltage"`
	Current     float64   `bson:"current" json:"current"`
	Power       float64   `bson:"power" json:"power"`
	Energy      float64   `bson:"energy" json:"energy"`
	Frequency   float64   `bson:"frequency" json:"frequency"`
	PowerFactor float64   `bson:"powerFactor" json:"powerFactor"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
