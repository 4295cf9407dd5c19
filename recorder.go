package main

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Recorder buffers the telemetry of one burn so the whole trace can be
// summarized and exported after the loop finishes.
type Recorder struct {
	dt            float64 // timestep of the recorded burn, s
	propmass_init float64 // propellant mass before the first step, kg
	records       []TelemetryRecord

	// per-quantity column, filled in lockstep with records
	thrust_ns []float64
}

func NewRecorder(n_step int, dt, propmass_init float64) *Recorder {
	return &Recorder{
		dt:            dt,
		propmass_init: propmass_init,
		records:       make([]TelemetryRecord, 0, n_step),
		thrust_ns:     make([]float64, 0, n_step),
	}
}

func (self *Recorder) add(rec TelemetryRecord) {
	self.records = append(self.records, rec)
	self.thrust_ns = append(self.thrust_ns, rec.Thrust)
}

// BurnSummary aggregates a recorded burn.
type BurnSummary struct {
	Steps          int
	BurnoutTime    float64 // elapsed time of the last step, s
	MeanThrust     float64 // N
	PeakThrust     float64 // N
	TotalImpulse   float64 // N s
	PropellantUsed float64 // kg
}

/*
Summarize the recorded burn.

	Returns:
		aggregates of the trace; zero value when nothing was recorded
*/
func (self *Recorder) summary() BurnSummary {
	if len(self.records) == 0 {
		return BurnSummary{}
	}

	last := self.records[len(self.records)-1]

	return BurnSummary{
		Steps:          len(self.records),
		BurnoutTime:    last.Time,
		MeanThrust:     stat.Mean(self.thrust_ns, nil),
		PeakThrust:     floats.Max(self.thrust_ns),
		TotalImpulse:   floats.Sum(self.thrust_ns) * self.dt,
		PropellantUsed: self.propmass_init - last.RemainingPropellant,
	}
}

/*
Save the recorded burn telemetry as CSV.

	Args:
		output_data_dir: output directory, created by the caller
		name: file name without extension

	Returns:
		path of the written file
*/
func (self *Recorder) save_csv(output_data_dir, name string) (string, error) {
	out_path := filepath.Join(output_data_dir, name+".csv")

	file, err := os.Create(out_path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&self.records, file); err != nil {
		return "", err
	}

	return out_path, nil
}

// Save a flight trace as CSV in the same layout as the burn telemetry.
func save_flight_csv(records []FlightRecord, output_data_dir, name string) (string, error) {
	out_path := filepath.Join(output_data_dir, name+".csv")

	file, err := os.Create(out_path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return "", err
	}

	return out_path, nil
}

// One row of the atmosphere profile CSV.
type atmosphere_row struct {
	Altitude    float64 `csv:"altitude_m"`
	Pressure    float64 `csv:"pressure_pa"`
	Temperature float64 `csv:"temperature_k"`
}

// Save an atmosphere profile as CSV.
func save_atmosphere_csv(profile AtmosphereProfile, output_data_dir, name string) (string, error) {
	rows := make([]atmosphere_row, len(profile.Altitude))
	for i := range profile.Altitude {
		rows[i] = atmosphere_row{
			Altitude:    profile.Altitude[i],
			Pressure:    profile.Pressure[i],
			Temperature: profile.Temperature[i],
		}
	}

	out_path := filepath.Join(output_data_dir, name+".csv")

	file, err := os.Create(out_path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", err
	}

	return out_path, nil
}

// Save a multi-stage trace as CSV.
func save_staged_csv(records []StageRecord, output_data_dir, name string) (string, error) {
	out_path := filepath.Join(output_data_dir, name+".csv")

	file, err := os.Create(out_path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return "", err
	}

	return out_path, nil
}
