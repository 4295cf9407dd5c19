package main

import (
	"fmt"
	"math"
)

// TelemetryRecord is the immutable per-step snapshot of a burn.
// Masses are the values after the step's consumption was subtracted.
type TelemetryRecord struct {
	Time                float64 `csv:"time_s"`                 // elapsed time at the start of the step, s
	Thrust              float64 `csv:"thrust_n"`               // thrust during the step, N
	RemainingPropellant float64 `csv:"remaining_propellant_kg"` // propellant mass after the step, kg
	RemainingTotalMass  float64 `csv:"total_mass_kg"`          // total mass after the step, kg
}

// BurnSimulation steps a propellant depletion loop with a constant mass
// flow rate and a constant exhaust velocity. It is a pull iterator: each
// Next call advances one timestep and hands back the telemetry snapshot.
// Constructing a new simulation with the same inputs replays the same
// sequence.
type BurnSimulation struct {
	mfr float64 // mass flow rate, kg/s
	ve  float64 // exhaust velocity, m/s
	dt  float64 // timestep, s

	// mutable burn state, owned exclusively by the loop
	te       float64 // elapsed time, s
	cm       float64 // total mass, kg
	propmass float64 // propellant mass, kg
}

/*
Create a burn simulation.

	Args:
		intmass: initial total mass including propellant, kg
		propmass: initial propellant mass, kg
		mfr: mass flow rate, kg/s
		ve: exhaust velocity, m/s
		dt: simulation timestep, s

	Notes:
		A non-positive mass flow rate or timestep would loop forever in the
		FlarePie sources; both are rejected here.
*/
func NewBurnSimulation(intmass, propmass, mfr, ve, dt float64) (*BurnSimulation, error) {
	if mfr <= 0.0 {
		return nil, fmt.Errorf("%w: mass flow rate %v kg/s", ErrInvalidSimulationParameters, mfr)
	}
	if dt <= 0.0 {
		return nil, fmt.Errorf("%w: timestep %v s", ErrInvalidSimulationParameters, dt)
	}
	if propmass < 0.0 {
		return nil, fmt.Errorf("%w: propellant mass %v kg", ErrInvalidSimulationParameters, propmass)
	}
	if propmass > intmass {
		return nil, fmt.Errorf("%w: propellant %v kg exceeds total mass %v kg", ErrInvalidSimulationParameters, propmass, intmass)
	}

	return &BurnSimulation{
		mfr:      mfr,
		ve:       ve,
		dt:       dt,
		te:       0.0,
		cm:       intmass,
		propmass: propmass,
	}, nil
}

/*
Advance the burn by one timestep.

	Returns:
		(1) telemetry snapshot of the step
		(2) false once the propellant was already exhausted

	Notes:
		Thrust is mfr * ve with the unclamped flow rate even on the final
		step, where the consumed mass is clamped to the remaining
		propellant. That is what every FlarePie variant computes; the
		intended final-step thrust is unclear from the sources, so the
		behaviour is kept as-is.
*/
func (self *BurnSimulation) Next() (TelemetryRecord, bool) {
	if self.propmass <= 0.0 {
		return TelemetryRecord{}, false
	}

	thrust := self.mfr * self.ve

	// clamp so propellant never goes negative
	consumed := math.Min(self.mfr*self.dt, self.propmass)
	self.propmass -= consumed
	self.cm -= consumed

	rec := TelemetryRecord{
		Time:                self.te,
		Thrust:              thrust,
		RemainingPropellant: self.propmass,
		RemainingTotalMass:  self.cm,
	}

	self.te += self.dt

	return rec, true
}

/*
Run the burn until the propellant is exhausted.

	Returns:
		telemetry records of every step, last record with 0 kg of
		propellant remaining
*/
func (self *BurnSimulation) run_to_depletion() []TelemetryRecord {
	// number of full steps plus a possible clamped final step
	n := int(math.Ceil(self.propmass / (self.mfr * self.dt)))
	records := make([]TelemetryRecord, 0, n)

	for {
		rec, ok := self.Next()
		if !ok {
			break
		}
		records = append(records, rec)
	}

	return records
}
