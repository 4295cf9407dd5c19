package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stage describes one stage of a launch vehicle. A zero separation
// altitude/time means the stage burns until depletion.
type Stage struct {
	Name                      string
	FuelType                  string  // fuel kind name
	ChamberPressure           float64 // Pa
	ChamberTemp               float64 // K
	TotalMass                 float64 // kg, including propellant and fairing
	PropellantMass            float64 // kg
	MassFlowRate              float64 // kg/s
	ReferenceArea             float64 // m2
	SeparationAltitude        float64 // m, 0 disables
	SeparationTime            float64 // s, 0 disables
	FairingMass               float64 // kg
	FairingSeparationAltitude float64 // m, 0 disables
}

// Staging event kinds.
const (
	EventStageSeparation   = "stage_separation"
	EventFairingSeparation = "fairing_separation"
	EventStageDepletion    = "stage_depletion"
	EventMissionComplete   = "mission_complete"
)

// StageEvent marks a discrete transition during a multi-stage flight.
type StageEvent struct {
	Time     float64 // s
	Type     string
	Stage    int
	Altitude float64 // m
	Velocity float64 // m/s
	Mass     float64 // mass jettisoned, kg (fairing separation only)
}

// StageRecord is the per-step snapshot of a multi-stage flight.
type StageRecord struct {
	Time     float64 `csv:"time_s"`
	Altitude float64 `csv:"altitude_m"`
	Velocity float64 `csv:"velocity_ms"`
	Mass     float64 `csv:"total_mass_kg"`
	Thrust   float64 `csv:"thrust_n"`
	Stage    int     `csv:"stage"`
}

// StagedFlightResult is the completed multi-stage trace, its event log and
// aggregates.
type StagedFlightResult struct {
	Records     []StageRecord
	Events      []StageEvent
	FinalTime   float64 // s
	MaxAltitude float64 // m
	MaxVelocity float64 // m/s
}

/*
Simulate a multi-stage vertical ascent. Stages burn strictly one after the
other; a stage ends on depletion or on reaching its separation altitude or
time, whichever comes first.

	Args:
		stages: the stage plan, first stage first
		dt: simulation timestep, s
		max_time: cutoff time, s (0 means no cutoff)

	Returns:
		trace, event log and aggregates of the flight
*/
func simulate_staged_flight(stages []Stage, dt, max_time float64) (*StagedFlightResult, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("%w: no stages defined", ErrInvalidStagePlan)
	}
	if dt <= 0.0 {
		return nil, fmt.Errorf("%w: timestep %v s", ErrInvalidSimulationParameters, dt)
	}
	for i, s := range stages {
		if _, err := get_fuel_constants(s.FuelType); err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		if s.MassFlowRate <= 0.0 {
			return nil, fmt.Errorf("%w: stage %d mass flow rate %v kg/s", ErrInvalidSimulationParameters, i, s.MassFlowRate)
		}
		if s.PropellantMass < 0.0 || s.PropellantMass+s.FairingMass > s.TotalMass {
			return nil, fmt.Errorf("%w: stage %d masses", ErrInvalidStagePlan, i)
		}
	}

	g0 := get_g0()

	// remaining propellant and fairing per stage; the current total mass
	// starts as the sum of every stage
	propellants := make([]float64, len(stages))
	fairings := make([]float64, len(stages))
	cm := 0.0
	for i, s := range stages {
		propellants[i] = s.PropellantMass
		fairings[i] = s.FairingMass
		cm += s.TotalMass
	}

	result := &StagedFlightResult{}
	current_stage := 0
	te := 0.0
	velocity := 0.0
	altitude := 0.0

	for max_time == 0.0 || te < max_time {
		if current_stage < len(stages) {
			s := stages[current_stage]

			if (s.SeparationAltitude > 0.0 && altitude >= s.SeparationAltitude) ||
				(s.SeparationTime > 0.0 && te >= s.SeparationTime) {
				// the separated stage takes its remaining mass with it:
				// total minus already-burned propellant minus any
				// already-jettisoned fairing
				cm -= s.TotalMass - (s.PropellantMass - propellants[current_stage]) - (s.FairingMass - fairings[current_stage])
				result.Events = append(result.Events, StageEvent{
					Time: te, Type: EventStageSeparation, Stage: current_stage,
					Altitude: altitude, Velocity: velocity,
				})
				current_stage++
				continue
			}

			if s.FairingSeparationAltitude > 0.0 && altitude >= s.FairingSeparationAltitude && fairings[current_stage] > 0.0 {
				cm -= fairings[current_stage]
				result.Events = append(result.Events, StageEvent{
					Time: te, Type: EventFairingSeparation, Stage: current_stage,
					Altitude: altitude, Mass: fairings[current_stage],
				})
				fairings[current_stage] = 0.0
			}
		}

		if current_stage >= len(stages) {
			result.Events = append(result.Events, StageEvent{
				Time: te, Type: EventMissionComplete,
				Altitude: altitude, Velocity: velocity,
			})
			break
		}

		s := stages[current_stage]
		c, _ := get_fuel_constants(s.FuelType)

		ap := get_atmospheric_pressure(altitude)
		ve, err := get_ve(c.k, c.R, s.ChamberTemp, ap, s.ChamberPressure)
		if err != nil {
			return nil, &SimulationError{Step: len(result.Records), Time: te, Wrapped: err}
		}
		thrust := s.MassFlowRate * ve

		consumed := math.Min(s.MassFlowRate*dt, propellants[current_stage])
		propellants[current_stage] -= consumed
		cm -= consumed

		if propellants[current_stage] <= 0.0 {
			result.Events = append(result.Events, StageEvent{
				Time: te, Type: EventStageDepletion, Stage: current_stage,
				Altitude: altitude, Velocity: velocity,
			})
			current_stage++
			continue
		}

		drag := get_drag(velocity, altitude, s.ReferenceArea)
		acceleration := thrust/cm - g0 - drag/cm

		velocity_new := velocity + acceleration*dt
		altitude_new := altitude + (velocity+0.5*acceleration*dt)*dt

		result.Records = append(result.Records, StageRecord{
			Time:     te,
			Altitude: altitude,
			Velocity: velocity,
			Mass:     cm,
			Thrust:   thrust,
			Stage:    current_stage,
		})

		velocity = velocity_new
		altitude = altitude_new
		te += dt
	}

	result.FinalTime = te
	if len(result.Records) > 0 {
		altitudes := make([]float64, len(result.Records))
		velocities := make([]float64, len(result.Records))
		for i, r := range result.Records {
			altitudes[i] = r.Altitude
			velocities[i] = r.Velocity
		}
		result.MaxAltitude = floats.Max(altitudes)
		result.MaxVelocity = floats.Max(velocities)
	}

	return result, nil
}
