package main

import (
	"fmt"
	"math"
)

// FlightParameters are the inputs of the powered ascent simulation.
type FlightParameters struct {
	FuelType        string  // fuel kind name
	ChamberPressure float64 // combustion chamber pressure, Pa
	ChamberTemp     float64 // combustion chamber temperature, K
	Altitude        float64 // initial altitude, m
	TotalMass       float64 // initial total mass including propellant, kg
	PropellantMass  float64 // initial propellant mass, kg
	MassFlowRate    float64 // mass flow rate, kg/s
	Timestep        float64 // simulation timestep, s
	ReferenceArea   float64 // aerodynamic reference area, m2
	MaxTime         float64 // cutoff time, s (0 means no cutoff)
}

// FlightRecord is the per-step snapshot of the powered ascent. Velocity and
// altitude are the values at the start of the step; masses are the values
// after the step's consumption was subtracted.
type FlightRecord struct {
	Time                float64 `csv:"time_s"`
	Thrust              float64 `csv:"thrust_n"`
	RemainingPropellant float64 `csv:"remaining_propellant_kg"`
	TotalMass           float64 `csv:"total_mass_kg"`
	Velocity            float64 `csv:"velocity_ms"`
	Altitude            float64 `csv:"altitude_m"`
	Isp                 float64 `csv:"isp_s"`
	Drag                float64 `csv:"drag_n"`
	Acceleration        float64 `csv:"acceleration_ms2"`
	Energy              float64 `csv:"energy_j"` // kinetic + potential
}

// FlightResult is the completed ascent trace plus its aggregates.
type FlightResult struct {
	Records       []FlightRecord
	FinalTime     float64 // elapsed time when the loop stopped, s
	DeltaV        float64 // accumulated positive velocity gain, m/s
	InitialThrust float64 // thrust of the first step, N
	Complete      bool    // false when the max-time cutoff fired
}

/*
Simulate a powered vertical ascent with altitude-coupled exhaust velocity,
gravity and drag.

	Args:
		p: flight parameters

	Returns:
		flight trace and aggregates

	Notes:
		The integrator is the FlarePie midpoint scheme: acceleration at the
		step start advances velocity and altitude half a step, drag is
		re-evaluated there, and the midpoint acceleration advances the full
		step. Exhaust velocity is recomputed every step from the ambient
		pressure at the current altitude.
*/
func simulate_flight(p FlightParameters) (*FlightResult, error) {
	c, err := get_fuel_constants(p.FuelType)
	if err != nil {
		return nil, err
	}
	if p.MassFlowRate <= 0.0 {
		return nil, fmt.Errorf("%w: mass flow rate %v kg/s", ErrInvalidSimulationParameters, p.MassFlowRate)
	}
	if p.Timestep <= 0.0 {
		return nil, fmt.Errorf("%w: timestep %v s", ErrInvalidSimulationParameters, p.Timestep)
	}
	if p.PropellantMass < 0.0 || p.PropellantMass > p.TotalMass {
		return nil, fmt.Errorf("%w: propellant %v kg of total %v kg", ErrInvalidSimulationParameters, p.PropellantMass, p.TotalMass)
	}
	// the flight loop divides by the current mass, so a vehicle that burns
	// down to nothing would end with an infinite acceleration
	if p.PropellantMass == p.TotalMass {
		return nil, fmt.Errorf("%w: zero dry mass", ErrInvalidSimulationParameters)
	}

	g0 := get_g0()

	cm := p.TotalMass
	propmass := p.PropellantMass
	te := 0.0
	velocity := 0.0
	altitude := p.Altitude
	delta_v := 0.0

	result := &FlightResult{}
	step := 0

	for propmass > 0.0 && (p.MaxTime == 0.0 || te < p.MaxTime) {
		ap := get_atmospheric_pressure(altitude)

		ve, err := get_ve(c.k, c.R, p.ChamberTemp, ap, p.ChamberPressure)
		if err != nil {
			return nil, &SimulationError{Step: step, Time: te, Wrapped: err}
		}
		thrust := p.MassFlowRate * ve

		consumed := math.Min(p.MassFlowRate*p.Timestep, propmass)
		propmass -= consumed
		cm -= consumed

		drag := get_drag(velocity, altitude, p.ReferenceArea)
		acceleration := thrust/cm - g0 - drag/cm

		// midpoint step
		velocity_mid := velocity + 0.5*acceleration*p.Timestep
		altitude_mid := altitude + 0.5*velocity*p.Timestep
		drag_mid := get_drag(velocity_mid, altitude_mid, p.ReferenceArea)
		acceleration_mid := thrust/cm - g0 - drag_mid/cm

		velocity_new := velocity + acceleration_mid*p.Timestep
		altitude_new := altitude + velocity_mid*p.Timestep

		delta_v += math.Max(0.0, velocity_new-velocity)

		isp := thrust / (p.MassFlowRate * g0)

		kinetic := 0.5 * cm * velocity * velocity
		potential := cm * g0 * altitude

		result.Records = append(result.Records, FlightRecord{
			Time:                te,
			Thrust:              thrust,
			RemainingPropellant: propmass,
			TotalMass:           cm,
			Velocity:            velocity,
			Altitude:            altitude,
			Isp:                 isp,
			Drag:                drag,
			Acceleration:        acceleration,
			Energy:              kinetic + potential,
		})

		velocity = velocity_new
		altitude = altitude_new
		te += p.Timestep
		step++
	}

	result.FinalTime = te
	result.DeltaV = delta_v
	result.Complete = propmass <= 0.0
	if len(result.Records) > 0 {
		result.InitialThrust = result.Records[0].Thrust
	}

	return result, nil
}
