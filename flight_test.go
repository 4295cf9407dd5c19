package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func default_flight_parameters() FlightParameters {
	return FlightParameters{
		FuelType:        "RP1",
		ChamberPressure: 7000000.0,
		ChamberTemp:     3500.0,
		Altitude:        0.0,
		TotalMass:       10000.0,
		PropellantMass:  8000.0,
		MassFlowRate:    250.0,
		Timestep:        0.1,
		ReferenceArea:   1.0,
	}
}

func Test_simulate_flight_terminates_on_depletion(t *testing.T) {
	result, err := simulate_flight(default_flight_parameters())
	require.NoError(t, err)

	assert.True(t, result.Complete)
	require.NotEmpty(t, result.Records)

	last := result.Records[len(result.Records)-1]
	assert.Equal(t, 0.0, last.RemainingPropellant)

	// 8000 kg at 25 kg per step burns out after 320 steps, 32 s
	assert.Len(t, result.Records, 320)
	assert.InDelta(t, 32.0, result.FinalTime, 1e-6)
}

func Test_simulate_flight_ascends(t *testing.T) {
	result, err := simulate_flight(default_flight_parameters())
	require.NoError(t, err)

	last := result.Records[len(result.Records)-1]
	assert.Greater(t, last.Altitude, 0.0)
	assert.Greater(t, last.Velocity, 0.0)
	assert.Greater(t, result.DeltaV, 0.0)
	assert.Greater(t, result.InitialThrust, 0.0)

	// thrust grows as the ambient pressure drops with altitude
	assert.Greater(t, last.Thrust, result.Records[0].Thrust)

	for _, rec := range result.Records {
		assert.False(t, math.IsNaN(rec.Velocity))
		assert.False(t, math.IsNaN(rec.Altitude))
	}
}

func Test_simulate_flight_max_time_cutoff(t *testing.T) {
	p := default_flight_parameters()
	p.MaxTime = 5.0

	result, err := simulate_flight(p)
	require.NoError(t, err)

	assert.False(t, result.Complete)
	// accumulated timestep drift can admit one extra step at the cutoff
	assert.GreaterOrEqual(t, len(result.Records), 50)
	assert.LessOrEqual(t, len(result.Records), 51)
	assert.Less(t, result.Records[len(result.Records)-1].RemainingPropellant, 8000.0)
}

func Test_simulate_flight_mass_bookkeeping(t *testing.T) {
	result, err := simulate_flight(default_flight_parameters())
	require.NoError(t, err)

	// dry mass stays constant through the burn
	for _, rec := range result.Records {
		assert.InDelta(t, 2000.0, rec.TotalMass-rec.RemainingPropellant, 1e-6)
	}
}

func Test_simulate_flight_unknown_fuel(t *testing.T) {
	p := default_flight_parameters()
	p.FuelType = "XENON"

	_, err := simulate_flight(p)
	assert.ErrorIs(t, err, ErrUnknownFuelKind)
}

func Test_simulate_flight_invalid_parameters(t *testing.T) {
	p := default_flight_parameters()
	p.MassFlowRate = 0.0
	_, err := simulate_flight(p)
	assert.ErrorIs(t, err, ErrInvalidSimulationParameters)

	p = default_flight_parameters()
	p.Timestep = -0.1
	_, err = simulate_flight(p)
	assert.ErrorIs(t, err, ErrInvalidSimulationParameters)

	p = default_flight_parameters()
	p.PropellantMass = p.TotalMass + 1.0
	_, err = simulate_flight(p)
	assert.ErrorIs(t, err, ErrInvalidSimulationParameters)
}

func Test_simulate_flight_zero_dry_mass_rejected(t *testing.T) {
	// an all-propellant vehicle would divide by zero mass on its last step
	// and put an infinite acceleration in the trace
	p := default_flight_parameters()
	p.PropellantMass = p.TotalMass

	_, err := simulate_flight(p)
	assert.ErrorIs(t, err, ErrInvalidSimulationParameters)
}

func Test_simulate_flight_low_chamber_pressure_fails_typed(t *testing.T) {
	// a chamber below ambient pressure must fail instead of yielding NaN
	p := default_flight_parameters()
	p.ChamberPressure = 50000.0

	_, err := simulate_flight(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPressureRatio)

	var sim_err *SimulationError
	require.ErrorAs(t, err, &sim_err)
	assert.Equal(t, 0, sim_err.Step)
}
