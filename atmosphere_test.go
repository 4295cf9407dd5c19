package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_get_atmospheric_pressure(t *testing.T) {
	assert.Equal(t, 101325.0, get_atmospheric_pressure(0.0))
	// negative altitudes clamp to sea level
	assert.Equal(t, 101325.0, get_atmospheric_pressure(-100.0))

	// pressure falls with altitude and never goes negative
	p5k := get_atmospheric_pressure(5000.0)
	p10k := get_atmospheric_pressure(10000.0)
	assert.Less(t, p5k, 101325.0)
	assert.Less(t, p10k, p5k)
	assert.GreaterOrEqual(t, get_atmospheric_pressure(1.0e6), 0.0)

	// ~5000 m is roughly half an atmosphere under the power law
	assert.InDelta(t, 54000.0, p5k, 1000.0)
}

func Test_get_air_density(t *testing.T) {
	assert.Equal(t, 1.225, get_air_density(0.0))
	assert.Less(t, get_air_density(8500.0), 1.225/2.0)
	assert.Equal(t, 0.0, get_air_density(2.0e6))
}

func Test_get_drag_sign_follows_velocity(t *testing.T) {
	up := get_drag(100.0, 1000.0, 1.0)
	down := get_drag(-100.0, 1000.0, 1.0)

	assert.Greater(t, up, 0.0)
	assert.Less(t, down, 0.0)
	assert.InDelta(t, up, -down, 1e-9)

	assert.Equal(t, 0.0, get_drag(0.0, 1000.0, 1.0))
}

func Test_get_drag_transonic_rise(t *testing.T) {
	// the drag coefficient jumps through the transonic band, so drag per
	// unit dynamic pressure must rise between Mach 0.5 and Mach 1.0
	a := get_speed_of_sound(0.0)

	v_sub := 0.5 * a
	v_trans := 1.0 * a
	cd_sub := get_drag(v_sub, 0.0, 1.0) / (v_sub * v_sub)
	cd_trans := get_drag(v_trans, 0.0, 1.0) / (v_trans * v_trans)

	assert.Greater(t, cd_trans, cd_sub)
}

func Test_make_atmosphere_profile(t *testing.T) {
	profile, err := make_atmosphere_profile(100000.0, 100)
	require.NoError(t, err)

	assert.Len(t, profile.Altitude, 100)
	assert.Len(t, profile.Pressure, 100)
	assert.Len(t, profile.Temperature, 100)

	assert.Equal(t, 0.0, profile.Altitude[0])
	assert.Equal(t, 100000.0, profile.Altitude[99])
	assert.Equal(t, 101325.0, profile.Pressure[0])
	assert.Equal(t, 288.15, profile.Temperature[0])
	// lapse caps at 80 K below sea level temperature
	assert.InDelta(t, 208.15, profile.Temperature[99], 1e-9)
}

func Test_make_atmosphere_profile_rejects_bad_inputs(t *testing.T) {
	// fewer than two samples cannot span a range
	for _, steps := range []int{1, 0, -5} {
		_, err := make_atmosphere_profile(100000.0, steps)
		assert.ErrorIs(t, err, ErrInvalidSimulationParameters, steps)
	}

	_, err := make_atmosphere_profile(0.0, 100)
	assert.ErrorIs(t, err, ErrInvalidSimulationParameters)

	_, err = make_atmosphere_profile(-1000.0, 100)
	assert.ErrorIs(t, err, ErrInvalidSimulationParameters)
}
