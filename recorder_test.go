package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorded_burn(t *testing.T) *Recorder {
	t.Helper()

	sim, err := NewBurnSimulation(100.0, 40.0, 5.0, 2500.0, 1.0)
	require.NoError(t, err)

	recorder := NewRecorder(8, 1.0, 40.0)
	for {
		rec, ok := sim.Next()
		if !ok {
			break
		}
		recorder.add(rec)
	}
	return recorder
}

func Test_recorder_summary(t *testing.T) {
	s := recorded_burn(t).summary()

	assert.Equal(t, 8, s.Steps)
	assert.Equal(t, 7.0, s.BurnoutTime)
	assert.Equal(t, 12500.0, s.MeanThrust)
	assert.Equal(t, 12500.0, s.PeakThrust)
	assert.Equal(t, 100000.0, s.TotalImpulse) // 8 * 12500 N * 1 s
	assert.Equal(t, 40.0, s.PropellantUsed)
}

func Test_recorder_summary_empty(t *testing.T) {
	recorder := NewRecorder(0, 1.0, 0.0)
	assert.Equal(t, BurnSummary{}, recorder.summary())
}

func Test_recorder_save_csv(t *testing.T) {
	dir := t.TempDir()

	out_path, err := recorded_burn(t).save_csv(dir, "burn_telemetry")
	require.NoError(t, err)

	data, err := os.ReadFile(out_path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 9) // header plus 8 records
	assert.Equal(t, "time_s,thrust_n,remaining_propellant_kg,total_mass_kg", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,12500,"))
}

func Test_save_atmosphere_csv(t *testing.T) {
	dir := t.TempDir()

	profile, err := make_atmosphere_profile(10000.0, 11)
	require.NoError(t, err)

	out_path, err := save_atmosphere_csv(profile, dir, "atmosphere_profile")
	require.NoError(t, err)

	data, err := os.ReadFile(out_path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "altitude_m,pressure_pa,temperature_k", lines[0])
}

func Test_save_flight_csv(t *testing.T) {
	dir := t.TempDir()

	result, err := simulate_flight(default_flight_parameters())
	require.NoError(t, err)

	out_path, err := save_flight_csv(result.Records, dir, "flight_telemetry")
	require.NoError(t, err)

	data, err := os.ReadFile(out_path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, len(result.Records)+1)
}
