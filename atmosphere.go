package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
Calculate the atmospheric pressure at an altitude by the barometric
power law.

	Args:
		altitude: altitude above sea level, m (negative values treated as 0)

	Returns:
		atmospheric pressure, Pa, >= 0
*/
func get_atmospheric_pressure(altitude float64) float64 {
	altitude = math.Max(0.0, altitude)

	base := math.Max(0.0, 1.0-get_lapse_rate()*altitude)
	if base == 0.0 {
		return 0.0
	}

	return math.Max(get_p0()*math.Pow(base, get_barometric_exponent()), 0.0)
}

/*
Calculate the air density at an altitude by the exponential model.

	Args:
		altitude: altitude above sea level, m

	Returns:
		air density, kg/m3 (0 above 1e6 m)
*/
func get_air_density(altitude float64) float64 {
	if altitude > 1.0e6 {
		return 0.0
	}
	return get_rho0() * math.Exp(-altitude/get_h0())
}

// Speed of sound at an altitude, m/s
func get_speed_of_sound(altitude float64) float64 {
	return get_a0() * math.Sqrt(get_atmospheric_pressure(altitude)/get_p0())
}

/*
Calculate the aerodynamic drag on the vehicle.

	Args:
		velocity: vehicle velocity, m/s (positive upward)
		altitude: altitude above sea level, m
		reference_area: aerodynamic reference area, m2

	Returns:
		drag force, N, signed to oppose the velocity

	Notes:
		The drag coefficient follows the FlarePie three-regime Mach model:
		constant 0.3 subsonic, linear rise through the transonic band,
		slow decay supersonic.
*/
func get_drag(velocity, altitude, reference_area float64) float64 {
	density := get_air_density(altitude)

	mach := math.Abs(velocity) / math.Max(get_speed_of_sound(altitude), 0.1)

	var cd float64
	if mach < 0.8 {
		cd = 0.3
	} else if mach < 1.1 {
		cd = 0.3 + (mach-0.8)*1.0
	} else {
		cd = 0.6 - 0.1*math.Min(mach-1.1, 0.4)
	}

	drag := 0.5 * density * velocity * velocity * reference_area * cd
	if velocity > 0.0 {
		return drag
	}
	return -drag
}

// AtmosphereProfile holds sampled atmosphere columns over an altitude range.
type AtmosphereProfile struct {
	Altitude    []float64 // m, [n]
	Pressure    []float64 // Pa, [n]
	Temperature []float64 // K, [n]
}

/*
Sample the atmosphere model over an altitude range.

	Args:
		max_altitude: top of the range, m
		steps: number of samples, at least 2

	Returns:
		pressure and temperature columns over evenly spaced altitudes
*/
func make_atmosphere_profile(max_altitude float64, steps int) (AtmosphereProfile, error) {
	if steps < 2 {
		return AtmosphereProfile{}, fmt.Errorf("%w: profile needs at least 2 steps, got %d", ErrInvalidSimulationParameters, steps)
	}
	if max_altitude <= 0.0 {
		return AtmosphereProfile{}, fmt.Errorf("%w: max altitude %v m", ErrInvalidSimulationParameters, max_altitude)
	}

	altitudes := make([]float64, steps)
	floats.Span(altitudes, 0.0, max_altitude)

	pressures := make([]float64, steps)
	temperatures := make([]float64, steps)
	for i, alt := range altitudes {
		pressures[i] = get_atmospheric_pressure(alt)
		temperatures[i] = get_t0() - math.Min(alt/100.0, 80.0)
	}

	return AtmosphereProfile{
		Altitude:    altitudes,
		Pressure:    pressures,
		Temperature: temperatures,
	}, nil
}
