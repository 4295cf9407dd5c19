package main

// Standard gravitational acceleration, m/s2
func get_g0() float64 {
	return 9.81
}

// Sea level atmospheric pressure, Pa
func get_p0() float64 {
	return 101325.0
}

// Sea level air density, kg/m3
func get_rho0() float64 {
	return 1.225
}

// Atmospheric density scale height, m
func get_h0() float64 {
	return 8500.0
}

// Temperature lapse coefficient of the barometric formula, 1/m
func get_lapse_rate() float64 {
	return 2.25577e-5
}

// Exponent of the barometric formula
func get_barometric_exponent() float64 {
	return 5.25588
}

// Sea level speed of sound, m/s
func get_a0() float64 {
	return 340.0
}

// Sea level standard temperature, K
func get_t0() float64 {
	return 288.15
}
