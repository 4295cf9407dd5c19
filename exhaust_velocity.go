package main

import (
	"fmt"
	"math"
)

/*
Calculate the effective exhaust velocity of the nozzle by the isentropic
flow relation.

	ve = sqrt( (2k/(k-1)) * R * T_c * (1 - (P_a/P_c)^((k-1)/k)) )

	Args:
		k: specific heat ratio of the combustion gas, -
		R: specific gas constant of the combustion gas, J/(kg K)
		t_c: combustion chamber temperature, K
		p_a: ambient pressure, Pa
		p_c: combustion chamber pressure, Pa

	Returns:
		exhaust velocity, m/s

	Notes:
		P_a > P_c makes the radicand negative. The FlarePie sources let that
		flow through math.Sqrt and printed NaN; here it is rejected before
		the formula is evaluated.
*/
func get_ve(k, R, t_c, p_a, p_c float64) (float64, error) {
	if p_c <= 0.0 {
		return 0.0, fmt.Errorf("%w: chamber pressure %v Pa", ErrInvalidPressureRatio, p_c)
	}
	if p_a < 0.0 {
		return 0.0, fmt.Errorf("%w: ambient pressure %v Pa", ErrInvalidPressureRatio, p_a)
	}
	if p_a > p_c {
		return 0.0, fmt.Errorf("%w: ambient %v Pa, chamber %v Pa", ErrInvalidPressureRatio, p_a, p_c)
	}
	if t_c <= 0.0 {
		return 0.0, fmt.Errorf("%w: chamber temperature %v K", ErrInvalidSimulationParameters, t_c)
	}

	pressure_ratio := math.Pow(p_a/p_c, (k-1.0)/k)

	return math.Sqrt(2.0 * k / (k - 1.0) * R * t_c * (1.0 - pressure_ratio)), nil
}

/*
Calculate the exhaust velocity for a fuel kind at given chamber conditions.

	Args:
		fuel_type: fuel kind name, exact match against the fuel table
		p_c: combustion chamber pressure, Pa
		t_c: combustion chamber temperature, K
		p_a: ambient pressure, Pa

	Returns:
		exhaust velocity, m/s
*/
func get_ve_for_fuel(fuel_type string, p_c, t_c, p_a float64) (float64, error) {
	c, err := get_fuel_constants(fuel_type)
	if err != nil {
		return 0.0, err
	}
	return get_ve(c.k, c.R, t_c, p_a, p_c)
}
