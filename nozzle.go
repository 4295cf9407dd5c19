package main

import (
	"fmt"
	"math"
)

/*
Calculate the nozzle thrust.

	F = mfr * ve + (P_e - P_a) * A_e

	Args:
		mfr: mass flow rate, kg/s
		ve: exhaust velocity, m/s
		expa: nozzle exit pressure, Pa
		amp: ambient pressure, Pa
		ea: nozzle exit area, m2

	Returns:
		thrust, N
*/
func get_thrust(mfr, ve, expa, amp, ea float64) float64 {
	return mfr*ve + (expa-amp)*ea
}

/*
Calculate the specific impulse.

	Args:
		f: thrust, N
		mfr: mass flow rate, kg/s

	Returns:
		specific impulse, s
*/
func get_specific_impulse(f, mfr float64) (float64, error) {
	if mfr == 0.0 {
		return 0.0, ErrDivisionByZero
	}
	return f / (mfr * get_g0()), nil
}

// NozzlePerformance is the full output of the nozzle performance mode.
type NozzlePerformance struct {
	Thrust          float64 // total thrust, N
	Isp             float64 // specific impulse, s
	MomentumThrust  float64 // mfr * ve component, N
	PressureThrust  float64 // (P_e - P_a) * A_e component, N
	ExpansionRatio  float64 // exit area over the reference throat area, -
	PressureRatio   float64 // exit pressure over ambient pressure, -
	Efficiency      float64 // heuristic nozzle efficiency, -
	IdealExpansion  bool    // exit pressure within 10% of ambient
}

// Reference throat area of the expansion ratio heuristic, m2
const reference_throat_area = 0.01

/*
Calculate the nozzle performance figures.

	Args:
		mfr: mass flow rate, kg/s
		ve: exhaust velocity, m/s
		expa: nozzle exit pressure, Pa
		amp: ambient pressure, Pa
		ea: nozzle exit area, m2

	Returns:
		nozzle performance figures

	Notes:
		The expansion ratio and efficiency heuristics are carried over from
		FlarePie src/Engine.py nozzle_performance.
*/
func get_nozzle_performance(mfr, ve, expa, amp, ea float64) (NozzlePerformance, error) {
	f := get_thrust(mfr, ve, expa, amp, ea)

	isp, err := get_specific_impulse(f, mfr)
	if err != nil {
		return NozzlePerformance{}, fmt.Errorf("nozzle performance: %w", err)
	}

	pressure_ratio := 0.0
	if amp > 0.0 {
		pressure_ratio = expa / amp
	}

	ideal := math.Abs(expa-amp) < 0.1*amp
	efficiency := 0.95
	if !ideal {
		efficiency = 0.85 - 0.1*math.Min(math.Abs(math.Log10(pressure_ratio+0.1)), 1.0)
	}

	return NozzlePerformance{
		Thrust:         f,
		Isp:            isp,
		MomentumThrust: mfr * ve,
		PressureThrust: (expa - amp) * ea,
		ExpansionRatio: ea / reference_throat_area,
		PressureRatio:  pressure_ratio,
		Efficiency:     efficiency,
		IdealExpansion: ideal,
	}, nil
}
