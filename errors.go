package main

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the simulation core.
// The CLI front-end decides how to present them; the core never prints.
var (
	// ErrUnknownFuelKind indicates a fuel name outside the fuel table.
	ErrUnknownFuelKind = errors.New("flarepie: unknown fuel kind")

	// ErrInvalidPressureRatio indicates chamber/ambient pressures for which
	// the isentropic expansion term goes negative (the radicand of ve).
	ErrInvalidPressureRatio = errors.New("flarepie: invalid pressure ratio (ambient exceeds chamber)")

	// ErrInvalidSimulationParameters indicates a non-positive mass flow rate
	// or timestep, or a propellant mass larger than the total mass.
	ErrInvalidSimulationParameters = errors.New("flarepie: invalid simulation parameters")

	// ErrDivisionByZero indicates a zero mass flow rate in the Isp calculation.
	ErrDivisionByZero = errors.New("flarepie: division by zero (mass flow rate is 0)")

	// ErrInvalidStagePlan indicates an empty stage list or a stage whose
	// propellant exceeds its total mass.
	ErrInvalidStagePlan = errors.New("flarepie: invalid stage plan")
)

// SimulationError ties a failure to the step at which the loop hit it.
type SimulationError struct {
	Step    int
	Time    float64 // elapsed time, s
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.3f s): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
