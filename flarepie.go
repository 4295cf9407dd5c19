package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var stdin = bufio.NewScanner(os.Stdin)

/*
Prompt for one numeric input field.

	Args:
		label: prompt text, printed as-is
		def: value used when the line is empty

	Notes:
		Re-prompts until the line parses as a number; numeric
		parseability is the only validation the CLI owns.
*/
func prompt_float(label string, def float64) float64 {
	for {
		fmt.Printf("%s [%g]: ", label, def)
		if !stdin.Scan() {
			return def
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			return def
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Println("Not a number, try again.")
			continue
		}
		return v
	}
}

func prompt_string(label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	if !stdin.Scan() {
		return def
	}
	line := strings.TrimSpace(stdin.Text())
	if line == "" {
		return def
	}
	return line
}

/*
Run the propellant burn simulation mode: constant exhaust velocity derived
once from the chamber conditions, fixed-step depletion loop, one trace line
per step.
*/
func run_burn_simulation(conf *viper.Viper, output_data_dir string, save bool) {
	fuel_type := prompt_string("Fuel Type (RP1, LH2, SRF, N2O4)", conf.GetString("simulation.default_fuel_type"))
	cocp := prompt_float("Combustion Chamber Pressure (Pa)", conf.GetFloat64("simulation.default_chamber_pressure"))
	ct := prompt_float("Combustion Temperature (K)", conf.GetFloat64("simulation.default_combustion_temp"))
	ap := prompt_float("Atmospheric Pressure (Pa)", get_p0())
	intmass := prompt_float("Total Mass, including Propellant (Kg)", conf.GetFloat64("simulation.default_total_mass"))
	propmass := prompt_float("Propellant Mass (Kg)", conf.GetFloat64("simulation.default_propellant_mass"))
	mfr := prompt_float("Mass Flow Rate (Kg/s)", conf.GetFloat64("simulation.default_mass_flow_rate"))
	dt := prompt_float("Simulation Timestep (s)", conf.GetFloat64("simulation.default_time_step"))

	ve, err := get_ve_for_fuel(fuel_type, cocp, ct, ap)
	if err != nil {
		LogCLI(err, 1)
		return
	}

	sim, err := NewBurnSimulation(intmass, propmass, mfr, ve, dt)
	if err != nil {
		LogCLI(err, 1)
		return
	}

	n_step := int(math.Ceil(propmass / (mfr * dt)))
	recorder := NewRecorder(n_step, dt, propmass)

	for {
		rec, ok := sim.Next()
		if !ok {
			break
		}
		recorder.add(rec)
		fmt.Printf("Time: %g s | Thrust: %g N | Remaining Propellant: %g kg | Total Mass: %g kg\n",
			rec.Time, rec.Thrust, rec.RemainingPropellant, rec.RemainingTotalMass)
	}

	fmt.Println("Propellant Consumed! Simulation Ended.")

	s := recorder.summary()
	fmt.Printf("Steps: %d | Burnout: %g s | Mean Thrust: %.1f N | Peak Thrust: %.1f N | Total Impulse: %.1f Ns\n",
		s.Steps, s.BurnoutTime, s.MeanThrust, s.PeakThrust, s.TotalImpulse)

	if save {
		out_path, err := recorder.save_csv(output_data_dir, "burn_telemetry")
		if err != nil {
			LogCLI(err, 1)
			return
		}
		LogCLI(fmt.Sprintf("Saved telemetry to `%s`", out_path), 4)
	}
}

// Run the nozzle performance mode: closed-form thrust and Isp.
func run_nozzle_performance() {
	mfr := prompt_float("Mass Flow Rate (Kg/s)", 5.0)
	ve := prompt_float("Exhaust Velocity (m/s)", 2500.0)
	expa := prompt_float("Exit Pressure (Pa)", get_p0())
	amp := prompt_float("Ambient Pressure (Pa)", get_p0())
	ea := prompt_float("Exit Area (m^2)", 0.2)

	perf, err := get_nozzle_performance(mfr, ve, expa, amp, ea)
	if err != nil {
		LogCLI(err, 1)
		return
	}

	fmt.Printf("Thrust (F): %g N\n", perf.Thrust)
	fmt.Printf("Specific Impulse (Isp): %g s\n", perf.Isp)
	fmt.Printf("Momentum Thrust: %g N | Pressure Thrust: %g N\n", perf.MomentumThrust, perf.PressureThrust)
	fmt.Printf("Expansion Ratio: %g | Pressure Ratio: %g | Efficiency: %.2f\n",
		perf.ExpansionRatio, perf.PressureRatio, perf.Efficiency)
}

// Run the powered ascent mode with altitude-coupled exhaust velocity,
// gravity and drag.
func run_flight(conf *viper.Viper, output_data_dir string, save bool) {
	p := FlightParameters{
		FuelType:        prompt_string("Fuel Type (RP1, LH2, SRF, N2O4)", conf.GetString("simulation.default_fuel_type")),
		ChamberPressure: prompt_float("Combustion Chamber Pressure (Pa)", conf.GetFloat64("simulation.default_chamber_pressure")),
		ChamberTemp:     prompt_float("Combustion Temperature (K)", conf.GetFloat64("simulation.default_combustion_temp")),
		Altitude:        prompt_float("Initial Altitude (m)", conf.GetFloat64("simulation.default_initial_altitude")),
		TotalMass:       prompt_float("Total Mass, including Propellant (Kg)", conf.GetFloat64("simulation.default_total_mass")),
		PropellantMass:  prompt_float("Propellant Mass (Kg)", conf.GetFloat64("simulation.default_propellant_mass")),
		MassFlowRate:    prompt_float("Mass Flow Rate (Kg/s)", conf.GetFloat64("simulation.default_mass_flow_rate")),
		Timestep:        prompt_float("Simulation Timestep (s)", conf.GetFloat64("simulation.default_time_step")),
		ReferenceArea:   prompt_float("Reference Area (m^2)", conf.GetFloat64("simulation.default_reference_area")),
		MaxTime:         prompt_float("Max Simulation Time (s, 0 = unlimited)", conf.GetFloat64("simulation.max_simulation_time")),
	}

	result, err := simulate_flight(p)
	if err != nil {
		LogCLI(err, 1)
		return
	}

	for _, rec := range result.Records {
		// print every five seconds of simulated time plus the first second
		if math.Mod(rec.Time, 5.0) < p.Timestep || rec.Time < 1.0 {
			fmt.Printf("t=%.2fs | Thrust=%.2f N | Velocity=%.2f m/s | Altitude=%.2f m | Drag=%.2f N\n",
				rec.Time, rec.Thrust, rec.Velocity, rec.Altitude, rec.Drag)
		}
	}

	if result.Complete {
		fmt.Println("Propellant Consumed! Simulation Ended.")
	} else {
		fmt.Println("Max simulation time reached.")
	}
	fmt.Printf("Final Time: %g s | Delta-V: %.1f m/s | Initial Thrust: %.1f N\n",
		result.FinalTime, result.DeltaV, result.InitialThrust)

	if save {
		out_path, err := save_flight_csv(result.Records, output_data_dir, "flight_telemetry")
		if err != nil {
			LogCLI(err, 1)
			return
		}
		LogCLI(fmt.Sprintf("Saved telemetry to `%s`", out_path), 4)
	}
}

/*
Load a stage plan from a JSON file or a http(s) URL.

	Args:
		stages_path: path or URL of a JSON array of stages
*/
func load_stage_plan(stages_path string) ([]Stage, error) {
	var body []byte
	if strings.HasPrefix(stages_path, "http") {
		resp, err := http.Get(stages_path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		file, err := os.Open(stages_path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		body, err = io.ReadAll(file)
		if err != nil {
			return nil, err
		}
	}

	var stages []Stage
	if err := json.Unmarshal(body, &stages); err != nil {
		return nil, err
	}
	return stages, nil
}

// Run the atmosphere profile mode: tabulate the pressure and temperature
// models over an altitude range.
func run_atmosphere_profile(output_data_dir string, save bool) {
	max_altitude := prompt_float("Max Altitude (m)", 100000.0)
	steps := int(prompt_float("Steps", 100))

	profile, err := make_atmosphere_profile(max_altitude, steps)
	if err != nil {
		LogCLI(err, 1)
		return
	}
	for i := range profile.Altitude {
		fmt.Printf("Altitude: %.0f m | Pressure: %.1f Pa | Temperature: %.2f K\n",
			profile.Altitude[i], profile.Pressure[i], profile.Temperature[i])
	}

	if save {
		out_path, err := save_atmosphere_csv(profile, output_data_dir, "atmosphere_profile")
		if err != nil {
			LogCLI(err, 1)
			return
		}
		LogCLI(fmt.Sprintf("Saved profile to `%s`", out_path), 4)
	}
}

// Run the multi-stage ascent mode from a stage plan file.
func run_staged_flight(conf *viper.Viper, stages_path, output_data_dir string, save bool) {
	if stages_path == "" {
		LogCLI("multi-stage mode requires -stages with a JSON stage plan", 1)
		return
	}

	LogCLI(fmt.Sprintf("Load stage plan from `%s`", stages_path), 4)
	stages, err := load_stage_plan(stages_path)
	if err != nil {
		LogCLI(err, 1)
		return
	}

	dt := conf.GetFloat64("simulation.default_time_step")
	max_time := conf.GetFloat64("simulation.max_simulation_time")

	result, err := simulate_staged_flight(stages, dt, max_time)
	if err != nil {
		LogCLI(err, 1)
		return
	}

	for _, ev := range result.Events {
		fmt.Printf("t=%.2fs | %s | stage %d | altitude %.1f m\n", ev.Time, ev.Type, ev.Stage, ev.Altitude)
	}
	fmt.Printf("Final Time: %g s | Max Altitude: %.1f m | Max Velocity: %.1f m/s\n",
		result.FinalTime, result.MaxAltitude, result.MaxVelocity)

	if save {
		out_path, err := save_staged_csv(result.Records, output_data_dir, "staged_telemetry")
		if err != nil {
			LogCLI(err, 1)
			return
		}
		LogCLI(fmt.Sprintf("Saved telemetry to `%s`", out_path), 4)
	}
}

func main() {
	var mode int
	flag.IntVar(&mode, "mode", 0, "1: burn simulation, 2: nozzle performance, 3: flight, 4: multi-stage flight, 5: atmosphere profile (0 prompts)")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", "", "output directory for CSV telemetry (default from config)")

	var save bool
	flag.BoolVar(&save, "save", false, "save telemetry as CSV")

	var fuels_path string
	flag.StringVar(&fuels_path, "fuels", "", "optional CSV with extra fuel kinds")

	var stages_path string
	flag.StringVar(&stages_path, "stages", "", "JSON stage plan for multi-stage mode (path or URL)")

	var logLevel string
	flag.StringVar(&logLevel, "log", "", "log level (TRACE, DEBUG, INFO, WARN, ERROR; default from config)")

	flag.Parse()

	conf := viper.New()
	InitConfig(conf)

	if logLevel == "" {
		logLevel = conf.GetString("logging.level")
	}
	set_log_level(logLevel)

	if output_data_dir == "" {
		output_data_dir = conf.GetString("export.output_dir")
	}
	if !save {
		save = conf.GetBool("export.auto_save_results")
	}
	if save {
		if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
			if err := os.Mkdir(output_data_dir, 0755); err != nil {
				LogCLI(err, 0)
			}
		}
	}

	if fuels_path != "" {
		if err := load_fuel_table(fuels_path); err != nil {
			LogCLI(err, 0)
		}
	}

	fmt.Println("Welcome to FlarePie! - Open Source Rocket Engine Simulator -")
	if mode == 0 {
		fmt.Println("For Rocket Engine Simulator, type 1. For Nozzle Performance Calculator, type 2.")
		fmt.Println("For Flight Simulation, type 3. For Multi-Stage Flight, type 4. For Atmosphere Profile, type 5.")
		mode = int(prompt_float("Mode", 1))
	}

	switch mode {
	case 1:
		run_burn_simulation(conf, output_data_dir, save)
	case 2:
		run_nozzle_performance()
	case 3:
		run_flight(conf, output_data_dir, save)
	case 4:
		run_staged_flight(conf, stages_path, output_data_dir, save)
	case 5:
		run_atmosphere_profile(output_data_dir, save)
	default:
		LogCLI(fmt.Sprintf("unknown mode %d", mode), 1)
	}
}
