package main

import (
	"os"

	"github.com/spf13/viper"
)

// Default config file name, looked up in the working directory.
const config_file_name = "flarepie_config.yaml"

/*
Set up the Viper config with every default of the FlarePie configuration
and overlay the config file when one exists.

	Args:
		config: a fresh Viper instance

	Notes:
		Keys mirror flarepie_config.json of the original tool. On the
		first run the defaults are written out so the file is there to
		edit; after that the file overlays the defaults.
*/
func InitConfig(config *viper.Viper) {
	config.SetDefault("simulation.default_fuel_type", "RP1")
	config.SetDefault("simulation.default_chamber_pressure", 7000000.0)
	config.SetDefault("simulation.default_combustion_temp", 3500.0)
	config.SetDefault("simulation.default_initial_altitude", 0.0)
	config.SetDefault("simulation.default_total_mass", 10000.0)
	config.SetDefault("simulation.default_propellant_mass", 8000.0)
	config.SetDefault("simulation.default_mass_flow_rate", 250.0)
	config.SetDefault("simulation.default_time_step", 0.1)
	config.SetDefault("simulation.default_reference_area", 1.0)
	config.SetDefault("simulation.max_simulation_time", 300.0)

	config.SetDefault("export.default_format", "csv")
	config.SetDefault("export.auto_save_results", false)
	config.SetDefault("export.output_dir", ".")

	config.SetDefault("logging.level", "INFO")

	config.SetConfigType("yaml")
	config.SetConfigFile(config_file_name)
	if _, err := os.Stat(config_file_name); err == nil {
		if err := config.ReadInConfig(); err != nil {
			LogCLI(err.Error(), 2)
		}
	} else if err := config.SafeWriteConfigAs(config_file_name); err != nil {
		LogCLI(err.Error(), 2)
	}
}

