package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Fuel kind
type FuelKind string

// Fuel kind constants
const (
	FuelKindRP1  FuelKind = "RP1"  // kerosene / liquid oxygen
	FuelKindLH2  FuelKind = "LH2"  // liquid hydrogen / liquid oxygen
	FuelKindSRF  FuelKind = "SRF"  // solid rocket fuel
	FuelKindN2O4 FuelKind = "N2O4" // dinitrogen tetroxide / hydrazine
)

// FuelConstants holds the combustion gas constants of one fuel kind.
type FuelConstants struct {
	k float64 // specific heat ratio of the combustion gas, -
	R float64 // specific gas constant of the combustion gas, J/(kg K)
}

// Combustion gas constants by fuel kind.
// Values carried over from the FlarePie fuel table.
var fuel_table = map[FuelKind]FuelConstants{
	FuelKindRP1:  {k: 1.2, R: 287.0},
	FuelKindLH2:  {k: 1.4, R: 4124.0},
	FuelKindSRF:  {k: 1.2, R: 191.0},
	FuelKindN2O4: {k: 1.26, R: 320.0},
}

func init() {
	// The table is fixed at compile time; a bad entry is a programming
	// error, not a user error.
	for f, c := range fuel_table {
		if err := _validate_fuel_constants(c); err != nil {
			panic(fmt.Sprintf("fuel table entry %s: %v", f, err))
		}
	}
}

/*
Look up the combustion gas constants of a fuel kind.

	Args:
		fuel_type: fuel kind name, exact match (RP1, LH2, SRF, N2O4)

	Returns:
		combustion gas constants of the fuel kind
*/
func get_fuel_constants(fuel_type string) (FuelConstants, error) {
	c, ok := fuel_table[FuelKind(fuel_type)]
	if !ok {
		return FuelConstants{}, fmt.Errorf("%w: %q", ErrUnknownFuelKind, fuel_type)
	}
	return c, nil
}

func _validate_fuel_constants(c FuelConstants) error {
	if c.k <= 1.0 {
		return fmt.Errorf("specific heat ratio must exceed 1, got %v", c.k)
	}
	if c.R <= 0.0 {
		return fmt.Errorf("specific gas constant must be positive, got %v", c.R)
	}
	return nil
}

// One row of a user fuel table CSV.
type fuel_row struct {
	Name string  `csv:"name"`
	K    float64 `csv:"specific_heat_ratio"`
	R    float64 `csv:"specific_gas_constant"`
}

/*
Merge user-defined fuel kinds from a CSV file into the fuel table.

	Args:
		file_path: path to a CSV file with columns
			name, specific_heat_ratio, specific_gas_constant

	Notes:
		Rows are validated with the same guards as the built-in table and
		rejected as a whole on the first bad row. A row whose name matches a
		built-in fuel overrides it.
*/
func load_fuel_table(file_path string) error {
	file, err := os.Open(file_path)
	if err != nil {
		return err
	}
	defer file.Close()

	var rows []fuel_row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return err
	}

	for _, row := range rows {
		c := FuelConstants{k: row.K, R: row.R}
		if err := _validate_fuel_constants(c); err != nil {
			return fmt.Errorf("fuel %q in `%s`: %w", row.Name, file_path, err)
		}
	}
	for _, row := range rows {
		fuel_table[FuelKind(row.Name)] = FuelConstants{k: row.K, R: row.R}
	}

	return nil
}
