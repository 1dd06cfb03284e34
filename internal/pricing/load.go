package pricing

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTable reads a price table from a JSON file and validates it.
func LoadTable(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read price table %s: %w", path, err)
	}
	var t Table
	if err := json.Unmarshal(b, &t); err != nil {
		return Table{}, &ConfigurationError{Key: path, Reason: "is not valid price-table JSON"}
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// LoadRates reads a currency->rate table from a JSON file.
func LoadRates(path string) (Rates, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates %s: %w", path, err)
	}
	var r Rates
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, &ConfigurationError{Key: path, Reason: "is not valid exchange-rate JSON"}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
