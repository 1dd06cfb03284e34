package pricing

import "fmt"

// Table holds per-unit budgetary prices in USD plus markup factors.
// It is loaded once at startup and passed to the costing engine explicitly.
type Table struct {
	AgentCostPerKg    float64 `json:"agent_cost_per_kg"`
	CylinderCost      float64 `json:"cylinder_cost"`
	ValveCost         float64 `json:"valve_cost"`
	MountingKitCost   float64 `json:"mounting_kit_cost"`
	NozzleCost        float64 `json:"nozzle_cost"`
	PipingCostPerM    float64 `json:"piping_cost_per_m"`
	PanelCost         float64 `json:"detection_panel_cost"`
	SmokeDetectorCost float64 `json:"smoke_detector_cost"`
	HeatDetectorCost  float64 `json:"heat_detector_cost"`
	CallPointCost     float64 `json:"call_point_cost"`
	HooterStrobeCost  float64 `json:"hooter_strobe_cost"`
	SignageCost       float64 `json:"signage_package_cost"`

	LaborRatePerHour float64 `json:"labor_rate_per_hour"`

	EngineeringFee   float64 `json:"engineering_design_fee"`
	CommissioningFee float64 `json:"commissioning_testing_fee"`
	DocumentationFee float64 `json:"documentation_fee"`

	InstallationFactor float64 `json:"installation_factor"`
	EngineeringFactor  float64 `json:"engineering_factor"`
	ContingencyFactor  float64 `json:"contingency_factor"`
}

// ConfigurationError identifies the price-table key or rate entry that is
// missing or malformed. The costing engine never substitutes zero for a
// missing price.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("price configuration: %s %s", e.Key, e.Reason)
}

// Validate checks every required key. A zero price means the key was absent
// from the source JSON.
func (t Table) Validate() error {
	prices := []struct {
		key string
		v   float64
	}{
		{"agent_cost_per_kg", t.AgentCostPerKg},
		{"cylinder_cost", t.CylinderCost},
		{"valve_cost", t.ValveCost},
		{"mounting_kit_cost", t.MountingKitCost},
		{"nozzle_cost", t.NozzleCost},
		{"piping_cost_per_m", t.PipingCostPerM},
		{"detection_panel_cost", t.PanelCost},
		{"smoke_detector_cost", t.SmokeDetectorCost},
		{"heat_detector_cost", t.HeatDetectorCost},
		{"call_point_cost", t.CallPointCost},
		{"hooter_strobe_cost", t.HooterStrobeCost},
		{"signage_package_cost", t.SignageCost},
		{"labor_rate_per_hour", t.LaborRatePerHour},
		{"engineering_design_fee", t.EngineeringFee},
		{"commissioning_testing_fee", t.CommissioningFee},
		{"documentation_fee", t.DocumentationFee},
	}
	for _, p := range prices {
		if p.v <= 0 {
			return &ConfigurationError{Key: p.key, Reason: "is missing or not positive"}
		}
	}
	factors := []struct {
		key string
		v   float64
	}{
		{"installation_factor", t.InstallationFactor},
		{"engineering_factor", t.EngineeringFactor},
		{"contingency_factor", t.ContingencyFactor},
	}
	for _, f := range factors {
		if f.v < 1.0 {
			return &ConfigurationError{Key: f.key, Reason: "must be a multiplier of 1.0 or greater"}
		}
	}
	return nil
}

// Defaults returns the bundled budgetary price table, USD.
func Defaults() Table {
	return Table{
		AgentCostPerKg:    35,
		CylinderCost:      850,
		ValveCost:         320,
		MountingKitCost:   120,
		NozzleCost:        95,
		PipingCostPerM:    28,
		PanelCost:         1400,
		SmokeDetectorCost: 65,
		HeatDetectorCost:  55,
		CallPointCost:     45,
		HooterStrobeCost:  70,
		SignageCost:       150,

		LaborRatePerHour: 45,

		EngineeringFee:   1800,
		CommissioningFee: 1200,
		DocumentationFee: 600,

		InstallationFactor: 1.15,
		EngineeringFactor:  1.10,
		ContingencyFactor:  1.05,
	}
}

// Rates maps a currency code to its USD exchange rate.
type Rates map[string]float64

// Rate looks up a display currency. Unknown codes fall back to 1.0 and are
// shown in the base currency, not treated as errors.
func (r Rates) Rate(code string) float64 {
	if rate, ok := r[code]; ok && rate > 0 {
		return rate
	}
	return 1.0
}

// Validate rejects non-positive rates, which would silently zero a quotation.
func (r Rates) Validate() error {
	for code, rate := range r {
		if rate <= 0 {
			return &ConfigurationError{Key: code, Reason: "exchange rate must be positive"}
		}
	}
	return nil
}

// DefaultRates returns the bundled USD-base exchange-rate table.
func DefaultRates() Rates {
	return Rates{
		"USD": 1.0,
		"EUR": 0.92,
		"GBP": 0.79,
		"AED": 3.67,
		"SAR": 3.75,
		"INR": 83.2,
		"RUB": 92.5,
	}
}
