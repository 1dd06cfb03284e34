package costing

import (
	"math"

	flooding "Safetyguide360/internal/calc/flooding"
	pricing "Safetyguide360/internal/pricing"
)

const (
	SmokeDetectorCoverageM2 = 100.0
	MinSmokeDetectors       = 2
	HeatDetectors           = 2
	CallPoints              = 2
	HooterStrobes           = 4

	// No fittings unit price exists; fittings are carried as a share of the
	// piping line.
	FittingsShare = 0.15

	BaseInstallationHours = 40.0
	HoursPerCylinder      = 4.0
	HoursPerNozzle        = 2.0
	HoursPerPipingMeter   = 0.5
)

type Result struct {
	AgentCost          float64 `json:"agent_cost"`
	CylindersCost      float64 `json:"cylinders_cost"`
	ValvesCost         float64 `json:"valves_cost"`
	MountingCost       float64 `json:"mounting_cost"`
	NozzlesCost        float64 `json:"nozzles_cost"`
	PipingCost         float64 `json:"piping_cost"`
	FittingsCost       float64 `json:"fittings_cost"`
	PanelCost          float64 `json:"detection_panel_cost"`
	SmokeDetectorCount int     `json:"smoke_detector_count"`
	SmokeDetectorsCost float64 `json:"smoke_detectors_cost"`
	HeatDetectorsCost  float64 `json:"heat_detectors_cost"`
	CallPointsCost     float64 `json:"call_points_cost"`
	HootersCost        float64 `json:"hooters_cost"`
	SignageCost        float64 `json:"signage_cost"`

	EquipmentSubtotal float64 `json:"equipment_subtotal"`

	InstallationHours float64 `json:"installation_hours"`
	InstallationLabor float64 `json:"installation_labor"`

	EngineeringFee   float64 `json:"engineering_design_fee"`
	CommissioningFee float64 `json:"commissioning_testing_fee"`
	DocumentationFee float64 `json:"documentation_fee"`

	InstallationMarkup float64 `json:"installation_markup"`
	EngineeringMarkup  float64 `json:"engineering_markup"`
	ContingencyMarkup  float64 `json:"contingency_markup"`

	TotalUSD       float64 `json:"total_usd"`
	Currency       string  `json:"currency"`
	ExchangeRate   float64 `json:"exchange_rate"`
	TotalConverted float64 `json:"total_converted"`

	Notes string `json:"notes"`
}

// Calculate prices a sized system. All money fields are USD at full float64
// precision; renderers round for display. Markups apply to the equipment
// subtotal only, never to labor or fixed fees.
func Calculate(s flooding.Result, prices pricing.Table, rates pricing.Rates, currency string) (Result, error) {
	if err := prices.Validate(); err != nil {
		return Result{}, err
	}

	smoke := int(math.Ceil(s.FloorAreaM2 / SmokeDetectorCoverageM2))
	if smoke < MinSmokeDetectors {
		smoke = MinSmokeDetectors
	}

	res := Result{
		AgentCost:          s.AgentWeightKg * prices.AgentCostPerKg,
		CylindersCost:      float64(s.CylinderCount) * prices.CylinderCost,
		ValvesCost:         float64(s.CylinderCount) * prices.ValveCost,
		MountingCost:       float64(s.CylinderCount) * prices.MountingKitCost,
		NozzlesCost:        float64(s.NozzleCount) * prices.NozzleCost,
		PipingCost:         s.PipingLengthM * prices.PipingCostPerM,
		PanelCost:          prices.PanelCost,
		SmokeDetectorCount: smoke,
		SmokeDetectorsCost: float64(smoke) * prices.SmokeDetectorCost,
		HeatDetectorsCost:  HeatDetectors * prices.HeatDetectorCost,
		CallPointsCost:     CallPoints * prices.CallPointCost,
		HootersCost:        HooterStrobes * prices.HooterStrobeCost,
		SignageCost:        prices.SignageCost,
	}
	res.FittingsCost = res.PipingCost * FittingsShare

	res.EquipmentSubtotal = res.AgentCost + res.CylindersCost + res.ValvesCost +
		res.MountingCost + res.NozzlesCost + res.PipingCost + res.FittingsCost +
		res.PanelCost + res.SmokeDetectorsCost + res.HeatDetectorsCost +
		res.CallPointsCost + res.HootersCost + res.SignageCost

	res.InstallationHours = BaseInstallationHours +
		HoursPerCylinder*float64(s.CylinderCount) +
		HoursPerNozzle*float64(s.NozzleCount) +
		HoursPerPipingMeter*s.PipingLengthM
	res.InstallationLabor = res.InstallationHours * prices.LaborRatePerHour

	res.EngineeringFee = prices.EngineeringFee
	res.CommissioningFee = prices.CommissioningFee
	res.DocumentationFee = prices.DocumentationFee

	res.InstallationMarkup = res.EquipmentSubtotal * (prices.InstallationFactor - 1.0)
	res.EngineeringMarkup = res.EquipmentSubtotal * (prices.EngineeringFactor - 1.0)
	res.ContingencyMarkup = res.EquipmentSubtotal * (prices.ContingencyFactor - 1.0)

	res.TotalUSD = res.EquipmentSubtotal + res.InstallationLabor +
		res.EngineeringFee + res.CommissioningFee + res.DocumentationFee +
		res.InstallationMarkup + res.EngineeringMarkup + res.ContingencyMarkup

	res.Currency = currency
	res.ExchangeRate = rates.Rate(currency)
	res.TotalConverted = res.TotalUSD * res.ExchangeRate
	res.Notes = "Budgetary estimate, USD base. Markups applied to equipment subtotal."
	return res, nil
}

// Redisplay converts an existing breakdown to another display currency.
// Conversion always starts from the unchanged USD figures, never from a
// previously converted value, so repeated switches do not compound rounding.
func Redisplay(res Result, rates pricing.Rates, currency string) Result {
	out := res
	out.Currency = currency
	out.ExchangeRate = rates.Rate(currency)
	out.TotalConverted = out.TotalUSD * out.ExchangeRate
	return out
}
