package costing

import (
	"math"
	"testing"

	flooding "Safetyguide360/internal/calc/flooding"
	pricing "Safetyguide360/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedSystem() flooding.Result {
	return flooding.Result{
		GrossVolumeM3:       320,
		NetVolumeM3:         320,
		SpecificVaporVolume: 0.1369,
		AgentWeightKg:       188.25,
		CylinderCount:       4,
		NozzleCount:         2,
		PipingLengthM:       44,
		FloorAreaM2:         80,
	}
}

func TestCalculate_LineItems(t *testing.T) {
	prices := pricing.Defaults()
	res, err := Calculate(sizedSystem(), prices, pricing.DefaultRates(), "USD")
	require.NoError(t, err)

	assert.InDelta(t, 188.25*prices.AgentCostPerKg, res.AgentCost, 1e-9)
	assert.InDelta(t, 4*prices.CylinderCost, res.CylindersCost, 1e-9)
	assert.InDelta(t, 4*prices.ValveCost, res.ValvesCost, 1e-9)
	assert.InDelta(t, 4*prices.MountingKitCost, res.MountingCost, 1e-9)
	assert.InDelta(t, 2*prices.NozzleCost, res.NozzlesCost, 1e-9)
	assert.InDelta(t, 44*prices.PipingCostPerM, res.PipingCost, 1e-9)
	assert.InDelta(t, res.PipingCost*FittingsShare, res.FittingsCost, 1e-9)
	assert.InDelta(t, prices.PanelCost, res.PanelCost, 1e-9)

	// 80 m2 needs one detector by coverage; the floor of 2 applies
	assert.Equal(t, 2, res.SmokeDetectorCount)
	assert.InDelta(t, 2*prices.SmokeDetectorCost, res.SmokeDetectorsCost, 1e-9)
	assert.InDelta(t, 2*prices.HeatDetectorCost, res.HeatDetectorsCost, 1e-9)
	assert.InDelta(t, 2*prices.CallPointCost, res.CallPointsCost, 1e-9)
	assert.InDelta(t, 4*prices.HooterStrobeCost, res.HootersCost, 1e-9)
	assert.InDelta(t, prices.SignageCost, res.SignageCost, 1e-9)

	wantSubtotal := res.AgentCost + res.CylindersCost + res.ValvesCost + res.MountingCost +
		res.NozzlesCost + res.PipingCost + res.FittingsCost + res.PanelCost +
		res.SmokeDetectorsCost + res.HeatDetectorsCost + res.CallPointsCost +
		res.HootersCost + res.SignageCost
	assert.InDelta(t, wantSubtotal, res.EquipmentSubtotal, 1e-9)
}

func TestCalculate_SmokeDetectorsScaleWithFloorArea(t *testing.T) {
	s := sizedSystem()
	s.FloorAreaM2 = 250
	res, err := Calculate(s, pricing.Defaults(), pricing.DefaultRates(), "USD")
	require.NoError(t, err)
	assert.Equal(t, 3, res.SmokeDetectorCount)
}

func TestCalculate_InstallationHoursModel(t *testing.T) {
	prices := pricing.Defaults()
	res, err := Calculate(sizedSystem(), prices, pricing.DefaultRates(), "USD")
	require.NoError(t, err)

	// 40 + 4*4 + 2*2 + 0.5*44
	assert.InDelta(t, 82.0, res.InstallationHours, 1e-9)
	assert.InDelta(t, 82.0*prices.LaborRatePerHour, res.InstallationLabor, 1e-9)
}

func TestCalculate_MarkupBaseIsEquipmentOnly(t *testing.T) {
	prices := pricing.Defaults()
	res, err := Calculate(sizedSystem(), prices, pricing.DefaultRates(), "USD")
	require.NoError(t, err)

	markups := res.InstallationMarkup + res.EngineeringMarkup + res.ContingencyMarkup
	want := res.EquipmentSubtotal *
		(prices.InstallationFactor + prices.EngineeringFactor + prices.ContingencyFactor - 3.0)
	assert.InDelta(t, want, markups, 1e-9)
}

func TestCalculate_Total(t *testing.T) {
	res, err := Calculate(sizedSystem(), pricing.Defaults(), pricing.DefaultRates(), "USD")
	require.NoError(t, err)

	want := res.EquipmentSubtotal + res.InstallationLabor +
		res.EngineeringFee + res.CommissioningFee + res.DocumentationFee +
		res.InstallationMarkup + res.EngineeringMarkup + res.ContingencyMarkup
	assert.InDelta(t, want, res.TotalUSD, 1e-9)
	assert.Equal(t, 1.0, res.ExchangeRate)
	assert.InDelta(t, res.TotalUSD, res.TotalConverted, 1e-9)
}

func TestCalculate_UnknownCurrencyFallsBackToBase(t *testing.T) {
	res, err := Calculate(sizedSystem(), pricing.Defaults(), pricing.DefaultRates(), "XXX")
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.ExchangeRate)
	assert.InDelta(t, res.TotalUSD, res.TotalConverted, 1e-9)
}

func TestCalculate_CurrencyRoundTrip(t *testing.T) {
	rates := pricing.DefaultRates()
	res, err := Calculate(sizedSystem(), pricing.Defaults(), rates, "EUR")
	require.NoError(t, err)

	back := res.TotalConverted / rates.Rate("EUR")
	assert.InDelta(t, 0, math.Abs(back-res.TotalUSD)/res.TotalUSD, 1e-6)
}

func TestCalculate_MissingPriceKey(t *testing.T) {
	prices := pricing.Defaults()
	prices.AgentCostPerKg = 0
	_, err := Calculate(sizedSystem(), prices, pricing.DefaultRates(), "USD")

	var cfg *pricing.ConfigurationError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, "agent_cost_per_kg", cfg.Key)
}

func TestRedisplay_AlwaysFromBase(t *testing.T) {
	rates := pricing.DefaultRates()
	res, err := Calculate(sizedSystem(), pricing.Defaults(), rates, "USD")
	require.NoError(t, err)

	eur := Redisplay(res, rates, "EUR")
	inr := Redisplay(eur, rates, "INR")

	// base figures survive every switch untouched
	assert.Equal(t, res.TotalUSD, eur.TotalUSD)
	assert.Equal(t, res.TotalUSD, inr.TotalUSD)
	assert.InDelta(t, res.TotalUSD*rates.Rate("INR"), inr.TotalConverted, 1e-9)
	assert.Equal(t, "INR", inr.Currency)
}
