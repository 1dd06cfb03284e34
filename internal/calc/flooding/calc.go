package flooding

import (
	"fmt"
	"math"

	rounding "Safetyguide360/internal/calc/rounding"
)

// NFPA 2001 total flooding, FM-200 (HFC-227ea).
const (
	VaporVolumeBase       = 0.1269 // m3/kg at 0 C
	VaporVolumeTempFactor = 0.0005 // m3/kg per C

	AltitudeThresholdM = 500.0
	AltitudeStepM      = 300.0
	AltitudeStepPct    = 0.01

	NozzleCoverageM2 = 50.0
	MinNozzles       = 2

	NetVolumeFloorM3 = 0.1

	DefaultSafetyFactor     = 1.0
	DefaultConcentrationPct = 7.0
	DefaultCylinderSizeKg   = 54.4

	MinDesignTempC      = -20.0
	MaxDesignTempC      = 60.0
	MaxSafetyFactor     = 1.5
	MinConcentrationPct = 7.0
	MaxConcentrationPct = 10.5
)

type Input struct {
	LengthM           float64 `json:"length_m"`
	WidthM            float64 `json:"width_m"`
	HeightM           float64 `json:"height_m"`
	EquipmentVolumeM3 float64 `json:"equipment_volume_m3"`
	DesignTempC       float64 `json:"design_temp_c"`
	AltitudeM         float64 `json:"altitude_m"`
	SafetyFactor      float64 `json:"safety_factor"`
	ConcentrationPct  float64 `json:"concentration_pct"`
	CylinderSizeKg    float64 `json:"cylinder_size_kg"`
}

type Result struct {
	GrossVolumeM3       float64 `json:"gross_volume_m3"`
	NetVolumeM3         float64 `json:"net_volume_m3"`
	SpecificVaporVolume float64 `json:"specific_vapor_volume_m3_kg"`
	AgentWeightKg       float64 `json:"agent_weight_kg"`
	CylinderCount       int     `json:"cylinder_count"`
	NozzleCount         int     `json:"nozzle_count"`
	PipingLengthM       float64 `json:"piping_length_m"`
	FloorAreaM2         float64 `json:"floor_area_m2"`
	Notes               string  `json:"notes"`
}

// InvalidInputError names the field that violates its domain constraint.
type InvalidInputError struct {
	Field      string
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s must be %s", e.Field, e.Constraint)
}

// NumericDegeneracyError guards the vapor-volume division. Validation bounds
// on design temperature already make this unreachable.
type NumericDegeneracyError struct {
	VaporVolume float64
}

func (e *NumericDegeneracyError) Error() string {
	return fmt.Sprintf("specific vapor volume %.4f m3/kg is not positive", e.VaporVolume)
}

func Calculate(in Input) (Result, error) {
	if in.SafetyFactor <= 0 {
		in.SafetyFactor = DefaultSafetyFactor
	}
	if in.ConcentrationPct <= 0 {
		in.ConcentrationPct = DefaultConcentrationPct
	}
	if in.CylinderSizeKg <= 0 {
		in.CylinderSizeKg = DefaultCylinderSizeKg
	}

	if err := check(in); err != nil {
		return Result{}, err
	}

	gross := in.LengthM * in.WidthM * in.HeightM
	net := gross - in.EquipmentVolumeM3
	if net < NetVolumeFloorM3 {
		net = NetVolumeFloorM3
	}

	// S = 0.1269 + 0.0005 T, linearized from the NFPA 2001 vapor-volume table
	vapor := VaporVolumeBase + VaporVolumeTempFactor*in.DesignTempC
	if vapor <= 0 {
		return Result{}, &NumericDegeneracyError{VaporVolume: vapor}
	}

	// W = (V/S) * (C / (100 - C))
	c := in.ConcentrationPct
	weight := (net / vapor) * (c / (100.0 - c))

	// 1% more agent per 300 m above 500 m
	if in.AltitudeM > AltitudeThresholdM {
		weight *= 1.0 + ((in.AltitudeM-AltitudeThresholdM)/AltitudeStepM)*AltitudeStepPct
	}
	weight *= in.SafetyFactor

	cylinders := int(math.Ceil(weight / in.CylinderSizeKg))
	if cylinders < 1 {
		cylinders = 1
	}

	area := in.LengthM * in.WidthM
	nozzles := int(math.Ceil(area / NozzleCoverageM2))
	if nozzles < MinNozzles {
		nozzles = MinNozzles
	}

	// Closed perimeter plus vertical runs, not a routed path
	piping := 2.0*(in.LengthM+in.WidthM) + 2.0*in.HeightM

	return Result{
		GrossVolumeM3:       rounding.HalfUp(gross, 2),
		NetVolumeM3:         rounding.HalfUp(net, 2),
		SpecificVaporVolume: rounding.HalfUp(vapor, 4),
		AgentWeightKg:       rounding.HalfUp(weight, 2),
		CylinderCount:       cylinders,
		NozzleCount:         nozzles,
		PipingLengthM:       rounding.HalfUp(piping, 2),
		FloorAreaM2:         rounding.HalfUp(area, 2),
		Notes:               "FM-200 total flooding per NFPA 2001, simplified altitude correction.",
	}, nil
}

func check(in Input) error {
	switch {
	case in.LengthM <= 0:
		return &InvalidInputError{Field: "length_m", Constraint: "greater than 0"}
	case in.WidthM <= 0:
		return &InvalidInputError{Field: "width_m", Constraint: "greater than 0"}
	case in.HeightM <= 0:
		return &InvalidInputError{Field: "height_m", Constraint: "greater than 0"}
	case in.EquipmentVolumeM3 < 0:
		return &InvalidInputError{Field: "equipment_volume_m3", Constraint: "0 or greater"}
	case in.DesignTempC < MinDesignTempC || in.DesignTempC > MaxDesignTempC:
		return &InvalidInputError{Field: "design_temp_c", Constraint: "between -20 and 60"}
	case in.AltitudeM < 0:
		return &InvalidInputError{Field: "altitude_m", Constraint: "0 or greater"}
	case in.SafetyFactor < DefaultSafetyFactor || in.SafetyFactor > MaxSafetyFactor:
		return &InvalidInputError{Field: "safety_factor", Constraint: "between 1.0 and 1.5"}
	case in.ConcentrationPct < MinConcentrationPct || in.ConcentrationPct > MaxConcentrationPct:
		return &InvalidInputError{Field: "concentration_pct", Constraint: "between 7.0 and 10.5"}
	case in.CylinderSizeKg <= 0:
		return &InvalidInputError{Field: "cylinder_size_kg", Constraint: "greater than 0"}
	}
	return nil
}
