package validate

import (
	"fmt"

	flooding "Safetyguide360/internal/calc/flooding"
)

// Room collects every violated constraint as a human-readable message.
// An empty slice means the input may be handed to the sizing engine.
// Zero safety factor, concentration and cylinder size mean "use the default"
// and are not violations.
func Room(in flooding.Input) []string {
	var errs []string
	if in.LengthM <= 0 {
		errs = append(errs, "room length must be greater than 0 m")
	}
	if in.WidthM <= 0 {
		errs = append(errs, "room width must be greater than 0 m")
	}
	if in.HeightM <= 0 {
		errs = append(errs, "room height must be greater than 0 m")
	}
	if in.EquipmentVolumeM3 < 0 {
		errs = append(errs, "equipment volume cannot be negative")
	}
	if in.DesignTempC < flooding.MinDesignTempC || in.DesignTempC > flooding.MaxDesignTempC {
		errs = append(errs, fmt.Sprintf("design temperature must be between %.0f and %.0f C",
			flooding.MinDesignTempC, flooding.MaxDesignTempC))
	}
	if in.AltitudeM < 0 {
		errs = append(errs, "altitude cannot be negative")
	}
	if in.SafetyFactor != 0 && (in.SafetyFactor < flooding.DefaultSafetyFactor || in.SafetyFactor > flooding.MaxSafetyFactor) {
		errs = append(errs, fmt.Sprintf("safety factor must be between %.1f and %.1f",
			flooding.DefaultSafetyFactor, flooding.MaxSafetyFactor))
	}
	if in.ConcentrationPct != 0 && (in.ConcentrationPct < flooding.MinConcentrationPct || in.ConcentrationPct > flooding.MaxConcentrationPct) {
		errs = append(errs, fmt.Sprintf("design concentration must be between %.1f and %.1f %% for Class A",
			flooding.MinConcentrationPct, flooding.MaxConcentrationPct))
	}
	if in.CylinderSizeKg < 0 {
		errs = append(errs, "cylinder size must be greater than 0 kg")
	}
	return errs
}
