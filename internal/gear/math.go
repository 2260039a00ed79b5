package gear

import "github.com/akyairhashvil/nusui/internal/config"

// Ratio is chainring teeth over sprocket teeth. The zero-sprocket
// guard is defensive; validated configurations never reach it.
func Ratio(chainringTeeth, sprocketTeeth int) (float64, error) {
	if sprocketTeeth == 0 {
		return 0, configErr("sprockets", "sprocket cannot have 0 teeth")
	}
	return float64(chainringTeeth) / float64(sprocketTeeth), nil
}

// SpeedKmh is the speed sustained at a cadence for a given ratio and
// wheel circumference.
func SpeedKmh(ratio float64, cadenceRPM int, wheelCircumferenceMeters float64) float64 {
	return ratio * wheelCircumferenceMeters * float64(cadenceRPM) * 60 / 1000
}

// DevelopmentMeters is the distance traveled per full pedal revolution.
func DevelopmentMeters(ratio, wheelCircumferenceMeters float64) float64 {
	return ratio * wheelCircumferenceMeters
}

// EstimatedPower approximates the power needed to hold a speed on a
// slope: k * (1 + slope/100) * v^3. A cubic aerodynamic-drag proxy
// with a linear slope adjustment, useful for comparing gears, not for
// training with a power meter.
func EstimatedPower(speedKmh, slopePercent float64) float64 {
	k := config.PowerCoefficient * (1 + slopePercent/100)
	return k * speedKmh * speedKmh * speedKmh
}
