package gamemath

// NormalizeSpeed scales a raw input vector by baseSpeed. Inputs longer than
// 1 (diagonals) are divided by their length so every direction moves at the
// same rate.
func NormalizeSpeed(input Vec, baseSpeed float64) Vec {
	scaled := input.Scale(baseSpeed)
	if m := input.Len(); m > 1 {
		return scaled.Scale(1 / m)
	}
	return scaled
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// AxisFromInput folds two opposing digital inputs into -1, 0 or 1.
func AxisFromInput(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	default:
		return 0
	}
}
