package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundTo rounds f half away from zero to the given number of decimals.
func RoundTo(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}

// Percentage returns part/whole*100, or 0 when whole is not positive.
func Percentage(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}

	return part / whole * 100
}
