package utils

import "math"

// Round arredonda f para a quantidade de casas decimais; NaN e ±Inf são devolvidos sem alteração
func Round(f float64, places int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	p := math.Pow10(places)
	return math.Round(f*p) / p
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}
