package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToFloat coage qualquer valor JSON para float64. Entrada ausente, mal
// formada ou não numérica vira 0 — na fronteira de ferramentas, números
// inválidos nunca são erro.
func ToFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case float32:
		return ToFloat(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return ToFloat(parsed)
	default:
		return 0
	}
}
