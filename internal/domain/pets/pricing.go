package pets

import (
	"math"
	"strconv"
	"strings"
)

// DefaultBaseCost aplica sin duración (None) o con un código fuera de tabla.
const DefaultBaseCost int64 = 10000

// baseCosts es la tarifa fija por duración.
// No es monótona (6 meses cuesta más que 1 año); se mantiene tal cual la tabla de negocio.
var baseCosts = map[DurationCode]int64{
	DurationOneMonth:    20000,
	DurationThreeMonths: 60000,
	DurationSixMonths:   100000,
	DurationOneYear:     60000,
	DurationTwoYears:    100000,
}

// Cost es el resultado del cálculo: total y neto (con descuento), en unidades enteras.
type Cost struct {
	Total int64
	Net   int64
}

// BaseCost devuelve el costo total para un código de duración.
func BaseCost(code DurationCode) int64 {
	if c, ok := baseCosts[code]; ok {
		return c
	}
	return DefaultBaseCost
}

// Quote calcula total y neto. El descuento se aplica tal como viene (sin clamp);
// el neto se redondea a la unidad.
func Quote(code DurationCode, discountPercent float64) Cost {
	total := BaseCost(code)
	net := float64(total) - float64(total)*discountPercent/100
	return Cost{
		Total: total,
		Net:   int64(math.Round(net)),
	}
}

// ParseDurationCode convierte el valor crudo del formulario en un código.
// Entradas vacías o no numéricas devuelven DurationNone; los decimales se truncan.
func ParseDurationCode(raw string) DurationCode {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return DurationCode(n)
	}
	f, ok := durationNumber(raw)
	if !ok {
		return DurationNone
	}
	return DurationCode(int(f))
}

// durationNumber acepta solo decimales ("3", "2.5", "1e1"). ParseFloat además
// acepta "Inf", "NaN" y hex ("0x1p2"); esos cuentan como no numéricos.
func durationNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, "xXpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
