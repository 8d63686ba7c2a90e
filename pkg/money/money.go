// Package money считает выплаты в десятичной арифметике, чтобы не копить ошибку float64.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxInt = decimal.NewFromInt(int64(math.MaxInt))

// Mul возвращает amount, умноженный на все множители
func Mul(amount float64, factors ...float64) float64 {
	d := decimal.NewFromFloat(amount)
	for _, f := range factors {
		d = d.Mul(decimal.NewFromFloat(f))
	}
	return d.InexactFloat64()
}

// PerLine делит ставку на количество линий и умножает на множители
func PerLine(bet float64, lines int, factors ...float64) float64 {
	d := decimal.NewFromFloat(bet).Div(decimal.NewFromInt(int64(lines)))
	for _, f := range factors {
		d = d.Mul(decimal.NewFromFloat(f))
	}
	return d.InexactFloat64()
}

// Sum складывает суммы
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}

// Round2 округляет до двух знаков после запятой (половина вверх)
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FloorDiv целая часть amount/divisor, ограниченная диапазоном [0, math.MaxInt].
// Для divisor <= 0 возвращает 0.
func FloorDiv(amount, divisor float64) int {
	if divisor <= 0 {
		return 0
	}
	q := decimal.NewFromFloat(amount).Div(decimal.NewFromFloat(divisor)).Floor()
	switch {
	case q.IsNegative():
		return 0
	case q.GreaterThan(maxInt):
		return math.MaxInt
	}
	return int(q.IntPart())
}
