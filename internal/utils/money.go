package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatBRL renders an amount in reais: 1234.5 -> "R$ 1.234,50".
func FormatBRL(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	cents := int64(math.Round(amount * 100))
	reais := cents / 100
	frac := cents % 100

	fracStr := strconv.FormatInt(frac, 10)
	if frac < 10 {
		fracStr = "0" + fracStr
	}
	return sign + "R$ " + formatThousand(reais) + "," + fracStr
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
