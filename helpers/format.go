package helpers

import "fmt"

// FormatAmount formats a monetary value with thousand separators for the
// console report, e.g. 1234567.89 -> "1,234,567.89".
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}

	str := fmt.Sprintf("%d", whole)
	length := len(str)

	var result string
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result += ","
		}
		result += string(digit)
	}

	if negative {
		return fmt.Sprintf("-%s.%02d", result, cents)
	}
	return fmt.Sprintf("%s.%02d", result, cents)
}

// FormatPercent formats a percentage with two decimals and a sign for growth
// rates, e.g. 12.5 -> "+12.50%".
func FormatPercent(pct float64) string {
	if pct > 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}
