// Package view holds the serializable shapes returned by the JSON API.
package view

import (
	"fmt"
	"strconv"
)

// MoneyFromCents formats an amount held in minor units. XOF has no minor
// unit in practice, so cents are stored as francs*100 and rendered without
// decimals, groupé à la française : "25 000 F CFA".
func MoneyFromCents(cents int, currency string) string {
	switch currency {
	case "XOF":
		return groupThousands(cents/100) + " F CFA"
	case "EUR":
		return fmt.Sprintf("%s €", decimal(cents))
	case "USD":
		return "$" + decimal(cents)
	default:
		return decimal(cents) + " " + currency
	}
}

func decimal(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s,%02d", sign, groupThousands(cents/100), cents%100)
}

func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	return sign + string(out)
}
