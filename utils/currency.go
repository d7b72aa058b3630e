package utils

import "fmt"

// FormatCurrencyINR formats an integer rupee amount with Indian digit
// grouping: the last three digits stand alone, every group before them has
// two digits. Example: 1234567 -> "₹12,34,567".
func FormatCurrencyINR(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	grouped := digits
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		grouped = digits[len(digits)-3:]
		for len(head) > 2 {
			grouped = head[len(head)-2:] + "," + grouped
			head = head[:len(head)-2]
		}
		grouped = head + "," + grouped
	}

	if negative {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
