package utils

import (
	"fmt"
	"strings"
)

// FormatRupiah memformat harga (Rupiah utuh, tanpa desimal) ke format tampilan,
// misal 25000 -> "Rp 25.000".
func FormatRupiah(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	// Tambahkan pemisah ribuan
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}

	out := "Rp " + strings.Join(parts, ".")
	if negative {
		out = "-" + out
	}
	return out
}
