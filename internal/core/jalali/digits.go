// Package jalali provides Jalali (Solar Hijri) calendar value types and
// digit normalization for user-entered Persian text.
package jalali

import "strings"

// NormalizeDigits converts Persian (۰-۹) and Arabic-Indic (٠-٩) digits
// in s to their ASCII equivalents. All other runes pass through
// unchanged, so the function is idempotent and safe to apply at every
// input boundary.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
