package jalali

import "testing"

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"persian digits", "۱۴۰۴/۰۹/۱۵", "1404/09/15"},
		{"arabic indic digits", "١٤٠٤/٠٩/١٥", "1404/09/15"},
		{"ascii passthrough", "1404/09/15", "1404/09/15"},
		{"mixed scripts", "۱4٠4", "1404"},
		{"non digits untouched", "قیمت ۵۰۰ ریال", "قیمت 500 ریال"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDigits(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDigits_Idempotent(t *testing.T) {
	input := "۱۴۰۴/٠٩/۱۵ مصرف برق"
	once := NormalizeDigits(input)
	twice := NormalizeDigits(once)
	if once != twice {
		t.Errorf("not idempotent: first %q, second %q", once, twice)
	}
}
