package jalali

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"canonical", "1404/09/15", Date{1404, 9, 15}, false},
		{"unpadded", "1404/9/5", Date{1404, 9, 5}, false},
		{"persian digits", "۱۴۰۴/۰۹/۱۵", Date{1404, 9, 15}, false},
		{"surrounding space", " 1404/09/15 ", Date{1404, 9, 15}, false},
		{"leap esfand 30", "1403/12/30", Date{1403, 12, 30}, false},
		{"non leap esfand 30", "1404/12/30", Date{}, true},
		{"day 31 in second half", "1404/07/31", Date{}, true},
		{"month 13", "1404/13/01", Date{}, true},
		{"month 0", "1404/00/10", Date{}, true},
		{"day 0", "1404/01/00", Date{}, true},
		{"two parts", "1404/09", Date{}, true},
		{"garbage", "not a date", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate_String_Canonical(t *testing.T) {
	d := Date{Year: 1404, Month: 9, Day: 5}
	if got := d.String(); got != "1404/09/05" {
		t.Errorf("String() = %q, want %q", got, "1404/09/05")
	}
}

func TestNormalizeDateString(t *testing.T) {
	got, err := NormalizeDateString("۱۴۰۴/9/5")
	if err != nil {
		t.Fatalf("NormalizeDateString failed: %v", err)
	}
	if got != "1404/09/05" {
		t.Errorf("got %q, want %q", got, "1404/09/05")
	}
}

func TestDate_Ordering(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"equal", Date{1404, 9, 15}, Date{1404, 9, 15}, 0},
		{"earlier day", Date{1404, 9, 14}, Date{1404, 9, 15}, -1},
		{"earlier month", Date{1404, 8, 30}, Date{1404, 9, 1}, -1},
		{"later year", Date{1405, 1, 1}, Date{1404, 12, 29}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDate_Within_Inclusive(t *testing.T) {
	from := Date{1404, 9, 1}
	to := Date{1404, 9, 30}

	if !from.Within(from, to) {
		t.Error("from boundary must be included")
	}
	if !to.Within(from, to) {
		t.Error("to boundary must be included")
	}
	if (Date{1404, 8, 30}).Within(from, to) {
		t.Error("day before window must be excluded")
	}
	if (Date{1404, 10, 1}).Within(from, to) {
		t.Error("day after window must be excluded")
	}
}

func TestIsLeapYear(t *testing.T) {
	leap := []int{1403, 1408, 1412}
	for _, y := range leap {
		if !IsLeapYear(y) {
			t.Errorf("IsLeapYear(%d) = false, want true", y)
		}
	}
	nonLeap := []int{1402, 1404, 1405, 1406, 1407}
	for _, y := range nonLeap {
		if IsLeapYear(y) {
			t.Errorf("IsLeapYear(%d) = true, want false", y)
		}
	}
}

func TestMonthOfYear_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		month   MonthOfYear
		lastDay int
	}{
		{"first half", MonthOfYear{1404, 2}, 31},
		{"second half", MonthOfYear{1404, 8}, 30},
		{"esfand non leap", MonthOfYear{1404, 12}, 29},
		{"esfand leap", MonthOfYear{1403, 12}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.FirstDay(); got.Day != 1 {
				t.Errorf("FirstDay().Day = %d, want 1", got.Day)
			}
			if got := tt.month.LastDay(); got.Day != tt.lastDay {
				t.Errorf("LastDay().Day = %d, want %d", got.Day, tt.lastDay)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("۱۴۰۴/9")
	if err != nil {
		t.Fatalf("ParseMonth failed: %v", err)
	}
	if got != (MonthOfYear{1404, 9}) {
		t.Errorf("got %v", got)
	}
	if got.String() != "1404/09" {
		t.Errorf("String() = %q, want %q", got.String(), "1404/09")
	}

	if _, err := ParseMonth("1404/13"); err == nil {
		t.Error("month 13 must be rejected")
	}
	if _, err := ParseMonth("1404"); err == nil {
		t.Error("missing month part must be rejected")
	}
}
