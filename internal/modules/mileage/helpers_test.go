package mileage

import "testing"

func TestParseMiles(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"12.30 miles", 12.3},
		{"0.50 miles", 0.5},
		{"7 miles", 7},
		{"no match", 0},
		{"", 0},
		{"miles 12", 0},
	}
	for _, tt := range cases {
		if got := ParseMiles(tt.text); got != tt.want {
			t.Errorf("ParseMiles(%q) = %v; want %v", tt.text, got, tt.want)
		}
	}
}

func TestReimbursement(t *testing.T) {
	if got := Reimbursement(10); got != 4.5 {
		t.Errorf("Reimbursement(10) = %v; want 4.5", got)
	}
	if got := Reimbursement(0); got != 0 {
		t.Errorf("Reimbursement(0) = %v; want 0", got)
	}
	// 12.3 * 0.45 = 5.535 → rounds to 5.54
	if got := Reimbursement(12.3); got != 5.54 {
		t.Errorf("Reimbursement(12.3) = %v; want 5.54", got)
	}
}

func TestFormatMeters(t *testing.T) {
	if got := FormatMeters(1609); got != "1.00 miles" {
		t.Errorf("FormatMeters(1609) = %q; want \"1.00 miles\"", got)
	}
	if got := FormatMeters(0); got != "0.00 miles" {
		t.Errorf("FormatMeters(0) = %q; want \"0.00 miles\"", got)
	}
}

func TestFormatTripDatetime(t *testing.T) {
	got, ok := FormatTripDatetime("2024-01-01", "09:30")
	if !ok || got != "2024-01-01T09:30:00" {
		t.Errorf("FormatTripDatetime date+time = %q, %v; want 2024-01-01T09:30:00, true", got, ok)
	}

	got, ok = FormatTripDatetime("2024-01-01", "")
	if !ok || got != "2024-01-01T00:00:00" {
		t.Errorf("FormatTripDatetime date only = %q, %v; want midnight, true", got, ok)
	}

	if _, ok := FormatTripDatetime("", ""); ok {
		t.Error("FormatTripDatetime with no date should not be ok")
	}
}
