package timezone

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"America/Costa_Rica", true},
		{"UTC", true},
		{"America/Nowhere", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.tz); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}

func TestLocation(t *testing.T) {
	if got := Location("").String(); got != DefaultTimezone {
		t.Errorf("empty tz = %q", got)
	}
	if got := Location("America/Nowhere").String(); got != DefaultTimezone {
		t.Errorf("invalid tz = %q", got)
	}
	if got := Location("UTC").String(); got != "UTC" {
		t.Errorf("UTC = %q", got)
	}
}

func TestNowIn(t *testing.T) {
	if NowIn("").Location().String() != DefaultTimezone {
		t.Error("NowIn not in default timezone")
	}
}
