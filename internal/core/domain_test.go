package core

import (
	"fmt"
	"testing"
)

func TestMonthName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"01", "January"},
		{"02", "February"},
		{"09", "September"},
		{"12", "December"},
		{"13", "Unknown"},
		{"00", "Unknown"},
		{"2", "Unknown"}, // single digit codes are not padded
		{"", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := MonthName(tt.code); got != tt.want {
				t.Errorf("MonthName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestPasswordHash_StringRedacts(t *testing.T) {
	hash := PasswordHash("$2a$10$abcdefghijklmnopqrstuv")

	for _, formatted := range []string{
		fmt.Sprintf("%v", hash),
		fmt.Sprintf("%s", hash),
		fmt.Sprint(hash),
	} {
		if formatted != "<redacted>" {
			t.Errorf("formatted hash = %q, want <redacted>", formatted)
		}
	}

	// The raw value must still be reachable for storage and verification.
	if string(hash) == "<redacted>" {
		t.Error("string conversion should expose the raw hash")
	}
}
