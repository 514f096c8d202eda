package countdown_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chime-cli/chime/countdown"
)

func TestParse(t *testing.T) {
	table := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"seconds only", "10", 10 * time.Second},
		{"seconds above a minute", "90", 90 * time.Second},
		{"zero is syntactically valid", "0", 0},
		{"minutes and seconds", "1:30", 90 * time.Second},
		{"hours minutes seconds", "1:00:00", time.Hour},
		{"leading zeros", "01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"unbounded fields", "0:90", 90 * time.Second},
		{"surrounding whitespace", "  5 ", 5 * time.Second},
		{"zero in every field", "0:0:0", 0},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got, err := countdown.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned unexpected error: %v", tc.input, err)
			}

			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	table := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"non-numeric", "ten"},
		{"non-numeric field", "1:xx"},
		{"negative field", "-5"},
		{"signed field", "+5"},
		{"fractional field", "1.5"},
		{"too many fields", "1:2:3:4"},
		{"empty field", "1::3"},
		{"trailing separator", "1:30:"},
		{"inner whitespace", "1: 30"},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			_, err := countdown.Parse(tc.input)
			if !errors.Is(err, countdown.ErrMalformedDuration) {
				t.Errorf(
					"Parse(%q) error = %v, want ErrMalformedDuration",
					tc.input,
					err,
				)
			}
		})
	}
}

func TestParseTooLarge(t *testing.T) {
	table := []struct {
		name  string
		input string
	}{
		{"seconds beyond duration range", "9999999999"},
		{"hours beyond duration range", "9999999:0:0"},
		{"field wider than the digit cap", "1000000000000000"},
	}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			_, err := countdown.Parse(tc.input)
			if !errors.Is(err, countdown.ErrDurationTooLarge) {
				t.Errorf(
					"Parse(%q) error = %v, want ErrDurationTooLarge",
					tc.input,
					err,
				)
			}
		})
	}
}
