package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	if got := truncate("  hola  ", 10); got != "hola" {
		t.Fatalf("truncate = %q, want trimmed hola", got)
	}
	if got := truncate("abcdef", 5); got != "abcd…" {
		t.Fatalf("truncate = %q, want abcd…", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("truncate short limit = %q, want ab", got)
	}
	if got := truncate("García Márquez", 0); got != "García Márquez" {
		t.Fatalf("truncate zero limit = %q, want unchanged", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight over width = %q, want unchanged", got)
	}
}

func TestHumanizeAge(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "nunca"},
		{"fresh", now.Add(-30 * time.Second), "ahora"},
		{"minutes", now.Add(-5 * time.Minute), "hace 5m"},
		{"hours", now.Add(-3 * time.Hour), "hace 3h"},
		{"days", now.Add(-50 * time.Hour), "hace 2d"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := humanizeAge(tc.t, now); got != tc.want {
				t.Fatalf("humanizeAge = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(1234.5); got != "$1234.50" {
		t.Fatalf("formatMoney = %q", got)
	}
	if got := formatMoney(0); got != "$0.00" {
		t.Fatalf("formatMoney zero = %q", got)
	}
}
