package utils

import "testing"

func TestFormatBRL(t *testing.T) {
	tests := map[float64]string{
		0:        "R$ 0,00",
		5.5:      "R$ 5,50",
		1234.5:   "R$ 1.234,50",
		1000000:  "R$ 1.000.000,00",
		-320.999: "-R$ 321,00",
	}
	for in, want := range tests {
		if got := FormatBRL(in); got != want {
			t.Fatalf("FormatBRL(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("contas a receber/junho"); got != "contas_a_receber_junho" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := SafeFilenamePart("  "); got != "NA" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("09:30"); err != nil {
		t.Fatalf("ParseClock error: %v", err)
	}
	if _, err := ParseClock("9h30"); err == nil {
		t.Fatalf("expected error for invalid clock")
	}
}
