package blackjack

import "testing"

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Win, "win"},
		{Lose, "lose"},
		{Draw, "draw"},
		{Outcome(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tt.outcome), got, tt.want)
		}
	}
}

func TestOutcomeMarshalText(t *testing.T) {
	b, err := Win.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(b) != "win" {
		t.Errorf("MarshalText = %q, want %q", b, "win")
	}

	if _, err := Outcome(42).MarshalText(); err == nil {
		t.Error("expected error for invalid outcome")
	}
}

func TestParseOutcome(t *testing.T) {
	for _, o := range []Outcome{Win, Lose, Draw} {
		parsed, err := ParseOutcome(o.String())
		if err != nil {
			t.Fatalf("ParseOutcome(%q) failed: %v", o, err)
		}
		if parsed != o {
			t.Errorf("ParseOutcome(%q) = %v, want %v", o, parsed, o)
		}
	}

	if _, err := ParseOutcome("push"); err == nil {
		t.Error("expected error for unknown outcome string")
	}
}
