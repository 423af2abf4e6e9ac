package week

import "testing"

func TestCodes_RoundTrip(t *testing.T) {
	for _, codes := range []*Codes{Cyrillic, Latin} {
		t.Run(codes.Name(), func(t *testing.T) {
			for d := Monday; d <= Sunday; d++ {
				code := codes.Code(d)
				got, ok := codes.Lookup(code)
				if !ok {
					t.Fatalf("Lookup(%q) not found", code)
				}
				if got != d {
					t.Errorf("Lookup(%q) = %s, want %s", code, got, d)
				}
			}
		})
	}
}

func TestCodes_CodeWraps(t *testing.T) {
	if got := Cyrillic.Code(Weekday(7)); got != "ПН" {
		t.Errorf("expected ПН, got %s", got)
	}
	if got := Latin.Code(Weekday(-1)); got != "SU" {
		t.Errorf("expected SU, got %s", got)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		code string
		want Weekday
		ok   bool
	}{
		{"ПН", Monday, true},
		{"СР", Wednesday, true},
		{"ВС", Sunday, true},
		{"FR", Friday, true},
		{"XX", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseWeekday(tc.code)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseWeekday(%q) = (%s, %v), want (%s, %v)", tc.code, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCodesByName(t *testing.T) {
	c, err := CodesByName("LATIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Latin {
		t.Error("expected Latin table")
	}
	if _, err := CodesByName("klingon"); err == nil {
		t.Error("expected error for unknown table")
	}
}
