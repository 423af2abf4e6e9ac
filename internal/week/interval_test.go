package week

import "testing"

func TestInterval_Intersects(t *testing.T) {
	base := Interval{From: 600, To: 720} // 10:00-12:00

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"touching before", Interval{From: 540, To: 600}, false},
		{"touching after", Interval{From: 720, To: 780}, false},
		{"identical", base, true},
		{"overlap start", Interval{From: 540, To: 601}, true},
		{"overlap end", Interval{From: 719, To: 800}, true},
		{"contained", Interval{From: 630, To: 660}, true},
		{"containing", Interval{From: 0, To: 1440}, true},
		{"disjoint", Interval{From: 0, To: 60}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects(%s) = %v, want %v", tc.other, got, tc.want)
			}
			if got := tc.other.Intersects(base); got != tc.want {
				t.Errorf("Intersects is not symmetric for %s", tc.other)
			}
		})
	}
}

func TestInterval_Shift(t *testing.T) {
	i := NewInterval(540, 60)
	shifted := i.Shift(MinutesInDay)

	if shifted.From != 540+MinutesInDay || shifted.To != 600+MinutesInDay {
		t.Errorf("expected [1980, 2040), got %s", shifted)
	}
	if i.From != 540 {
		t.Error("Shift must not modify the receiver")
	}
	if shifted.Len() != 60 {
		t.Errorf("expected length 60, got %d", shifted.Len())
	}
}

func TestInterval_Overlap(t *testing.T) {
	a := Interval{From: 540, To: 660}
	b := Interval{From: 600, To: 720}

	if got := a.Overlap(b); got != 60 {
		t.Errorf("expected 60, got %d", got)
	}
	if got := a.Overlap(Interval{From: 660, To: 700}); got != 0 {
		t.Errorf("expected 0 for touching intervals, got %d", got)
	}
}
