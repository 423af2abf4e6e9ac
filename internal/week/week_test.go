package week

import "testing"

func TestAt(t *testing.T) {
	tests := []struct {
		day, hours, minutes int
		want                Minute
	}{
		{0, 0, 0, 0},
		{0, 9, 30, 570},
		{1, 0, 0, 1440},
		{6, 23, 59, MinutesInWeek - 1},
	}

	for _, tc := range tests {
		got := At(tc.day, tc.hours, tc.minutes)
		if got != tc.want {
			t.Errorf("At(%d, %d, %d) = %d, want %d", tc.day, tc.hours, tc.minutes, got, tc.want)
		}
	}
}

func TestMinute_Split(t *testing.T) {
	tests := []struct {
		m                   Minute
		day, hours, minutes int
	}{
		{0, 0, 0, 0},
		{570, 0, 9, 30},
		{1440 + 61, 1, 1, 1},
		{-60, -1, 23, 0},
		{-1, -1, 23, 59},
		{MinutesInWeek + 90, 7, 1, 30},
	}

	for _, tc := range tests {
		d, h, m := tc.m.Split()
		if d != tc.day || h != tc.hours || m != tc.minutes {
			t.Errorf("Split(%d) = (%d, %d, %d), want (%d, %d, %d)", tc.m, d, h, m, tc.day, tc.hours, tc.minutes)
		}
	}
}

func TestMinute_Weekday(t *testing.T) {
	tests := []struct {
		m    Minute
		want Weekday
	}{
		{0, Monday},
		{At(2, 10, 0), Wednesday},
		{At(6, 23, 59), Sunday},
		{At(7, 1, 0), Monday},
		{-1, Sunday},
	}

	for _, tc := range tests {
		if got := tc.m.Weekday(); got != tc.want {
			t.Errorf("Weekday(%d) = %s, want %s", tc.m, got, tc.want)
		}
	}
}

func TestMinute_Clock(t *testing.T) {
	if got := At(3, 7, 5).Clock(); got != "07:05" {
		t.Errorf("expected 07:05, got %s", got)
	}
	if got := Minute(-30).Clock(); got != "23:30" {
		t.Errorf("expected 23:30, got %s", got)
	}
}
