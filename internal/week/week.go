// Package week models points in a recurring week as minutes since Monday 00:00.
package week

import "fmt"

// Minute counts minutes from Monday 00:00 of the canonical week.
// Values may fall outside [0, MinutesInWeek) after offset rebasing or
// day shifting; no wraparound is applied.
type Minute int

const (
	MinutesInHour = 60
	HoursInDay    = 24
	DaysInWeek    = 7
	MinutesInDay  = HoursInDay * MinutesInHour
	MinutesInWeek = DaysInWeek * MinutesInDay
)

// At builds a Minute from a day index, hours and minutes.
func At(day, hours, minutes int) Minute {
	return Minute(day*MinutesInDay + hours*MinutesInHour + minutes)
}

// Split decomposes m into a day index, hours and minutes.
// Floor division is used so negative values still yield 0-23 hours and 0-59 minutes.
func (m Minute) Split() (day, hours, minutes int) {
	day = floorDiv(int(m), MinutesInDay)
	rest := int(m) - day*MinutesInDay
	return day, rest / MinutesInHour, rest % MinutesInHour
}

// Weekday returns the day of week m falls on, wrapping modulo 7.
func (m Minute) Weekday() Weekday {
	day, _, _ := m.Split()
	return Weekday(floorMod(day, DaysInWeek))
}

// Clock returns the "HH:MM" time of day.
func (m Minute) Clock() string {
	_, h, mm := m.Split()
	return fmt.Sprintf("%02d:%02d", h, mm)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
