package week

import (
	"fmt"
	"strings"
)

// Weekday is a day of the canonical week, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Codes maps every weekday to its two-letter code, and back.
type Codes struct {
	name   string
	byDay  [DaysInWeek]string
	byCode map[string]Weekday
}

func newCodes(name string, codes [DaysInWeek]string) *Codes {
	c := &Codes{name: name, byDay: codes, byCode: make(map[string]Weekday, DaysInWeek)}
	for d, code := range codes {
		c.byCode[code] = Weekday(d)
	}
	return c
}

var (
	// Cyrillic is the default code table.
	Cyrillic = newCodes("cyrillic", [DaysInWeek]string{"ПН", "ВТ", "СР", "ЧТ", "ПТ", "СБ", "ВС"})
	// Latin is the English two-letter code table.
	Latin = newCodes("latin", [DaysInWeek]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"})
)

var tables = []*Codes{Cyrillic, Latin}

// Name returns the table name ("cyrillic", "latin").
func (c *Codes) Name() string {
	return c.name
}

// Code returns the two-letter code for d. Out-of-range days wrap modulo 7.
func (c *Codes) Code(d Weekday) string {
	return c.byDay[floorMod(int(d), DaysInWeek)]
}

// Lookup returns the weekday for code within this table.
func (c *Codes) Lookup(code string) (Weekday, bool) {
	d, ok := c.byCode[code]
	return d, ok
}

// CodesByName returns the code table with the given name.
// Matching is case-insensitive.
func CodesByName(name string) (*Codes, error) {
	for _, t := range tables {
		if strings.EqualFold(t.name, name) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown weekday codes %q", name)
}

// ParseWeekday looks up code in every known table.
func ParseWeekday(code string) (Weekday, bool) {
	for _, t := range tables {
		if d, ok := t.Lookup(code); ok {
			return d, true
		}
	}
	return 0, false
}

// String returns the English weekday name.
func (d Weekday) String() string {
	names := [DaysInWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	return names[floorMod(int(d), DaysInWeek)]
}
