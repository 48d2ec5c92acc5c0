package common

import (
	"fmt"
	"strings"
	"time"
)

// HHMM is a wall-clock time expressed as minutes from midnight.
// It marshals as "HH:MM".
type HHMM int

func NewHHMM(h, m int) HHMM {
	return HHMM(h*60 + m)
}

func ParseHHMM(s string) (HHMM, error) {
	m, err := t2m(s)
	if err != nil {
		return 0, err
	}
	return HHMM(m), nil
}

func (t HHMM) Get() int { return int(t) }

func (t HHMM) String() string { return m2t(int(t)) }

func (t HHMM) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m2t(int(t)))), nil
}

func (t *HHMM) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*t = 0
		return nil
	}

	m, err := t2m(s)
	if err != nil {
		return err
	}

	*t = HHMM(m)
	return nil
}

func m2t(m int) string {
	hours := m / 60
	minutes := m % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func t2m(s string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	return hours*60 + minutes, nil
}

const dateFormat = "2006-01-02"

// Date is a calendar date pinned to UTC midnight. It marshals as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func DateFromMilli(milli int64) Date {
	y, m, d := time.UnixMilli(milli).UTC().Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t.UTC()}, nil
}

func (d Date) String() string { return d.Format(dateFormat) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateFormat))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// At combines the date with a wall-clock time.
func (d Date) At(t HHMM) time.Time {
	return d.Add(time.Duration(t) * time.Minute)
}
