package common

import (
	"fmt"
	"time"
)

type Date struct {
	Year  int32
	Month int32
	Day   int32
}

func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{
		Year:  int32(y),
		Month: int32(m),
		Day:   int32(d),
	}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return DateFromTime(t), nil
}

// DateFromDays converts days since 1970-01-01, the parquet DATE encoding.
func DateFromDays(days int32) Date {
	return DateFromTime(time.Date(1970, 1, int(1+days), 0, 0, 0, 0, time.UTC))
}

func (d *Date) Equal(o *Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d *Date) Less(o *Date) bool {
	return d.Compare(o) < 0
}

// Compare works on the fields directly; dates are normalized on construction.
func (d *Date) Compare(o *Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt32(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt32(d.Month, o.Month)
	default:
		return cmpInt32(d.Day, o.Day)
	}
}

func (d *Date) ToDate() time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func cmpInt32(a, b int32) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
