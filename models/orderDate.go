package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const OrderDateLayout = "2006-01-02"

// OrderDate is a calendar date. The time of day is dropped on parse and no
// timezone conversion is applied: "2023-01-05 23:30" is 2023-01-05.
type OrderDate time.Time

var orderDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	// slashed and dashed dates are month first
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1-2-2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2006-01",
	"2006",
}

// excel serial day 0 is 1899-12-30 (the 1900 leap year bug included)
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// Serial days below 10000 (1927-05-18) are not accepted: short integers are
// years ("2023") or noise, not spreadsheet dates.
const (
	minExcelSerial = 10000
	maxExcelSerial = 2958466
)

func NewOrderDate(year int, month time.Month, day int) OrderDate {
	return OrderDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseOrderDate accepts the layouts above plus Excel serial day numbers.
// A bare 4-digit integer is a year.
func ParseOrderDate(value string) (OrderDate, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return OrderDate{}, errors.New("empty date")
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewOrderDate(t.Year(), t.Month(), t.Day()), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= minExcelSerial && serial < maxExcelSerial {
		t := excelEpoch.AddDate(0, 0, int(serial))
		return NewOrderDate(t.Year(), t.Month(), t.Day()), nil
	}
	return OrderDate{}, fmt.Errorf("cannot parse %q as a date", value)
}

func (d OrderDate) Time() time.Time {
	return time.Time(d)
}

func (d OrderDate) String() string {
	return time.Time(d).Format(OrderDateLayout)
}

func (d OrderDate) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d OrderDate) Before(other OrderDate) bool {
	return time.Time(d).Before(time.Time(other))
}

func (d OrderDate) After(other OrderDate) bool {
	return time.Time(d).After(time.Time(other))
}

// MonthStart is the first day of the date's month.
func (d OrderDate) MonthStart() OrderDate {
	t := time.Time(d)
	return NewOrderDate(t.Year(), t.Month(), 1)
}

// MonthYear formats the bucket label used by the time series, e.g. "2023-Jan".
func (d OrderDate) MonthYear() string {
	return time.Time(d).Format("2006-Jan")
}

func (d OrderDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *OrderDate) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("OrderDate must be string")
	}
	t, err := time.Parse(OrderDateLayout, str)
	if err != nil {
		return errors.New("error parsing date")
	}
	*d = NewOrderDate(t.Year(), t.Month(), t.Day())
	return nil
}
