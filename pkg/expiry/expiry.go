// Package expiry converts form dates into the account expiry format used by
// the directory import tooling.
package expiry

import (
	"strconv"
	"strings"
	"time"
)

// Layout is the target format. Accounts expire at the start of the day after
// the requested end date.
const Layout = "01/02/2006 00:00"

var separators = []string{"-", "/"}

// Parse reads a day-month-year date separated by "-" or "/".
// ok is false when no separator yields a valid calendar date.
func Parse(raw string) (t time.Time, ok bool) {
	for _, sep := range separators {
		if t, ok := parseWith(raw, sep); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseWith(raw, sep string) (time.Time, bool) {
	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 31-02 into March; reject it instead.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

// Reformat returns raw shifted forward by one day in Layout, or raw unchanged
// when it is not a recognisable date.
func Reformat(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return raw
	}
	return t.AddDate(0, 0, 1).Format(Layout)
}
