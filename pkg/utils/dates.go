package utils

import (
	"strconv"
	"strings"
	"time"
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Integers inside this range read as years rather than epoch milliseconds.
const (
	yearRangeLow  = -271820
	yearRangeHigh = 275761
)

// ParseDueDate parses an RFC3339 timestamp, a plain YYYY-MM-DD date or an
// epoch-millisecond integer into UTC.
func ParseDueDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil && (ms < yearRangeLow || ms >= yearRangeHigh) {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}
