package format

import (
	"fmt"
	"math"
	"time"
)

const (
	dateLayout  = "Jan 2, 2006, 03:04 PM"
	invalidDate = "Invalid Date"
)

var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

type agoBucket struct {
	seconds float64
	unit    string
}

var agoBuckets = []agoBucket{
	{31536000, "years"},
	{2592000, "months"},
	{86400, "days"},
	{3600, "hours"},
	{60, "minutes"},
}

// ParseTimestamp reads an ISO-8601 timestamp. Date-only values are UTC and
// date-times without an offset are read in loc.
func ParseTimestamp(iso string, loc *time.Location) (time.Time, bool) {
	for i, layout := range inputLayouts {
		zone := loc
		if i == len(inputLayouts)-1 {
			zone = time.UTC
		}
		if t, err := time.ParseInLocation(layout, iso, zone); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders an ISO timestamp in the local zone, e.g. "Jun 30, 2023, 02:00 PM".
func Date(iso string) string {
	return DateIn(iso, time.Local)
}

// DateIn is Date with an explicit location.
func DateIn(iso string, loc *time.Location) string {
	t, ok := ParseTimestamp(iso, loc)
	if !ok {
		return invalidDate
	}
	return t.In(loc).Format(dateLayout)
}

// DateTime renders t with the Date layout in t's own location.
func DateTime(t time.Time) string {
	return t.Format(dateLayout)
}

// TimeAgo describes how long ago iso was, relative to the current time.
func TimeAgo(iso string) string {
	return TimeAgoFrom(iso, time.Now())
}

// TimeAgoFrom describes how long before now the timestamp iso was.
func TimeAgoFrom(iso string, now time.Time) string {
	t, ok := ParseTimestamp(iso, now.Location())
	if !ok {
		return "NaN seconds ago"
	}
	return Ago(t, now)
}

// Ago describes the elapsed time between t and now using the largest unit
// whose ratio is strictly greater than one. Values are truncated, so exactly
// one hour reads "60 minutes ago".
func Ago(t, now time.Time) string {
	seconds := math.Floor(float64(now.UnixMilli()-t.UnixMilli()) / 1000)

	for _, b := range agoBuckets {
		if interval := seconds / b.seconds; interval > 1 {
			return fmt.Sprintf("%d %s ago", int64(math.Floor(interval)), b.unit)
		}
	}
	return fmt.Sprintf("%d seconds ago", int64(seconds))
}
