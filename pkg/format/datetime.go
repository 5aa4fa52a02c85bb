package format

import (
	"math"
	"strings"
	"time"
)

// Precision is the finest unit a date-time label shows.
type Precision int

const (
	PrecisionDay Precision = iota
	PrecisionMinute
	PrecisionSecond
	PrecisionMillisecond
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerDay    = 24 * 60 * msPerMinute
)

const dateLayout = "2006/01/02"

// PrecisionForSpan picks the coarsest unit that still separates two
// timestamps span milliseconds apart.
func PrecisionForSpan(span float64) Precision {
	span = math.Abs(span)
	switch {
	case span >= msPerDay:
		return PrecisionDay
	case span >= msPerMinute:
		return PrecisionMinute
	case span >= msPerSecond:
		return PrecisionSecond
	default:
		return PrecisionMillisecond
	}
}

func (p Precision) timeLayout() string {
	switch p {
	case PrecisionMinute:
		return "15:04"
	case PrecisionSecond:
		return "15:04:05"
	case PrecisionMillisecond:
		return "15:04:05.000"
	default:
		return ""
	}
}

// fractionalDigits mirrors the number of sub-second digits in the layout.
func (p Precision) fractionalDigits() int {
	if p == PrecisionMillisecond {
		return 3
	}
	return 0
}

func (p Precision) String() string {
	switch p {
	case PrecisionDay:
		return "day"
	case PrecisionMinute:
		return "minute"
	case PrecisionSecond:
		return "second"
	case PrecisionMillisecond:
		return "millisecond"
	default:
		return "unknown"
	}
}

// dateTimeLayouts returns the title layout (empty when no title is needed)
// and the per-value layout for timestamps lo and hi.
func dateTimeLayouts(loc *time.Location, lo, hi float64) (string, string, Precision) {
	precision := PrecisionForSpan(hi - lo)
	if precision == PrecisionDay {
		return "", dateLayout, precision
	}
	if sameDate(toTime(lo, loc), toTime(hi, loc)) {
		return dateLayout, precision.timeLayout(), precision
	}
	return "", dateLayout + ", " + precision.timeLayout(), precision
}

// compact rewrites slashes as dashes and breaks the date/time boundary onto a
// second line.
func compact(label string) string {
	label = strings.ReplaceAll(label, "/", "-")
	return strings.Replace(label, ", ", "\n", 1)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// toTime converts a millisecond Unix timestamp, keeping sub-millisecond
// fractions.
func toTime(ms float64, loc *time.Location) time.Time {
	sec := math.Floor(ms / msPerSecond)
	nsec := math.Round((ms - sec*msPerSecond) * 1e6)
	return time.Unix(int64(sec), int64(nsec)).In(loc)
}
