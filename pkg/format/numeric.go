package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var abbreviations = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "t"},
	{1e9, "b"},
	{1e6, "m"},
	{1e3, "k"},
}

var printer = message.NewPrinter(language.English)

// Abbreviate renders v with a magnitude suffix and a fixed number of decimal
// places: 1234 with 0 decimals is "1k", with 2 decimals "1.23k". Values that
// round up to the next magnitude roll over (999999 -> "1m"). Trillions are the
// largest unit; larger values keep grouping separators ("1,000t").
func Abbreviate(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if decimals < 0 {
		decimals = 0
	}

	idx := -1
	scaled := v
	for i, abbr := range abbreviations {
		if math.Abs(v) >= abbr.threshold {
			idx = i
			scaled = v / abbr.threshold
			break
		}
	}

	scaled = round(scaled, decimals)
	if idx > 0 && math.Abs(scaled) >= 1000 {
		idx--
		scaled = round(scaled/1000, decimals)
	} else if idx < 0 && math.Abs(scaled) >= 1000 {
		// 999.5 with no decimals.
		idx = len(abbreviations) - 1
		scaled = round(scaled/1000, decimals)
	}
	if scaled == 0 {
		// drop negative zero
		scaled = 0
	}

	suffix := ""
	if idx >= 0 {
		suffix = abbreviations[idx].suffix
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), scaled) + suffix
}

func round(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}
