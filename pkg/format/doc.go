// Package format turns raw slider values into compact labels. Numeric fields
// use magnitude abbreviations (k, m, b, t); date-time fields pick a precision
// from the span of the field's bounds so neighbouring stops stay
// distinguishable without printing noise.
package format
