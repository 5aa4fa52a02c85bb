// Package timezones resolves the display time zone of date-time fields and
// keeps the catalog of zones offered by the CLI.
//
// Resolve accepts any name time.LoadLocation does; the tz database is linked
// into the binary. The catalog is embedded from data/iana_timezones.txt.
package timezones
