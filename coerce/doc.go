// Package coerce converts raw table cells into typed values and back into
// display text.
//
// Dates are read with a small format language whose tokens are
//
//	YYYY  4-digit year          YY   2-digit year (70-99 → 19xx, else 20xx)
//	Mmm   month name            MM   2-digit month    M  1-2 digit month
//	DD    2-digit day           D    1-2 digit day
//	HH    2-digit hour          H    1-2 digit hour
//	mm    2-digit minute        m    1-2 digit minute
//	ss    2-digit second        s    1-2 digit second
//	Www   weekday name          Z    "Z" or a UTC offset (+0900, +09:00)
//
// Everything else in a format is matched literally. The same tokens are used
// for output formats, where Mmm and Www render locale-specific short names and
// Z renders the local offset as ±HH:MM.
//
// Numbers are read by discarding everything except digits, '.' and '-'.
// Output number specs are a kind letter plus optional precision digits:
//
//	D  integer, zero padded to the precision width
//	G  general, rounded to the precision in significant digits
//	N  grouped fixed point (default 2 decimals)
//	C  currency (JPY for Japanese locales, USD otherwise)
//	P  percentage of a fraction (default 2 decimals)
//
// Nothing in this package returns an error. A value that cannot be coerced is
// reported through an ok result, a sentinel key, or the original text passed
// through unchanged.
package coerce
