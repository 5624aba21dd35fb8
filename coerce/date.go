package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var monthAbbrevs = [12]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// ParseDate parses raw in the local time zone. See ParseDateIn.
func ParseDate(raw, format string) (time.Time, bool) {
	return ParseDateIn(raw, format, time.Local)
}

// ParseDateIn parses raw as a date. With an empty format, raw is handed to a
// permissive calendar parser; otherwise it must match format completely.
// Fields missing from the format default to 1970-01-01 00:00:00. Values
// without a Z token are read as wall-clock time in loc.
//
// The second result is false when raw is not a date. Empty cells, blank cells
// and "-" are never dates.
func ParseDateIn(raw, format string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if format == "" {
		return parseGeneric(s, loc)
	}

	l, err := compileLayout(format)
	if err != nil {
		return parseGeneric(s, loc)
	}

	m := l.re.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return l.build(m[1:], loc)
}

// build assembles a timestamp from the captured groups.
func (l *layout) build(groups []string, loc *time.Location) (time.Time, bool) {
	year, month, day := 1970, 0, 1
	hour, minute, second := 0, 0, 0
	zone := ""

	for i, kind := range l.fields {
		v := groups[i]
		switch kind {
		case fieldYear4:
			year = atoi(v)
		case fieldYear2:
			yy := atoi(v)
			if yy >= 70 {
				year = 1900 + yy
			} else {
				year = 2000 + yy
			}
		case fieldMonthName:
			idx := monthIndex(v)
			if idx < 0 {
				return time.Time{}, false
			}
			month = idx
		case fieldMonth2, fieldMonth:
			month = atoi(v) - 1
		case fieldDay2, fieldDay:
			day = atoi(v)
		case fieldHour2, fieldHour:
			hour = atoi(v)
		case fieldMinute2, fieldMinute:
			minute = atoi(v)
		case fieldSecond2, fieldSecond:
			second = atoi(v)
		case fieldZone:
			zone = v
		}
	}

	if zone != "" {
		offset, ok := parseOffset(zone)
		if !ok {
			return time.Time{}, false
		}
		loc = time.FixedZone("", offset)
	}

	return time.Date(year, time.Month(month+1), day, hour, minute, second, 0, loc), true
}

// parseGeneric is the fallback for cells without a configured format.
func parseGeneric(s string, loc *time.Location) (t time.Time, ok bool) {
	// dateparse panics on a few malformed inputs
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	parsed, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// monthIndex resolves a month name to 0-11 by its first three letters.
func monthIndex(name string) int {
	lower := strings.ToLower(name)
	for i, abbrev := range monthAbbrevs {
		if strings.HasPrefix(lower, abbrev) {
			return i
		}
	}
	return -1
}

// parseOffset converts "Z", "+0900" or "+09:00" to seconds east of UTC.
func parseOffset(z string) (int, bool) {
	if z == "Z" {
		return 0, true
	}
	if len(z) < 5 {
		return 0, false
	}
	sign := 1
	if z[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(z[1:], ":", "")
	if len(digits) != 4 {
		return 0, false
	}
	hh, err1 := strconv.Atoi(digits[:2])
	mm, err2 := strconv.Atoi(digits[2:])
	if err1 != nil || err2 != nil || hh > 23 || mm > 59 {
		return 0, false
	}
	return sign * (hh*3600 + mm*60), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// FormatDate formats raw in the local time zone. See FormatDateIn.
func FormatDate(raw, inputFormat, outputFormat, locale string) string {
	return FormatDateIn(raw, inputFormat, outputFormat, locale, time.Local)
}

// FormatDateIn parses raw with inputFormat and renders it with outputFormat
// in loc. Text that does not parse is returned unchanged.
func FormatDateIn(raw, inputFormat, outputFormat, locale string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, ok := ParseDateIn(raw, inputFormat, loc)
	if !ok {
		return raw
	}
	return RenderDate(t.In(loc), outputFormat, locale)
}

// RenderDate expands the tokens of format with the fields of t.
func RenderDate(t time.Time, format, locale string) string {
	names := namesFor(locale)

	var b strings.Builder
	for _, part := range scanFormat(format) {
		switch part.kind {
		case fieldLiteral:
			b.WriteString(part.literal)
		case fieldYear4:
			fmt.Fprintf(&b, "%04d", t.Year())
		case fieldYear2:
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case fieldMonthName:
			b.WriteString(names.months[t.Month()-1])
		case fieldMonth2:
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case fieldMonth:
			b.WriteString(strconv.Itoa(int(t.Month())))
		case fieldDay2:
			fmt.Fprintf(&b, "%02d", t.Day())
		case fieldDay:
			b.WriteString(strconv.Itoa(t.Day()))
		case fieldHour2:
			fmt.Fprintf(&b, "%02d", t.Hour())
		case fieldHour:
			b.WriteString(strconv.Itoa(t.Hour()))
		case fieldMinute2:
			fmt.Fprintf(&b, "%02d", t.Minute())
		case fieldMinute:
			b.WriteString(strconv.Itoa(t.Minute()))
		case fieldSecond2:
			fmt.Fprintf(&b, "%02d", t.Second())
		case fieldSecond:
			b.WriteString(strconv.Itoa(t.Second()))
		case fieldWeekday:
			b.WriteString(names.weekdays[t.Weekday()])
		case fieldZone:
			b.WriteString(formatOffset(t))
		}
	}
	return b.String()
}

func formatOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
