package coerce

import (
	"regexp"
	"strings"
	"sync"
)

// fieldKind identifies one token of the date format language.
type fieldKind int

const (
	fieldLiteral fieldKind = iota
	fieldYear4
	fieldYear2
	fieldMonthName
	fieldMonth2
	fieldMonth
	fieldDay2
	fieldDay
	fieldHour2
	fieldHour
	fieldMinute2
	fieldMinute
	fieldSecond2
	fieldSecond
	fieldWeekday
	fieldZone
)

const namePattern = `([^\d\s\-/.,:]+)`

// formatTokens is ordered by precedence; longer tokens come before their
// prefixes so "MM" is never read as two "M".
var formatTokens = []struct {
	text    string
	kind    fieldKind
	pattern string
}{
	{"YYYY", fieldYear4, `(\d{4})`},
	{"YY", fieldYear2, `(\d{2})`},
	{"Mmm", fieldMonthName, namePattern},
	{"MM", fieldMonth2, `(\d{2})`},
	{"M", fieldMonth, `(\d{1,2})`},
	{"DD", fieldDay2, `(\d{2})`},
	{"D", fieldDay, `(\d{1,2})`},
	{"HH", fieldHour2, `(\d{2})`},
	{"H", fieldHour, `(\d{1,2})`},
	{"mm", fieldMinute2, `(\d{2})`},
	{"m", fieldMinute, `(\d{1,2})`},
	{"ss", fieldSecond2, `(\d{2})`},
	{"s", fieldSecond, `(\d{1,2})`},
	{"Www", fieldWeekday, namePattern},
	{"Z", fieldZone, `(Z|[+-]\d{2}:?\d{2})`},
}

// formatPart is either a token or a run of literal text.
type formatPart struct {
	kind    fieldKind
	literal string
}

// scanFormat splits a format string into tokens and literals in a single
// left-to-right pass.
func scanFormat(format string) []formatPart {
	var parts []formatPart
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, formatPart{kind: fieldLiteral, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		matched := false
		for _, tok := range formatTokens {
			if strings.HasPrefix(format[i:], tok.text) {
				flush()
				parts = append(parts, formatPart{kind: tok.kind})
				i += len(tok.text)
				matched = true
				break
			}
		}
		if !matched {
			lit.WriteByte(format[i])
			i++
		}
	}
	flush()

	return parts
}

func tokenPattern(kind fieldKind) string {
	for _, tok := range formatTokens {
		if tok.kind == kind {
			return tok.pattern
		}
	}
	return ""
}

// layout is a compiled input format.
type layout struct {
	re     *regexp.Regexp
	fields []fieldKind // one per capturing group, in order
}

var layouts sync.Map // format string -> *layout

func compileLayout(format string) (*layout, error) {
	if cached, ok := layouts.Load(format); ok {
		return cached.(*layout), nil
	}

	var pattern strings.Builder
	var fields []fieldKind

	pattern.WriteString("^")
	for _, part := range scanFormat(format) {
		if part.kind == fieldLiteral {
			pattern.WriteString(regexp.QuoteMeta(part.literal))
			continue
		}
		pattern.WriteString(tokenPattern(part.kind))
		fields = append(fields, part.kind)
	}
	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, err
	}

	l := &layout{re: re, fields: fields}
	layouts.Store(format, l)
	return l, nil
}
