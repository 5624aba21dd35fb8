package coerce

import (
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"golang.org/x/text/language"
)

// DefaultLocale is used when a column or call does not name a locale.
var DefaultLocale = "en-US"

type calendarNames struct {
	months   [12]string
	weekdays [7]string // Sunday first, matching time.Weekday
}

var namedLocales = []language.Tag{
	language.English,
	language.Japanese,
	language.German,
	language.French,
	language.Spanish,
}

var calendarTable = []calendarNames{
	namesOf(en.New()),
	namesOf(ja.New()),
	namesOf(de.New()),
	namesOf(fr.New()),
	namesOf(es.New()),
}

var localeMatcher = language.NewMatcher(namedLocales)

func namesOf(tr locales.Translator) calendarNames {
	var names calendarNames
	for i := range names.months {
		names.months[i] = tr.MonthAbbreviated(time.Month(i + 1))
	}
	for i := range names.weekdays {
		names.weekdays[i] = tr.WeekdayAbbreviated(time.Weekday(i))
	}
	return names
}

func namesFor(locale string) calendarNames {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return calendarTable[0]
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(calendarTable) {
		return calendarTable[0]
	}
	return calendarTable[idx]
}

// MonthNames returns the abbreviated month names for locale, January first.
// Unsupported locales get English names.
func MonthNames(locale string) []string {
	names := namesFor(locale)
	return names.months[:]
}

// WeekdayNames returns the abbreviated weekday names for locale, Sunday first.
func WeekdayNames(locale string) []string {
	names := namesFor(locale)
	return names.weekdays[:]
}

func parseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	return language.Parse(locale)
}
