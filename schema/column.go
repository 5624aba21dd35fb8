package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/vegasq/tabview/coerce"
)

// Type is the display and comparison type of a column.
type Type int

const (
	TypeString Type = iota
	TypeNumber
	TypeDate
	TypeURL
	TypeImage
)

var typeNames = map[Type]string{
	TypeString: "string",
	TypeNumber: "number",
	TypeDate:   "date",
	TypeURL:    "url",
	TypeImage:  "image",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType converts a type name ("string", "number", "date", "url",
// "image") to a Type. The empty string is TypeString.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return TypeString, nil
	}
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return TypeString, fmt.Errorf("unknown column type %q", name)
}

// Column is the configuration of one column position.
type Column struct {
	Type Type
	// Format is the input format of date cells, e.g. "YYYY/MM/DD".
	Format string
	// ToString is the output format: a date pattern for date columns or a
	// number spec such as "N2" for number columns.
	ToString string
	// Unit is appended to displayed number cells.
	Unit   string
	Locale string
}

// Display renders a raw cell the way it is shown to the user.
func (c Column) Display(raw string, loc *time.Location) string {
	switch c.Type {
	case TypeDate:
		if c.ToString == "" {
			return raw
		}
		return coerce.FormatDateIn(raw, c.Format, c.ToString, c.Locale, loc)
	case TypeNumber:
		out := raw
		if c.ToString != "" {
			out = coerce.FormatNumber(raw, c.ToString, c.Locale)
		}
		if c.Unit != "" && raw != "" {
			out += c.Unit
		}
		return out
	default:
		return raw
	}
}

// Columns maps column positions to their configuration.
type Columns map[int]Column

// At returns the configuration for position i, or a string column when none
// was configured.
func (c Columns) At(i int) Column {
	if col, ok := c[i]; ok {
		return col
	}
	return Column{Type: TypeString}
}

// WithDefaultLocale returns a copy of c where every column without a locale
// uses locale.
func (c Columns) WithDefaultLocale(locale string) Columns {
	out := make(Columns, len(c))
	for i, col := range c {
		if col.Locale == "" {
			col.Locale = locale
		}
		out[i] = col
	}
	return out
}
