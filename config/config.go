// Package config reads column configuration files.
//
// A configuration names columns by header or position and gives each a
// type, input and output formats, a unit and a locale. YAML and TOML files
// are accepted:
//
//	locale: de-DE
//	timezone: Europe/Berlin
//	columns:
//	  - name: joined
//	    type: date
//	    format: DD.MM.YYYY
//	    toString: YYYY-MM-DD
//	  - index: 2
//	    type: number
//	    toString: N2
//	    unit: " kg"
//	hidden: [notes]
//	sort:
//	  column: joined
//	  descending: true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vegasq/tabview/schema"
	"github.com/vegasq/tabview/table"
)

var (
	// ErrUnknownColumn is returned when a configuration names a column the
	// data does not have.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrUnknownType is returned for column types other than string,
	// number, date, url and image.
	ErrUnknownType = errors.New("unknown column type")
)

// Config is the content of a configuration file.
type Config struct {
	Locale   string   `yaml:"locale" toml:"locale"`
	Timezone string   `yaml:"timezone" toml:"timezone"`
	Columns  []Column `yaml:"columns" toml:"columns"`
	Hidden   []string `yaml:"hidden" toml:"hidden"`
	Sort     *Sort    `yaml:"sort" toml:"sort"`
}

// Column configures one column, found by Name or, when Name is empty, by
// 0-based Index.
type Column struct {
	Name     string `yaml:"name" toml:"name"`
	Index    *int   `yaml:"index" toml:"index"`
	Type     string `yaml:"type" toml:"type"`
	Format   string `yaml:"format" toml:"format"`
	ToString string `yaml:"toString" toml:"toString"`
	Unit     string `yaml:"unit" toml:"unit"`
	Locale   string `yaml:"locale" toml:"locale"`
}

// Sort is the initial sort of the view.
type Sort struct {
	Column     string `yaml:"column" toml:"column"`
	Descending bool   `yaml:"descending" toml:"descending"`
}

// Resolved is a Config bound to the headers of a loaded table.
type Resolved struct {
	Columns schema.Columns
	Hidden  []int
	Sort    table.SortState
}

// Load reads a configuration file. The format follows the extension:
// .toml for TOML, anything else is read as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Location returns the time zone of the configuration: time.Local when
// unset, otherwise "UTC", "Local" or an IANA name.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Resolve binds the configuration to headers.
func (c *Config) Resolve(headers schema.Headers) (*Resolved, error) {
	res := &Resolved{
		Columns: make(schema.Columns),
		Sort:    table.Unsorted(),
	}

	for _, col := range c.Columns {
		i, err := position(headers, col.Name, col.Index)
		if err != nil {
			return nil, err
		}
		typ, err := schema.ParseType(col.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w: %q", headers[i], ErrUnknownType, col.Type)
		}
		res.Columns[i] = schema.Column{
			Type:     typ,
			Format:   col.Format,
			ToString: col.ToString,
			Unit:     col.Unit,
			Locale:   col.Locale,
		}
	}

	for _, name := range c.Hidden {
		i, err := position(headers, name, nil)
		if err != nil {
			return nil, err
		}
		res.Hidden = append(res.Hidden, i)
	}

	if c.Sort != nil && c.Sort.Column != "" {
		i, err := position(headers, c.Sort.Column, nil)
		if err != nil {
			return nil, err
		}
		res.Sort = table.SortState{Column: i, Ascending: !c.Sort.Descending}
	}

	return res, nil
}

func position(headers schema.Headers, name string, index *int) (int, error) {
	if name != "" {
		if i, ok := headers.Index(name); ok {
			return i, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if index != nil && *index >= 0 && *index < len(headers) {
		return *index, nil
	}
	if index != nil {
		return 0, fmt.Errorf("%w: index %d", ErrUnknownColumn, *index)
	}
	return 0, fmt.Errorf("%w: column needs a name or an index", ErrUnknownColumn)
}
