package reader

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabview/schema"
)

// SchemaInfo represents metadata about a single column in a Parquet file.
type SchemaInfo struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Column       string `json:"column"`
	Required     bool   `json:"required"`
	Optional     bool   `json:"optional"`
	Repeated     bool   `json:"repeated"`
}

// ExtractSchemaInfo extracts schema information from a Parquet file.
//
// For nested types, field names use dot notation (e.g., "address.street").
// Column is the tabview column type the field is displayed as.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	reader, err := NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = reader.Close() }()

	var infos []SchemaInfo
	for _, field := range reader.Schema().Fields() {
		infos = append(infos, extractFieldInfo(field, "", false)...)
	}

	return infos, nil
}

// extractFieldInfo recursively extracts schema information from a field,
// tracking whether any parent field is repeated.
func extractFieldInfo(field parquet.Field, prefix string, parentRepeated bool) []SchemaInfo {
	fieldName := field.Name()
	if prefix != "" {
		fieldName = prefix + "." + fieldName
	}

	isRepeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		var infos []SchemaInfo
		for _, child := range children {
			infos = append(infos, extractFieldInfo(child, fieldName, isRepeated)...)
		}
		return infos
	}

	return []SchemaInfo{{
		Name:         fieldName,
		Type:         userFriendlyType(field),
		PhysicalType: physicalType(field),
		LogicalType:  logicalType(field),
		Column:       inferColumn(field).Type.String(),
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     isRepeated,
	}}
}

// InferColumns derives column configuration from top-level parquet fields:
// numeric fields become number columns and DATE or TIMESTAMP fields become
// date columns whose input format matches the cell rendering of the reader.
// Other fields are left unconfigured.
func InferColumns(fields []parquet.Field) schema.Columns {
	cols := make(schema.Columns)
	for i, f := range fields {
		if col := inferColumn(f); col.Type != schema.TypeString {
			cols[i] = col
		}
	}
	return cols
}

func inferColumn(field parquet.Field) schema.Column {
	if field.Type() == nil || field.Repeated() || len(field.Fields()) > 0 {
		return schema.Column{Type: schema.TypeString}
	}

	switch temporalKindOf(field) {
	case temporalNone:
	case temporalDate:
		return schema.Column{Type: schema.TypeDate, Format: "YYYY-MM-DD"}
	default:
		return schema.Column{Type: schema.TypeDate, Format: "YYYY-MM-DDTHH:mm:ssZ"}
	}

	if lt := field.Type().LogicalType(); lt != nil && (lt.UTF8 != nil || lt.Enum != nil || lt.Json != nil || lt.UUID != nil) {
		return schema.Column{Type: schema.TypeString}
	}

	switch field.Type().Kind() {
	case parquet.Int32, parquet.Int64, parquet.Float, parquet.Double:
		return schema.Column{Type: schema.TypeNumber}
	default:
		return schema.Column{Type: schema.TypeString}
	}
}

// temporalKind is the calendar meaning of an integer parquet field.
type temporalKind int

const (
	temporalNone temporalKind = iota
	temporalDate
	temporalMillis
	temporalMicros
	temporalNanos
)

func temporalKindOf(field parquet.Field) temporalKind {
	if field.Type() == nil {
		return temporalNone
	}
	lt := field.Type().LogicalType()
	switch {
	case lt == nil:
		return temporalNone
	case lt.Date != nil:
		return temporalDate
	case lt.Timestamp != nil:
		switch unit := lt.Timestamp.Unit; {
		case unit.Millis != nil:
			return temporalMillis
		case unit.Micros != nil:
			return temporalMicros
		default:
			return temporalNanos
		}
	default:
		return temporalNone
	}
}

func (k temporalKind) fromInt(n int64) time.Time {
	switch k {
	case temporalMillis:
		return time.UnixMilli(n)
	case temporalMicros:
		return time.UnixMicro(n)
	default:
		return time.Unix(0, n)
	}
}

// physicalType returns the physical type name of a Parquet field.
func physicalType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// logicalType returns the logical type name of a Parquet field.
func logicalType(field parquet.Field) string {
	if field.Type() == nil {
		return ""
	}
	lt := field.Type().LogicalType()
	if lt == nil {
		return ""
	}
	return lt.String()
}

// userFriendlyType returns a short type name for a Parquet field.
func userFriendlyType(field parquet.Field) string {
	if field.Type() == nil {
		return "GROUP"
	}

	switch temporalKindOf(field) {
	case temporalDate:
		return "DATE"
	case temporalMillis, temporalMicros, temporalNanos:
		return "TIMESTAMP"
	}

	if lt := field.Type().LogicalType(); lt != nil {
		switch {
		case lt.UTF8 != nil:
			return "STRING"
		case lt.Enum != nil:
			return "ENUM"
		case lt.UUID != nil:
			return "UUID"
		case lt.Decimal != nil:
			return "DECIMAL"
		case lt.Json != nil:
			return "JSON"
		case lt.Time != nil:
			return "TIME"
		}
	}

	switch field.Type().Kind() {
	case parquet.Float:
		return "FLOAT32"
	case parquet.Double:
		return "FLOAT64"
	default:
		return physicalType(field)
	}
}
