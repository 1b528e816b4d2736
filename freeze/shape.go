package freeze

import "reflect"

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum classifies the wrapped value; the shape decides which
// mutating operations the façade supports.
type ShapeEnum int

const (
	_ ShapeEnum = iota // skip zero value, use it as a default (invalid) value for ShapeEnum

	ShapeStruct // field operations: Set, Clear, Get
	ShapeMap    // item operations: SetItem, DeleteItem
	ShapeSlice  // item operations plus Append
	ShapeScalar // only whole-value updates via Mutate

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

func shapeOf(rtype reflect.Type) ShapeEnum {
	switch rtype.Kind() {
	default:
		return ShapeScalar
	case reflect.Struct:
		return ShapeStruct
	case reflect.Map:
		return ShapeMap
	case reflect.Slice:
		return ShapeSlice
	}
}

func typeName(rtype reflect.Type) string {
	if name := rtype.Name(); name != "" {
		return name
	}

	return rtype.String()
}
