package guard

import "fmt"

//go:generate go tool stringer -type=OpEnum -output=op_string.go

// OpEnum identifies an intercepted mutating operation.
type OpEnum int

const (
	_ OpEnum = iota // skip zero value, use it as a default (invalid) value for OpEnum

	OpSetField
	OpClearField
	OpSetItem
	OpDeleteItem
	OpInPlace

	// OpTotal is a constant that represents the total number of operations defined
	OpTotal = int(iota)
)

// FieldScoped reports whether the operation targets a single named field.
// Item and in-place operations mutate the container as a whole and carry
// no field name.
func (op OpEnum) FieldScoped() bool {
	switch op {
	default:
		return false
	case OpSetField, OpClearField:
		return true
	}
}

// Phrase is the human wording of an attempted operation for denial
// messages. detail is the field name or rendered item key, empty when the
// operation has neither.
func (op OpEnum) Phrase(detail string) string {
	switch op {
	default:
		return "mutate"
	case OpSetField:
		return fmt.Sprintf("modify attribute %q of", detail)
	case OpClearField:
		return fmt.Sprintf("clear attribute %q of", detail)
	case OpSetItem:
		if detail == "" {
			return "modify an item of"
		}
		return fmt.Sprintf("modify item %q of", detail)
	case OpDeleteItem:
		if detail == "" {
			return "delete an item of"
		}
		return fmt.Sprintf("delete item %q of", detail)
	case OpInPlace:
		return "apply an in-place update to"
	}
}
