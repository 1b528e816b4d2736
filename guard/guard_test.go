package guard_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"lazy-freeze/guard"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	all := guard.ProtectAll()
	selective := guard.ProtectFields("Name", "Age")
	withItems := guard.ProtectFields("Name")
	withItems.Items = true

	tests := []struct {
		name    string
		frozen  bool
		cfg     guard.Config
		detail  string
		op      guard.OpEnum
		allowed bool
	}{
		{"mutable allows everything under all", false, all, "Name", guard.OpSetField, true},
		{"mutable allows item ops under all", false, all, "k", guard.OpSetItem, true},
		{"frozen all denies set field", true, all, "Name", guard.OpSetField, false},
		{"frozen all denies clear field", true, all, "Name", guard.OpClearField, false},
		{"frozen all denies set item", true, all, "k", guard.OpSetItem, false},
		{"frozen all denies delete item", true, all, "k", guard.OpDeleteItem, false},
		{"frozen all denies in-place", true, all, "", guard.OpInPlace, false},
		{"frozen selective denies listed field", true, selective, "Name", guard.OpSetField, false},
		{"frozen selective denies listed field clear", true, selective, "Age", guard.OpClearField, false},
		{"frozen selective allows unlisted field", true, selective, "Description", guard.OpSetField, true},
		{"frozen selective lets item ops through", true, selective, "k", guard.OpSetItem, true},
		{"frozen selective lets in-place through", true, selective, "", guard.OpInPlace, true},
		{"frozen selective+items denies item ops", true, withItems, "k", guard.OpDeleteItem, false},
		{"frozen selective+items denies in-place", true, withItems, "", guard.OpInPlace, false},
		{"frozen selective+items still allows unlisted field", true, withItems, "Age", guard.OpSetField, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := guard.Evaluate(tt.frozen, tt.cfg, tt.detail, tt.op)
			assert.Equal(t, tt.allowed, res.Allowed())

			if tt.allowed {
				assert.Equal(t, guard.Allow, res.Decision)
				assert.Empty(t, res.Reason)
			} else {
				assert.Equal(t, guard.Deny, res.Decision)
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

func TestPhrase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `modify attribute "Age" of`, guard.OpSetField.Phrase("Age"))
	assert.Equal(t, `clear attribute "Age" of`, guard.OpClearField.Phrase("Age"))
	assert.Equal(t, `modify item "sku-1" of`, guard.OpSetItem.Phrase("sku-1"))
	assert.Equal(t, "modify an item of", guard.OpSetItem.Phrase(""))
	assert.Equal(t, "delete an item of", guard.OpDeleteItem.Phrase(""))
	assert.Equal(t, "apply an in-place update to", guard.OpInPlace.Phrase(""))
}

func ExampleEvaluate() {
	cfg := guard.ProtectFields("Name")

	fmt.Println(guard.Evaluate(false, cfg, "Name", guard.OpSetField).Allowed())
	fmt.Println(guard.Evaluate(true, cfg, "Name", guard.OpSetField).Allowed())
	fmt.Println(guard.Evaluate(true, cfg, "Age", guard.OpSetField).Allowed())
	fmt.Println(guard.Evaluate(true, cfg, "k", guard.OpSetItem).Allowed())
	fmt.Println(guard.Evaluate(true, guard.ProtectAll(), "k", guard.OpSetItem).Allowed())

	// Output:
	// true
	// false
	// true
	// true
	// false
}

func ExampleOpEnum_String() {
	fmt.Println(guard.OpSetField, guard.OpClearField, guard.OpSetItem, guard.OpDeleteItem, guard.OpInPlace)
	fmt.Println(guard.OpEnum(0))

	// Output:
	// OpSetField OpClearField OpSetItem OpDeleteItem OpInPlace
	// OpEnum(0)
}
