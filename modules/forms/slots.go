package forms

import (
	"slices"

	"github.com/samber/lo"
)

// Slots maps a field name to its current validation message.
// An empty message means the field is valid.
type Slots map[string]string

func newSlots(fields ...string) Slots {
	return Slots(lo.SliceToMap(fields, func(f string) (string, string) {
		return f, ""
	}))
}

// Valid reports whether no slot holds a message.
func (s Slots) Valid() bool {
	return len(s.Errors()) == 0
}

// Errors returns only the slots that hold a message.
func (s Slots) Errors() Slots {
	return Slots(lo.PickBy(s, func(_ string, msg string) bool {
		return msg != ""
	}))
}

// Fields returns the sorted names of the fields that hold a message.
func (s Slots) Fields() []string {
	fields := lo.Keys(s.Errors())
	slices.Sort(fields)
	return fields
}

// merge returns a new slot set with fragment applied over s.
func (s Slots) merge(fragment Slots) Slots {
	return lo.Assign(s, fragment)
}
