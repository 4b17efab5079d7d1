package adventure

import "fmt"

// ConditionType identifies one of the twenty predicate forms a condition
// can take. The stored integer is type + 20*parameter, so for well-formed
// files the type is always in [0, 19].
type ConditionType uint8

const (
	CondParameter ConditionType = iota // no predicate; parameter feeds the action
	CondItemCarried
	CondItemInRoom
	CondItemPresent // carried or in the current room
	CondPlayerInRoom
	CondItemNotInRoom
	CondItemNotCarried
	CondPlayerNotInRoom
	CondBitSet
	CondBitClear
	CondInventoryNotEmpty
	CondInventoryEmpty
	CondItemNotPresent
	CondItemInGame
	CondItemNotInGame
	CondCounterLE
	CondCounterGE
	CondItemMoved
	CondItemNotMoved
	CondCounterEQ
)

// String returns the condition type name.
func (t ConditionType) String() string {
	switch t {
	case CondParameter:
		return "Parameter"
	case CondItemCarried:
		return "ItemCarried"
	case CondItemInRoom:
		return "ItemInRoom"
	case CondItemPresent:
		return "ItemPresent"
	case CondPlayerInRoom:
		return "PlayerInRoom"
	case CondItemNotInRoom:
		return "ItemNotInRoom"
	case CondItemNotCarried:
		return "ItemNotCarried"
	case CondPlayerNotInRoom:
		return "PlayerNotInRoom"
	case CondBitSet:
		return "BitSet"
	case CondBitClear:
		return "BitClear"
	case CondInventoryNotEmpty:
		return "InventoryNotEmpty"
	case CondInventoryEmpty:
		return "InventoryEmpty"
	case CondItemNotPresent:
		return "ItemNotPresent"
	case CondItemInGame:
		return "ItemInGame"
	case CondItemNotInGame:
		return "ItemNotInGame"
	case CondCounterLE:
		return "CounterLE"
	case CondCounterGE:
		return "CounterGE"
	case CondItemMoved:
		return "ItemMoved"
	case CondItemNotMoved:
		return "ItemNotMoved"
	case CondCounterEQ:
		return "CounterEQ"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML renders the type by name in YAML dumps.
func (t ConditionType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Condition is a parameterized predicate gating an action's effects.
type Condition struct {
	Type      ConditionType `yaml:"type"`
	Parameter int32         `yaml:"parameter"`
}

// DecodeCondition unpacks a stored condition integer. The input must be
// non-negative; the parser rejects negative values before calling this.
func DecodeCondition(num int32) Condition {
	return Condition{
		Type:      ConditionType(num % 20),
		Parameter: num / 20,
	}
}

// Encode packs the condition back into its stored integer form. It is
// the exact inverse of DecodeCondition.
func (c Condition) Encode() int32 {
	return int32(c.Type) + 20*c.Parameter
}

// String returns a developer-readable form of the condition.
func (c Condition) String() string {
	return fmt.Sprintf("%s(%d)", c.Type, c.Parameter)
}
