package adventure

import (
	"fmt"
	"strings"
)

// ActionOp identifies what a single slot of an action does. Most opcodes
// are built-in interpreter verbs; OpMessage prints a message by index,
// and OpInvalid preserves an unrecognized raw value so it can be written
// back out unchanged.
//
// OpRemoveItem2 and OpDescribeRoom2 behave identically to their
// counterparts but occupy distinct raw values in the format, so they are
// kept as distinct opcodes for round-trip fidelity.
type ActionOp uint8

const (
	OpNothing ActionOp = iota
	OpMessage
	OpGetItem
	OpDropItem
	OpMovePlayer
	OpRemoveItem
	OpSetDarkness
	OpClearDarkness
	OpSetBit
	OpRemoveItem2
	OpClearBit
	OpDeath
	OpPutItem
	OpGameOver
	OpDescribeRoom
	OpScore
	OpInventory
	OpSetBit0
	OpClearBit0
	OpRefillLight
	OpClearScreen
	OpSaveGame
	OpSwapItems
	OpContinue
	OpTakeItem
	OpMoveItemToItem
	OpDescribeRoom2
	OpDecrementCounter
	OpPrintCounter
	OpSetCounter
	OpSwapLocation
	OpSelectCounter
	OpAddToCounter
	OpSubFromCounter
	OpEchoNoun
	OpEchoNounCR
	OpEchoCR
	OpSwapLocationN
	OpDelay
	OpDrawPicture
	OpInvalid
)

// rawByOp maps each built-in opcode to its stored integer value. The
// message ranges and OpNothing/OpInvalid are handled separately.
var rawByOp = map[ActionOp]int32{
	OpGetItem:          52,
	OpDropItem:         53,
	OpMovePlayer:       54,
	OpRemoveItem:       55,
	OpSetDarkness:      56,
	OpClearDarkness:    57,
	OpSetBit:           58,
	OpRemoveItem2:      59,
	OpClearBit:         60,
	OpDeath:            61,
	OpPutItem:          62,
	OpGameOver:         63,
	OpDescribeRoom:     64,
	OpScore:            65,
	OpInventory:        66,
	OpSetBit0:          67,
	OpClearBit0:        68,
	OpRefillLight:      69,
	OpClearScreen:      70,
	OpSaveGame:         71,
	OpSwapItems:        72,
	OpContinue:         73,
	OpTakeItem:         74,
	OpMoveItemToItem:   75,
	OpDescribeRoom2:    76,
	OpDecrementCounter: 77,
	OpPrintCounter:     78,
	OpSetCounter:       79,
	OpSwapLocation:     80,
	OpSelectCounter:    81,
	OpAddToCounter:     82,
	OpSubFromCounter:   83,
	OpEchoNoun:         84,
	OpEchoNounCR:       85,
	OpEchoCR:           86,
	OpSwapLocationN:    87,
	OpDelay:            88,
	OpDrawPicture:      89,
}

var opByRaw = make(map[int32]ActionOp, len(rawByOp))

func init() {
	for op, raw := range rawByOp {
		opByRaw[raw] = op
	}
}

// String returns the opcode name.
func (op ActionOp) String() string {
	switch op {
	case OpNothing:
		return "Nothing"
	case OpMessage:
		return "Message"
	case OpGetItem:
		return "GetItem"
	case OpDropItem:
		return "DropItem"
	case OpMovePlayer:
		return "MovePlayer"
	case OpRemoveItem:
		return "RemoveItem"
	case OpSetDarkness:
		return "SetDarkness"
	case OpClearDarkness:
		return "ClearDarkness"
	case OpSetBit:
		return "SetBit"
	case OpRemoveItem2:
		return "RemoveItem2"
	case OpClearBit:
		return "ClearBit"
	case OpDeath:
		return "Death"
	case OpPutItem:
		return "PutItem"
	case OpGameOver:
		return "GameOver"
	case OpDescribeRoom:
		return "DescribeRoom"
	case OpScore:
		return "Score"
	case OpInventory:
		return "Inventory"
	case OpSetBit0:
		return "SetBit0"
	case OpClearBit0:
		return "ClearBit0"
	case OpRefillLight:
		return "RefillLight"
	case OpClearScreen:
		return "ClearScreen"
	case OpSaveGame:
		return "SaveGame"
	case OpSwapItems:
		return "SwapItems"
	case OpContinue:
		return "Continue"
	case OpTakeItem:
		return "TakeItem"
	case OpMoveItemToItem:
		return "MoveItemToItem"
	case OpDescribeRoom2:
		return "DescribeRoom2"
	case OpDecrementCounter:
		return "DecrementCounter"
	case OpPrintCounter:
		return "PrintCounter"
	case OpSetCounter:
		return "SetCounter"
	case OpSwapLocation:
		return "SwapLocation"
	case OpSelectCounter:
		return "SelectCounter"
	case OpAddToCounter:
		return "AddToCounter"
	case OpSubFromCounter:
		return "SubFromCounter"
	case OpEchoNoun:
		return "EchoNoun"
	case OpEchoNounCR:
		return "EchoNounCR"
	case OpEchoCR:
		return "EchoCR"
	case OpSwapLocationN:
		return "SwapLocationN"
	case OpDelay:
		return "Delay"
	case OpDrawPicture:
		return "DrawPicture"
	case OpInvalid:
		return "Invalid"
	default:
		return "UNKNOWN"
	}
}

// ActionType is one of the four slots of an action. Arg holds the
// message index for OpMessage and the raw stored value for OpInvalid;
// it is zero for everything else.
type ActionType struct {
	Op  ActionOp `yaml:"op"`
	Arg int32    `yaml:"arg,omitempty"`
}

// DecodeActionType converts a stored action slot value into an
// ActionType. Values 1-51 and 102-150 are both message prints: each
// stored integer holds two slots in base 150, so message indices past 50
// reuse the tail of the 0-149 range, offset by 51.
func DecodeActionType(num int32) ActionType {
	switch {
	case num == 0:
		return ActionType{Op: OpNothing}
	case num >= 1 && num <= 51:
		return ActionType{Op: OpMessage, Arg: num - 1}
	case num >= 102 && num <= 150:
		return ActionType{Op: OpMessage, Arg: num - 51}
	}
	if op, ok := opByRaw[num]; ok {
		return ActionType{Op: op}
	}
	return ActionType{Op: OpInvalid, Arg: num}
}

// Encode converts the ActionType back into its stored value. It is the
// exact inverse of DecodeActionType.
func (a ActionType) Encode() int32 {
	switch a.Op {
	case OpNothing:
		return 0
	case OpMessage:
		if a.Arg <= 50 {
			return a.Arg + 1
		}
		return a.Arg + 51
	case OpInvalid:
		return a.Arg
	}
	return rawByOp[a.Op]
}

// String returns a developer-readable form of the slot.
func (a ActionType) String() string {
	switch a.Op {
	case OpMessage:
		return fmt.Sprintf("Message(%d)", a.Arg)
	case OpInvalid:
		return fmt.Sprintf("Invalid(%d)", a.Arg)
	}
	return a.Op.String()
}

// MarshalYAML renders the slot compactly in YAML dumps.
func (a ActionType) MarshalYAML() (any, error) {
	return a.String(), nil
}

// Action is a verb+noun trigger with up to five conditions and up to
// four effects. The comment is pure documentation, stored in a separate
// section late in the file and matched back to actions by position; an
// empty string means no comment.
type Action struct {
	VerbIndex  int32         `yaml:"verb_index"`
	NounIndex  int32         `yaml:"noun_index"`
	Conditions [5]Condition  `yaml:"conditions"`
	Actions    [4]ActionType `yaml:"actions"`
	Comment    string        `yaml:"comment,omitempty"`
}

// String returns a developer-readable form of the action.
func (a Action) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "verb=%d noun=%d when", a.VerbIndex, a.NounIndex)
	for _, c := range a.Conditions {
		fmt.Fprintf(&sb, " %s", c)
	}
	sb.WriteString(" do")
	for _, at := range a.Actions {
		fmt.Fprintf(&sb, " %s", at)
	}
	if a.Comment != "" {
		fmt.Fprintf(&sb, " ; %s", a.Comment)
	}
	return sb.String()
}
