package adventure

import (
	"testing"
)

func TestActionType_RawRoundTrip(t *testing.T) {
	// Every stored value in the packed range must decode and re-encode
	// to itself, including the unassigned gaps (90-101) and anything
	// past 150, which become OpInvalid but keep their raw value.
	for raw := int32(0); raw <= 200; raw++ {
		at := DecodeActionType(raw)
		if got := at.Encode(); got != raw {
			t.Errorf("DecodeActionType(%d).Encode() = %d (%s)", raw, got, at)
		}
	}
}

func TestActionType_MessageRanges(t *testing.T) {
	tests := []struct {
		raw     int32
		wantArg int32
	}{
		{1, 0},
		{51, 50},
		{102, 51},
		{150, 99},
	}
	for _, tt := range tests {
		at := DecodeActionType(tt.raw)
		if at.Op != OpMessage || at.Arg != tt.wantArg {
			t.Errorf("DecodeActionType(%d) = %s, want Message(%d)", tt.raw, at, tt.wantArg)
		}
	}

	// 52 starts the built-in verbs, not a third message range.
	if at := DecodeActionType(52); at.Op != OpGetItem {
		t.Errorf("DecodeActionType(52) = %s, want GetItem", at)
	}
}

func TestActionType_DuplicateOpcodes(t *testing.T) {
	// 55/59 and 64/76 are distinct opcodes with identical behavior;
	// collapsing them would break the byte-level round trip.
	tests := []struct {
		raw int32
		op  ActionOp
	}{
		{55, OpRemoveItem},
		{59, OpRemoveItem2},
		{64, OpDescribeRoom},
		{76, OpDescribeRoom2},
	}
	for _, tt := range tests {
		at := DecodeActionType(tt.raw)
		if at.Op != tt.op {
			t.Errorf("DecodeActionType(%d) = %s, want %s", tt.raw, at.Op, tt.op)
		}
		if got := at.Encode(); got != tt.raw {
			t.Errorf("%s.Encode() = %d, want %d", tt.op, got, tt.raw)
		}
	}
}

func TestActionType_Invalid(t *testing.T) {
	for _, raw := range []int32{90, 101, 151, 999, -3} {
		at := DecodeActionType(raw)
		if at.Op != OpInvalid || at.Arg != raw {
			t.Errorf("DecodeActionType(%d) = %v, want Invalid(%d)", raw, at, raw)
		}
	}
}

func TestActionPair_PackingLaw(t *testing.T) {
	// Two slots per stored integer, base 150.
	for _, first := range []int32{0, 1, 52, 77, 149} {
		for _, second := range []int32{0, 1, 52, 77, 149} {
			num := first*150 + second
			if num/150 != first || num%150 != second {
				t.Errorf("pair (%d, %d): %d does not unpack", first, second, num)
			}
		}
	}
}

func TestActionOp_String(t *testing.T) {
	for op := OpNothing; op <= OpInvalid; op++ {
		if op.String() == "UNKNOWN" {
			t.Errorf("ActionOp(%d) has no name", op)
		}
	}
	if got := ActionOp(200).String(); got != "UNKNOWN" {
		t.Errorf("ActionOp(200).String() = %q, want UNKNOWN", got)
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		at   ActionType
		want string
	}{
		{ActionType{Op: OpNothing}, "Nothing"},
		{ActionType{Op: OpMessage, Arg: 12}, "Message(12)"},
		{ActionType{Op: OpInvalid, Arg: 97}, "Invalid(97)"},
		{ActionType{Op: OpRefillLight}, "RefillLight"},
	}
	for _, tt := range tests {
		if got := tt.at.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
