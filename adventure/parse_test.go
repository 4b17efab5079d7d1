package adventure

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func intTok(n int32) Token {
	return Token{Type: TokenInt, Int: n}
}

func strTok(s string) Token {
	return Token{Type: TokenStr, Str: s}
}

// headerTokens returns the twelve on-disk header integers.
func headerTokens(unknown, items, actions, words, rooms, carry, start, treasures, wordLen, light, messages, vault int32) []Token {
	var toks []Token
	for _, n := range []int32{unknown, items, actions, words, rooms, carry, start, treasures, wordLen, light, messages, vault} {
		toks = append(toks, intTok(n))
	}
	return toks
}

func TestParse_HeaderCountAdjustment(t *testing.T) {
	// On-disk counts are one less than the true counts.
	toks := headerTokens(9, 5, 0, 0, 0, 6, 1, 2, 3, -1, 0, 4)
	h, err := parseHeader(NewStream(toks))
	if err != nil {
		t.Fatalf("parseHeader failed: %v", err)
	}

	want := Header{
		Unknown:       9,
		NumItems:      6,
		NumActions:    1,
		NumWords:      1,
		NumRooms:      1,
		MaxInventory:  6,
		StartingRoom:  1,
		NumTreasures:  2,
		WordLength:    3,
		LightDuration: EternalLight,
		NumMessages:   1,
		TreasureRoom:  4,
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyGame(t *testing.T) {
	// A game whose on-disk counts are all -1 has no actions, words,
	// rooms, messages, or items; just a header and a footer.
	toks := headerTokens(0, -1, -1, -1, -1, 0, 0, 0, 3, 0, -1, 0)
	toks = append(toks, intTok(1), intTok(2), intTok(3))

	game, err := Parse(NewStream(toks))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := &Game{
		Header: Header{WordLength: 3},
		Footer: Footer{Version: 1, Adventure: 2, Magic: 3},
	}
	if diff := cmp.Diff(want, game, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("game mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_WordSynonyms(t *testing.T) {
	toks := []Token{
		strTok("GO"), strTok("NORTH"),
		strTok("*RUN"), strTok("*NOR"),
	}
	verbs, nouns, err := parseWords(NewStream(toks), 2)
	if err != nil {
		t.Fatalf("parseWords failed: %v", err)
	}

	wantVerbs := []Word{{Text: "GO"}, {Text: "RUN", IsSynonym: true}}
	wantNouns := []Word{{Text: "NORTH"}, {Text: "NOR", IsSynonym: true}}
	if diff := cmp.Diff(wantVerbs, verbs); diff != "" {
		t.Errorf("verbs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantNouns, nouns); diff != "" {
		t.Errorf("nouns mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RoomLiteralMarker(t *testing.T) {
	toks := []Token{
		intTok(1), intTok(2), intTok(3), intTok(4), intTok(5), intTok(6),
		strTok("*Sunlit meadow"),
	}
	room, err := parseRoom(NewStream(toks))
	if err != nil {
		t.Fatalf("parseRoom failed: %v", err)
	}

	want := Room{
		Exits:       [6]int32{1, 2, 3, 4, 5, 6},
		Description: "Sunlit meadow",
		IsLiteral:   true,
	}
	if diff := cmp.Diff(want, room); diff != "" {
		t.Errorf("room mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ItemAutograb(t *testing.T) {
	grab := func(s string) *string { return &s }
	tests := []struct {
		name string
		desc string
		loc  int32
		want Item
	}{
		{
			name: "treasure with autograb",
			desc: "*LAMP/LAMP/",
			loc:  5,
			want: Item{Description: "*LAMP", Location: 5, IsTreasure: true, Autograb: grab("LAMP")},
		},
		{
			name: "plain item",
			desc: "Sign reads KEEP OUT",
			loc:  1,
			want: Item{Description: "Sign reads KEEP OUT", Location: 1},
		},
		{
			name: "empty autograb is present, not absent",
			desc: "Anvil//",
			loc:  0,
			want: Item{Description: "Anvil", Location: 0, Autograb: grab("")},
		},
		{
			name: "only the last two slashes count",
			desc: "Jar of oil/and/vinegar/",
			loc:  3,
			want: Item{Description: "Jar of oil/and", Location: 3, Autograb: grab("vinegar")},
		},
		{
			name: "item held at start",
			desc: "Iron key",
			loc:  Inventory,
			want: Item{Description: "Iron key", Location: Inventory},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := parseItem(NewStream([]Token{strTok(tt.desc), intTok(tt.loc)}))
			if err != nil {
				t.Fatalf("parseItem failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, item); diff != "" {
				t.Errorf("item mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_CommentsByPosition(t *testing.T) {
	actions := []Action{{VerbIndex: 1}, {VerbIndex: 2}, {VerbIndex: 3}}
	toks := []Token{strTok("open the grate"), strTok(""), strTok("magic word")}
	if err := parseComments(NewStream(toks), actions); err != nil {
		t.Fatalf("parseComments failed: %v", err)
	}

	want := []string{"open the grate", "", "magic word"}
	for i, action := range actions {
		if action.Comment != want[i] {
			t.Errorf("action %d comment = %q, want %q", i, action.Comment, want[i])
		}
	}
}

func TestParse_Truncated(t *testing.T) {
	// Only three of the twelve header integers.
	toks := []Token{intTok(0), intTok(1), intTok(2)}
	_, err := Parse(NewStream(toks))
	if err == nil {
		t.Fatal("Parse succeeded on a truncated stream")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Section != "header" {
		t.Errorf("failing section = %q, want header", perr.Section)
	}
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("error does not wrap ErrUnexpectedEnd: %v", err)
	}
}

func TestParse_TypeMismatch(t *testing.T) {
	toks := []Token{intTok(0), intTok(1), strTok("not a count")}
	toks[2].Pos = Position{Line: 3, Column: 1}

	_, err := Parse(NewStream(toks))
	if err == nil {
		t.Fatal("Parse succeeded with a string in the header")
	}

	var terr *TokenError
	if !errors.As(err, &terr) {
		t.Fatalf("error does not wrap *TokenError: %v", err)
	}
	if want := (Position{Line: 3, Column: 1}); terr.Pos != want {
		t.Errorf("error at %s, want %s", terr.Pos, want)
	}
}

func TestParse_NegativeCondition(t *testing.T) {
	// One action whose first condition is negative.
	toks := headerTokens(0, -1, 0, -1, -1, 0, 0, 0, 3, 0, -1, 0)
	toks = append(toks, intTok(151), intTok(-5))

	_, err := Parse(NewStream(toks))
	if err == nil {
		t.Fatal("Parse accepted a negative condition")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Section != "actions" {
		t.Errorf("failing section = %q, want actions", perr.Section)
	}
}
