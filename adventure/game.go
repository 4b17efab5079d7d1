package adventure

import (
	"fmt"
	"strings"
)

const (
	// EternalLight in Header.LightDuration means the light source never
	// runs out.
	EternalLight = -1

	// Inventory in Item.Location means the item starts in the player's
	// inventory rather than in a room.
	Inventory = -1
)

// Game is the complete in-memory form of an adventure data file. A Game
// is built in one shot by Parse and is not mutated afterward; Write
// serializes it back to the exact bytes it came from.
type Game struct {
	Header   Header   `yaml:"header"`
	Actions  []Action `yaml:"actions"`
	Verbs    []Word   `yaml:"verbs"`
	Nouns    []Word   `yaml:"nouns"`
	Rooms    []Room   `yaml:"rooms"`
	Messages []string `yaml:"messages"`
	Items    []Item   `yaml:"items"`
	Footer   Footer   `yaml:"footer"`
}

// Header holds the twelve integers that open a game file. The item,
// action, word, room, and message counts are stored on disk as one less
// than the true count ("option base 0"); the fields here hold the true
// counts, adjusted on read and write.
type Header struct {
	// Unknown purpose; carried through verbatim.
	Unknown int32 `yaml:"unknown"`
	// Number of items.
	NumItems int32 `yaml:"num_items"`
	// Number of actions.
	NumActions int32 `yaml:"num_actions"`
	// Number of verbs and also of nouns.
	NumWords int32 `yaml:"num_words"`
	// Number of rooms.
	NumRooms int32 `yaml:"num_rooms"`
	// Maximum number of items the player can carry.
	MaxInventory int32 `yaml:"max_inventory"`
	// 0-based index of the starting room.
	StartingRoom int32 `yaml:"starting_room"`
	// Number of treasures (redundant with the item descriptions).
	NumTreasures int32 `yaml:"num_treasures"`
	// Significant word length for vocabulary matching (3, 4, or 5).
	WordLength int32 `yaml:"word_length"`
	// Number of turns of light, or EternalLight.
	LightDuration int32 `yaml:"light_duration"`
	// Number of messages.
	NumMessages int32 `yaml:"num_messages"`
	// 0-based index of the room where treasures score.
	TreasureRoom int32 `yaml:"treasure_room"`
}

// String returns a developer-readable summary of the header.
func (h Header) String() string {
	return fmt.Sprintf(
		"items=%d actions=%d words=%d rooms=%d messages=%d carry=%d start=%d treasures=%d wordlen=%d light=%d vault=%d unknown=%d",
		h.NumItems, h.NumActions, h.NumWords, h.NumRooms, h.NumMessages,
		h.MaxInventory, h.StartingRoom, h.NumTreasures, h.WordLength,
		h.LightDuration, h.TreasureRoom, h.Unknown)
}

// Word is a vocabulary entry, either a verb or a noun. Text holds the
// full stored string; only the first Header.WordLength characters are
// significant to an interpreter, but the rest must survive a round trip.
type Word struct {
	// The word text, with any synonym marker stripped.
	Text string `yaml:"text"`
	// True if the stored string had a leading "*", marking this word as
	// a synonym of the previous one.
	IsSynonym bool `yaml:"is_synonym,omitempty"`
}

// String returns a developer-readable form of the word.
func (w Word) String() string {
	if w.IsSynonym {
		return fmt.Sprintf("%q (synonym)", w.Text)
	}
	return fmt.Sprintf("%q", w.Text)
}

// Room is a single location with exits in the six conventional
// directions: north, south, east, west, up, down. An exit value is a
// 0-based room index; 0 means no exit.
type Room struct {
	Exits       [6]int32 `yaml:"exits"`
	Description string   `yaml:"description"`
	// True if the stored description had a leading "*", meaning it is
	// printed standalone instead of behind a "You are in a" prefix.
	IsLiteral bool `yaml:"is_literal,omitempty"`
}

// String returns a developer-readable form of the room.
func (r Room) String() string {
	desc := r.Description
	if r.IsLiteral {
		desc = "*" + desc
	}
	parts := make([]string, len(r.Exits))
	for i, exit := range r.Exits {
		parts[i] = fmt.Sprintf("%d", exit)
	}
	return fmt.Sprintf("%q exits=[%s]", desc, strings.Join(parts, " "))
}

// Item is an object the player can interact with. A leading "*" in the
// description marks a treasure; unlike the word and room markers it is
// part of the description proper and is not stripped.
type Item struct {
	Description string `yaml:"description"`
	// Starting location: a 0-based room index, or Inventory.
	Location int32 `yaml:"location"`
	// True if the description starts with "*".
	IsTreasure bool `yaml:"is_treasure,omitempty"`
	// Noun for automatic GET/DROP, taken from a trailing "/NAME/" on
	// the stored description. Nil when absent; a pointer because an
	// empty-but-present "//" suffix must round-trip differently from
	// no suffix at all.
	Autograb *string `yaml:"autograb,omitempty"`
}

// String returns a developer-readable form of the item.
func (i Item) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q at %d", i.Description, i.Location)
	if i.IsTreasure {
		sb.WriteString(" treasure")
	}
	if i.Autograb != nil {
		fmt.Fprintf(&sb, " autograb=%q", *i.Autograb)
	}
	return sb.String()
}

// Footer holds the three integers that close a game file.
type Footer struct {
	// The format version number.
	Version int32 `yaml:"version"`
	// The adventure number.
	Adventure int32 `yaml:"adventure"`
	// Opaque; carried through verbatim.
	Magic int32 `yaml:"magic"`
}

// String returns a developer-readable form of the footer.
func (f Footer) String() string {
	return fmt.Sprintf("version=%d adventure=%d magic=%d", f.Version, f.Adventure, f.Magic)
}
