package adventure

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError represents a structural decode error. It names the section
// of the file being decoded and wraps the underlying cause, which is a
// *TokenError (with a location) when the failure was a bad or missing
// token.
type ParseError struct {
	Section string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Section, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a complete game from a stream of tokens. The sections
// have a fixed order, each sized by a count from the header. Any failure
// aborts the whole decode; the format has no redundancy to resynchronize
// on, so there is no partial result.
func Parse(s *Stream) (*Game, error) {
	header, err := parseHeader(s)
	if err != nil {
		return nil, &ParseError{Section: "header", Err: err}
	}

	actions, err := parseActions(s, header.NumActions)
	if err != nil {
		return nil, &ParseError{Section: "actions", Err: err}
	}

	verbs, nouns, err := parseWords(s, header.NumWords)
	if err != nil {
		return nil, &ParseError{Section: "words", Err: err}
	}

	rooms, err := parseRooms(s, header.NumRooms)
	if err != nil {
		return nil, &ParseError{Section: "rooms", Err: err}
	}

	messages, err := parseMessages(s, header.NumMessages)
	if err != nil {
		return nil, &ParseError{Section: "messages", Err: err}
	}

	items, err := parseItems(s, header.NumItems)
	if err != nil {
		return nil, &ParseError{Section: "items", Err: err}
	}

	if err := parseComments(s, actions); err != nil {
		return nil, &ParseError{Section: "comments", Err: err}
	}

	footer, err := parseFooter(s)
	if err != nil {
		return nil, &ParseError{Section: "footer", Err: err}
	}

	return &Game{
		Header:   header,
		Actions:  actions,
		Verbs:    verbs,
		Nouns:    nouns,
		Rooms:    rooms,
		Messages: messages,
		Items:    items,
		Footer:   footer,
	}, nil
}

// parseHeader reads the twelve header integers, adjusting the
// option-base-0 counts up by one.
func parseHeader(s *Stream) (Header, error) {
	var h Header
	fields := []struct {
		dst    *int32
		adjust int32
	}{
		{&h.Unknown, 0},
		{&h.NumItems, 1},
		{&h.NumActions, 1},
		{&h.NumWords, 1},
		{&h.NumRooms, 1},
		{&h.MaxInventory, 0},
		{&h.StartingRoom, 0},
		{&h.NumTreasures, 0},
		{&h.WordLength, 0},
		{&h.LightDuration, 0},
		{&h.NumMessages, 1},
		{&h.TreasureRoom, 0},
	}
	for _, f := range fields {
		val, err := s.NextInt()
		if err != nil {
			return Header{}, err
		}
		*f.dst = val + f.adjust
	}
	return h, nil
}

func parseActions(s *Stream, count int32) ([]Action, error) {
	actions := make([]Action, 0, count)
	for i := int32(0); i < count; i++ {
		action, err := parseAction(s)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// parseAction reads one action: a packed verb/noun integer, five packed
// conditions, and two packed integers holding the four action slots.
// The comment stays empty here; comments come from their own section
// after the items.
func parseAction(s *Stream) (Action, error) {
	num, err := s.NextInt()
	if err != nil {
		return Action{}, err
	}
	action := Action{
		VerbIndex: num / 150,
		NounIndex: num % 150,
	}

	for i := range action.Conditions {
		cond, err := parseCondition(s)
		if err != nil {
			return Action{}, err
		}
		action.Conditions[i] = cond
	}

	for i := 0; i < 2; i++ {
		num, err := s.NextInt()
		if err != nil {
			return Action{}, err
		}
		action.Actions[i*2] = DecodeActionType(num / 150)
		action.Actions[i*2+1] = DecodeActionType(num % 150)
	}

	return action, nil
}

func parseCondition(s *Stream) (Condition, error) {
	num, err := s.NextInt()
	if err != nil {
		return Condition{}, err
	}
	if num < 0 {
		return Condition{}, fmt.Errorf("invalid condition value %d", num)
	}
	return DecodeCondition(num), nil
}

// parseWords reads the vocabulary: verb/noun pairs, interleaved. A
// leading "*" marks a synonym of the previous word and is stripped.
func parseWords(s *Stream, count int32) (verbs, nouns []Word, err error) {
	for i := int32(0); i < count; i++ {
		text, synonym, err := readMarked(s)
		if err != nil {
			return nil, nil, err
		}
		verbs = append(verbs, Word{Text: text, IsSynonym: synonym})

		text, synonym, err = readMarked(s)
		if err != nil {
			return nil, nil, err
		}
		nouns = append(nouns, Word{Text: text, IsSynonym: synonym})
	}
	return verbs, nouns, nil
}

func parseRooms(s *Stream, count int32) ([]Room, error) {
	rooms := make([]Room, 0, count)
	for i := int32(0); i < count; i++ {
		room, err := parseRoom(s)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// parseRoom reads six exits (north, south, east, west, up, down) and a
// description. A leading "*" means the description stands alone and is
// stripped.
func parseRoom(s *Stream) (Room, error) {
	var room Room
	for i := range room.Exits {
		exit, err := s.NextInt()
		if err != nil {
			return Room{}, err
		}
		room.Exits[i] = exit
	}

	desc, literal, err := readMarked(s)
	if err != nil {
		return Room{}, err
	}
	room.Description = desc
	room.IsLiteral = literal
	return room, nil
}

func parseMessages(s *Stream, count int32) ([]string, error) {
	messages := make([]string, 0, count)
	for i := int32(0); i < count; i++ {
		msg, err := s.NextStr()
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func parseItems(s *Stream, count int32) ([]Item, error) {
	items := make([]Item, 0, count)
	for i := int32(0); i < count; i++ {
		item, err := parseItem(s)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// autograbPattern splits a trailing "/NAME/" off an item description.
// The leading group is greedy, so only the last two slashes count.
var autograbPattern = regexp.MustCompile(`^(.*)/(.*)/$`)

// parseItem reads an item: a description and a starting location. A
// leading "*" marks a treasure but stays in the description. A trailing
// "/NAME/" enables automatic GET and DROP under that noun and is
// stripped.
func parseItem(s *Stream) (Item, error) {
	desc, err := s.NextStr()
	if err != nil {
		return Item{}, err
	}
	location, err := s.NextInt()
	if err != nil {
		return Item{}, err
	}

	item := Item{
		Description: desc,
		Location:    location,
		IsTreasure:  strings.HasPrefix(desc, "*"),
	}
	if m := autograbPattern.FindStringSubmatch(desc); m != nil {
		item.Description = m[1]
		grab := m[2]
		item.Autograb = &grab
	}
	return item, nil
}

// parseComments reads one string per action, in action order. An empty
// string means the action has no comment.
func parseComments(s *Stream, actions []Action) error {
	for i := range actions {
		comment, err := s.NextStr()
		if err != nil {
			return err
		}
		actions[i].Comment = comment
	}
	return nil
}

func parseFooter(s *Stream) (Footer, error) {
	var f Footer
	var err error
	if f.Version, err = s.NextInt(); err != nil {
		return Footer{}, err
	}
	if f.Adventure, err = s.NextInt(); err != nil {
		return Footer{}, err
	}
	if f.Magic, err = s.NextInt(); err != nil {
		return Footer{}, err
	}
	return f, nil
}

// readMarked reads a string that may carry a leading "*" marker, used by
// both words (synonyms) and rooms (literal descriptions). The marker is
// stripped from the returned text.
func readMarked(s *Stream) (string, bool, error) {
	text, err := s.NextStr()
	if err != nil {
		return "", false, err
	}
	if marked := strings.HasPrefix(text, "*"); marked {
		return text[1:], true, nil
	}
	return text, false, nil
}
