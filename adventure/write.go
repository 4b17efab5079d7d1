package adventure

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// Write serializes a game in the exact textual layout Parse consumes:
// every integer on its own line with a single space on each side, every
// string quoted on its own line, sections in the same fixed order, and
// all packing arithmetic inverted. For any file this package accepts,
// Write(Parse(file)) reproduces the original bytes.
func Write(w io.Writer, g *Game) error {
	e := &encoder{w: bufio.NewWriter(w)}

	e.emitHeader(g.Header)
	for _, action := range g.Actions {
		e.emitAction(action)
	}
	for i := range g.Verbs {
		e.emitMarked(g.Verbs[i].Text, g.Verbs[i].IsSynonym)
		e.emitMarked(g.Nouns[i].Text, g.Nouns[i].IsSynonym)
	}
	for _, room := range g.Rooms {
		e.emitRoom(room)
	}
	for _, msg := range g.Messages {
		e.emitStr(msg)
	}
	for _, item := range g.Items {
		e.emitItem(item)
	}
	for _, action := range g.Actions {
		e.emitStr(action.Comment)
	}
	e.emitInt(g.Footer.Version)
	e.emitInt(g.Footer.Adventure)
	e.emitInt(g.Footer.Magic)

	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

// Encode serializes a game to a byte slice. See Write.
func Encode(g *Game) []byte {
	var buf bytes.Buffer
	Write(&buf, g) // cannot fail on a bytes.Buffer
	return buf.Bytes()
}

// encoder wraps a buffered writer with a sticky error so the section
// methods can be chained without checking after every write.
type encoder struct {
	w   *bufio.Writer
	err error
}

// emitInt writes one integer line: " N " plus a newline.
func (e *encoder) emitInt(n int32) {
	if e.err != nil {
		return
	}
	e.w.WriteByte(' ')
	e.w.WriteString(strconv.FormatInt(int64(n), 10))
	e.w.WriteByte(' ')
	e.err = e.w.WriteByte('\n')
}

// emitStr writes one quoted string line. The format has no escaping on
// output; strings in real game files never contain quotes.
func (e *encoder) emitStr(s string) {
	if e.err != nil {
		return
	}
	e.w.WriteByte('"')
	e.w.WriteString(s)
	_, e.err = e.w.WriteString("\"\n")
}

// emitMarked writes a string line, restoring the "*" prefix stripped on read.
func (e *encoder) emitMarked(s string, marked bool) {
	if marked {
		s = "*" + s
	}
	e.emitStr(s)
}

// emitHeader writes the twelve header integers, taking the option-base-0
// counts back down by one.
func (e *encoder) emitHeader(h Header) {
	e.emitInt(h.Unknown)
	e.emitInt(h.NumItems - 1)
	e.emitInt(h.NumActions - 1)
	e.emitInt(h.NumWords - 1)
	e.emitInt(h.NumRooms - 1)
	e.emitInt(h.MaxInventory)
	e.emitInt(h.StartingRoom)
	e.emitInt(h.NumTreasures)
	e.emitInt(h.WordLength)
	e.emitInt(h.LightDuration)
	e.emitInt(h.NumMessages - 1)
	e.emitInt(h.TreasureRoom)
}

// emitAction writes one action: the packed verb/noun integer, the five
// packed conditions, and the four slots re-packed two per integer.
func (e *encoder) emitAction(a Action) {
	e.emitInt(a.VerbIndex*150 + a.NounIndex)
	for _, cond := range a.Conditions {
		e.emitInt(cond.Encode())
	}
	for i := 0; i < 2; i++ {
		e.emitInt(a.Actions[i*2].Encode()*150 + a.Actions[i*2+1].Encode())
	}
}

func (e *encoder) emitRoom(r Room) {
	for _, exit := range r.Exits {
		e.emitInt(exit)
	}
	e.emitMarked(r.Description, r.IsLiteral)
}

// emitItem writes an item, re-attaching the autograb suffix if one was
// stripped on read.
func (e *encoder) emitItem(i Item) {
	desc := i.Description
	if i.Autograb != nil {
		desc = desc + "/" + *i.Autograb + "/"
	}
	e.emitStr(desc)
	e.emitInt(i.Location)
}

