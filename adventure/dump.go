package adventure

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dump writes an indexed, developer-readable listing of every entity in
// the game. The exact formatting is a debugging convenience, not part of
// the format contract.
func (g *Game) Dump(w io.Writer) {
	fmt.Fprintf(w, "Header: %s\n", g.Header)
	for i, action := range g.Actions {
		fmt.Fprintf(w, "Action %d: %s\n", i, action)
	}
	for i, verb := range g.Verbs {
		fmt.Fprintf(w, "Verb %d: %s\n", i, verb)
	}
	for i, noun := range g.Nouns {
		fmt.Fprintf(w, "Noun %d: %s\n", i, noun)
	}
	for i, room := range g.Rooms {
		fmt.Fprintf(w, "Room %d: %s\n", i, room)
	}
	for i, msg := range g.Messages {
		fmt.Fprintf(w, "Message %d: %q\n", i, msg)
	}
	for i, item := range g.Items {
		fmt.Fprintf(w, "Item %d: %s\n", i, item)
	}
	fmt.Fprintf(w, "Footer: %s\n", g.Footer)
}

// DumpYAML writes the game as a YAML document, with condition and
// action opcodes rendered by name. Useful for diffing two games or
// inspecting one in an editor.
func (g *Game) DumpYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("yaml dump: %w", err)
	}
	return enc.Close()
}
