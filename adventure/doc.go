// Package adventure implements a reader and writer for adventure game data
// files in the classic Scott Adams format, as used by the ScottFree
// interpreter and the original TRS-80 tooling.
//
// A game file is a sequence of ASCII-formatted integers (optionally signed,
// separated by arbitrary whitespace) and double-quoted strings (which may
// contain embedded newlines). The sections appear in a fixed order:
//
//	Header    12 integers; most counts are stored as (true count - 1)
//	Actions   verb/noun + 5 conditions + 2 packed action pairs, each
//	Words     verbs and nouns, interleaved; "*" marks a synonym
//	Rooms     6 exits + description; "*" marks a standalone description
//	Messages  plain strings
//	Items     description + starting location; "/NAME/" enables autograb
//	Comments  one per action, by position; "" means no comment
//	Footer    version, adventure number, magic
//
// # Packed Encodings
//
// Several fields pack two values into one stored integer:
//
//	verb/noun:  n = verb*150 + noun
//	condition:  n = type + 20*parameter   (20 predicate types)
//	actions:    n = first*150 + second    (two per stored integer)
//
// Action opcodes 1-51 and 102-150 both mean "print message"; the second
// range carries message indices 51-99, offset by 51. Opcodes 55/59 and
// 64/76 are historical duplicates and are kept distinct so that writing
// a game reproduces the original raw values.
//
// # Round Trip
//
// Write is the exact inverse of Parse: for any file this package accepts,
// decoding and re-encoding reproduces the original bytes. That property,
// not just semantic equivalence, is the correctness contract, and it is
// what makes the package usable as a base for game-editing tools.
//
// # Scope
//
// This package only moves game data in and out of memory. Running an
// adventure (verb resolution, room navigation, scoring) is a separate
// concern and lives elsewhere.
package adventure
