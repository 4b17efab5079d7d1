package adventure

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Position represents a location in the game file, used for diagnostics.
// Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenType represents the type of a lexer token. The format has only two:
// integers and quoted strings.
type TokenType uint8

const (
	TokenInt TokenType = iota
	TokenStr
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenInt:
		return "INT"
	case TokenStr:
		return "STR"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single lexer token. Its Position is that of the
// token's first character.
type Token struct {
	Type TokenType
	Int  int32  // valid when Type == TokenInt
	Str  string // valid when Type == TokenStr
	Pos  Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Type == TokenInt {
		return fmt.Sprintf("%s(%d)", t.Type, t.Int)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Str)
}

// TokenError represents a lexical error with its location.
type TokenError struct {
	Pos     Position
	Message string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ErrUnexpectedEnd is returned by the Stream accessors when the token
// sequence is exhausted before the decoder expects it to be.
var ErrUnexpectedEnd = errors.New("unexpected end of stream")

// lexState enumerates the states of the tokenizing state machine.
type lexState uint8

const (
	stateInit   lexState = iota // between tokens
	stateSign                   // consumed a leading '-'
	stateNum                    // inside an integer literal
	stateQuote                  // inside a string literal
	stateEscape                 // consumed '\' inside a string literal
)

// Tokenize converts raw game file bytes into a sequence of tokens. The
// format predates Unicode, so the input is treated strictly as bytes.
//
// End of input while inside a token silently drops the partial token,
// matching the historical tooling; a file truncated that way still fails
// in the decoder when the footer comes up short.
func Tokenize(data []byte) ([]Token, error) {
	var tokens []Token
	var acc strings.Builder

	state := stateInit
	pos := Position{Line: 1, Column: 1}
	var tokenPos Position

	for _, ch := range data {
		switch state {
		case stateInit:
			switch {
			case isSpace(ch):
				// between tokens
			case ch == '-':
				tokenPos = pos
				acc.WriteByte(ch)
				state = stateSign
			case isDigit(ch):
				tokenPos = pos
				acc.WriteByte(ch)
				state = stateNum
			case ch == '"':
				tokenPos = pos
				state = stateQuote
			default:
				return nil, &TokenError{Pos: pos, Message: fmt.Sprintf("unexpected character %q", ch)}
			}

		case stateSign:
			if !isDigit(ch) {
				return nil, &TokenError{Pos: pos, Message: fmt.Sprintf("unexpected character %q in integer", ch)}
			}
			acc.WriteByte(ch)
			state = stateNum

		case stateNum:
			switch {
			case isSpace(ch):
				val, err := strconv.ParseInt(acc.String(), 10, 32)
				if err != nil {
					return nil, &TokenError{Pos: tokenPos, Message: fmt.Sprintf("malformed integer %q", acc.String())}
				}
				tokens = append(tokens, Token{Type: TokenInt, Int: int32(val), Pos: tokenPos})
				acc.Reset()
				state = stateInit
			case isDigit(ch):
				acc.WriteByte(ch)
			default:
				return nil, &TokenError{Pos: pos, Message: fmt.Sprintf("unexpected character %q in integer", ch)}
			}

		case stateQuote:
			switch ch {
			case '\\':
				state = stateEscape
			case '"':
				tokens = append(tokens, Token{Type: TokenStr, Str: acc.String(), Pos: tokenPos})
				acc.Reset()
				state = stateInit
			default:
				// Embedded newlines are legal and preserved.
				acc.WriteByte(ch)
			}

		case stateEscape:
			// The escaped character has no special meaning; it is taken
			// verbatim.
			acc.WriteByte(ch)
			state = stateQuote
		}

		if ch == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return tokens, nil
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Stream is a consuming cursor over a token sequence. All accessors
// advance the cursor; a popped token is gone even if it failed a type
// check, matching the fail-fast nature of the format.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream creates a stream over the given tokens.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Done reports whether all tokens have been consumed.
func (s *Stream) Done() bool {
	return s.pos >= len(s.tokens)
}

// NextInt pops the next token and returns its integer value. It fails
// if the token is a string or the stream is exhausted.
func (s *Stream) NextInt() (int32, error) {
	tok, ok := s.NextToken()
	if !ok {
		return 0, ErrUnexpectedEnd
	}
	if tok.Type != TokenInt {
		return 0, &TokenError{Pos: tok.Pos, Message: "expected an integer, found a string"}
	}
	return tok.Int, nil
}

// NextStr pops the next token and returns its string value. It fails
// if the token is an integer or the stream is exhausted.
func (s *Stream) NextStr() (string, error) {
	tok, ok := s.NextToken()
	if !ok {
		return "", ErrUnexpectedEnd
	}
	if tok.Type != TokenStr {
		return "", &TokenError{Pos: tok.Pos, Message: "expected a string, found an integer"}
	}
	return tok.Str, nil
}

// NextToken pops the next token with no type constraint. It is meant for
// diagnostic dumping of a stream, not for decoding.
func (s *Stream) NextToken() (Token, bool) {
	if s.Done() {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}
