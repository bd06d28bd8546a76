// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcst

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

// Tokenize splits text into a sequence of lexical tokens. If text contains a
// lexical error, Tokenize returns no tokens and an error of concrete type
// [*LexError] describing the first problem found.
func Tokenize(text string) ([]Token, error) {
	lx := &lexer{
		src:  text,
		toks: make([]Token, 0, len(text)), // upper bound, one token per byte
	}
	for {
		ch, n := lx.peek()
		if n == 0 {
			return lx.toks, nil
		} else if err := lx.next(ch); err != nil {
			return nil, err
		}
	}
}

// A lexer is a cursor over an in-memory source text.
type lexer struct {
	src  string
	pos  int // offset of the next unread rune
	toks []Token
}

// next consumes the token (or whitespace) beginning with ch.
func (lx *lexer) next(ch rune) error {
	start := lx.pos

	// Discard whitespace, one rune at a time.
	if unicode.IsSpace(ch) {
		lx.advance()
		return nil
	}

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		lx.advance()
		lx.emit(Token{Kind: k}, start)
		return nil
	}

	switch {
	case ch == '"':
		return lx.scanString()
	case isNumStart(ch):
		return lx.scanNumber()
	case ch == 't':
		return lx.scanName(True, "true")
	case ch == 'f':
		return lx.scanName(False, "false")
	case ch == 'n':
		return lx.scanName(Null, "null")
	}
	return lx.failf(ErrUnexpectedCharacter, "%q (bare values are not allowed)", ch)
}

// peek returns the next unread rune and its width in bytes, without consuming
// it. At the end of the input, peek returns 0, 0.
func (lx *lexer) peek() (rune, int) {
	if lx.pos >= len(lx.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(lx.src[lx.pos:])
}

// advance consumes and returns the next unread rune.
func (lx *lexer) advance() rune {
	ch, n := lx.peek()
	lx.pos += n
	return ch
}

// readWhile consumes runes matching f until the end of input or until a rune
// not matching f is found. The non-matching rune is not consumed.  It returns
// the text of the runes consumed.
func (lx *lexer) readWhile(f func(rune) bool) string {
	start := lx.pos
	for {
		ch, n := lx.peek()
		if n == 0 || !f(ch) {
			return lx.src[start:lx.pos]
		}
		lx.pos += n
	}
}

func (lx *lexer) emit(tok Token, start int) {
	tok.Span = Span{Pos: start, End: lx.pos}
	lx.toks = append(lx.toks, tok)
}

func (lx *lexer) scanString() error {
	start := lx.pos
	lx.advance() // opening quote
	for {
		ch, n := lx.peek()
		if n == 0 {
			return lx.failf(ErrUnexpectedEndOfInput, "unterminated string starting at offset %d", start)
		} else if ch == '"' {
			text := lx.src[start+1 : lx.pos]
			lx.pos += n
			lx.emit(Token{Kind: String, Text: text}, start)
			return nil
		} else if !isStringRune(ch, n) {
			return lx.failf(ErrInvalidCharacter, "%q in string", ch)
		}
		lx.pos += n
		if ch == '\\' {
			if err := lx.scanEscape(); err != nil {
				return err
			}
		}
	}
}

// scanEscape validates the remainder of an escape sequence, following a "\".
func (lx *lexer) scanEscape() error {
	ch, n := lx.peek()
	if n == 0 {
		return lx.failf(ErrUnexpectedEndOfInput, "incomplete escape sequence")
	} else if !escapes.Has(ch) {
		return lx.failf(ErrInvalidEscape, "%q after escape", ch)
	}
	lx.pos += n
	if ch != 'u' {
		return nil
	}

	// A Unicode escape requires exactly 4 hexadecimal digits.
	for range 4 {
		ch, n := lx.peek()
		if n == 0 {
			return lx.failf(ErrUnexpectedEndOfInput, "incomplete Unicode escape")
		} else if !isHexDigit(ch) {
			return lx.failf(ErrInvalidEscape, "invalid Unicode escape: %q is not a hex digit", ch)
		}
		lx.pos += n
	}
	return nil
}

// scanNumber consumes the longest run of number runes and parses it as a
// 64-bit floating-point value.
func (lx *lexer) scanNumber() error {
	start := lx.pos
	run := lx.readWhile(isNumRune)
	v, err := strconv.ParseFloat(run, 64)
	if err != nil {
		lx.pos = start
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return lx.failf(ErrInvalidNumber, "%q: %v", run, err)
	}
	lx.emit(Token{Kind: Number, Num: v}, start)
	return nil
}

// scanName consumes the longest run of letters, which must equal want.
func (lx *lexer) scanName(kind Kind, want string) error {
	start := lx.pos
	run := lx.readWhile(unicode.IsLetter)
	if !mem.S(run).Equal(mem.S(want)) {
		lx.pos = start
		return lx.failf(ErrInvalidLiteral, "%q, want %s", run, want)
	}
	lx.emit(Token{Kind: kind}, start)
	return nil
}

func (lx *lexer) failf(err error, msg string, args ...any) error {
	return &LexError{
		Offset: lx.pos,
		err:    fmt.Errorf("%w: %s", err, fmt.Sprintf(msg, args...)),
	}
}

// escapes is the set of runes permitted after a "\" in a string.
var escapes = mapset.New('"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u')

// isStringRune reports whether ch, decoded with width n, may appear in a
// string literal. An invalid UTF-8 encoding is never allowed.
func isStringRune(ch rune, n int) bool {
	if ch == utf8.RuneError && n == 1 {
		return false
	}
	return ch >= ' ' && ch <= unicode.MaxRune
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isNumRune(ch rune) bool {
	return isDigit(ch) || ch == '.' || ch == 'e' || ch == 'E' || ch == '-' || ch == '+'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Colon, Comma}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[]:,", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
