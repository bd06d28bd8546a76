// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcst

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Colon               // colon ":"
	Comma               // comma ","
	String              // quoted string
	Number              // number
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Colon:   `":"`,
	Comma:   `","`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token. Tokens are produced by Tokenize and are
// not modified afterward.
type Token struct {
	Kind Kind

	// For a String token, Text is the raw text between the quotation marks.
	// Escape sequences are validated but not decoded; see Unquote.
	Text string

	// For a Number token, Num is its value.
	Num float64

	// Span is the location of the token in the source text.
	Span Span
}

// String renders t in a human-readable form for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return fmt.Sprintf("string %q", t.Text)
	case Number:
		return "number " + FormatNumber(t.Num)
	}
	return t.Kind.String()
}

// FormatNumber renders v as a decimal with the fewest digits needed to
// represent it exactly, and no exponent.
func FormatNumber(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
