// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jcst implements a lexical scanner for JSON text, the first stage of
// a parser that produces concrete syntax trees (see package cst).
//
// # Tokenizing
//
// Tokenize splits a complete in-memory text into a slice of tokens, or
// reports the first lexical error in the text:
//
//	toks, err := jcst.Tokenize(input)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//	for _, tok := range toks {
//	   log.Printf("Next token: %v", tok)
//	}
//
// Lexical errors have concrete type *jcst.LexError, and wrap one of the
// ErrInvalidCharacter, ErrInvalidEscape, ErrInvalidLiteral, ErrInvalidNumber,
// ErrUnexpectedCharacter, or ErrUnexpectedEndOfInput values:
//
//	if errors.Is(err, jcst.ErrInvalidEscape) {
//	   log.Print("Bad escape sequence")
//	}
//
// # Tokens
//
// The token kinds correspond to the terminals of the JSON grammar:
//
//	Kind                    | Text in source      | Payload
//	----------------------- | ------------------- | ---------------------
//	LBrace, RBrace          | { }                 | --
//	LSquare, RSquare        | [ ]                 | --
//	Colon, Comma            | : ,                 | --
//	String                  | "..."               | Text (raw, undecoded)
//	Number                  | -1.5e10             | Num (float64)
//	True, False, Null       | true false null     | --
//
// The Text of a String token is the text between its quotation marks, with
// escape sequences validated but not decoded. Use Unquote to decode it.
//
// A Number token is the longest run of digits and the characters ". e E - +"
// starting at a "-" or digit, parsed as a 64-bit floating-point value.  The
// literals true, false, and null are recognized as the longest run of letters
// starting at "t", "f", or "n", which must spell the literal exactly.
package jcst
