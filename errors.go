// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcst

import (
	"errors"
	"fmt"
)

// Errors reported by Tokenize. Use errors.Is to match them against the
// error returned, which has concrete type [*LexError].
var (
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrInvalidEscape       = errors.New("invalid escape")
	ErrInvalidLiteral      = errors.New("invalid literal")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// Errors reported by the parser. Use errors.Is to match them against the
// error returned, which has concrete type [*SyntaxError].
//
// ErrUnexpectedEndOfInput is also reported by Tokenize for a string literal
// that is not closed before the end of the input.
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrTrailingInput        = errors.New("trailing input")
)

// LexError is the concrete type of errors reported by Tokenize.
type LexError struct {
	Offset int // byte offset in the input where the error was detected

	err error
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.err.Error(), e.Offset)
}

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.err }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Pos     int    // index of the offending token in the token sequence
	Token   Token  // the offending token (zero at end of input)
	Message string // human-readable description

	err error
}

// NewSyntaxError constructs a *SyntaxError at token position pos. The err
// should be one of the parser errors defined by this package.
func NewSyntaxError(err error, pos int, tok Token, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Token: tok, Message: fmt.Sprintf(msg, args...), err: err}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at token %d: %s", s.Pos, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
