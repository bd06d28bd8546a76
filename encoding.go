// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jcst

import (
	"github.com/creachadair/jcst/internal/escape"

	"go4.org/mem"
)

// Unquote decodes the raw text of a string literal, as stored in the Text
// field of a String token, into its value. Escape sequences are replaced with
// their unescaped equivalents. The text must not include the enclosing
// quotation marks.
//
// Text produced by Tokenize always decodes without error. For other inputs,
// invalid escapes are replaced by the Unicode replacement rune, and Unquote
// reports an error for an incomplete escape sequence.
func Unquote(text string) (string, error) {
	dec, err := escape.Unquote(mem.S(text))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
