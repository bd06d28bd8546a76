// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"fmt"
	"strings"

	"github.com/creachadair/jcst"
)

// Parse parses a complete JSON text from toks and returns its syntax tree,
// whose root is a Json node. In case of error, Parse returns no tree and an
// error of concrete type [*jcst.SyntaxError].
//
// The tokens must form exactly one value. If tokens remain after the value,
// Parse reports [jcst.ErrTrailingInput] at the first of them.
func Parse(toks []jcst.Token) (*Node, error) {
	p := parser{toks: toks}
	root, pos, err := p.json(0)
	if err != nil {
		return nil, err
	} else if pos != len(toks) {
		return nil, jcst.NewSyntaxError(jcst.ErrTrailingInput, pos, toks[pos],
			"expected end of input, got %v", toks[pos])
	}
	return root, nil
}

// ParseString tokenizes and parses text. It is shorthand for calling
// jcst.Tokenize and passing the result to Parse.
func ParseString(text string) (*Node, error) {
	toks, err := jcst.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// MustParse parses text as ParseString, but panics if parsing fails.
func MustParse(text string) *Node {
	n, err := ParseString(text)
	if err != nil {
		panic(fmt.Sprintf("cst.MustParse: %v", err))
	}
	return n
}

// A parser is a recursive-descent parser with one method per nonterminal.
// Each method takes the position of the first token of its phrase and
// returns the node for the phrase and the position after it.
type parser struct {
	toks []jcst.Token
}

// json parses Json := Element.
func (p parser) json(pos int) (*Node, int, error) {
	elt, pos, err := p.element(pos)
	if err != nil {
		return nil, pos, err
	}
	return newNode(Json, elt), pos, nil
}

// element parses Element := Value.
func (p parser) element(pos int) (*Node, int, error) {
	val, pos, err := p.value(pos)
	if err != nil {
		return nil, pos, err
	}
	return newNode(Element, val), pos, nil
}

// value parses Value, dispatching on the kind of the next token.
func (p parser) value(pos int) (*Node, int, error) {
	tok, err := p.expect(pos, "a value")
	if err != nil {
		return nil, pos, err
	}
	switch tok.Kind {
	case jcst.LBrace:
		return p.object(pos)
	case jcst.LSquare:
		return p.array(pos)
	case jcst.String:
		return &Node{Item: Item{Symbol: StrLit, Text: tok.Text}}, pos + 1, nil
	case jcst.Number:
		return &Node{Item: Item{Symbol: Number, Num: tok.Num}}, pos + 1, nil
	case jcst.True, jcst.False:
		return &Node{Item: Item{Symbol: Bool, Bool: tok.Kind == jcst.True}}, pos + 1, nil
	case jcst.Null:
		return newNode(Null), pos + 1, nil
	default:
		return nil, pos, p.unexpected(pos, "a value")
	}
}

// object parses Object := '{' '}' | '{' Members '}'.
// Precondition: toks[pos] is LBrace.
func (p parser) object(pos int) (*Node, int, error) {
	if p.peekIs(pos+1, jcst.RBrace) {
		return newNode(Object), pos + 2, nil
	}
	mems, pos, err := p.members(pos + 1)
	if err != nil {
		return nil, pos, err
	}
	if _, err := p.expect(pos, "", jcst.RBrace, jcst.Comma); err != nil {
		return nil, pos, err
	}
	return newNode(Object, mems), pos + 1, nil
}

// members parses Members := Member (',' Member)*.
func (p parser) members(pos int) (*Node, int, error) {
	node := newNode(Members)
	for {
		mem, next, err := p.member(pos)
		if err != nil {
			return nil, next, err
		}
		node.Children = append(node.Children, mem)
		if !p.peekIs(next, jcst.Comma) {
			return node, next, nil
		}
		pos = next + 1
	}
}

// member parses Member := StringLiteral ':' Element.
func (p parser) member(pos int) (*Node, int, error) {
	key, err := p.expect(pos, "", jcst.String)
	if err != nil {
		return nil, pos, err
	}
	if _, err := p.expect(pos+1, "", jcst.Colon); err != nil {
		return nil, pos + 1, err
	}
	elt, pos, err := p.element(pos + 2)
	if err != nil {
		return nil, pos, err
	}
	return &Node{Item: Item{Symbol: Member, Text: key.Text}, Children: []*Node{elt}}, pos, nil
}

// array parses Array := '[' ']' | '[' Elements ']'.
// Precondition: toks[pos] is LSquare.
func (p parser) array(pos int) (*Node, int, error) {
	if p.peekIs(pos+1, jcst.RSquare) {
		return newNode(Array), pos + 2, nil
	}
	elts, pos, err := p.elements(pos + 1)
	if err != nil {
		return nil, pos, err
	}
	if _, err := p.expect(pos, "", jcst.RSquare, jcst.Comma); err != nil {
		return nil, pos, err
	}
	return newNode(Array, elts), pos + 1, nil
}

// elements parses Elements := Element (',' Element)*.
func (p parser) elements(pos int) (*Node, int, error) {
	node := newNode(Elements)
	for {
		elt, next, err := p.element(pos)
		if err != nil {
			return nil, next, err
		}
		node.Children = append(node.Children, elt)
		if !p.peekIs(next, jcst.Comma) {
			return node, next, nil
		}
		pos = next + 1
	}
}

// peekIs reports whether there is a token at pos and it has the given kind.
func (p parser) peekIs(pos int, kind jcst.Kind) bool {
	return pos < len(p.toks) && p.toks[pos].Kind == kind
}

// expect returns the token at pos, which must exist and, if any kinds are
// given, must have the first of them. The remaining kinds are also mentioned
// in the error message as alternatives that would have been accepted there.
// If kinds is empty, label describes what was wanted.
func (p parser) expect(pos int, label string, kinds ...jcst.Kind) (jcst.Token, error) {
	if label == "" {
		label = kindLabel(kinds)
	}
	if pos >= len(p.toks) {
		return jcst.Token{}, jcst.NewSyntaxError(jcst.ErrUnexpectedEndOfInput, pos, jcst.Token{},
			"expected %s, got end of input", label)
	}
	if len(kinds) != 0 && p.toks[pos].Kind != kinds[0] {
		return jcst.Token{}, p.unexpected(pos, label)
	}
	return p.toks[pos], nil
}

func (p parser) unexpected(pos int, label string) error {
	tok := p.toks[pos]
	return jcst.NewSyntaxError(jcst.ErrUnexpectedToken, pos, tok, "expected %s, got %v", label, tok)
}

// kindLabel makes a human-readable summary string for the given token kinds.
func kindLabel(kinds []jcst.Kind) string {
	if len(kinds) == 1 {
		return kinds[0].String()
	}
	last := len(kinds) - 1
	ss := make([]string, last)
	for i, k := range kinds[:last] {
		ss[i] = k.String()
	}
	return strings.Join(ss, ", ") + " or " + kinds[last].String()
}
