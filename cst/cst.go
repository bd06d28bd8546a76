// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cst defines a concrete syntax tree for JSON text, and a
// recursive-descent parser that constructs syntax trees from the tokens
// produced by jcst.Tokenize.
//
// Unlike an abstract value tree, the concrete syntax tree records a node for
// every production of the grammar:
//
//	Json     := Element
//	Element  := Value
//	Value    := Object | Array | StringLiteral | Number | True | False | Null
//	Object   := '{' '}'  |  '{' Members '}'
//	Members  := Member (',' Member)*
//	Member   := StringLiteral ':' Element
//	Array    := '[' ']'  |  '[' Elements ']'
//	Elements := Element (',' Element)*
//
// The Value production is resolved during parsing: an Element node holds the
// Object, Array, StrLit, Number, Bool, or Null node directly.
package cst

import (
	"strconv"
	"strings"

	"github.com/creachadair/jcst"
)

// A Symbol names a grammar symbol.
type Symbol byte

// Constants defining the grammar symbols.
const (
	Invalid  Symbol = iota // invalid symbol
	Json                   // a complete JSON text
	Value                  // a value (resolved during parsing)
	Object                 // an object { ... }
	Member                 // an object member "key": value
	Members                // a non-empty list of members
	Array                  // an array [ ... ]
	Element                // a value in context
	Elements               // a non-empty list of array elements
	Number                 // number
	Bool                   // constant: true or false
	StrLit                 // string literal
	Null                   // constant: null
)

var symbolStr = [...]string{
	Invalid:  "Invalid",
	Json:     "Json",
	Value:    "Value",
	Object:   "Object",
	Member:   "Member",
	Members:  "Members",
	Array:    "Array",
	Element:  "Element",
	Elements: "Elements",
	Number:   "Number",
	Bool:     "Bool",
	StrLit:   "StrLit",
	Null:     "Null",
}

func (s Symbol) String() string {
	v := int(s)
	if v >= len(symbolStr) {
		return symbolStr[Invalid]
	}
	return symbolStr[v]
}

// IsTerminal reports whether s is a terminal symbol, one that does not have
// children in a syntax tree.
func (s Symbol) IsTerminal() bool {
	return s == Number || s == Bool || s == StrLit || s == Null
}

// An Item is a grammar symbol together with its payload, if any.
type Item struct {
	Symbol Symbol

	Text string  // Member: the raw key text; StrLit: the raw string text
	Num  float64 // Number: the numeric value
	Bool bool    // Bool: the truth value
}

// String renders the item as its symbol name followed by its payload in
// parentheses, if it has one, e.g., Member(name), Number(3.5), Bool(true).
func (it Item) String() string {
	switch it.Symbol {
	case Member, StrLit:
		return it.Symbol.String() + "(" + it.Text + ")"
	case Number:
		return "Number(" + jcst.FormatNumber(it.Num) + ")"
	case Bool:
		return "Bool(" + strconv.FormatBool(it.Bool) + ")"
	}
	return it.Symbol.String()
}

// A Node is a node of a concrete syntax tree. Each node exclusively owns its
// children.
type Node struct {
	Item     Item
	Children []*Node
}

func newNode(sym Symbol, children ...*Node) *Node {
	return &Node{Item: Item{Symbol: sym}, Children: children}
}

// Symbol returns the grammar symbol of n.
func (n *Node) Symbol() Symbol { return n.Item.Symbol }

// String renders n for diagnostics as its item, followed for a nonterminal by
// a brace-enclosed, space-separated list of its children rendered the same
// way, for example:
//
//	Json{Element{Object{Members{Member(a){Element{Null}}}}}}
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	sb.WriteString(n.Item.String())
	if n.Item.Symbol.IsTerminal() {
		return
	}
	sb.WriteByte('{')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.render(sb)
	}
	sb.WriteByte('}')
}

// Resolve returns the value node of n: for a Json, Element, or Member node,
// the value it contains, for any other node n itself.
func (n *Node) Resolve() *Node {
	for {
		switch n.Item.Symbol {
		case Json, Element, Member:
			if len(n.Children) == 1 {
				n = n.Children[0]
				continue
			}
		}
		return n
	}
}

// Len reports the number of members of an object node, or the number of
// elements of an array node. It returns 0 for any other node.
func (n *Node) Len() int {
	switch n.Item.Symbol {
	case Object, Array:
		if len(n.Children) == 1 {
			return len(n.Children[0].Children)
		}
	}
	return 0
}

// Entries returns the Member nodes of an object node, or the Element nodes of
// an array node, in order. It returns nil for any other node.
func (n *Node) Entries() []*Node {
	switch n.Item.Symbol {
	case Object, Array:
		if len(n.Children) == 1 {
			return n.Children[0].Children
		}
	}
	return nil
}

// Find returns the first Member of an object node whose raw key text equals
// key, or nil. It returns nil if n is not an object.
func (n *Node) Find(key string) *Node {
	if n.Item.Symbol != Object {
		return nil
	}
	for _, m := range n.Entries() {
		if m.Item.Text == key {
			return m
		}
	}
	return nil
}
