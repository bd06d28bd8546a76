// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"fmt"
	"slices"
	"strings"
)

// Check reports whether the tree rooted at n satisfies the structural
// invariants of a syntax tree produced by Parse. It returns nil if so, or
// otherwise an error describing the first violation and the path of symbols
// from n to the offending node.
//
// The root need not be a Json node; Check can be applied to any subtree.
func Check(n *Node) error {
	return check(n, nil)
}

// allowed lists, for each nonterminal, the symbols its children may have.
var allowed = map[Symbol][]Symbol{
	Json:     {Element},
	Element:  {Object, Array, StrLit, Number, Bool, Null},
	Object:   {Members},
	Members:  {Member},
	Member:   {Element},
	Array:    {Elements},
	Elements: {Element},
}

func check(n *Node, path []Symbol) error {
	if n == nil {
		return checkErr(path, "nil node")
	}
	sym := n.Item.Symbol
	path = append(path, sym)

	var lo, hi int // bounds on the number of children
	switch sym {
	case Json, Element, Member:
		lo, hi = 1, 1
	case Object, Array:
		lo, hi = 0, 1
	case Members, Elements:
		lo, hi = 1, -1
	case Number, Bool, StrLit, Null:
		lo, hi = 0, 0
	default:
		return checkErr(path, "unexpected symbol %v", sym)
	}
	if nc := len(n.Children); nc < lo || (hi >= 0 && nc > hi) {
		return checkErr(path, "has %d children", nc)
	}

	for _, c := range n.Children {
		if c == nil {
			return checkErr(path, "nil child")
		} else if !slices.Contains(allowed[sym], c.Item.Symbol) {
			return checkErr(path, "child %v not allowed", c.Item.Symbol)
		}
		if err := check(c, path); err != nil {
			return err
		}
	}
	return nil
}

func checkErr(path []Symbol, msg string, args ...any) error {
	ss := make([]string, len(path))
	for i, s := range path {
		ss[i] = s.String()
	}
	return fmt.Errorf("at %s: %s", strings.Join(ss, "/"), fmt.Sprintf(msg, args...))
}
