// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a JSON concrete syntax tree.
package cursor

import (
	"fmt"

	"github.com/creachadair/jcst/cst"
)

// Path traverses a sequential path into the structure of n where path
// elements are as documented for the Cursor.Down method.  This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path(n *cst.Node, path ...any) (*cst.Node, error) {
	c := New(n).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a syntax tree.
type Cursor struct {
	org *cst.Node
	stk []*cst.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *cst.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() *cst.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current node under the cursor.
func (c *Cursor) Value() *cst.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes visited from the origin to the
// current location in c.
func (c *Cursor) Path() []*cst.Node {
	return append([]*cst.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays or objects), functions (see
// below), or nil. Json and Element wrappers are traversed implicitly: a path
// step applies to the value they contain. If the path cannot be completely
// consumed, traversal stops and an error is recorded. Use Err to recover the
// error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves to the first member of the object whose raw key
// text equals the string. If this is the last element of the path, the Member
// node is the result; otherwise, subsequent path elements continue from the
// value of that member.
//
// If a path element is an integer, the corresponding value must be an array
// or object, and the integer resolves to the Element of the array or the
// Member of the object at that offset.  Negative indices count backward from
// the end (-1 is last, -2 second last).  An error is reported if the index is
// out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next node in the sequence. The function must have a signature
//
//	func(*cst.Node) (*cst.Node, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
//
// A nil path element resolves the current node to the value it contains, if
// it is a Json, Element, or Member node.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj := cur.Resolve()
			if obj.Symbol() != cst.Object {
				return c.setErrorf("cannot traverse %v with %q", obj.Symbol(), elt)
			}
			m := obj.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(m)

		case int:
			v := cur.Resolve()
			switch v.Symbol() {
			case cst.Array, cst.Object:
				es := v.Entries()
				i, ok := fixArrayBound(len(es), t)
				if !ok {
					return c.setErrorf("%v index %d out of bounds (n=%d)", v.Symbol(), i, len(es))
				}
				cur = c.push(es[i])
			default:
				return c.setErrorf("cannot traverse %v with %v", v.Symbol(), elt)
			}

		case func(*cst.Node) (*cst.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			if v := cur.Resolve(); v != cur {
				cur = c.push(v)
			}

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(n *cst.Node) *cst.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
