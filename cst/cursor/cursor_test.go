// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jcst/cst"
	"github.com/creachadair/jcst/cst/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v := cst.MustParse(testJSON)
	obj := v.Resolve()

	tests := []struct {
		name string
		path []any
		want *cst.Node
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongIndex", []any{11}, v, true},
		{"WrongType", []any{"o", "hi"}, obj.Find("o"), true},
		{"BadElement", []any{3.5}, v, true},

		{"Member", []any{"y"}, obj.Find("y"), false},
		{"Resolve", []any{"y", nil}, obj.Find("y").Resolve(), false},
		{"ArrayPos", []any{"list", 1},
			obj.Find("list").Resolve().Entries()[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			obj.Find("list").Resolve().Entries()[1],
			false,
		},
		{"ArrayRange", []any{"o", 25},
			obj.Find("o"),
			true,
		},
		{"ArrayDeep", []any{"list", 0, "x", nil},
			obj.Find("list").Resolve().Entries()[0].Resolve().Find("x").Resolve(),
			false,
		},
		{"ObjPath", []any{"xyz", "d"},
			obj.Find("xyz").Resolve().Find("d"),
			false,
		},
		{"ObjIndex", []any{"xyz", -1},
			obj.Find("xyz").Resolve().Find("q"),
			false,
		},

		{"FuncArray", []any{"o", testPathFunc}, numberNode(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, numberNode(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc},
			obj.Find("xyz").Resolve().Find("d"),
			true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got %v, want error", tc.path, c.Value())
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %v OK", got)
			}
		})
	}
}

func TestCursorState(t *testing.T) {
	v := cst.MustParse(`{"a": [{"b": null}]}`)
	c := cursor.New(v)
	if !c.AtOrigin() || c.Origin() != v || c.Value() != v {
		t.Fatal("New: cursor is not at its origin")
	}

	c.Down("a", 0, "b")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	if c.AtOrigin() {
		t.Error("Down: cursor is still at its origin")
	}
	var syms []cst.Symbol
	for _, n := range c.Path() {
		syms = append(syms, n.Symbol())
	}
	if diff := cmp.Diff([]cst.Symbol{cst.Json, cst.Member, cst.Element, cst.Member}, syms); diff != "" {
		t.Errorf("Path: (-want, +got)\n%s", diff)
	}
	if got := c.Value().Item.Text; got != "b" {
		t.Errorf("Value: got %q, want b", got)
	}

	if got := c.Up().Value().Symbol(); got != cst.Element {
		t.Errorf("Up: got %v, want Element", got)
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got nil error, want error")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: got origin %v, error %v; want origin, no error", c.AtOrigin(), c.Err())
	}

	// Up at the origin has no effect.
	if got := c.Up().Up().Value(); got != v {
		t.Errorf("Up at origin: got %v, want %v", got, v)
	}
}

func TestPath(t *testing.T) {
	v := cst.MustParse(testJSON)

	got, err := cursor.Path(v, "y", "hello", nil)
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	}
	if got.String() != "StrLit(there)" {
		t.Errorf("Path: got %v, want StrLit(there)", got)
	}

	if got, err := cursor.Path(v, "list", 5); err == nil {
		t.Errorf("Path: got %v, want error", got)
	}
	if got, err := cursor.Path(v, "list", -3); err == nil {
		t.Errorf("Path: got %v, want error", got)
	}
}

func numberNode(n int) *cst.Node {
	return &cst.Node{Item: cst.Item{Symbol: cst.Number, Num: float64(n)}}
}

func testPathFunc(v *cst.Node) (*cst.Node, error) {
	switch r := v.Resolve(); r.Symbol() {
	case cst.Array, cst.Object:
		return numberNode(r.Len()), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
