// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cst

import (
	"bufio"
	"io"
	"strings"
)

// A Formatter carries the settings for rendering indented syntax trees.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the text written once per level of depth before each node.
	// If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Format renders an indented representation of n to w with default settings.
func Format(w io.Writer, n *Node) error {
	var f Formatter
	return f.Format(w, n)
}

// FormatToString renders an indented representation of n to a string with
// default settings.
func FormatToString(n *Node) string {
	var sb strings.Builder
	Format(&sb, n) // writes to a strings.Builder do not fail
	return sb.String()
}

// Format renders an indented representation of n to w using the settings
// from f. Each node is written on its own line as its item, indented once
// for each of its ancestors:
//
//	Json
//	  Element
//	    Array
//	      Elements
//	        Element
//	          Number(1)
func (f Formatter) Format(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	f.formatNode(bw, n, "")
	return bw.Flush()
}

func (f Formatter) formatNode(w *bufio.Writer, n *Node, indent string) {
	w.WriteString(indent)
	w.WriteString(n.Item.String())
	w.WriteByte('\n')
	cdent := indent + f.indent()
	for _, c := range n.Children {
		f.formatNode(w, c, cdent)
	}
}
