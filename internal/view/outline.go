package view

import (
	"fmt"
	"io"
	"strings"
)

// Outline renders the subtree as an indented, human-readable listing:
//
//	div
//	  h2 "Task List"
//	  form.input-group
//	    input placeholder="..." value=""
//
// Attributes are printed in a fixed order so the output is stable.
func Outline(n *Node) string {
	var b strings.Builder
	writeOutline(&b, n, 0)
	return b.String()
}

// WriteOutline writes Outline(n) to w.
func WriteOutline(w io.Writer, n *Node) error {
	_, err := io.WriteString(w, Outline(n))
	return err
}

func writeOutline(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)
	for _, c := range n.classes {
		b.WriteString("." + c)
	}
	for _, name := range []string{AttrType, AttrPlaceholder, AttrDisabled} {
		if _, ok := n.Attr(name); !ok {
			continue
		}
		if name == AttrDisabled {
			b.WriteString(" [disabled]")
			continue
		}
		v, _ := n.Attr(name)
		fmt.Fprintf(b, " %s=%q", name, v)
	}
	if n.Tag == "input" {
		fmt.Fprintf(b, " value=%q", n.value)
	}
	if n.text != "" {
		fmt.Fprintf(b, " %q", n.text)
	}
	b.WriteString("\n")
	for _, c := range n.children {
		writeOutline(b, c, depth+1)
	}
}
