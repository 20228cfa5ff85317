package lazyseq

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/lazyseq/splay"
)

// Dot outputs the internal structure of a sequence in Graphviz DOT format
// (for debugging purposes). Internal nodes show their size and the flags
// R (reversal pending) and P (action pending).
func (s *Seq[S, F]) Dot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	err := s.tree.Walk(func(n splay.Node[S]) error {
		styles := nodeDotStyles(n.Leaf, n.Reversed || n.Pending)
		if n.Leaf {
			label := dotEscape(fmt.Sprintf("%v", n.Sum))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", n.ID, label, styles)
			return nil
		}
		label := fmt.Sprintf("%d%s", n.Size, nodeFlags(n.Reversed, n.Pending))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", n.ID, label, styles)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n.ID, n.Left)
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n.ID, n.Right)
		return nil
	})
	if err != nil {
		T().Errorf("seq DOT: %s", err.Error())
		return err
	}
	for _, part := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err = io.WriteString(w, part); err != nil {
			T().Errorf("seq DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += ",fillcolor=\"#FFBB88\""
	} else if !isleaf {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

func nodeFlags(reversed, pending bool) string {
	var f string
	if reversed {
		f += " R"
	}
	if pending {
		f += " P"
	}
	return f
}

func dotEscape(label string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(label)
}
