package lazyseq

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/lazyseq/splay"
	"golang.org/x/term"
)

var (
	innerColor   = color.New(color.FgHiBlack)
	pendingColor = color.New(color.FgRed)
	leafColor    = color.New(color.FgBlue)
)

// Dump writes the tree structure of a sequence to w, one node per line,
// indented by depth. Leaves show their value, internal nodes their size,
// their cached sum and pending flags. When w is a terminal, lines are
// colored and clipped to the terminal's width.
func (s *Seq[S, F]) Dump(w io.Writer) error {
	width := terminalWidth(w)
	for _, c := range []*color.Color{innerColor, pendingColor, leafColor} {
		if width > 0 {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	err := s.tree.Walk(func(n splay.Node[S]) error {
		var line string
		c := leafColor
		if n.Leaf {
			line = fmt.Sprintf("%s- %v", strings.Repeat("  ", n.Depth), n.Sum)
		} else {
			c = innerColor
			if n.Reversed || n.Pending {
				c = pendingColor
			}
			line = fmt.Sprintf("%s+ [%d%s] %v", strings.Repeat("  ", n.Depth), n.Size,
				nodeFlags(n.Reversed, n.Pending), n.Sum)
		}
		_, err := c.Fprintln(w, clip(line, width))
		return err
	})
	if err != nil {
		T().Errorf("seq dump: %s", err.Error())
	}
	return err
}

// terminalWidth returns the width of the terminal w writes to, or 0 if w
// is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func clip(line string, width int) string {
	if width <= 0 {
		return line
	}
	r := []rune(line)
	if len(r) <= width {
		return line
	}
	return string(r[:width])
}
