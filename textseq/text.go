/*
Package textseq implements editable text as a sequence of grapheme
clusters.

Text is segmented into user-perceived characters (grapheme clusters, see
UAX #29) when it enters a Text. Positions are counted in grapheme clusters,
so that editing and reversing text never tears apart a cluster such as an
emoji with modifiers or a letter with combining marks. Every subtree keeps a
summary of its byte length, grapheme count, line breaks and display width,
which makes positional queries logarithmic.

Clusters are segmented per inserted string: inserting a combining mark
next to a base character does not merge the two into one cluster.
*/
package textseq

import (
	"errors"
	"strings"
	"sync"

	"github.com/npillmayer/lazyseq"
	"github.com/npillmayer/lazyseq/splay"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrLineOutOfRange is returned by LineStart for lines beyond the text.
var ErrLineOutOfRange = errors.New("textseq: line out of range")

// Summary describes a run of text.
type Summary struct {
	Bytes     int // length in bytes
	Graphemes int // number of grapheme clusters
	Lines     int // number of line breaks
	Width     int // display width in terminal cells, line breaks excluded
}

// span is a single grapheme cluster or the summary of several. Text is
// set for single clusters only.
type span struct {
	Text string
	Summary
}

type spans struct{}

func (spans) Zero() span { return span{} }

func (spans) Add(left, right span) span {
	switch {
	case left.Graphemes == 0:
		return right
	case right.Graphemes == 0:
		return left
	}
	return span{Summary: Summary{
		Bytes:     left.Bytes + right.Bytes,
		Graphemes: left.Graphemes + right.Graphemes,
		Lines:     left.Lines + right.Lines,
		Width:     left.Width + right.Width,
	}}
}

var setupClasses sync.Once

// segment splits s into grapheme clusters.
func segment(s string) []span {
	if s == "" {
		return nil
	}
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	out := make([]span, gstr.Len())
	for i := range out {
		c := gstr.Nth(i)
		sp := span{Text: c, Summary: Summary{
			Bytes:     len(c),
			Graphemes: 1,
			Lines:     strings.Count(c, "\n"),
		}}
		if sp.Lines == 0 { // line breaks take no cells
			sp.Width = uax11.StringWidth(grapheme.StringFromString(c), uax11.LatinContext)
		}
		out[i] = sp
	}
	return out
}

// Text is a mutable piece of text.
type Text struct {
	seq *lazyseq.Seq[span, splay.NoAction]
}

// FromString creates a text from s.
func FromString(s string) *Text {
	clusters := segment(s)
	seq, err := lazyseq.New(splay.Config[span, splay.NoAction]{Monoid: spans{}}, clusters...)
	if err != nil {
		panic(err)
	}
	tracer().Debugf("textseq: %d bytes in %d clusters", len(s), len(clusters))
	return &Text{seq: seq}
}

// String returns the text as a string.
func (t *Text) String() string {
	var b strings.Builder
	b.Grow(t.seq.AllProd().Bytes)
	for sp := range t.seq.All() {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Len returns the number of grapheme clusters.
func (t *Text) Len() int {
	return t.seq.Len()
}

// Summary returns byte length, grapheme count, line breaks and display
// width of the whole text.
func (t *Text) Summary() Summary {
	return t.seq.AllProd().Summary
}

// Insert inserts s before grapheme position pos.
func (t *Text) Insert(pos int, s string) error {
	return t.seq.Insert(pos, segment(s)...)
}

// Delete removes n grapheme clusters starting at pos.
func (t *Text) Delete(pos, n int) error {
	_, err := t.seq.Cut(pos, pos+n)
	return err
}

// Reverse reverses the order of n grapheme clusters starting at pos. The
// clusters themselves are kept intact.
func (t *Text) Reverse(pos, n int) error {
	return t.seq.Reverse(pos, pos+n)
}

// Substring returns n grapheme clusters starting at pos.
func (t *Text) Substring(pos, n int) (string, error) {
	if pos < 0 || n < 0 || pos+n > t.seq.Len() {
		return "", lazyseq.ErrIndexOutOfBounds
	}
	mid, err := t.seq.Split(pos)
	if err != nil {
		return "", err
	}
	right, err := mid.Split(n)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for sp := range mid.All() {
		b.WriteString(sp.Text)
	}
	if err = t.seq.Concat(mid, right); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ByteOffset returns the byte offset of grapheme position pos.
func (t *Text) ByteOffset(pos int) (int, error) {
	s, err := t.seq.Prod(0, pos)
	return s.Bytes, err
}

// LineStart returns the grapheme position at which line number line
// (counting from 0) starts.
func (t *Text) LineStart(line int) (int, error) {
	if line < 0 {
		return 0, ErrLineOutOfRange
	}
	if line == 0 {
		return 0, nil
	}
	// position of the line-th line break
	r := t.seq.MaxRight(func(s span) bool {
		return s.Lines < line
	})
	if r == t.seq.Len() {
		return 0, ErrLineOutOfRange
	}
	return r + 1, nil
}
