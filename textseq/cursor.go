package textseq

import "io"

// Cursor navigates a text by grapheme clusters.
//
// Movement is in cluster steps; the cursor keeps track of the byte offset
// as well. A cursor becomes invalid when its text is edited.
type Cursor struct {
	text    *Text
	pos     int
	byteOff int
}

// NewCursor creates a cursor at the start of t.
func (t *Text) NewCursor() *Cursor {
	return &Cursor{text: t}
}

// Pos returns the current grapheme position.
func (c *Cursor) Pos() int {
	return c.pos
}

// ByteOffset returns the current byte offset.
func (c *Cursor) ByteOffset() int {
	return c.byteOff
}

// Seek moves the cursor to grapheme position pos, 0 <= pos <= t.Len().
func (c *Cursor) Seek(pos int) error {
	off, err := c.text.ByteOffset(pos)
	if err != nil {
		return err
	}
	c.pos, c.byteOff = pos, off
	return nil
}

// Next returns the cluster at the cursor position and advances by one
// cluster. If the cursor is at the end of the text, ok is false.
func (c *Cursor) Next() (cluster string, ok bool) {
	sp, err := c.text.seq.At(c.pos)
	if err != nil {
		return "", false
	}
	c.pos++
	c.byteOff += sp.Bytes
	return sp.Text, true
}

// Prev returns the cluster before the cursor position and moves back by
// one cluster. If the cursor is at the start of the text, ok is false.
func (c *Cursor) Prev() (cluster string, ok bool) {
	if c.pos == 0 {
		return "", false
	}
	sp, err := c.text.seq.At(c.pos - 1)
	if err != nil {
		return "", false
	}
	c.pos--
	c.byteOff -= sp.Bytes
	return sp.Text, true
}

// Reader returns a reader for the bytes of t. The text must not be edited
// while it is read.
func (t *Text) Reader() io.Reader {
	return &textReader{cursor: t.NewCursor()}
}

type textReader struct {
	cursor *Cursor
	rest   string // unread tail of the current cluster
}

func (tr *textReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if tr.rest == "" {
			cluster, ok := tr.cursor.Next()
			if !ok {
				break
			}
			tr.rest = cluster
		}
		k := copy(p[n:], tr.rest)
		tr.rest = tr.rest[k:]
		n += k
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
