package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/lazyseq/textseq"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrNotRegular is returned when trying to load something other than a
// regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// fragment is a piece of a file's content, as published by the reader
// goroutine.
type fragment struct {
	content []byte
	pos     int64
	err     error
	last    bool
}

// textFile represents an OS file which will be loaded as a text.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a UTF-8 text file, and returns it as a
// text. Clients may indicate a fragment size for reading; 0 lets Load use
// a sensible default depending on the file size.
func Load(name string, fragSize int64) (*textseq.Text, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	defer tf.cast.Close()
	size := tf.info.Size()
	if fragSize <= 0 {
		fragSize = defaultFragSize(size)
	}
	tracer().Debugf("textfile: loading %q, %d bytes in fragments of %d", name, size, fragSize)
	frags, ok := tf.cast.Sub(context.Background(), 4)
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to loader of %q", name)
	}
	go loadAllFragments(tf, fragSize)
	return collect(frags)
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}, nil
}

func defaultFragSize(size int64) int64 {
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads the file front to back and publishes every
// fragment. The last fragment published is flagged.
func loadAllFragments(tf *textFile, fragSize int64) {
	size := tf.info.Size()
	for pos := int64(0); ; pos += fragSize {
		frag := &fragment{pos: pos, last: pos+fragSize >= size}
		if n := min(fragSize, size-pos); n > 0 {
			buf := make([]byte, n)
			cnt, err := tf.file.ReadAt(buf, pos)
			if err != nil && err != io.EOF {
				frag.err = fmt.Errorf("textfile: loading fragment at %d: %w", pos, err)
				frag.last = true
			} else if int64(cnt) < n {
				frag.err = fmt.Errorf("textfile: fragment at %d truncated, file modified while loading", pos)
				frag.last = true
			}
			frag.content = buf[:cnt]
		}
		if !tf.cast.Pub(frag) || frag.last {
			return
		}
	}
}

// collect appends fragments to a text in file order. Content is appended
// up to the last line break of the data received so far, so that neither
// runes nor grapheme clusters are torn apart at fragment boundaries.
func collect(frags <-chan interface{}) (*textseq.Text, error) {
	text := textseq.FromString("")
	var pending []byte
	for msg := range frags {
		frag := msg.(*fragment)
		if frag.err != nil {
			return nil, frag.err
		}
		pending = append(pending, frag.content...)
		if frag.last {
			break
		}
		if i := bytes.LastIndexByte(pending, '\n'); i >= 0 {
			if err := text.Insert(text.Len(), string(pending[:i+1])); err != nil {
				return nil, err
			}
			pending = append(pending[:0], pending[i+1:]...)
		}
	}
	if err := text.Insert(text.Len(), string(pending)); err != nil {
		return nil, err
	}
	return text, nil
}
