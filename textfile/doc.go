/*
Package textfile provides API helpers to load UTF-8 text files as texts.

Files are read in fragments by a background goroutine, which broadcasts
every fragment as soon as it has been read. Load consumes the fragments in
file order and appends them to the resulting text. The text is handed to
the client only after loading has finished.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
