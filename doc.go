/*
Package lazyseq offers mutable sequences with fast range queries, lazy range
updates and range reversal.

Sequences

A sequence stores values of a type S in a self-adjusting binary tree (a splay
tree). Every internal node caches the monoid sum of its subtree, so that the
sum of any range can be reported in logarithmic amortized time. Updates by
an action of type F are recorded at the top of the affected range and pushed
down only when a path is visited later on. The same holds for reversal of a
range.

	Operation        |  Sequence       |  Slice
	-----------------+-----------------+--------
	Index            |   O(log n)      |   O(1)
	Insert / Erase   |   O(log n)      |   O(n)
	Split            |   O(log n)      |   O(n)
	Concat           |   O(1)          |   O(n)
	Range sum        |   O(log n)      |   O(n)
	Range update     |   O(log n)      |   O(n)
	Range reversal   |   O(log n)      |   O(n)
	Iterate          |   O(n)          |   O(n)

All bounds are amortized. The algebra is configured by the client, see
package splay for the contract and package monoid for ready-made algebras:

	seq, err := lazyseq.New(splay.Config[monoid.Sized[int], int]{
	    Monoid: monoid.SizedSum[int]{},
	    Action: monoid.Add[int]{},
	}, monoid.Ones(1, 2, 3, 4, 5)...)
	seq.Apply(1, 4, 10)     // 1 12 13 14 5
	sum, _ := seq.Prod(0, 5) // 45

Sequences split off from each other share their storage and may be
concatenated again. Storage of erased values is not reclaimed; clients with
long-running heavy insert/erase traffic should rebuild sequences from time
to time.

Sequences are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package lazyseq

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SeqError is an error type for the lazyseq module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a sequence position is
// outside of the sequence.
const ErrIndexOutOfBounds = SeqError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

// ErrForeignSequence is flagged when sequences not sharing storage are combined.
const ErrForeignSequence = SeqError("sequences do not share storage")
