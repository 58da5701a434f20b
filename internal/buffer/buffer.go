// Package buffer implements the growable append-only byte buffer used by
// the rewrite engine as its output store and as its container-nesting
// stack.
package buffer

import (
	"strconv"

	"github.com/holiman/uint256"
)

// initialStackDepth is the starting capacity for a nesting stack, matching
// the teacher's small-constant-then-double growth policy.
const initialStackDepth = 20

// Sentinel is the trailing byte appended at the end of a document so a
// byte-copying host can treat the output as a C-string.
const Sentinel = 0x00

// Buffer is a growable byte vector with amortized O(1) append.
//
// The zero value is not usable; construct one with New or NewWithCap.
type Buffer struct {
	data []byte
}

// New returns an empty Buffer sized for an input of length inputLen: twice
// the input length plus one, since the worst-case expansion of the
// rewrite (quoting every identifier) slightly more than doubles the input.
func New(inputLen int) *Buffer {
	return &Buffer{data: make([]byte, 0, 2*inputLen+1)}
}

// NewStack returns an empty Buffer sized for use as a nesting stack. depth
// <= 0 falls back to the package default.
func NewStack(depth int) *Buffer {
	if depth <= 0 {
		depth = initialStackDepth
	}
	return &Buffer{data: make([]byte, 0, depth)}
}

// Push appends a single byte. Capacity grows through append on overflow:
// it doubles for small buffers, while large buffers grow by a smaller
// factor, so growth is geometric but not an exact doubling.
func (b *Buffer) Push(c byte) {
	b.data = append(b.data, c)
}

// PushSpan appends the bytes of s.
func (b *Buffer) PushSpan(s []byte) {
	b.data = append(b.data, s...)
}

// PushString appends the bytes of s.
func (b *Buffer) PushString(s string) {
	b.data = append(b.data, s...)
}

// PushInt appends the decimal representation of a signed 64-bit integer.
func (b *Buffer) PushInt(n int64) {
	b.data = strconv.AppendInt(b.data, n, 10)
}

// PushUint256 appends the decimal representation of a 256-bit unsigned
// integer, used when normalizing hex/octal/binary numerals wider
// than a native 64-bit integer (see internal/machine's number subroutine).
func (b *Buffer) PushUint256(n *uint256.Int) {
	b.data = append(b.data, n.Dec()...)
}

// Pop removes the last byte. Precondition: Size() > 0.
func (b *Buffer) Pop() {
	b.data = b.data[:len(b.data)-1]
}

// Top returns the last byte without removing it. Precondition: Size() > 0.
func (b *Buffer) Top() byte {
	return b.data[len(b.data)-1]
}

// Clear sets the size to zero. Capacity is preserved.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// Size returns the current byte count.
func (b *Buffer) Size() int {
	return len(b.data)
}

// TrimTrailingSpace drops trailing ASCII whitespace from the buffer. Used
// by the unrecognized-token subroutine before it closes a bareword string.
func (b *Buffer) TrimTrailingSpace() {
	n := len(b.data)
	for n > 0 {
		switch b.data[n-1] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			n--
		default:
			b.data = b.data[:n]
			return
		}
	}
	b.data = b.data[:n]
}

// DropTrailingComma removes a trailing ',' from the buffer, skipping past
// any ASCII whitespace emitted after it to find it. Leaves the buffer
// untouched (whitespace included) if the last significant byte isn't a
// comma. Used when closing an object or array so a trailing comma
// separated from the closer by whitespace or a comment's blank line
// (e.g. "{a: 1,\n}") is still dropped.
func (b *Buffer) DropTrailingComma() {
	i := len(b.data)
	for i > 0 {
		switch b.data[i-1] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			i--
		default:
			if b.data[i-1] == ',' {
				b.data = b.data[:i-1]
			}
			return
		}
	}
}

// Bytes returns the buffer's contents, excluding a trailing Sentinel byte
// if present.
func (b *Buffer) Bytes() []byte {
	n := len(b.data)
	if n > 0 && b.data[n-1] == Sentinel {
		n--
	}
	return b.data[:n]
}
