// Package lexer implements the transformer's working memory: an input
// cursor, an output buffer, a nesting stack of container-kind markers, and
// the status/position bookkeeping the state machine in internal/machine
// drives.
package lexer

import "github.com/Nykakin/chompjs/internal/buffer"

// Marker identifies the kind of container currently open on the nesting
// stack.
type Marker byte

// Container-kind markers, one per currently open container.
const (
	Object Marker = 'O'
	Array  Marker = 'A'
)

// Status is the tri-state discriminator for where the automaton stands.
type Status int

const (
	// Advancing means the driver loop should keep calling Advance.
	Advancing Status = iota
	// Finished means a document was completed successfully.
	Finished
	// Error means the automaton hit malformed input and stopped.
	Error
)

// State is a single state function: given the lexer, it consumes some
// input, mutates the lexer, and returns the next state.
type State func(l *Lexer) State

// Lexer holds everything a State needs across calls to Advance: the
// read-only input, the output buffer, the nesting stack, and the small
// pieces of derived state (IsKey, Status) that the state functions keep
// in sync on every structural transition.
type Lexer struct {
	input  []byte
	cursor int

	Output *buffer.Buffer
	stack  *buffer.Buffer

	// IsKey is true exactly when the next value read inside an object
	// context will be a key: immediately after '{' or immediately after
	// a ',' within an object.
	IsKey bool

	Status Status

	state State
}

// New constructs a Lexer over input, with the automaton positioned at its
// opening state. stackDepth sets the nesting stack's starting capacity;
// 0 uses the package default.
func New(input []byte, opening State, stackDepth int) *Lexer {
	return &Lexer{
		input:  input,
		Output: buffer.New(len(input)),
		stack:  buffer.NewStack(stackDepth),
		IsKey:  false,
		Status: Advancing,
		state:  opening,
	}
}

// Advance invokes the current state function and stores its return value
// as the next state.
func (l *Lexer) Advance() {
	l.state = l.state(l)
}

// ResetOutput clears the output and rewinds the automaton to the opening
// state, used between documents in multi-document mode.
func (l *Lexer) ResetOutput(opening State) {
	l.Output.Clear()
	l.Status = Advancing
	l.IsKey = false
	l.state = opening
}

// Cursor returns the current byte offset into the input.
func (l *Lexer) Cursor() int {
	return l.cursor
}

// Rewind moves the cursor back by n bytes. Used by the multi-document
// iterator, which steps back onto the closer of a just-finished document
// before restarting at the opening state.
func (l *Lexer) Rewind(n int) {
	l.cursor -= n
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// AtEnd reports whether the cursor has reached or passed the end of
// input.
func (l *Lexer) AtEnd() bool {
	return l.cursor >= len(l.input)
}

// Byte returns the byte at the cursor, or 0 if the cursor is past the end
// of input. Positions past the input are never otherwise read.
func (l *Lexer) Byte() byte {
	if l.AtEnd() {
		return 0
	}
	return l.input[l.cursor]
}

// PeekAt returns the byte offset bytes past the cursor, or 0 if out of
// range.
func (l *Lexer) PeekAt(offset int) byte {
	idx := l.cursor + offset
	if idx < 0 || idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// NextNonSpace copies any run of ASCII whitespace at the cursor straight
// through to the output (so insignificant spacing between tokens survives
// the rewrite unchanged) and returns the next non-space byte without
// consuming it; the cursor is left pointing at that byte. Returns 0 at end
// of input. Comments are never reached through whitespace alone — they are
// discarded separately and produce no output.
func (l *Lexer) NextNonSpace() byte {
	for !l.AtEnd() && isASCIISpace(l.input[l.cursor]) {
		l.Emit(l.input[l.cursor])
	}
	return l.Byte()
}

// LastEmitted returns the last byte of the output buffer, sentinel
// excluded.
func (l *Lexer) LastEmitted() byte {
	b := l.Output.Bytes()
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1]
}

// Emit appends b to the output and advances the cursor by one.
func (l *Lexer) Emit(b byte) {
	l.Output.Push(b)
	l.cursor++
}

// EmitHere appends b to the output without advancing the cursor.
func (l *Lexer) EmitHere(b byte) {
	l.Output.Push(b)
}

// EmitSpan appends s to the output and advances the cursor by len(s).
func (l *Lexer) EmitSpan(s []byte) {
	l.Output.PushSpan(s)
	l.cursor += len(s)
}

// EmitSpanHere appends s to the output without advancing the cursor.
func (l *Lexer) EmitSpanHere(s []byte) {
	l.Output.PushSpan(s)
}

// EmitStringHere appends s to the output without advancing the cursor.
func (l *Lexer) EmitStringHere(s string) {
	l.Output.PushString(s)
}

// Unemit pops the last output byte.
func (l *Lexer) Unemit() {
	l.Output.Pop()
}

// PushMode pushes a container marker.
func (l *Lexer) PushMode(m Marker) {
	l.stack.Push(byte(m))
}

// PopMode pops the top container marker.
func (l *Lexer) PopMode() {
	l.stack.Pop()
}

// TopMode returns the top container marker without removing it.
// Precondition: StackEmpty() is false.
func (l *Lexer) TopMode() Marker {
	return Marker(l.stack.Top())
}

// StackEmpty reports whether the nesting stack has no open containers.
func (l *Lexer) StackEmpty() bool {
	return l.stack.Size() == 0
}

// Skip advances the cursor by n bytes without emitting anything. Used by
// comment skipping.
func (l *Lexer) Skip(n int) {
	l.cursor += n
}

// HasPrefix reports whether the input at the cursor starts with s.
func (l *Lexer) HasPrefix(s string) bool {
	end := l.cursor + len(s)
	if end > len(l.input) {
		return false
	}
	return string(l.input[l.cursor:end]) == s
}
