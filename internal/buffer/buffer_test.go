package buffer

import (
	"fmt"
	"testing"

	"github.com/holiman/uint256"
)

func TestPushAndBytes(t *testing.T) {
	for _, test := range []struct {
		input    []byte
		expected string
	}{
		{[]byte("a"), "a"},
		{[]byte("{\"a\":1}"), `{"a":1}`},
		{[]byte(""), ""},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			b := New(len(test.input))
			b.PushSpan(test.input)
			if string(b.Bytes()) != test.expected {
				t.Errorf("expected %q got %q", test.expected, b.Bytes())
			}
		})
	}
}

func TestBytesExcludesSentinel(t *testing.T) {
	b := New(4)
	b.PushString("true")
	b.Push(Sentinel)
	if string(b.Bytes()) != "true" {
		t.Errorf("expected sentinel stripped, got %q", b.Bytes())
	}
	if b.Top() != Sentinel {
		t.Errorf("Top should still see the sentinel, got %q", b.Top())
	}
}

func TestPopAndTop(t *testing.T) {
	b := New(4)
	b.PushString("ab")
	if b.Top() != 'b' {
		t.Errorf("expected top 'b' got %q", b.Top())
	}
	b.Pop()
	if b.Size() != 1 {
		t.Errorf("expected size 1 got %d", b.Size())
	}
	if b.Top() != 'a' {
		t.Errorf("expected top 'a' got %q", b.Top())
	}
}

func TestClear(t *testing.T) {
	b := New(4)
	b.PushString("abcd")
	b.Clear()
	if b.Size() != 0 {
		t.Errorf("expected size 0 got %d", b.Size())
	}
	b.PushString("e")
	if string(b.Bytes()) != "e" {
		t.Errorf("expected %q got %q", "e", b.Bytes())
	}
}

func TestPushInt(t *testing.T) {
	for _, test := range []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{16, "16"},
		{-1000, "-1000"},
		{9223372036854775807, "9223372036854775807"},
	} {
		t.Run(test.expected, func(t *testing.T) {
			b := New(0)
			b.PushInt(test.input)
			if string(b.Bytes()) != test.expected {
				t.Errorf("expected %q got %q", test.expected, b.Bytes())
			}
		})
	}
}

func TestPushUint256(t *testing.T) {
	b := New(0)
	n := uint256.NewInt(16)
	b.PushUint256(n)
	if string(b.Bytes()) != "16" {
		t.Errorf("expected %q got %q", "16", b.Bytes())
	}
}

func TestTrimTrailingSpace(t *testing.T) {
	b := New(0)
	b.PushString("undefined  \t\n")
	b.TrimTrailingSpace()
	if string(b.Bytes()) != "undefined" {
		t.Errorf("expected %q got %q", "undefined", b.Bytes())
	}
}

func TestDropTrailingComma(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected string
	}{
		{`"a": 1,`, `"a": 1`},
		{"\"a\": 1,\n", `"a": 1`},
		{`"a": 1`, `"a": 1`},
		{`"a": 1 `, `"a": 1 `},
	} {
		t.Run(test.input, func(t *testing.T) {
			b := New(0)
			b.PushString(test.input)
			b.DropTrailingComma()
			if string(b.Bytes()) != test.expected {
				t.Errorf("expected %q got %q", test.expected, b.Bytes())
			}
		})
	}
}

func TestNewStackDefaultsOnNonPositiveDepth(t *testing.T) {
	if cap(NewStack(0).data) != initialStackDepth {
		t.Errorf("expected default depth %d", initialStackDepth)
	}
	if cap(NewStack(-1).data) != initialStackDepth {
		t.Errorf("expected default depth %d for negative input", initialStackDepth)
	}
	if cap(NewStack(5).data) != 5 {
		t.Errorf("expected requested depth 5")
	}
}

func TestGrowthPastInitialCapacity(t *testing.T) {
	b := New(1) // initial cap 3
	for i := 0; i < 1000; i++ {
		b.Push('x')
	}
	if b.Size() != 1000 {
		t.Errorf("expected size 1000 got %d", b.Size())
	}
}
