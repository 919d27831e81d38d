package errkind

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := New(Value, "grid.Render", "grid must be a non-empty structure")

	want := "grid.Render: grid must be a non-empty structure"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantOK   bool
	}{
		{"type error", New(Type, "op", "msg"), Type, true},
		{"value error", New(Value, "op", "msg"), Value, true},
		{"index error", Newf(Index, "op", "x=%d out of bounds", 7), Index, true},
		{"wrapped once more", fmt.Errorf("pipeline: %w", New(Index, "op", "msg")), Index, true},
		{"plain error", errors.New("plain"), 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("KindOf() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && kind != tt.wantKind {
				t.Errorf("KindOf() = %v, want %v", kind, tt.wantKind)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := Wrap(Value, "config.Load", errors.New("decode failed"))

	if !Is(err, Value) {
		t.Error("Is() = false for matching kind")
	}
	if Is(err, Index) {
		t.Error("Is() = true for non-matching kind")
	}
	if Is(errors.New("plain"), Value) {
		t.Error("Is() = true for unclassified error")
	}
}

func TestWrap_Unwrap(t *testing.T) {
	inner := errors.New("strconv failed")
	err := Wrap(Value, "htmltable.Extract", inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is() cannot reach the wrapped error")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Type, "type"},
		{Value, "value"},
		{Index, "index"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
