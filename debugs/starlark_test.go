package debugs

import (
	"testing"

	"github.com/reusee/ngl/tapes"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type cells struct {
		Pointer int
		Cells   []int
		hidden  bool
	}

	dict := func(kvs ...starlark.Value) starlark.Value {
		d := starlark.NewDict(len(kvs) / 2)
		for i := 0; i < len(kvs); i += 2 {
			if err := d.SetKey(kvs[i], kvs[i+1]); err != nil {
				t.Fatal(err)
			}
		}
		return d
	}
	list := func(elems ...starlark.Value) starlark.Value {
		return starlark.NewList(elems)
	}

	value := &cells{Pointer: 2, Cells: []int{0, 1}, hidden: true}
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte{1, 2}, starlark.Bytes("\x01\x02")},
		{"string", "never", starlark.String("never")},
		{"int", 42, starlark.MakeInt(42)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"float", 0.5, starlark.Float(0.5)},
		{"stringer", tapes.StateTruncated, starlark.String("truncated")},
		{"ints", []int{1, 2}, list(starlark.MakeInt(1), starlark.MakeInt(2))},
		{"map", map[string]any{"a": 1}, dict(starlark.String("a"), starlark.MakeInt(1))},
		{"struct", *value, dict(
			starlark.String("Pointer"), starlark.MakeInt(2),
			starlark.String("Cells"), list(starlark.MakeInt(0), starlark.MakeInt(1)),
		)},
		{"pointer", &value, dict(
			starlark.String("Pointer"), starlark.MakeInt(2),
			starlark.String("Cells"), list(starlark.MakeInt(0), starlark.MakeInt(1)),
		)},
		{"nil pointer", (*cells)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
