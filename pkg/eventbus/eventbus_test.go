package eventbus

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_PassesBoundArgs(t *testing.T) {
	t.Parallel()
	var got [][]any
	fn := func(ctx context.Context, args ...any) (Result, error) {
		got = append(got, append([]any(nil), args...))
		// mutating the slice must not leak into the next call
		args[0] = "mutated"
		return Continue, nil
	}

	h := Bind(fn, "report.txt", 42)
	for i := 0; i < 2; i++ {
		res, err := h.Handle(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Continue, res)
	}

	require.Len(t, got, 2)
	assert.Equal(t, []any{"report.txt", 42}, got[0])
	assert.Equal(t, []any{"report.txt", 42}, got[1])
}

func TestBind_NoArgs(t *testing.T) {
	t.Parallel()
	h := Bind(func(ctx context.Context, args ...any) (Result, error) {
		assert.Empty(t, args)
		return Stop, nil
	})
	res, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stop, res)
}

func TestBind_WithRegistry(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()
	var out []string
	format := func(ctx context.Context, args ...any) (Result, error) {
		out = append(out, fmt.Sprintf(args[0].(string), args[1:]...))
		return Continue, nil
	}

	r.Declare("save")
	_, err := r.Attach("save", Bind(format, "saving %s", "a.txt"))
	require.NoError(t, err)
	_, err = r.Attach("save", Bind(format, "saved %d bytes", 10))
	require.NoError(t, err)

	require.NoError(t, r.Trigger(context.Background(), "save"))
	assert.Equal(t, []string{"saving a.txt", "saved 10 bytes"}, out)
}

func TestResult_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "stop", Stop.String())
	assert.Equal(t, "unknown", Result(7).String())
}
