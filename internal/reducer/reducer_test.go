package reducer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonia/internal/tokens"
)

func reduceSample(t *testing.T) map[string]Function {
	t.Helper()

	r := NewReducer()
	result, err := r.ReduceFile(context.Background(), filepath.Join("testdata", "sample.py"))
	require.NoError(t, err)

	byName := make(map[string]Function, len(result.Functions))
	for _, fn := range result.Functions {
		byName[fn.Name] = fn
	}
	return byName
}

func TestReduceFile(t *testing.T) {
	fns := reduceSample(t)

	t.Run("All Definitions Found", func(t *testing.T) {
		want := []string{
			"get_user", "get_account", "outer", "outer.inner",
			"AccountService.create_account", "AccountService.remove_account",
			"sync_items", "qq_zz",
		}
		assert.Len(t, fns, len(want))
		for _, name := range want {
			assert.Contains(t, fns, name)
		}
	})

	t.Run("Name Bag Splits And Counts", func(t *testing.T) {
		fn := fns["get_user"]
		assert.Equal(t, tokens.Bag{"get": 1, "user": 1}, fn.NameBag)
	})

	t.Run("Calls Assignments Returns", func(t *testing.T) {
		fn := fns["get_user"]
		assert.Equal(t, tokens.Bag{"set": 1, "fetch": 1, "return": 1}, fn.BodyBag)
	})

	t.Run("Attribute Call Leading Verb", func(t *testing.T) {
		fn := fns["get_account"]
		assert.Equal(t, tokens.Bag{"delete": 1}, fn.BodyBag)
	})

	t.Run("Nested Def Excluded From Parent", func(t *testing.T) {
		outer := fns["outer"]
		assert.Zero(t, outer.BodyBag["delete"], "inner body must not leak into outer")
		assert.Equal(t, tokens.Bag{"return": 1}, outer.BodyBag)

		inner := fns["outer.inner"]
		assert.Equal(t, tokens.Bag{"delete": 1}, inner.BodyBag)
	})

	t.Run("Methods Qualified By Class", func(t *testing.T) {
		fn := fns["AccountService.create_account"]
		assert.Equal(t, tokens.Bag{"create": 1, "account": 1}, fn.NameBag)
		assert.Equal(t, tokens.Bag{"set": 1, "build": 1, "insert": 1, "return": 1}, fn.BodyBag)
	})

	t.Run("Control Flow Markers", func(t *testing.T) {
		fn := fns["AccountService.remove_account"]
		assert.Equal(t, 1, fn.BodyBag["check"], "conditional emits check")
		assert.Equal(t, 1, fn.BodyBag["delete"], "del statement emits delete")
		assert.Equal(t, 1, fn.BodyBag["drop"])

		fn = fns["sync_items"]
		assert.Equal(t, 2, fn.BodyBag["iterate"], "for and while each emit iterate")
		assert.Equal(t, 1, fn.BodyBag["handle"])
		assert.Equal(t, 1, fn.BodyBag["raise"])
		assert.Equal(t, 1, fn.BodyBag["assert"])
		assert.Equal(t, 3, fn.BodyBag["set"], "assignment plus two augmented assignments")
	})

	t.Run("Line Numbers", func(t *testing.T) {
		fn := fns["get_user"]
		assert.Equal(t, 6, fn.StartLine)
	})
}

func TestReduceSourceIdempotent(t *testing.T) {
	source := []byte("def get_user(uid):\n    return db.fetch_user(uid)\n")

	r := NewReducer()
	first, err := r.ReduceSource(context.Background(), "mem.py", source)
	require.NoError(t, err)
	second, err := r.ReduceSource(context.Background(), "mem.py", source)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReduceSourceMalformedConstructs(t *testing.T) {
	// A with statement is outside the documented construct set; it must emit
	// only the neutral marker and never abort the function.
	source := []byte("def load_data(path):\n    with open(path) as f:\n        return f.read()\n")

	r := NewReducer()
	result, err := r.ReduceSource(context.Background(), "mem.py", source)
	require.NoError(t, err)
	require.Len(t, result.Functions, 1)

	bag := result.Functions[0].BodyBag
	assert.Equal(t, 1, bag["noop"], "unrecognized statement emits neutral marker")
	assert.Equal(t, 1, bag["open"])
	assert.Equal(t, 1, bag["read"])
	assert.Equal(t, 1, bag["return"])
}
