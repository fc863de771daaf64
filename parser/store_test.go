package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestStoreSwapAndLoad(t *testing.T) {
	store := NewStore()
	assert.Zero(t, store.Load())

	first := Parse(document(recordLine("PANEL", "")))
	rev1 := store.Swap(first)

	snapshot := store.Load()
	assert.NotZero(t, snapshot)
	assert.Equal(t, rev1, snapshot.Revision)
	assert.Equal(t, first, snapshot.Result)

	second := Parse(document(recordLine("OTHER", "")))
	rev2 := store.Swap(second)

	assert.NotEqual(t, rev1, rev2)
	assert.Equal(t, second, store.Load().Result)
}
