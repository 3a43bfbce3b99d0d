// internal/utils/ids_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewRecordID()
		assert.Len(t, id, RecordIDLength)
		assert.True(t, IsRecordID(id), "generated id %q must match its own pattern", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestIsRecordID(t *testing.T) {
	assert.True(t, IsRecordID("abc123def456ghi"))
	assert.True(t, IsRecordID("000000000000000"))

	assert.False(t, IsRecordID(""))
	assert.False(t, IsRecordID("short"))
	assert.False(t, IsRecordID("abc123def456ghij")) // 16 chars
	assert.False(t, IsRecordID("ABC123DEF456GHI"))  // uppercase
	assert.False(t, IsRecordID("abc123def456gh-"))  // punctuation
	assert.False(t, IsRecordID("abc123def456gh "))  // whitespace
}
