package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 24)
	assert.True(t, IsValidID(id))

	// Practically unique.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.False(t, seen[id], "generated a duplicate ID")
		seen[id] = true
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("507f1f77bcf86cd799439011"))
	assert.True(t, IsValidID("AAAAAAAAAAAAAAAAAAAAAAAA"))

	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("507f1f77bcf86cd79943901"))    // 23 chars
	assert.False(t, IsValidID("507f1f77bcf86cd7994390111"))  // 25 chars
	assert.False(t, IsValidID("507f1f77bcf86cd79943901g"))   // non-hex
	assert.False(t, IsValidID("507f1f77-bcf8-6cd7-994390"))  // punctuation
}

func TestStatusEnums(t *testing.T) {
	assert.True(t, ValidJobStatus(JobStatusActive))
	assert.True(t, ValidJobStatus(JobStatusDraft))
	assert.False(t, ValidJobStatus("open"))

	assert.True(t, ValidApplicationStatus(ApplicationStatusHired))
	assert.False(t, ValidApplicationStatus("approved"))

	assert.True(t, ValidJobLevel(JobLevelSenior))
	assert.False(t, ValidJobLevel("senior")) // case-sensitive
}
