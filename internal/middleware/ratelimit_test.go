package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiter_BurstThenBlocked(t *testing.T) {
	// 60/min with burst 3: three immediate requests pass, the fourth is
	// over the ceiling.
	l := NewIPLimiter(60, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d within burst should pass", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"), "request over burst should be blocked")
}

func TestIPLimiter_PerAddressIsolation(t *testing.T) {
	l := NewIPLimiter(60, 1)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// A different address has its own bucket.
	assert.True(t, l.Allow("10.0.0.2"))
}
