package server

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBansBursts(t *testing.T) {
	rl := NewRateLimiter(3, 100, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d", i)
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// The ban sticks even for spaced-out retries.
	assert.False(t, rl.Allow("1.2.3.4"))

	// Other IPs are unaffected.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestOriginCheckerAllowAll(t *testing.T) {
	oc := NewOriginChecker([]string{"*"})

	r := httptest.NewRequest("GET", "/ws", nil)
	r.Header.Set("Origin", "https://evil.example.com")
	assert.True(t, oc.Check(r))
}

func TestOriginCheckerList(t *testing.T) {
	oc := NewOriginChecker([]string{"https://belote.example.com"})

	r := httptest.NewRequest("GET", "/ws", nil)
	r.Header.Set("Origin", "https://Belote.Example.Com")
	assert.True(t, oc.Check(r), "origin matching is case-insensitive")

	r.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, oc.Check(r))

	// No Origin header: same-origin or non-browser client.
	r.Header.Del("Origin")
	assert.True(t, oc.Check(r))
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/ws", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", GetClientIP(r))

	r.Header.Set("X-Real-IP", "9.9.9.9")
	assert.Equal(t, "9.9.9.9", GetClientIP(r))

	r.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	assert.Equal(t, "1.1.1.1", GetClientIP(r))
}

func TestMessageRateLimiter(t *testing.T) {
	ml := NewMessageRateLimiter(4)

	for i := 0; i < 2; i++ {
		allowed, warning := ml.AllowMessage("c1")
		assert.True(t, allowed)
		assert.False(t, warning, "message %d", i)
	}

	// Past the halfway mark the client gets warned but not blocked.
	allowed, warning := ml.AllowMessage("c1")
	assert.True(t, allowed)
	assert.True(t, warning)

	ml.AllowMessage("c1")
	allowed, warning = ml.AllowMessage("c1")
	assert.False(t, allowed)
	assert.True(t, warning)
	assert.Equal(t, 1, ml.GetWarningCount("c1"))

	ml.RemoveClient("c1")
	assert.Equal(t, 0, ml.GetWarningCount("c1"))
}

func TestChatRateLimiterCooldown(t *testing.T) {
	cl := NewChatRateLimiter(2, 100, 10*time.Second)

	allowed, _ := cl.AllowChat("c1")
	assert.True(t, allowed)
	allowed, _ = cl.AllowChat("c1")
	assert.True(t, allowed)

	allowed, reason := cl.AllowChat("c1")
	assert.False(t, allowed)
	assert.NotEmpty(t, reason)

	// Still muted while the cooldown runs.
	allowed, reason = cl.AllowChat("c1")
	assert.False(t, allowed)
	assert.Contains(t, reason, "muted")
}
