package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	s := New("")
	assert.Equal(t, DefaultHandle, s.Handle)
	assert.Equal(t, DefaultLocation, s.Location)
	assert.True(t, s.Discovered[DefaultLocation])
	assert.Empty(t, s.Inventory)
	assert.Empty(t, s.Flags)
	assert.Empty(t, s.Log)
	assert.False(t, s.Ended)

	named := New("wren")
	assert.Equal(t, "wren", named.Handle)
}

func TestDiscover(t *testing.T) {
	s := New("ghost")

	added := s.Discover("market.node", "perimeter.gate")
	assert.Equal(t, []string{"market.node", "perimeter.gate"}, added)

	// Idempotent: a second call adds nothing and removes nothing.
	again := s.Discover("market.node", "perimeter.gate")
	assert.Empty(t, again)
	assert.Len(t, s.Discovered, 3)

	// Input order is preserved for the new subset only.
	mixed := s.Discover("weaver.den", "market.node", "corp.audit")
	assert.Equal(t, []string{"weaver.den", "corp.audit"}, mixed)
}

func TestVisit(t *testing.T) {
	s := New("ghost")
	assert.True(t, s.Visit("hub.home"))
	assert.False(t, s.Visit("hub.home"))
	assert.True(t, s.Visit("market.node"))
}

func TestLogEventAppends(t *testing.T) {
	s := New("ghost")
	s.LogEvent("first")
	s.LogEvent("second")
	assert.Equal(t, []string{"first", "second"}, s.Log)
}
