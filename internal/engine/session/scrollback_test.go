package session_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ecfg/internal/engine/session"
)

func TestScrollback_Tail(t *testing.T) {
	s := session.NewScrollback(10)
	s.Append("a", "b", "c")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"b", "c"}, s.Tail(2))
	assert.Equal(t, []string{"a", "b", "c"}, s.Tail(50))
	assert.Empty(t, s.Tail(0))
	assert.Empty(t, s.Tail(-1))
}

func TestScrollback_DropsOldest(t *testing.T) {
	s := session.NewScrollback(3)
	for i := range 7 {
		s.Append(strconv.Itoa(i))
	}

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"4", "5", "6"}, s.Lines())
	assert.Equal(t, []string{"6"}, s.Tail(1))
}

func TestScrollback_DefaultCapacity(t *testing.T) {
	s := session.NewScrollback(0)
	for i := range session.DefaultScrollback + 10 {
		s.Append(strconv.Itoa(i))
	}

	assert.Equal(t, session.DefaultScrollback, s.Len())
	assert.Equal(t, "10", s.Lines()[0])
}
