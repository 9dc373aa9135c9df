package clock

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowISO(t *testing.T) {
	s := NowISO()

	parsed, err := time.Parse(ISO8601Millis, s)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(s, "Z"))
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}

func TestNowISOOrdersLexicographically(t *testing.T) {
	a := NowISO()
	time.Sleep(2 * time.Millisecond)
	b := NowISO()
	assert.LessOrEqual(t, a, b)
}

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
