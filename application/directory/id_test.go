package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	s := &directoryAppImpl{}

	assert.Equal(t, uint64(1_700_000_000_000), s.nextID(now))

	s.lastID = 1_700_000_000_000
	assert.Equal(t, uint64(1_700_000_000_001), s.nextID(now))

	// clock going backwards still moves forward
	s.lastID = 1_800_000_000_000
	assert.Equal(t, uint64(1_800_000_000_001), s.nextID(now))
}
