//go:build unit
// +build unit

package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelValid(t *testing.T) {
	assert.True(t, LevelAdmin.Valid())
	assert.True(t, LevelUser.Valid())
	assert.False(t, Level("").Valid())
	assert.False(t, Level("root").Valid())
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []Level{LevelAdmin, LevelUser}, Levels())
}
