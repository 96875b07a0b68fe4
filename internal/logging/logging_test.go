package logging_test

import (
	"testing"

	"github.com/go-logr/stdr"
	"github.com/stretchr/testify/assert"

	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/logging"
)

func TestInit(t *testing.T) {
	old := stdr.SetVerbosity(0)
	defer stdr.SetVerbosity(old)

	logging.Init(2)
	assert.True(t, logging.Log().V(2).Enabled())
	assert.False(t, logging.Log().V(3).Enabled())

	logging.Init(0)
	assert.True(t, logging.Log().V(2).Enabled(), "zero keeps the current level")
}
