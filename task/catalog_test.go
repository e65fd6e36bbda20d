package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastcat.org/go/devtask/task"
)

func TestDefault(t *testing.T) {
	cat := task.Default()
	assert.Equal(t, []string{"fmt", "lint", "test"}, cat.Names())
	for _, name := range cat.Names() {
		tk, ok := cat.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, tk.Name)
		require.NotEmpty(t, tk.Commands)
		for _, argv := range tk.Commands {
			assert.NotEmpty(t, argv)
		}
	}
}

func TestCatalog_Lookup_unknown(t *testing.T) {
	_, ok := task.Default().Lookup("build")
	assert.False(t, ok)
}
