package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	assert.Equal(t, "light", Dark().Toggle().Name)
	assert.Equal(t, "dark", Light().Toggle().Name)
	assert.Equal(t, "dark", Dark().Toggle().Toggle().Name)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "dark", Resolve("dark").Name)
	assert.Equal(t, "light", Resolve("light").Name)
	assert.Contains(t, []string{"dark", "light"}, Resolve("system").Name)
}
