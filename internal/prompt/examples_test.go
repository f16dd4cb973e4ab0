package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, Defaults, New(nil).All())
	assert.Equal(t, Defaults, New([]string{"", "   "}).All())
}

func TestNewKeepsOrderAndDropsDuplicates(t *testing.T) {
	e := New([]string{"A cat", "", "A dog", "A cat"})
	assert.Equal(t, []string{"A cat", "A dog"}, e.All())
}

func TestAllReturnsCopy(t *testing.T) {
	e := New([]string{"A cat"})
	all := e.All()
	all[0] = "changed"
	assert.Equal(t, []string{"A cat"}, e.All())
}

func TestAt(t *testing.T) {
	e := New(nil)

	got, ok := e.At(1)
	assert.True(t, ok)
	assert.Equal(t, "A futuristic city with flying cars", got)

	_, ok = e.At(3)
	assert.False(t, ok)
	_, ok = e.At(-1)
	assert.False(t, ok)
}

func TestRandom(t *testing.T) {
	e := New(nil)
	for i := 0; i < 20; i++ {
		assert.Contains(t, Defaults, e.Random(context.Background()))
	}
}
