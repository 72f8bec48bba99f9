//go:build unit

package kvconfig

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Get(t *testing.T) {
	config, err := Parse("name=test")
	assert.NoError(t, err)

	value, ok := config.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "test", value)

	value, ok = config.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, value)

	var nilConfig *Config
	_, ok = nilConfig.Get("name")
	assert.False(t, ok)
	assert.Equal(t, 0, nilConfig.Len())
}

func TestConfig_Order(t *testing.T) {
	config, err := Parse("z=1\na=2\nm=3\nz=4")
	assert.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, config.Keys())
	assert.Equal(t, "z=4\na=2\nm=3\n", config.String())
}

func TestConfig_MapIsACopy(t *testing.T) {
	config, err := Parse("a=1")
	assert.NoError(t, err)

	m := config.Map()
	m["a"] = "changed"
	m["b"] = "added"

	value, _ := config.Get("a")
	assert.Equal(t, "1", value)
	assert.False(t, config.Has("b"))
}

func TestConfig_Equal(t *testing.T) {
	a, _ := Parse("x=1\ny=2")
	b, _ := Parse("y=2\nx=1")
	c, _ := Parse("x=1\ny=3")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(New()))
	assert.True(t, New().Equal(nil))
}

func TestConfigError_IO(t *testing.T) {
	err := NewIOError("/missing.conf", os.ErrNotExist)

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, errors.Is(err, ErrParse))
	assert.Equal(t, "IO error: file does not exist", err.Error())
}
