package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguages(t *testing.T) {
	assert := assert.New(t)

	tags := languages()
	assert.NotEmpty(tags)
	for _, tag := range tags {
		assert.NotEmpty(tag)
	}
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("memory map ok", From("memory map ok"))
	assert.Contains(From("%v: %d entries match", "tk1_mem.h", 60), "tk1_mem.h")
}
