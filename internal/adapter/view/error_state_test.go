package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorState(t *testing.T) {
	state := NewErrorState("Failed to fetch data. Please try again later.")
	assert.Equal(t, "Something went wrong", state.Heading)
	assert.Equal(t, "Failed to fetch data. Please try again later.", state.Message)

	state = NewErrorState("")
	assert.Equal(t, "An unexpected error occurred. Please try again later.", state.Message)
}
