package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBody(t *testing.T) {
	type body struct {
		Name  string   `json:"name" validate:"required"`
		Items []string `json:"items" validate:"required,min=2"`
	}

	assert.NoError(t, ValidateBody(&body{Name: "a", Items: []string{"x", "y"}}))

	err := ValidateBody(&body{Items: []string{"x"}})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "name is required")
		assert.Contains(t, err.Error(), "items must have at least 2 entries")
	}
}
