package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalStringUnmarshal(t *testing.T) {
	var body struct {
		Description OptionalString `json:"description"`
		DueDate     OptionalString `json:"due_date"`
		Other       OptionalString `json:"other"`
	}

	err := json.Unmarshal([]byte(`{"description":"","due_date":null}`), &body)
	require.NoError(t, err)

	assert.Equal(t, OptionalString{Set: true}, body.Description)
	assert.Equal(t, NullString(), body.DueDate)
	assert.Nil(t, body.DueDate.Ptr())
	assert.False(t, body.Other.Set)
}

func TestOptionalStringRejectsNonString(t *testing.T) {
	var o OptionalString
	assert.Error(t, json.Unmarshal([]byte(`42`), &o))
}

func TestTaskPatchIsEmpty(t *testing.T) {
	assert.True(t, TaskPatch{}.IsEmpty())

	title := "A"
	assert.False(t, TaskPatch{Title: &title}.IsEmpty())
	assert.False(t, TaskPatch{DueDate: NullString()}.IsEmpty())
}
