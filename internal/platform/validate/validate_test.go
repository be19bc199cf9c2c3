package validate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required,max=5"`
	Kind  string   `json:"kind" validate:"required,oneof=a b"`
	Tags  []string `json:"tags" validate:"min=1,max=2"`
	Notes string   `json:"-"`
}

var sampleMsgs = Messages{
	"name.required": "Name is required",
	"name.max":      "Name must be 5 characters or less",
	"kind":          "Kind must be a or b",
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "ok", Kind: "a", Tags: []string{"x"}}, sampleMsgs))
}

func TestStruct_FirstMessageWinsInFieldOrder(t *testing.T) {
	err := Struct(sample{Name: "", Kind: "zzz", Tags: nil}, sampleMsgs)
	require.Error(t, err)

	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Name is required", err.Error())
	assert.Equal(t, []FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "kind", Message: "Kind must be a or b"},
		{Field: "tags", Message: "tags is invalid"},
	}, ve.All())
	assert.True(t, ve.Has("kind"))
	assert.False(t, ve.Has("notes"))
}

func TestStruct_MaxCountsRunes(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "ñandú", Kind: "b", Tags: []string{"x"}}, sampleMsgs))

	err := Struct(sample{Name: "ñandúx", Kind: "b", Tags: []string{"x"}}, sampleMsgs)
	assert.EqualError(t, err, "Name must be 5 characters or less")
}

type padded struct {
	Name string `json:"name" validate:"required,notblank,max=5"`
}

func TestStruct_NotBlankUsesRequiredMessage(t *testing.T) {
	msgs := Messages{"name.required": "Name is required"}

	assert.EqualError(t, Struct(padded{Name: "   "}, msgs), "Name is required")
	assert.EqualError(t, Struct(padded{Name: ""}, msgs), "Name is required")
	require.NoError(t, Struct(padded{Name: " ab "}, msgs))
}

func TestAsErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", Field("dateOfBirth", "bad date"))
	ve, ok := AsErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, "bad date", ve.Error())
}

func TestErrors_EmptyMessage(t *testing.T) {
	assert.Equal(t, "invalid input", Errors{}.Error())
}
