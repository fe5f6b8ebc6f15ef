package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
)

type sample struct {
	Level   int    `json:"level" validate:"required,min=1,max=6"`
	Place   string `json:"place" validate:"required"`
	Comment string `json:"comment"`
	Items   []item `json:"items" validate:"dive"`
}

type item struct {
	Name string `json:"name" validate:"required"`
}

func TestStructReportsAllFieldsAtOnce(t *testing.T) {
	err := Struct(&sample{Level: 9, Items: []item{{Name: "ok"}, {}}})
	ae, ok := apierr.As(err)
	require.True(t, ok)
	require.Equal(t, apierr.CodeValidation, ae.Code)
	require.Equal(t, []string{"items[1].name", "level", "place"}, ae.Fields)
}

func TestStructPasses(t *testing.T) {
	require.NoError(t, Struct(&sample{Level: 3, Place: "home"}))
}
