package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_NavigateAndBack(t *testing.T) {
	s := NewStack("home")
	require.Equal(t, "home", s.Current().Screen)

	s.Navigate("notes", Params{"openAddModal": true})
	require.Equal(t, "notes", s.Current().Screen)
	require.True(t, s.Current().Params.Bool("openAddModal"))

	s.GoBack()
	require.Equal(t, "home", s.Current().Screen)

	// The root never pops.
	s.GoBack()
	require.Equal(t, "home", s.Current().Screen)
	require.Equal(t, 1, s.Depth())
}

func TestParams_MissingAndMistyped(t *testing.T) {
	p := Params{"flag": "yes", "name": 3}
	require.False(t, p.Bool("flag"))
	require.False(t, p.Bool("absent"))
	require.Empty(t, p.String("name"))
	require.Empty(t, p.String("absent"))
}
