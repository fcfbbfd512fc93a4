package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestPicksMinimumDistance(t *testing.T) {
	candidates := []Candidate{
		{Path: "a/Cargo.toml", Name: "serde"},
		{Path: "b/Cargo.toml", Name: "tokio"},
		{Path: "c/Cargo.toml", Name: "serda"},
	}
	got := Closest(candidates, "serdb")
	require.NotNil(t, got)
	// "serde" and "serda" are both distance 1; the first in scan order wins.
	assert.Equal(t, "serde", got.Name)
	assert.Equal(t, "a/Cargo.toml", got.Path)
}

func TestClosestEmptyCandidates(t *testing.T) {
	assert.Nil(t, Closest(nil, "anything"))
}

func TestClosestDeterministic(t *testing.T) {
	candidates := []Candidate{
		{Path: "x", Name: "alpha"},
		{Path: "y", Name: "aloha"},
		{Path: "z", Name: "omega"},
	}
	first := Closest(candidates, "alpho")
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := Closest(candidates, "alpho")
		require.NotNil(t, again)
		assert.Equal(t, first.Path, again.Path)
		assert.Equal(t, first.Name, again.Name)
	}
}

func TestClosestExactNameWins(t *testing.T) {
	candidates := []Candidate{
		{Path: "x", Name: "helper"},
		{Path: "y", Name: "help"},
	}
	got := Closest(candidates, "help")
	require.NotNil(t, got)
	assert.Equal(t, "y", got.Path)
}
