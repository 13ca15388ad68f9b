package metadata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var pickResults = []SearchResult{
	{ID: "1", Title: "Berserk Gaiden"},
	{ID: "2", Title: "Berserk"},
	{ID: "3", Title: "Something Else Entirely"},
}

func TestRankResultsOrdersBySimilarity(t *testing.T) {
	ranked := RankResults("berserk", pickResults)

	require.Equal(t, "Berserk", ranked[0].Result.Title)
	require.Equal(t, "Berserk Gaiden", ranked[1].Result.Title)
	require.Equal(t, "Something Else Entirely", ranked[2].Result.Title)
	require.Equal(t, 1.0, ranked[0].Similarity)
}

func TestPickSingleResult(t *testing.T) {
	var out bytes.Buffer
	picked, err := Pick("berserk", pickResults[:1], false, strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Equal(t, "1", picked.ID)
	require.Empty(t, out.String())
}

func TestPickNoResults(t *testing.T) {
	var out bytes.Buffer
	_, err := Pick("berserk", nil, false, strings.NewReader(""), &out)
	require.ErrorIs(t, err, ErrNoResults)
}

func TestPickUseFirst(t *testing.T) {
	var out bytes.Buffer
	picked, err := Pick("berserk", pickResults, true, strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Equal(t, "2", picked.ID)
	require.Contains(t, out.String(), "Found 3 possible results.")
	require.Contains(t, out.String(), "Automatically choosing first result.")
}

func TestPickPrompted(t *testing.T) {
	var out bytes.Buffer
	picked, err := Pick("berserk", pickResults, false, strings.NewReader("1\n"), &out)
	require.NoError(t, err)
	require.Equal(t, "Berserk Gaiden", picked.Title)
	require.Contains(t, out.String(), "00 -- Berserk")
}

func TestPickRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	picked, err := Pick("berserk", pickResults, false, strings.NewReader("nope\n9\n0\n"), &out)
	require.NoError(t, err)
	require.Equal(t, "Berserk", picked.Title)
	require.Contains(t, out.String(), "out of bounds")
}

func TestPickQuit(t *testing.T) {
	var out bytes.Buffer
	_, err := Pick("berserk", pickResults, false, strings.NewReader("q\n"), &out)
	require.ErrorIs(t, err, ErrNoSelection)
}

func TestPickEndOfInput(t *testing.T) {
	var out bytes.Buffer
	_, err := Pick("berserk", pickResults, false, strings.NewReader(""), &out)
	require.ErrorIs(t, err, ErrNoSelection)
}
