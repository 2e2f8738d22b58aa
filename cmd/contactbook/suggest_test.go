package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuggestCmdPanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewSuggestCmd(nil) })
}

func TestSuggestPrintsMatchingNames(t *testing.T) {
	out, err := execute(t, NewSuggestCmd(&fakeDirectories{contacts: testContacts()}), "c")

	require.NoError(t, err)
	requireLines(t, []string{"Chelsey Dietrich", "Clementine Bauch"}, out)
}

func TestSuggestJoinsArgsAndHonorsLimit(t *testing.T) {
	dirs := &fakeDirectories{contacts: testContacts()}

	out, err := execute(t, NewSuggestCmd(dirs), "leanne", "g")
	require.NoError(t, err)
	requireLines(t, []string{"Leanne Graham"}, out)

	out, err = execute(t, NewSuggestCmd(dirs), "c", "--limit", "1")
	require.NoError(t, err)
	requireLines(t, []string{"Chelsey Dietrich"}, out)
}

func TestSuggestNoMatchesPrintsNothing(t *testing.T) {
	out, err := execute(t, NewSuggestCmd(&fakeDirectories{contacts: testContacts()}), "xyz")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSuggestRequiresQuery(t *testing.T) {
	_, err := execute(t, NewSuggestCmd(&fakeDirectories{contacts: testContacts()}))

	assert.Error(t, err)
}
