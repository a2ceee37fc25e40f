package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionRoundTrip(t *testing.T) {
	data := FormatAction("vote", int64(42), "up", 1001, 2002)
	require.Equal(t, "vote:42:up:1001:2002", data)

	a := ParseAction(data)
	require.Equal(t, "vote", a.Name)
	require.True(t, a.Arity(4))

	id, err := a.Int64(0)
	require.NoError(t, err)
	require.EqualValues(t, 42, id)
	require.Equal(t, "up", a.String(1))

	msgID, err := a.Int(2)
	require.NoError(t, err)
	require.Equal(t, 1001, msgID)
}

func TestParseBareName(t *testing.T) {
	a := ParseAction("cancel")
	require.Equal(t, "cancel", a.Name)
	require.True(t, a.Arity(0))
	require.Equal(t, "", a.String(0))
}

func TestInt64RejectsGarbage(t *testing.T) {
	a := ParseAction("browse:abc")
	_, err := a.Int64(0)
	require.Error(t, err)

	a = ParseAction("browse:0")
	_, err = a.Int64(0)
	require.Error(t, err, "ids are strictly positive")

	a = ParseAction("browse:-5")
	_, err = a.Int64(0)
	require.Error(t, err)

	a = ParseAction("browse")
	_, err = a.Int64(0)
	require.Error(t, err, "missing argument")
}

func TestIntRejectsNonNumeric(t *testing.T) {
	a := ParseAction("nav:7:two")
	_, err := a.Int(1)
	require.Error(t, err)

	page, err := a.Int(0)
	require.NoError(t, err)
	require.Equal(t, 7, page)
}
