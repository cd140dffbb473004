package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathSet_Add_FirstInsertionWinsPosition(t *testing.T) {
	s := NewPathSet("/a", "/b")

	assert.False(t, s.Add(NewPathValue("/A/")), "equal value must be coalesced")
	assert.True(t, s.Add(NewPathValue("/c")))
	assert.Equal(t, []string{"/a", "/b", "/c"}, s.Strings())
}

func TestPathSet_Without_PreservesOrder(t *testing.T) {
	s := NewPathSet("a", "b", "c", "d")
	out := s.Without(NewPathSet("B", "d/"))

	assert.Equal(t, []string{"a", "c"}, out.Strings())
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Strings(), "receiver must not change")
}

func TestPathSet_NilReceiver_ActsEmpty(t *testing.T) {
	var s *PathSet

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(NewPathValue("x")))
	assert.Nil(t, s.Values())
	assert.Equal(t, "", s.Join(":"))

	c := s.Clone()
	require.NotNil(t, c)
	assert.True(t, c.Add(NewPathValue("x")))
}

func TestPathSet_Clone_IsIndependent(t *testing.T) {
	s := NewPathSet("a")
	c := s.Clone()
	c.Add(NewPathValue("b"))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}

func TestPathSet_SameMembers_IgnoresOrder(t *testing.T) {
	assert.True(t, NewPathSet("a", "b").SameMembers(NewPathSet("B", "a")))
	assert.False(t, NewPathSet("a", "b").SameMembers(NewPathSet("a")))
	assert.False(t, NewPathSet("a", "b").SameMembers(NewPathSet("a", "c")))
}

func TestPathSet_Join(t *testing.T) {
	assert.Equal(t, "/a:/b", NewPathSet("/a", "/b", "/a/").Join(":"))
}
