package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testProfile struct {
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	err := s.Set("user-1", "profile", testProfile{Name: "Demo", Credits: 5})
	require.NoError(t, err)

	var got testProfile
	ok, err := s.Get("user-1", "profile", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testProfile{Name: "Demo", Credits: 5}, got)
}

func TestMemoryStore_Missing(t *testing.T) {
	s := NewMemoryStore()

	var got testProfile
	ok, err := s.Get("user-1", "profile", &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestMemoryStore_CorruptValue(t *testing.T) {
	s := NewMemoryStore()

	// A string stored where a struct is expected does not unmarshal;
	// the caller must see the same result as a missing key.
	require.NoError(t, s.Set("user-1", "profile", "oops"))

	var got testProfile
	ok, err := s.Get("user-1", "profile", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_IsolatedPerUser(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("user-1", "credits", 3))
	require.NoError(t, s.Set("user-2", "credits", 5))

	var got int
	ok, err := s.Get("user-1", "credits", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, got)

	ok, err = s.Get("user-2", "credits", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, got)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set("user-1", "gallery", []string{"a", "b"}))
	require.NoError(t, s.Delete("user-1", "gallery"))

	var got []string
	ok, err := s.Get("user-1", "gallery", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete("user-1", "gallery"))
}
