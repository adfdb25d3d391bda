package collection_test

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/collections/collection"
)

func TestStackScenario(t *testing.T) {
	var s collection.Stack[string]
	for _, game := range []string{"Minecraft", "Overwatch", "Battlefield", "Borderlands"} {
		s.Push(game)
	}
	assert.Equal(t, "[Minecraft Overwatch Battlefield Borderlands]", s.String())

	top, err := s.PeekTop()
	require.NoError(t, err)
	assert.Equal(t, "Borderlands", top)
	assert.Equal(t, 4, s.Search("Minecraft"))

	top, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "Borderlands", top)
	assert.Equal(t, []string{"Minecraft", "Overwatch", "Battlefield"}, s.Values())

	top, err = s.PeekTop()
	require.NoError(t, err)
	assert.Equal(t, "Battlefield", top)
	assert.False(t, s.IsEmpty())
}

func TestStackSearch(t *testing.T) {
	var s collection.Stack[string]
	s.Push("X")
	s.Push("Y")
	assert.Equal(t, 1, s.Search("Y"))
	assert.Equal(t, 2, s.Search("X"))
	assert.Equal(t, -1, s.Search("Z"))

	_, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, -1, s.Search("Y"))
	assert.Equal(t, 1, s.Search("X"))

	// The topmost duplicate wins.
	s.Push("A")
	s.Push("X")
	assert.Equal(t, 1, s.Search("X"))
}

func TestStackEmpty(t *testing.T) {
	var s collection.Stack[int]
	_, err := s.Pop()
	assert.ErrorIs(t, err, collection.ErrEmpty)
	_, err = s.PeekTop()
	assert.ErrorIs(t, err, collection.ErrEmpty)
	assert.Equal(t, 0, s.Len())
}

func TestStackMatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	ref := arraystack.New()
	var s collection.Stack[int]

	for step := 0; step < 1000; step++ {
		if rnd.Intn(5) < 3 {
			v := rnd.Intn(30)
			s.Push(v)
			ref.Push(v)
		} else {
			want, ok := ref.Pop()
			got, err := s.Pop()
			if !ok {
				require.ErrorIs(t, err, collection.ErrEmpty)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, want, got)
		}

		require.Equal(t, ref.Size(), s.Len())
		if want, ok := ref.Peek(); ok {
			got, err := s.PeekTop()
			require.NoError(t, err)
			require.Equal(t, want, got, "step %d", step)
		}
	}
}
