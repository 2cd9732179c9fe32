package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	t.Run("Matching password", func(t *testing.T) {
		assert.NoError(t, hasher.Compare(hash, "correct horse"))
	})

	t.Run("Wrong password", func(t *testing.T) {
		assert.Error(t, hasher.Compare(hash, "battery staple"))
	})

	t.Run("Out of range cost falls back to default", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(100).cost)
		assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	})
}
