package auth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "zero cost", cost: 0, want: bcrypt.DefaultCost},
		{name: "below minimum", cost: 1, want: bcrypt.MinCost},
		{name: "above maximum", cost: 99, want: bcrypt.MaxCost},
		{name: "in range", cost: 12, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPasswordHasher(tt.cost)

			assert.Equal(t, tt.want, h.cost)
		})
	}
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	t.Run("fresh salt per call", func(t *testing.T) {
		first, err := h.Hash("secret123")
		require.NoError(t, err)
		second, err := h.Hash("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, h.Verify("secret123", first))
		assert.True(t, h.Verify("secret123", second))
	})

	t.Run("other passwords do not verify", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			password := fmt.Sprintf("password-%d", i)

			hash, err := h.Hash(password)
			require.NoError(t, err)

			assert.True(t, h.Verify(password, hash))
			assert.False(t, h.Verify(password+"x", hash))
			assert.False(t, h.Verify(fmt.Sprintf("password-%d", i+1), hash))
		}
	})

	t.Run("garbage hash", func(t *testing.T) {
		assert.False(t, h.Verify("secret123", "not-a-hash"))
	})
}
