package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "correct-horse-battery-staple",
		})
		require.NoError(t, err)

		assert.Equal(t, "maze_runner", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		assert.True(t, user.VerifyPassword("correct-horse-battery-staple"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "password",
		})
		assert.Error(t, err)
	})

	t.Run("rejects bad usernames", func(t *testing.T) {
		for _, username := range []string{"ab", "has spaces", "way_too_long_username_over_the_limit", "bad!chars"} {
			_, err := NewUser(UserConfig{
				ID:            uuid.New(),
				Username:      username,
				PlainPassword: "correct-horse-battery-staple",
			})
			assert.Error(t, err, "username %q", username)
		}
	})
}
