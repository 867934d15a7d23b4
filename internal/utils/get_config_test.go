package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfig(t *testing.T) {
	LoadConfig()

	t.Run("default", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		assert.Equal(t, "local", GetConfig("STORAGE_DRIVER"))
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("APP_PORT", "9090")
		assert.Equal(t, "9090", GetConfig("APP_PORT"))
	})

	t.Run("unknown key", func(t *testing.T) {
		assert.Empty(t, GetConfig("NOT_A_KEY"))
	})
}
