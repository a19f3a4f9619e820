package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "plain", cfg.PasswordScheme)
	assert.Equal(t, time.Second, cfg.AuthLatency)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("STORE_FILE", "/tmp/kv.json")
	t.Setenv("AUTH_LATENCY_MS", "0")
	t.Setenv("AUTH_PASSWORD_SCHEME", "bcrypt")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, "/tmp/kv.json", cfg.StoreFile)
	assert.Equal(t, time.Duration(0), cfg.AuthLatency)
	assert.Equal(t, "bcrypt", cfg.PasswordScheme)
}

// 列挙にないドライバ名は起動前に弾く
func TestLoad_InvalidStoreDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "dynamo")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestLoad_InvalidLatency(t *testing.T) {
	t.Setenv("AUTH_LATENCY_MS", "abc")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_LATENCY_MS")
}
