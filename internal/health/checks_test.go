package health

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/retail-pos/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailCheck(t *testing.T) {
	assert.Error(t, emailCheck(&config.SendGrid{})(context.Background()))
	assert.NoError(t, emailCheck(&config.SendGrid{APIKey: "SG.key"})(context.Background()))
}

func TestNewHealthHandler(t *testing.T) {
	cfg := &config.Config{
		Database:     config.Database{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "d", SSLMode: "disable"},
		RedisConnect: config.RedisConnect{Host: "localhost", Port: "6379"},
		Tracing:      config.Tracing{ServiceName: "retail-pos"},
	}

	h, err := NewHealthHandler(cfg)

	require.NoError(t, err)
	assert.NotNil(t, h.Handler())
}
