package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:                  "development",
		Port:                 "8480",
		JWTSecret:            "secure-secret-at-least-32-chars-long",
		DBPassword:           "secure-password",
		DBSSLMode:            "disable",
		RedisURL:             "localhost:6379",
		ImageMaxUploadSizeMB: 10,
	}
}

func TestConfig_Validate_Production(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name: "default secret rejected",
			mutate: func(c *Config) {
				c.JWTSecret = "your-secret-key-change-in-production"
			},
			expectError: true,
		},
		{
			name: "short secret rejected",
			mutate: func(c *Config) {
				c.JWTSecret = "short"
			},
			expectError: true,
		},
		{
			name: "weak db password rejected",
			mutate: func(c *Config) {
				c.DBPassword = "password"
			},
			expectError: true,
		},
		{
			name: "ssl disabled rejected",
			mutate: func(c *Config) {
				c.DBSSLMode = "disable"
			},
			expectError: true,
		},
		{
			name: "missing media credentials rejected",
			mutate: func(c *Config) {
				c.MediaAPISecret = ""
			},
			expectError: true,
		},
		{
			name:        "complete production config accepted",
			mutate:      func(c *Config) {},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = "production"
			c.DBSSLMode = "require"
			c.MediaCloudName = "chirp"
			c.MediaAPIKey = "key"
			c.MediaAPISecret = "secret"
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_Development(t *testing.T) {
	c := validConfig()
	assert.NoError(t, c.Validate())

	c.Port = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.ImageMaxUploadSizeMB = 0
	assert.Error(t, c.Validate())
}

func TestConfig_EnvHelpers(t *testing.T) {
	c := validConfig()
	assert.True(t, c.IsDevelopment())
	assert.False(t, c.IsProduction())

	c.Env = "prod"
	assert.True(t, c.IsProduction())
	assert.False(t, c.IsDevelopment())
}
