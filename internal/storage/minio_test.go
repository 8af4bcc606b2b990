package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hourlog/internal/config"
)

func TestNewMinIO_InvalidConfig(t *testing.T) {
	valid := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "key", SecretKey: "secret", Bucket: "hours"}

	tests := []struct {
		name   string
		mutate func(c *config.MinIOConfig)
	}{
		{"missing endpoint", func(c *config.MinIOConfig) { c.Endpoint = "" }},
		{"missing access key", func(c *config.MinIOConfig) { c.AccessKey = "" }},
		{"missing secret key", func(c *config.MinIOConfig) { c.SecretKey = "" }},
		{"missing bucket", func(c *config.MinIOConfig) { c.Bucket = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			s, err := NewMinIO(context.Background(), cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, s)
		})
	}
}

func TestPresignGet(t *testing.T) {
	// A fixed region keeps presigning offline.
	cli, err := newClient(config.MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "hours",
		Region:    "us-east-1",
	})
	require.NoError(t, err)
	s := &minioStorage{client: cli, bucket: "hours"}

	raw, err := s.PresignGet(context.Background(), "exports/hours.json", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/hours/exports/hours.json", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
