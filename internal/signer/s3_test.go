package signer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursedeck/backend/internal/config"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:    "ap-south-1",
		AccessKey: "test-access",
		SecretKey: "test-secret",
		Bucket:    "course-media",
		URLExpiry: time.Hour,
	}
}

func TestS3Signer_SignURL(t *testing.T) {
	s, err := NewS3Signer(context.Background(), testS3Config())
	require.NoError(t, err)

	signedURL, err := s.SignURL(context.Background(), "videos/1.mp4")

	assert.NoError(t, err)
	assert.Contains(t, signedURL, "course-media")
	assert.Contains(t, signedURL, "videos/1.mp4")
	assert.Contains(t, signedURL, "X-Amz-Signature=")
	assert.Contains(t, signedURL, "X-Amz-Expires=3600")
}

func TestS3Signer_SignURL_CustomEndpoint(t *testing.T) {
	cfg := testS3Config()
	cfg.Endpoint = "http://localhost:9000"

	s, err := NewS3Signer(context.Background(), cfg)
	require.NoError(t, err)

	signedURL, err := s.SignURL(context.Background(), "videos/1.mp4")

	assert.NoError(t, err)
	// Custom endpoints use path-style addressing
	assert.Contains(t, signedURL, "localhost:9000/course-media/videos/1.mp4")
}

func TestS3Signer_SignURL_DistinctKeys(t *testing.T) {
	s, err := NewS3Signer(context.Background(), testS3Config())
	require.NoError(t, err)

	first, err := s.SignURL(context.Background(), "videos/1.mp4")
	require.NoError(t, err)
	second, err := s.SignURL(context.Background(), "videos/2.mp4")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
