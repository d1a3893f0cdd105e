package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseClient_GetCourse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/c1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "c1",
			"title": "Go Fundamentals",
			"enrolled": true,
			"sections": [
				{"id": "s1", "title": "Basics", "orderIndex": 0, "lessons": [
					{"id": "1", "title": "Intro", "videoUrl": "https://x.s3.ap-south-1.amazonaws.com/videos/1.mp4", "duration": 300, "orderIndex": 0}
				]}
			]
		}`))
	}))
	defer server.Close()

	client := NewCourseClient(server.URL, "test-token", nil)
	course, err := client.GetCourse(context.Background(), "c1")

	assert.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "c1", course.ID)
	assert.True(t, course.Enrolled)
	require.Len(t, course.Sections, 1)
	require.Len(t, course.Sections[0].Lessons, 1)
	assert.Equal(t, "https://x.s3.ap-south-1.amazonaws.com/videos/1.mp4", course.Sections[0].Lessons[0].VideoURL)
}

func TestCourseClient_GetCourse_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"course not found"}`))
	}))
	defer server.Close()

	client := NewCourseClient(server.URL, "test-token", nil)
	course, err := client.GetCourse(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "course not found")
	assert.Nil(t, course)
}

func TestCourseClient_GetCourse_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCourseClient(server.URL, "test-token", nil)
	course, err := client.GetCourse(context.Background(), "c1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.Nil(t, course)
}

func TestSigningClient_SignURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/media/sign-url", r.URL.Path)
		assert.Equal(t, "videos/1.mp4", r.URL.Query().Get("key"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"signedUrl": "https://signed.example.com/videos/1.mp4?sig=abc"}`))
	}))
	defer server.Close()

	client := NewSigningClient(server.URL, "test-token", nil)
	signedURL, err := client.SignURL(context.Background(), "videos/1.mp4")

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/videos/1.mp4?sig=abc", signedURL)
}

func TestSigningClient_SignURL_EmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewSigningClient(server.URL, "test-token", nil)
	signedURL, err := client.SignURL(context.Background(), "videos/1.mp4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no url")
	assert.Empty(t, signedURL)
}

func TestSigningClient_SignURL_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to sign url"}`))
	}))
	defer server.Close()

	client := NewSigningClient(server.URL, "test-token", nil)
	signedURL, err := client.SignURL(context.Background(), "videos/1.mp4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.Empty(t, signedURL)
}

func TestSigningClient_SignURL_EscapesKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"signedUrl": "https://signed.example.com/x"}`))
	}))
	defer server.Close()

	client := NewSigningClient(server.URL, "test-token", nil)
	_, err := client.SignURL(context.Background(), "videos/intro & basics.mp4")

	assert.NoError(t, err)
	assert.Equal(t, "videos/intro & basics.mp4", gotKey)
}
