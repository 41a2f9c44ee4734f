package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/app/naver"
)

func testConfig(invokeURL string) Config {
	return Config{
		Enabled:   true,
		SecretKey: "ocr-secret",
		InvokeURL: invokeURL,
		Timeout:   5 * time.Second,
		Retry:     naver.RetryConfig{MaxAttempts: 1, Delay: time.Millisecond},
	}
}

func TestExtractText(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ocr-secret", r.Header.Get("X-OCR-SECRET"))

		var envelope map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))

		decoded, err := base64.StdEncoding.DecodeString(envelope["file"])
		require.NoError(t, err)
		assert.Equal(t, imageBytes, decoded)

		var message ocrMessage
		require.NoError(t, json.Unmarshal([]byte(envelope["message"]), &message))
		assert.Equal(t, "V2", message.Version)
		assert.Equal(t, "ko", message.Lang)
		assert.NotZero(t, message.Timestamp)
		_, err = uuid.Parse(message.RequestID)
		assert.NoError(t, err, "requestId must be a valid UUID")
		require.Len(t, message.Images, 1)
		assert.Equal(t, "png", message.Images[0].Format)
		assert.Equal(t, "receipt.PNG", message.Images[0].Name)

		w.Write([]byte(`{
			"images": [{
				"fields": [
					{
						"inferText": "Hello",
						"inferConfidence": 0.99,
						"lineBreak": false,
						"boundingPoly": {"vertices": [{"x": 1, "y": 2}, {"x": 3, "y": 4}]}
					},
					{
						"inferText": "World",
						"inferConfidence": 0.95,
						"lineBreak": true,
						"boundingPoly": {"vertices": []}
					}
				]
			}]
		}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	result, err := adapter.ExtractText(context.Background(), imageBytes, "receipt.PNG")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Hello World", result.Text)
	assert.Equal(t, "en", result.Language)
	require.Len(t, result.Fields, 2)
	assert.Equal(t, "Hello", result.Fields[0].Text)
	assert.InDelta(t, 0.99, result.Fields[0].Confidence, 1e-9)
	assert.Equal(t, []Vertex{{X: 1, Y: 2}, {X: 3, Y: 4}}, result.Fields[0].BoundingBox)
	assert.True(t, result.Fields[1].LineBreak)
}

func TestExtractTextNoImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"images": []}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	result, err := adapter.ExtractText(context.Background(), []byte{0x01}, "scan.jpg")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Text)
	assert.Empty(t, result.Fields)
	assert.Equal(t, "en", result.Language)
}

func TestExtractTextDisabled(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"switched off", func(c *Config) { c.Enabled = false }},
		{"no secret", func(c *Config) { c.SecretKey = "" }},
		{"no invoke url", func(c *Config) { c.InvokeURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("http://unused")
			tt.mutate(&cfg)
			adapter := NewAdapter(cfg)

			result, err := adapter.ExtractText(context.Background(), []byte{0x01}, "a.jpg")
			require.NoError(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestExtractTextUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"errorMessage":"Invalid secret key"}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	_, err := adapter.ExtractText(context.Background(), []byte{0x01}, "a.jpg")

	var serviceErr *naver.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, http.StatusForbidden, serviceErr.HTTPStatus)
	assert.Equal(t, "Invalid secret key", serviceErr.Message)
}

func TestImageFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", "jpg"},
		{"photo.JPEG", "jpg"},
		{"scan.png", "png"},
		{"doc.pdf", "pdf"},
		{"archive.webp", "jpg"},
		{"noextension", "jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, imageFormat(tt.filename), tt.filename)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hangul", "서울 맛집", "ko"},
		{"hangul mixed with cjk", "서울 北京", "ko"},
		{"kana", "こんにちは", "ja"},
		{"kana mixed with cjk", "東京タワー", "ja"},
		{"cjk only", "北京烤鸭", "zh"},
		{"latin", "Hello World", "en"},
		{"empty", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectLanguage(tt.text))
		})
	}
}
