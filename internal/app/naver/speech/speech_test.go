package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/app/naver"
)

func testConfig(invokeURL string) Config {
	return Config{
		Enabled:   true,
		SecretKey: "speech-key",
		InvokeURL: invokeURL,
		Timeout:   5 * time.Second,
		Retry:     naver.RetryConfig{MaxAttempts: 1, Delay: time.Millisecond},
	}
}

func TestSpeechToText(t *testing.T) {
	audio := []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x01}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "speech-key", r.Header.Get("X-CLOVASPEECH-API-KEY"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		assert.Equal(t, "ja", r.URL.Query().Get("lang"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, audio, body, "audio must be posted verbatim, not encoded")

		w.Write([]byte(`{"text": "こんにちは", "confidence": 0.93}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	result, err := adapter.SpeechToText(context.Background(), audio, "ja")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "こんにちは", result.Text)
	assert.InDelta(t, 0.93, result.Confidence, 1e-9)
}

func TestSpeechToTextDefaultsToKorean(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ko", r.URL.Query().Get("lang"))
		w.Write([]byte(`{"text": "안녕하세요", "confidence": 0.9}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	result, err := adapter.SpeechToText(context.Background(), []byte{0x01}, "")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "안녕하세요", result.Text)
}

func TestSpeechToTextUnsupportedLanguage(t *testing.T) {
	adapter := NewAdapter(testConfig("http://unused"))

	_, err := adapter.SpeechToText(context.Background(), []byte{0x01}, "fr")
	var configErr *naver.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "language", configErr.Field)
}

func TestSpeechToTextDisabled(t *testing.T) {
	cfg := testConfig("http://unused")
	cfg.Enabled = false
	adapter := NewAdapter(cfg)

	// Disabled wins over validation, even with a bogus language
	result, err := adapter.SpeechToText(context.Background(), []byte{0x01}, "fr")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSpeechToTextUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"errorMessage":"Audio too long"}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	_, err := adapter.SpeechToText(context.Background(), []byte{0x01}, "ko")

	var serviceErr *naver.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, serviceErr.HTTPStatus)
	assert.Equal(t, "Audio too long", serviceErr.Message)
}

func TestSupportedLanguages(t *testing.T) {
	adapter := NewAdapter(testConfig(""))
	assert.Equal(t, []string{"ko", "en", "ja", "zh"}, adapter.SupportedLanguages())
	assert.True(t, adapter.IsLanguageSupported("zh"))
	assert.False(t, adapter.IsLanguageSupported("zh-CN"))
}
