package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/internal/api/errors"
	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/app/naver"
	"trip-planner/internal/app/naver/papago"
)

func papagoAdapter(baseURL string, enabled bool) *papago.Adapter {
	return papago.NewAdapter(papago.Config{
		Enabled:      enabled,
		ClientID:     "id",
		ClientSecret: "secret",
		BaseURL:      baseURL,
		Timeout:      5 * time.Second,
		Retry:        naver.RetryConfig{MaxAttempts: 1, Delay: time.Millisecond},
	})
}

func TestTranslateCacheAside(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"message": {"result": {"translatedText": "Hello", "srcLangType": "ko", "tarLangType": "en"}}}`))
	}))
	defer server.Close()

	cache := newMapCache()
	service := NewTranslationService(papagoAdapter(server.URL, true), cache)

	req := &dto.TranslateRequest{Text: "안녕하세요", TargetLang: "en", SourceLang: "ko"}

	first, err := service.Translate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Hello", first.TranslatedText)
	assert.Equal(t, int32(1), calls.Load())

	second, err := service.Translate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Hello", second.TranslatedText)
	assert.Equal(t, int32(1), calls.Load(), "repeat translation must hit the cache")
}

func TestTranslateDisabled(t *testing.T) {
	service := NewTranslationService(papagoAdapter("http://unused", false), nil)

	_, err := service.Translate(context.Background(), &dto.TranslateRequest{Text: "hi", TargetLang: "en"})
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatus())
}

func TestTranslateValidationMapped(t *testing.T) {
	service := NewTranslationService(papagoAdapter("http://unused", true), nil)

	_, err := service.Translate(context.Background(), &dto.TranslateRequest{Text: "hi", TargetLang: "xx"})
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.HTTPStatus())
}

func TestTranslateBatchDisabled(t *testing.T) {
	service := NewTranslationService(papagoAdapter("http://unused", false), nil)

	_, err := service.TranslateBatch(context.Background(), &dto.BatchTranslateRequest{Texts: []string{"a"}, TargetLang: "en"})
	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatus())
}

func TestLanguages(t *testing.T) {
	service := NewTranslationService(papagoAdapter("http://unused", true), nil)
	assert.Len(t, service.Languages(), 15)
}

func TestTranslationCacheKeyStableAndBounded(t *testing.T) {
	long := make([]byte, 64*1024)
	for i := range long {
		long[i] = 'a'
	}

	key1 := translationCacheKey(string(long), "en", "ko")
	key2 := translationCacheKey(string(long), "en", "ko")
	assert.Equal(t, key1, key2)
	assert.Less(t, len(key1), 128, "key must stay bounded regardless of text size")

	assert.NotEqual(t, key1, translationCacheKey(string(long), "ja", "ko"))
}
