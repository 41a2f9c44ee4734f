package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/app/cache"
	"trip-planner/internal/app/naver/papago"
)

const translationCacheTTL = 12 * time.Hour

// translationService implements TranslationService over the Papago
// adapter with a cache-aside layer for single-text translation.
type translationService struct {
	papago *papago.Adapter
	cache  cache.Cache
}

// NewTranslationService creates a translation service. A nil cache
// disables caching.
func NewTranslationService(adapter *papago.Adapter, c cache.Cache) TranslationService {
	if c == nil {
		c = cache.NewNoopCache()
	}
	return &translationService{papago: adapter, cache: c}
}

func (s *translationService) Translate(ctx context.Context, req *dto.TranslateRequest) (*papago.Translation, error) {
	key := translationCacheKey(req.Text, req.TargetLang, req.SourceLang)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result papago.Translation
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	result, err := s.papago.Translate(ctx, req.Text, req.TargetLang, req.SourceLang)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil {
		return nil, disabledError("papago")
	}

	if data, err := json.Marshal(result); err == nil {
		s.cache.Set(ctx, key, string(data), translationCacheTTL)
	}
	return result, nil
}

func (s *translationService) Detect(ctx context.Context, text string) (*papago.Detection, error) {
	result, err := s.papago.DetectLanguage(ctx, text)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil {
		return nil, disabledError("papago")
	}
	return result, nil
}

func (s *translationService) TranslateBatch(ctx context.Context, req *dto.BatchTranslateRequest) ([]papago.Translation, error) {
	if !s.papago.Enabled() {
		return nil, disabledError("papago")
	}

	results, err := s.papago.TranslateBatch(ctx, req.Texts, req.TargetLang, req.SourceLang)
	if err != nil {
		return nil, translateError(err)
	}
	return results, nil
}

func (s *translationService) Languages() []string {
	return s.papago.SupportedLanguages()
}

// translationCacheKey hashes the text so arbitrarily long inputs stay
// within key-size limits.
func translationCacheKey(text, target, source string) string {
	sum := sha256.Sum256([]byte(text))
	return "translate:" + target + ":" + source + ":" + hex.EncodeToString(sum[:])
}
