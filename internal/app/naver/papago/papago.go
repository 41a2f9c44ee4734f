package papago

import (
	"context"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"trip-planner/internal/app/naver"
)

const defaultBaseURL = "https://naveropenapi.apigw.ntruss.com"

// supportedLanguages is the fixed set of codes Papago accepts.
// Membership is a case-sensitive exact match.
var supportedLanguages = []string{
	"ko", "en", "ja", "zh-CN", "zh-TW",
	"vi", "id", "th", "de", "ru",
	"es", "it", "fr", "hi", "pt",
}

// Config configures the Papago translation adapter
type Config struct {
	Enabled      bool
	ClientID     string
	ClientSecret string
	BaseURL      string
	Timeout      time.Duration
	Retry        naver.RetryConfig
	Debug        bool
	Logger       *zap.Logger
}

// Translation is the result of translating one text
type Translation struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

// Detection is the result of stand-alone language detection
type Detection struct {
	LangCode   string  `json:"lang_code"`
	Confidence float64 `json:"confidence"`
}

// Adapter wraps the Papago NMT and language-detection APIs. Translate
// performs a detect-then-translate cascade when no source language is
// supplied, and TranslateBatch isolates per-item failures so one bad item
// never aborts the rest of the batch.
type Adapter struct {
	config Config
	client *naver.Client
}

// NewAdapter creates a Papago adapter from config
func NewAdapter(cfg Config) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	client := naver.NewClient(naver.ClientConfig{
		Service: "papago",
		Auth:    naver.AuthScheme{Kind: naver.AuthNCPGateway, KeyID: cfg.ClientID, Key: cfg.ClientSecret},
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry,
		Debug:   cfg.Debug,
		Logger:  cfg.Logger,
	})

	return &Adapter{config: cfg, client: client}
}

// Enabled reports whether the adapter has credentials and is switched on
func (a *Adapter) Enabled() bool {
	return a.config.Enabled && a.client.Auth().Configured()
}

// IsLanguageSupported tests code against the fixed language set
func (a *Adapter) IsLanguageSupported(code string) bool {
	return lo.Contains(supportedLanguages, code)
}

// SupportedLanguages returns the fixed language list; no network call
func (a *Adapter) SupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

type translateResponse struct {
	Message struct {
		Result struct {
			TranslatedText string `json:"translatedText"`
			SrcLangType    string `json:"srcLangType"`
			TarLangType    string `json:"tarLangType"`
		} `json:"result"`
	} `json:"message"`
}

// Translate translates text into targetLang. When sourceLang is empty the
// source is auto-detected first; when sourceLang equals targetLang the
// input is returned unchanged without any network call. Unsupported codes
// on either side produce a ConfigError before any HTTP activity.
func (a *Adapter) Translate(ctx context.Context, text, targetLang, sourceLang string) (*Translation, error) {
	if !a.Enabled() {
		return nil, nil
	}

	if !a.IsLanguageSupported(targetLang) {
		return nil, naver.NewConfigError("target_lang", "unsupported language code %q", targetLang)
	}
	if sourceLang != "" && !a.IsLanguageSupported(sourceLang) {
		return nil, naver.NewConfigError("source_lang", "unsupported language code %q", sourceLang)
	}

	// Same-language no-op fast path: zero network calls by contract
	if sourceLang == targetLang {
		return &Translation{TranslatedText: text, SourceLang: sourceLang, TargetLang: targetLang}, nil
	}

	if sourceLang == "" {
		detected, err := a.DetectLanguage(ctx, text)
		if err != nil {
			return nil, err
		}
		sourceLang = detected.LangCode
		if sourceLang == targetLang {
			return &Translation{TranslatedText: text, SourceLang: sourceLang, TargetLang: targetLang}, nil
		}
	}

	var resp translateResponse
	err := a.client.DoJSON(ctx, naver.Request{
		Method: "POST",
		URL:    a.config.BaseURL + "/nmt/v1/translation",
		Body: map[string]string{
			"source": sourceLang,
			"target": targetLang,
			"text":   text,
		},
		Operation: "translate",
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := resp.Message.Result
	translation := &Translation{
		TranslatedText: result.TranslatedText,
		SourceLang:     result.SrcLangType,
		TargetLang:     result.TarLangType,
	}
	if translation.SourceLang == "" {
		translation.SourceLang = sourceLang
	}
	if translation.TargetLang == "" {
		translation.TargetLang = targetLang
	}
	return translation, nil
}

type detectResponse struct {
	LangCode   string  `json:"langCode"`
	Confidence float64 `json:"confidence"`
}

// DetectLanguage identifies the language of text
func (a *Adapter) DetectLanguage(ctx context.Context, text string) (*Detection, error) {
	if !a.Enabled() {
		return nil, nil
	}

	var resp detectResponse
	err := a.client.DoJSON(ctx, naver.Request{
		Method:    "POST",
		URL:       a.config.BaseURL + "/langs/v1/dect",
		Body:      map[string]string{"query": text},
		Operation: "detect_language",
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &Detection{LangCode: resp.LangCode, Confidence: resp.Confidence}, nil
}

// TranslateBatch translates every text independently. The result is
// always size-preserving: an item whose translation fails upstream keeps
// its slot and falls back to the original input text. Each item runs its
// own detect-then-translate cascade when sourceLang is empty. Disabled
// yields an empty slice.
func (a *Adapter) TranslateBatch(ctx context.Context, texts []string, targetLang, sourceLang string) ([]Translation, error) {
	if !a.Enabled() {
		return []Translation{}, nil
	}

	if !a.IsLanguageSupported(targetLang) {
		return nil, naver.NewConfigError("target_lang", "unsupported language code %q", targetLang)
	}
	if sourceLang != "" && !a.IsLanguageSupported(sourceLang) {
		return nil, naver.NewConfigError("source_lang", "unsupported language code %q", sourceLang)
	}

	results := lo.Map(texts, func(text string, _ int) Translation {
		translated, err := a.Translate(ctx, text, targetLang, sourceLang)
		if err != nil || translated == nil {
			if err != nil {
				a.logger().Warn("batch item translation failed, keeping original text",
					zap.String("target_lang", targetLang),
					zap.Error(err),
				)
			}
			return Translation{TranslatedText: text, SourceLang: sourceLang, TargetLang: targetLang}
		}
		return *translated
	})

	return results, nil
}

func (a *Adapter) logger() *zap.Logger {
	if a.config.Logger == nil {
		return zap.NewNop()
	}
	return a.config.Logger
}
