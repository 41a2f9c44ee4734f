package speech

import (
	"context"
	"net/url"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"trip-planner/internal/app/naver"
)

// DefaultLanguage is assumed when the caller does not name one
const DefaultLanguage = "ko"

// supportedLanguages is the fixed allowlist for Clova Speech recognition
var supportedLanguages = []string{"ko", "en", "ja", "zh"}

// Config configures the Clova Speech adapter. Like OCR, the invoke URL is
// project-specific and part of the credentials.
type Config struct {
	Enabled   bool
	SecretKey string
	InvokeURL string
	Timeout   time.Duration
	Retry     naver.RetryConfig
	Debug     bool
	Logger    *zap.Logger
}

// Transcription is recognized speech with the recognizer's confidence
type Transcription struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Adapter wraps the Clova Speech recognition API. Audio is posted as a
// raw octet-stream body (not JSON, not base64) with the language as a
// query parameter.
type Adapter struct {
	config Config
	client *naver.Client
}

// NewAdapter creates a speech adapter from config
func NewAdapter(cfg Config) *Adapter {
	client := naver.NewClient(naver.ClientConfig{
		Service: "speech",
		Auth:    naver.AuthScheme{Kind: naver.AuthClovaSpeech, Key: cfg.SecretKey},
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry,
		Debug:   cfg.Debug,
		Logger:  cfg.Logger,
	})
	return &Adapter{config: cfg, client: client}
}

// Enabled requires both the secret key and the project invoke URL
func (a *Adapter) Enabled() bool {
	return a.config.Enabled && a.client.Auth().Configured() && a.config.InvokeURL != ""
}

// IsLanguageSupported is an exact-match membership test
func (a *Adapter) IsLanguageSupported(code string) bool {
	return lo.Contains(supportedLanguages, code)
}

// SupportedLanguages returns the fixed four-language allowlist
func (a *Adapter) SupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

type recognizeResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// SpeechToText transcribes audioBytes. An empty language defaults to
// Korean; a language outside the allowlist is a ConfigError raised before
// any network activity.
func (a *Adapter) SpeechToText(ctx context.Context, audioBytes []byte, language string) (*Transcription, error) {
	if !a.Enabled() {
		return nil, nil
	}

	if language == "" {
		language = DefaultLanguage
	}
	if !a.IsLanguageSupported(language) {
		return nil, naver.NewConfigError("language", "unsupported language code %q", language)
	}

	params := url.Values{}
	params.Set("lang", language)

	var resp recognizeResponse
	err := a.client.DoJSON(ctx, naver.Request{
		Method:      "POST",
		URL:         a.config.InvokeURL,
		Query:       params,
		RawBody:     audioBytes,
		ContentType: "application/octet-stream",
		Operation:   "speech_to_text",
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &Transcription{Text: resp.Text, Confidence: resp.Confidence}, nil
}
