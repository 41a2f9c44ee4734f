package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trip-planner/internal/app/naver"
)

// Config configures the Clova OCR adapter. The invoke URL is
// project-specific; together with the secret key it forms the adapter's
// credentials.
type Config struct {
	Enabled   bool
	SecretKey string
	InvokeURL string
	Timeout   time.Duration
	Retry     naver.RetryConfig
	Debug     bool
	Logger    *zap.Logger
}

// Vertex is one corner of a detected field's bounding polygon
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Field is one text region detected in the image
type Field struct {
	Text        string   `json:"text"`
	Confidence  float64  `json:"confidence"`
	BoundingBox []Vertex `json:"bounding_box"`
	LineBreak   bool     `json:"line_break"`
}

// Result is the extracted text of an image plus the per-field detail and
// the heuristically detected language.
type Result struct {
	Text     string  `json:"text"`
	Fields   []Field `json:"fields"`
	Language string  `json:"language"`
}

// Adapter wraps the Clova OCR API
type Adapter struct {
	config Config
	client *naver.Client
}

// NewAdapter creates an OCR adapter from config
func NewAdapter(cfg Config) *Adapter {
	client := naver.NewClient(naver.ClientConfig{
		Service: "ocr",
		Auth:    naver.AuthScheme{Kind: naver.AuthOCRSecret, Key: cfg.SecretKey},
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

type ocrMessage struct {
	Version   string     `json:"version"`
	RequestID string     `json:"requestId"`
	Timestamp int64      `json:"timestamp"`
	Lang      string     `json:"lang"`
	Images    []ocrImage `json:"images"`
}

type ocrImage struct {
	Format string `json:"format"`
	Name   string `json:"name"`
}

type ocrResponse struct {
	Images []struct {
		Fields []struct {
			InferText       string  `json:"inferText"`
			InferConfidence float64 `json:"inferConfidence"`
			LineBreak       bool    `json:"lineBreak"`
			BoundingPoly    struct {
				Vertices []struct {
					X float64 `json:"x"`
					Y float64 `json:"y"`
				} `json:"vertices"`
			} `json:"boundingPoly"`
		} `json:"fields"`
	} `json:"images"`
}

// ExtractText runs OCR over imageBytes. The envelope carries a message
// blob (version, request id, millisecond timestamp, image format derived
// from the filename extension) plus the image itself base64-encoded in a
// file field. The aggregate text joins every detected field with single
// spaces.
func (a *Adapter) ExtractText(ctx context.Context, imageBytes []byte, filename string) (*Result, error) {
	if !a.Enabled() {
		return nil, nil
	}

	message := ocrMessage{
		Version:   "V2",
		RequestID: uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		Lang:      "ko",
		Images: []ocrImage{
			{Format: imageFormat(filename), Name: filename},
		},
	}
	blob, err := json.Marshal(message)
	if err != nil {
		return nil, &naver.ServiceError{Message: fmt.Sprintf("failed to encode message blob: %v", err), Context: "ocr"}
	}

	var resp ocrResponse
	err = a.client.DoJSON(ctx, naver.Request{
		Method: "POST",
		URL:    a.config.InvokeURL,
		Body: map[string]string{
			"message": string(blob),
			"file":    base64.StdEncoding.EncodeToString(imageBytes),
		},
		Operation: "ocr",
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := &Result{Fields: []Field{}}
	if len(resp.Images) == 0 {
		result.Language = detectLanguage("")
		return result, nil
	}

	texts := make([]string, 0, len(resp.Images[0].Fields))
	for _, f := range resp.Images[0].Fields {
		field := Field{
			Text:       f.InferText,
			Confidence: f.InferConfidence,
			LineBreak:  f.LineBreak,
		}
		for _, v := range f.BoundingPoly.Vertices {
			field.BoundingBox = append(field.BoundingBox, Vertex{X: v.X, Y: v.Y})
		}
		result.Fields = append(result.Fields, field)
		texts = append(texts, f.InferText)
	}

	result.Text = strings.Join(texts, " ")
	result.Language = detectLanguage(result.Text)
	return result, nil
}

// imageFormat maps a filename extension to the closed set of formats the
// API accepts, defaulting to jpg.
func imageFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "jpg"
	case ".png":
		return "png"
	case ".pdf":
		return "pdf"
	default:
		return "jpg"
	}
}

// detectLanguage guesses the text's language from Unicode code-point
// ranges, checked in order: Hangul syllables, Japanese kana, CJK unified
// ideographs. Anything else is treated as English. The heuristic is
// intentionally coarse.
func detectLanguage(text string) string {
	for _, r := range text {
		if r >= 0xAC00 && r <= 0xD7A3 {
			return "ko"
		}
	}
	for _, r := range text {
		if r >= 0x3040 && r <= 0x30FF {
			return "ja"
		}
	}
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			return "zh"
		}
	}
	return "en"
}
