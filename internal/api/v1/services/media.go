package services

import (
	"context"

	"trip-planner/internal/app/naver/ocr"
	"trip-planner/internal/app/naver/speech"
)

// mediaService implements MediaService over the OCR and speech adapters
type mediaService struct {
	ocr    *ocr.Adapter
	speech *speech.Adapter
}

// NewMediaService creates a media service
func NewMediaService(ocrAdapter *ocr.Adapter, speechAdapter *speech.Adapter) MediaService {
	return &mediaService{ocr: ocrAdapter, speech: speechAdapter}
}

func (s *mediaService) ExtractText(ctx context.Context, imageBytes []byte, filename string) (*ocr.Result, error) {
	result, err := s.ocr.ExtractText(ctx, imageBytes, filename)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil {
		return nil, disabledError("ocr")
	}
	return result, nil
}

func (s *mediaService) Transcribe(ctx context.Context, audioBytes []byte, language string) (*speech.Transcription, error) {
	result, err := s.speech.SpeechToText(ctx, audioBytes, language)
	if err != nil {
		return nil, translateError(err)
	}
	if result == nil {
		return nil, disabledError("speech")
	}
	return result, nil
}

func (s *mediaService) SpeechLanguages() []string {
	return s.speech.SupportedLanguages()
}
