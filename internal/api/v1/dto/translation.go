package dto

// TranslateRequest is the body for POST /translation/translate
type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
	SourceLang string `json:"source_lang,omitempty"`
}

// DetectRequest is the body for POST /translation/detect
type DetectRequest struct {
	Text string `json:"text" binding:"required"`
}

// BatchTranslateRequest is the body for POST /translation/batch
type BatchTranslateRequest struct {
	Texts      []string `json:"texts" binding:"required,min=1"`
	TargetLang string   `json:"target_lang" binding:"required"`
	SourceLang string   `json:"source_lang,omitempty"`
}

// LanguagesResponse lists the fixed supported-language set
type LanguagesResponse struct {
	Languages []string `json:"languages"`
}
