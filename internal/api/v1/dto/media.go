package dto

// SpeechQuery is the query for POST /media/speech. The audio itself is
// the uploaded file; only the language rides in the query string.
type SpeechQuery struct {
	Language string `form:"language"`
}

// SpeechLanguagesResponse lists the fixed speech-recognition allowlist
type SpeechLanguagesResponse struct {
	Languages []string `json:"languages"`
}
