package naver

import "net/http"

// AuthKind selects which authentication headers a client injects.
// The NAVER APIs use three distinct schemes plus the legacy developer
// portal pair used only by local search; keeping them as a closed set of
// variants (instead of subclassing a base service per API) lets one
// client implementation serve every adapter.
type AuthKind string

const (
	// AuthNCPGateway is the two-header key-id/key scheme used by Maps,
	// Papago and DataLab behind the NCP API gateway.
	AuthNCPGateway AuthKind = "ncp_gateway"

	// AuthOCRSecret is the single X-OCR-SECRET header used by Clova OCR;
	// the endpoint URL itself is project-specific.
	AuthOCRSecret AuthKind = "ocr_secret"

	// AuthClovaSpeech is the single X-CLOVASPEECH-API-KEY header used by
	// Clova Speech.
	AuthClovaSpeech AuthKind = "clova_speech"

	// AuthClientPair is the X-Naver-Client-Id/Secret pair used by the
	// openapi.naver.com developer APIs (local POI search). This is a
	// different credential pair than the NCP gateway scheme and must not
	// be unified with it.
	AuthClientPair AuthKind = "naver_openapi"
)

// AuthScheme holds the credentials for one authentication variant.
// KeyID is unused for the single-secret kinds.
type AuthScheme struct {
	Kind  AuthKind
	KeyID string
	Key   string
}

// Configured reports whether the scheme has every credential its kind
// requires. An unconfigured scheme disables the owning adapter.
func (a AuthScheme) Configured() bool {
	switch a.Kind {
	case AuthNCPGateway, AuthClientPair:
		return a.KeyID != "" && a.Key != ""
	case AuthOCRSecret, AuthClovaSpeech:
		return a.Key != ""
	default:
		return false
	}
}

// apply injects the scheme's headers into an outbound request
func (a AuthScheme) apply(h http.Header) {
	switch a.Kind {
	case AuthNCPGateway:
		h.Set("X-NCP-APIGW-API-KEY-ID", a.KeyID)
		h.Set("X-NCP-APIGW-API-KEY", a.Key)
	case AuthOCRSecret:
		h.Set("X-OCR-SECRET", a.Key)
	case AuthClovaSpeech:
		h.Set("X-CLOVASPEECH-API-KEY", a.Key)
	case AuthClientPair:
		h.Set("X-Naver-Client-Id", a.KeyID)
		h.Set("X-Naver-Client-Secret", a.Key)
	}
}
