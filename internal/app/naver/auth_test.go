package naver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthSchemeConfigured(t *testing.T) {
	tests := []struct {
		name   string
		scheme AuthScheme
		want   bool
	}{
		{"gateway pair complete", AuthScheme{Kind: AuthNCPGateway, KeyID: "id", Key: "key"}, true},
		{"gateway pair missing key", AuthScheme{Kind: AuthNCPGateway, KeyID: "id"}, false},
		{"gateway pair missing id", AuthScheme{Kind: AuthNCPGateway, Key: "key"}, false},
		{"ocr secret set", AuthScheme{Kind: AuthOCRSecret, Key: "secret"}, true},
		{"ocr secret empty", AuthScheme{Kind: AuthOCRSecret}, false},
		{"clova speech key set", AuthScheme{Kind: AuthClovaSpeech, Key: "key"}, true},
		{"clova speech key empty", AuthScheme{Kind: AuthClovaSpeech}, false},
		{"openapi pair complete", AuthScheme{Kind: AuthClientPair, KeyID: "id", Key: "secret"}, true},
		{"openapi pair missing secret", AuthScheme{Kind: AuthClientPair, KeyID: "id"}, false},
		{"unknown kind", AuthScheme{Kind: AuthKind("bogus"), KeyID: "id", Key: "key"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scheme.Configured())
		})
	}
}

func TestAuthSchemeApplyHeaders(t *testing.T) {
	tests := []struct {
		name   string
		scheme AuthScheme
		want   map[string]string
	}{
		{
			"ncp gateway",
			AuthScheme{Kind: AuthNCPGateway, KeyID: "my-id", Key: "my-key"},
			map[string]string{
				"X-NCP-APIGW-API-KEY-ID": "my-id",
				"X-NCP-APIGW-API-KEY":    "my-key",
			},
		},
		{
			"ocr secret",
			AuthScheme{Kind: AuthOCRSecret, Key: "ocr-secret"},
			map[string]string{"X-OCR-SECRET": "ocr-secret"},
		},
		{
			"clova speech",
			AuthScheme{Kind: AuthClovaSpeech, Key: "speech-key"},
			map[string]string{"X-CLOVASPEECH-API-KEY": "speech-key"},
		},
		{
			"openapi client pair",
			AuthScheme{Kind: AuthClientPair, KeyID: "client-id", Key: "client-secret"},
			map[string]string{
				"X-Naver-Client-Id":     "client-id",
				"X-Naver-Client-Secret": "client-secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			tt.scheme.apply(h)
			for key, value := range tt.want {
				assert.Equal(t, value, h.Get(key))
			}
		})
	}
}

func TestAuthSchemesAreDistinct(t *testing.T) {
	// Local search uses the developer-portal pair, not the gateway pair.
	// The two must never produce each other's headers.
	gateway := http.Header{}
	AuthScheme{Kind: AuthNCPGateway, KeyID: "a", Key: "b"}.apply(gateway)
	assert.Empty(t, gateway.Get("X-Naver-Client-Id"))

	openapi := http.Header{}
	AuthScheme{Kind: AuthClientPair, KeyID: "a", Key: "b"}.apply(openapi)
	assert.Empty(t, openapi.Get("X-NCP-APIGW-API-KEY-ID"))
}
