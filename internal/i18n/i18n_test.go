package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTranslator_Translate(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english message", key: ErrKeyEmptyCart, locale: "en", expected: "Cart is empty"},
		{name: "portuguese message", key: ErrKeyEmptyCart, locale: "pt", expected: "O carrinho está vazio"},
		{name: "dutch message", key: ErrKeyEmptyCart, locale: "nl", expected: "Winkelwagen is leeg"},
		{name: "empty locale falls back to english", key: ErrKeyEmptyCart, locale: "", expected: "Cart is empty"},
		{name: "unknown locale falls back to english", key: ErrKeyEmptyCart, locale: "fr", expected: "Cart is empty"},
		{name: "unknown key returns the key", key: "error.nope", locale: "en", expected: "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header", acceptLanguage: "", expected: "en"},
		{name: "simple locale", acceptLanguage: "pt", expected: "pt"},
		{name: "locale with region", acceptLanguage: "pt-BR", expected: "pt"},
		{name: "weighted list", acceptLanguage: "nl-NL,nl;q=0.9,en;q=0.8", expected: "nl"},
		{name: "unsupported locale", acceptLanguage: "fr-FR", expected: "en"},
		{name: "case insensitive", acceptLanguage: "PT", expected: "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}
