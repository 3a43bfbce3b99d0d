// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractStrings(t *testing.T) {
	// These exact strings are consumed verbatim by the storefront.
	assert.Equal(t, "Non autorise", T("fr", KeyAuthRequired))
	assert.Equal(t, "Votre panier est vide.", T("fr", KeyCartEmpty))
	assert.Equal(t, "Acces refuse", T("fr", KeyAccessDenied))
	assert.Equal(t, "Produit introuvable", T("fr", KeyProductNotFound))
}

func TestFallbackToFrench(t *testing.T) {
	assert.Equal(t, T("fr", KeyCartEmpty), T("de", KeyCartEmpty))
	assert.Equal(t, T("fr", KeyCartEmpty), T("", KeyCartEmpty))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T("fr", "no.such.key"))
}

func TestEnglishTable(t *testing.T) {
	assert.Equal(t, "Your cart is empty.", T("en", KeyCartEmpty))
	assert.Equal(t, "Unauthorized", T("en", KeyAuthRequired))
}

func TestOverride(t *testing.T) {
	Override("fr", "test.key", "Bonjour")
	assert.Equal(t, "Bonjour", T("fr", "test.key"))
}

func TestSupportedLanguages(t *testing.T) {
	langs := GetSupportedLanguages()
	assert.Contains(t, langs, "fr")
	assert.Contains(t, langs, "en")
}
