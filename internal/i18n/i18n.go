// internal/i18n/i18n.go
package i18n

import (
	"fmt"
	"sync"
)

// DefaultLang is the storefront's language. The exact French strings are
// part of the API contract, so the tables live in code rather than on
// disk.
const DefaultLang = "fr"

var fr = map[string]string{
	KeyAuthRequired:           "Non autorise",
	KeyAuthInvalidToken:       "Session invalide",
	KeyAuthInvalidCredentials: "Email ou mot de passe incorrect",
	KeyAuthEmailTaken:         "Un compte existe deja avec cet email",
	KeyAccessDenied:           "Acces refuse",

	KeyProductNotFound:  "Produit introuvable",
	KeyCategoryNotFound: "Categorie introuvable",

	KeyCartEmpty:        "Votre panier est vide.",
	KeyCartItemNotFound: "Article introuvable",
	KeyInvalidProductID: "Identifiant produit invalide",

	KeyOrderNotFound:      "Commande introuvable",
	KeyOrderInvalidStatus: "Statut de commande invalide",

	KeyAddressNotFound: "Adresse introuvable",

	KeyPostNotFound: "Article introuvable",

	KeyValidationInvalid: "Requete invalide",
	KeyInternalError:     "Une erreur est survenue. Veuillez reessayer.",
}

var en = map[string]string{
	KeyAuthRequired:           "Unauthorized",
	KeyAuthInvalidToken:       "Invalid session",
	KeyAuthInvalidCredentials: "Invalid email or password",
	KeyAuthEmailTaken:         "An account already exists with this email",
	KeyAccessDenied:           "Access denied",

	KeyProductNotFound:  "Product not found",
	KeyCategoryNotFound: "Category not found",

	KeyCartEmpty:        "Your cart is empty.",
	KeyCartItemNotFound: "Item not found",
	KeyInvalidProductID: "Invalid product id",

	KeyOrderNotFound:      "Order not found",
	KeyOrderInvalidStatus: "Invalid order status",

	KeyAddressNotFound: "Address not found",

	KeyPostNotFound: "Post not found",

	KeyValidationInvalid: "Invalid request",
	KeyInternalError:     "Something went wrong. Please try again.",
}

var (
	mu           sync.RWMutex
	translations = map[string]map[string]string{
		"fr": fr,
		"en": en,
	}
)

// T resolves key in lang, falling back to French, then to the key itself.
func T(lang, key string, args ...interface{}) string {
	mu.RLock()
	defer mu.RUnlock()

	if table, ok := translations[lang]; ok {
		if text, ok := table[key]; ok {
			return format(text, args)
		}
	}
	if lang != DefaultLang {
		if text, ok := translations[DefaultLang][key]; ok {
			return format(text, args)
		}
	}
	return key
}

// Override replaces or adds a single translation, mainly for deployments
// that want to adjust storefront wording without a rebuild.
func Override(lang, key, text string) {
	mu.Lock()
	defer mu.Unlock()
	table, ok := translations[lang]
	if !ok {
		table = make(map[string]string)
		translations[lang] = table
	}
	table[key] = text
}

func GetSupportedLanguages() []string {
	mu.RLock()
	defer mu.RUnlock()
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	return langs
}

func format(text string, args []interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}
