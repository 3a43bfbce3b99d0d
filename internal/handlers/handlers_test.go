// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminadeco/boutique-backend/internal/middleware"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Locale())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCartRequiresSession(t *testing.T) {
	r := newTestRouter()
	h := NewCartHandler(nil)
	r.Use(middleware.AuthRequired())
	r.POST("/api/boutique/panier", h.Add)

	w := doJSON(t, r, "POST", "/api/boutique/panier", gin.H{
		"productId": "abc123abc123abc", "quantity": 1,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Non autorise", body["error"])
}

func TestCartRejectsBadBearer(t *testing.T) {
	r := newTestRouter()
	h := NewCartHandler(nil)
	r.Use(middleware.AuthRequired())
	r.GET("/api/boutique/panier", h.List)

	req, err := http.NewRequest("GET", "/api/boutique/panier", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWishlistRequiresSession(t *testing.T) {
	r := newTestRouter()
	h := NewWishlistHandler(nil)
	r.Use(middleware.AuthRequired())
	r.POST("/api/boutique/wishlist", h.Toggle)

	w := doJSON(t, r, "POST", "/api/boutique/wishlist", gin.H{
		"productId": "abc123abc123abc",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Non autorise", body["error"])
}

func TestOrderEmptyCart(t *testing.T) {
	r := newTestRouter()
	h := NewOrderHandler(nil)
	r.POST("/api/boutique/commandes", h.Create)

	w := doJSON(t, r, "POST", "/api/boutique/commandes", gin.H{
		"firstName": "Amel",
		"lastName":  "Ben Salah",
		"email":     "amel@example.com",
		"phone":     "20123456",
		"address":   "12 rue des Oliviers",
		"city":      "Tunis",
		"items":     []gin.H{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Votre panier est vide.", body["message"])
	assert.NotContains(t, body, "error")
}

func TestOrderEmptyCartEnglish(t *testing.T) {
	r := newTestRouter()
	h := NewOrderHandler(nil)
	r.POST("/api/boutique/commandes", h.Create)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"items": []gin.H{}}))
	req, err := http.NewRequest("POST", "/api/boutique/commandes", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Your cart is empty.", body["message"])
}

func TestAdminRequiresAdminRole(t *testing.T) {
	r := newTestRouter()
	r.Use(func(c *gin.Context) {
		// Simulate an authenticated client session.
		c.Set("user_id", "abc123abc123abc")
		c.Set("role", "client")
	})
	r.Use(middleware.AdminRequired())
	r.GET("/api/admin/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := doJSON(t, r, "GET", "/api/admin/dashboard", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Acces refuse", body["error"])
}
