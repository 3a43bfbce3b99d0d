// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthEmailTaken         = "auth.email_taken"
	KeyAccessDenied           = "auth.access_denied"

	// Catalog
	KeyProductNotFound  = "product.not_found"
	KeyCategoryNotFound = "category.not_found"

	// Cart / wishlist
	KeyCartEmpty        = "cart.empty"
	KeyCartItemNotFound = "cart.item_not_found"
	KeyInvalidProductID = "cart.invalid_product_id"

	// Orders
	KeyOrderNotFound      = "order.not_found"
	KeyOrderInvalidStatus = "order.invalid_status"

	// Addresses
	KeyAddressNotFound = "address.not_found"

	// Blog
	KeyPostNotFound = "post.not_found"

	// Validation / generic
	KeyValidationInvalid = "validation.invalid"
	KeyInternalError     = "internal.error"
)
