// internal/handlers/address.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminadeco/boutique-backend/internal/i18n"
	"github.com/luminadeco/boutique-backend/internal/services"
	"github.com/luminadeco/boutique-backend/internal/utils"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// GET /api/boutique/adresses
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	addresses, err := h.addressService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, i18n.KeyAddressNotFound)
		return
	}
	utils.Success(c, gin.H{"addresses": addresses})
}

// POST /api/boutique/adresses
func (h *AddressHandler) Create(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	address, err := h.addressService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyAddressNotFound)
		return
	}
	utils.Created(c, gin.H{"ok": true, "address": address})
}

// PATCH /api/boutique/adresses/:id
func (h *AddressHandler) Update(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	var req services.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "", nil)
		return
	}

	address, err := h.addressService.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err, i18n.KeyAddressNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true, "address": address})
}

// DELETE /api/boutique/adresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c)
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleServiceError(c, err, i18n.KeyAddressNotFound)
		return
	}
	utils.Success(c, gin.H{"ok": true})
}
