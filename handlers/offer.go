package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/services"
)

// OfferHandler serves the public live-offer listing and the admin CRUD
// routes.
type OfferHandler struct {
	offers services.OfferService
}

func NewOfferHandler(offers services.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// ListLive handles GET /offers (public). Only active, unexpired offers are
// returned.
func (h *OfferHandler) ListLive(c *gin.Context) {
	offers, err := h.offers.ListLive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("offers fetched", offers))
}

// ListAll handles GET /offers/all (admin).
func (h *OfferHandler) ListAll(c *gin.Context) {
	offers, err := h.offers.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("offers fetched", offers))
}

// Create handles POST /offers (admin).
func (h *OfferHandler) Create(c *gin.Context) {
	var req models.OfferCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	offer, err := h.offers.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Success("offer created", offer))
}

// Get handles GET /offers/:id (admin).
func (h *OfferHandler) Get(c *gin.Context) {
	offer, err := h.offers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("offer fetched", offer))
}

// Update handles PATCH /offers/:id (admin).
func (h *OfferHandler) Update(c *gin.Context) {
	var req models.OfferUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	offer, err := h.offers.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("offer updated", offer))
}

// Delete handles DELETE /offers/:id (admin).
func (h *OfferHandler) Delete(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("offer deleted", nil))
}
