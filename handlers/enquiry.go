package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/services"
)

// EnquiryHandler serves the public enquiry intake and the admin CRUD routes.
type EnquiryHandler struct {
	enquiries services.EnquiryService
}

func NewEnquiryHandler(enquiries services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// Create handles POST /enquiries (public).
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req models.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	enquiry, err := h.enquiries.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Success("enquiry submitted", enquiry))
}

// List handles GET /enquiries (admin).
func (h *EnquiryHandler) List(c *gin.Context) {
	enquiries, err := h.enquiries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("enquiries fetched", enquiries))
}

// Get handles GET /enquiries/:id (admin).
func (h *EnquiryHandler) Get(c *gin.Context) {
	enquiry, err := h.enquiries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("enquiry fetched", enquiry))
}

// Update handles PATCH /enquiries/:id (admin).
func (h *EnquiryHandler) Update(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	enquiry, err := h.enquiries.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("enquiry updated", enquiry))
}

// Delete handles DELETE /enquiries/:id (admin).
func (h *EnquiryHandler) Delete(c *gin.Context) {
	if err := h.enquiries.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("enquiry deleted", nil))
}
