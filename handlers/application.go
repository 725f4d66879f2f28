package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/services"
)

// ApplicationHandler serves the public careers intake and the admin CRUD
// routes.
type ApplicationHandler struct {
	applications services.ApplicationService
}

func NewApplicationHandler(applications services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Create handles POST /applications (public).
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req models.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	application, err := h.applications.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.Success("application submitted", application))
}

// List handles GET /applications (admin).
func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applications.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("applications fetched", applications))
}

// Get handles GET /applications/:id (admin).
func (h *ApplicationHandler) Get(c *gin.Context) {
	application, err := h.applications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("application fetched", application))
}

// Update handles PATCH /applications/:id (admin).
func (h *ApplicationHandler) Update(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	application, err := h.applications.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("application updated", application))
}

// Delete handles DELETE /applications/:id (admin).
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Success("application deleted", nil))
}
