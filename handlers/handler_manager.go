package handlers

import (
	"errors"
	"log"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/services"
)

// HandlerManager bundles every route handler.
type HandlerManager struct {
	Auth        *AuthHandler
	Enquiry     *EnquiryHandler
	Application *ApplicationHandler
	Offer       *OfferHandler
	Product     *ProductHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		Auth:        NewAuthHandler(sm.Auth),
		Enquiry:     NewEnquiryHandler(sm.Enquiries),
		Application: NewApplicationHandler(sm.Applications),
		Offer:       NewOfferHandler(sm.Offers),
		Product:     NewProductHandler(sm.Products),
	}
}

// respondError maps a service error to its HTTP status. Internal failures
// keep their detail in the server log only.
func respondError(c *gin.Context, err error) {
	var missing *services.MissingFieldError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, models.Fail(missing.Error()))
	case errors.Is(err, services.ErrInvalidProduct),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidNotes),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.Fail(err.Error()))
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.Fail(err.Error()))
	default:
		log.Printf("handlers: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, models.Fail("internal server error"))
	}
}

// respondBindError turns a gin binding failure into the standard envelope,
// naming the first missing field when the validator reports one.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, models.Fail("missing required field: "+lowerFirst(verrs[0].Field())))
		return
	}
	c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
