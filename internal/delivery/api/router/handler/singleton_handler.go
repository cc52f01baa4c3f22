package handler

import (
	"net/http"

	"bdgaraj/internal/delivery/api/response"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SingletonHandler exposes a fixed-id document for reading and patching.
type SingletonHandler[D entity.Document, P any] struct {
	uc usecase.SingletonUsecase[D, P]
}

// Get handles the public read
func (h *SingletonHandler[D, P]) Get(c echo.Context) error {
	doc, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// Update handles the admin patch
func (h *SingletonHandler[D, P]) Update(c echo.Context) error {
	patch := new(P)
	if err := c.Bind(patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(patch); err != nil {
		return response.HandleAppError(c, err)
	}

	doc, err := h.uc.Update(c.Request().Context(), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// CTASectionHandler serves the call-to-action block
type CTASectionHandler = SingletonHandler[*entity.CTASection, usecase.CTASectionPatch]

func NewCTASectionHandler(uc usecase.CTASectionUsecase) *CTASectionHandler {
	return &CTASectionHandler{uc: uc}
}

// ContactInfoHandler serves the contact details and their WhatsApp QR code
type ContactInfoHandler struct {
	SingletonHandler[*entity.ContactInfo, usecase.ContactInfoPatch]

	contactUC usecase.ContactInfoUsecase
}

func NewContactInfoHandler(uc usecase.ContactInfoUsecase) *ContactInfoHandler {
	return &ContactInfoHandler{
		SingletonHandler: SingletonHandler[*entity.ContactInfo, usecase.ContactInfoPatch]{uc: uc},
		contactUC:        uc,
	}
}

// WhatsAppQR renders the QR code as a PNG image
func (h *ContactInfoHandler) WhatsAppQR(c echo.Context) error {
	png, err := h.contactUC.WhatsAppQR(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.Blob(http.StatusOK, "image/png", png)
}
