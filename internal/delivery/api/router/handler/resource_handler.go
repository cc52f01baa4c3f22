package handler

import (
	"net/http"

	"bdgaraj/internal/delivery/api/response"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ResourceHandler exposes the CRUD use case of one resource kind.
type ResourceHandler[D entity.Document, I any, P any] struct {
	uc             usecase.ResourceUsecase[D, I, P]
	deletedMessage string

	// filters are query parameters matched by equality against stored fields.
	filters []string
}

// NewResourceHandler creates a handler listing with the given query filters.
func NewResourceHandler[D entity.Document, I any, P any](
	uc usecase.ResourceUsecase[D, I, P],
	deletedMessage string,
	filters ...string,
) *ResourceHandler[D, I, P] {
	return &ResourceHandler[D, I, P]{
		uc:             uc,
		deletedMessage: deletedMessage,
		filters:        filters,
	}
}

// Create handles POST on the collection
func (h *ResourceHandler[D, I, P]) Create(c echo.Context) error {
	input := new(I)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(input); err != nil {
		return response.HandleAppError(c, err)
	}

	doc, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// List handles GET on the collection
func (h *ResourceHandler[D, I, P]) List(c echo.Context) error {
	filter := repository.Filter{}
	for _, name := range h.filters {
		if value := c.QueryParam(name); value != "" {
			filter[name] = value
		}
	}

	docs, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, docs)
}

// Get handles GET on one document
func (h *ResourceHandler[D, I, P]) Get(c echo.Context) error {
	doc, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// Update handles PUT on one document. Only the fields present in the body change.
func (h *ResourceHandler[D, I, P]) Update(c echo.Context) error {
	patch := new(P)
	if err := c.Bind(patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(patch); err != nil {
		return response.HandleAppError(c, err)
	}

	doc, err := h.uc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, doc)
}

// Delete handles DELETE on one document
func (h *ResourceHandler[D, I, P]) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, h.deletedMessage)
}

type (
	AppointmentHandler = ResourceHandler[*entity.Appointment, usecase.AppointmentInput, usecase.AppointmentPatch]
	BlogPostHandler    = ResourceHandler[*entity.BlogPost, usecase.BlogPostInput, usecase.BlogPostPatch]
	ServiceHandler     = ResourceHandler[*entity.Service, usecase.ServiceInput, usecase.ServicePatch]
	FeatureHandler     = ResourceHandler[*entity.Feature, usecase.FeatureInput, usecase.FeaturePatch]
	TestimonialHandler = ResourceHandler[*entity.Testimonial, usecase.TestimonialInput, usecase.TestimonialPatch]
	FAQHandler         = ResourceHandler[*entity.FAQ, usecase.FAQInput, usecase.FAQPatch]
	ProductHandler     = ResourceHandler[*entity.Product, usecase.ProductInput, usecase.ProductPatch]
)

func NewAppointmentHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	return NewResourceHandler(uc, "Appointment deleted successfully")
}

func NewBlogPostHandler(uc usecase.BlogPostUsecase) *BlogPostHandler {
	return NewResourceHandler(uc, "Blog post deleted successfully")
}

func NewServiceHandler(uc usecase.ServiceUsecase) *ServiceHandler {
	return NewResourceHandler(uc, "Service deleted successfully")
}

func NewFeatureHandler(uc usecase.FeatureUsecase) *FeatureHandler {
	return NewResourceHandler(uc, "Feature deleted successfully")
}

func NewTestimonialHandler(uc usecase.TestimonialUsecase) *TestimonialHandler {
	return NewResourceHandler(uc, "Testimonial deleted successfully")
}

func NewFAQHandler(uc usecase.FAQUsecase) *FAQHandler {
	return NewResourceHandler(uc, "FAQ deleted successfully")
}

// NewProductHandler lists products filtered by category and status.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return NewResourceHandler(uc, "Product deleted successfully", "category", "status")
}
