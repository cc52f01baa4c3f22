// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"bdgaraj/config"
	"bdgaraj/internal/delivery/api/middleware"
	"bdgaraj/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultAPIPrefix    = "/api"
	defaultUploadPrefix = "/uploads"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	AppointmentHandler *handler.AppointmentHandler
	BlogPostHandler    *handler.BlogPostHandler
	ServiceHandler     *handler.ServiceHandler
	FeatureHandler     *handler.FeatureHandler
	TestimonialHandler *handler.TestimonialHandler
	FAQHandler         *handler.FAQHandler
	ProductHandler     *handler.ProductHandler
	ContactInfoHandler *handler.ContactInfoHandler
	CTASectionHandler  *handler.CTASectionHandler
	CommentHandler     *handler.CommentHandler
	UploadHandler      *handler.UploadHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

func (r *router) apiPrefix() string {
	prefix := strings.TrimSuffix(r.params.Config.HTTP.APIPrefix, "/")
	if prefix == "" {
		return defaultAPIPrefix
	}

	return prefix
}

func (r *router) uploadPrefix() string {
	if r.params.Config.Uploads == nil || r.params.Config.Uploads.PublicPrefix == "" {
		return defaultUploadPrefix
	}

	return strings.TrimSuffix(r.params.Config.Uploads.PublicPrefix, "/")
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	admin := p.AuthMiddleware.Authenticate

	// Health check endpoints
	e.GET("/health", handler.HealthCheck)

	// Stored uploads are served outside the API prefix, at the path the upload returned
	e.GET(r.uploadPrefix()+"/*", p.UploadHandler.Serve)

	api := e.Group(r.apiPrefix())
	api.GET("/", handler.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.GET("/verify", p.AuthHandler.Verify, admin)
		authGroup.POST("/register", p.AuthHandler.Register, admin)
	}

	// Appointments: the public books, admins manage
	appointments := api.Group("/appointments")
	{
		appointments.POST("", p.AppointmentHandler.Create)
		appointments.GET("", p.AppointmentHandler.List, admin)
		appointments.GET("/:id", p.AppointmentHandler.Get, admin)
		appointments.PUT("/:id", p.AppointmentHandler.Update, admin)
		appointments.DELETE("/:id", p.AppointmentHandler.Delete, admin)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", p.BlogPostHandler.List)
		blog.GET("/:id", p.BlogPostHandler.Get)
		blog.POST("", p.BlogPostHandler.Create, admin)
		blog.PUT("/:id", p.BlogPostHandler.Update, admin)
		blog.DELETE("/:id", p.BlogPostHandler.Delete, admin)
	}

	services := api.Group("/services")
	{
		services.GET("", p.ServiceHandler.List)
		services.GET("/:id", p.ServiceHandler.Get)
		services.POST("", p.ServiceHandler.Create, admin)
		services.PUT("/:id", p.ServiceHandler.Update, admin)
		services.DELETE("/:id", p.ServiceHandler.Delete, admin)
	}

	features := api.Group("/features")
	{
		features.GET("", p.FeatureHandler.List)
		features.POST("", p.FeatureHandler.Create, admin)
		features.PUT("/:id", p.FeatureHandler.Update, admin)
		features.DELETE("/:id", p.FeatureHandler.Delete, admin)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", p.TestimonialHandler.List)
		testimonials.POST("", p.TestimonialHandler.Create, admin)
		testimonials.PUT("/:id", p.TestimonialHandler.Update, admin)
		testimonials.DELETE("/:id", p.TestimonialHandler.Delete, admin)
	}

	faqs := api.Group("/faqs")
	{
		faqs.GET("", p.FAQHandler.List)
		faqs.POST("", p.FAQHandler.Create, admin)
		faqs.PUT("/:id", p.FAQHandler.Update, admin)
		faqs.DELETE("/:id", p.FAQHandler.Delete, admin)
	}

	contactInfo := api.Group("/contact-info")
	{
		contactInfo.GET("", p.ContactInfoHandler.Get)
		contactInfo.GET("/whatsapp-qr", p.ContactInfoHandler.WhatsAppQR)
		contactInfo.PUT("", p.ContactInfoHandler.Update, admin)
	}

	ctaSection := api.Group("/cta-section")
	{
		ctaSection.GET("", p.CTASectionHandler.Get)
		ctaSection.PUT("", p.CTASectionHandler.Update, admin)
	}

	products := api.Group("/products")
	{
		products.GET("", p.ProductHandler.List)
		products.GET("/:id", p.ProductHandler.Get)
		products.POST("", p.ProductHandler.Create, admin)
		products.PUT("/:id", p.ProductHandler.Update, admin)
		products.DELETE("/:id", p.ProductHandler.Delete, admin)
	}

	// Comments: public submissions wait for moderation
	comments := api.Group("/comments")
	{
		comments.POST("", p.CommentHandler.Create)
		comments.GET("", p.CommentHandler.ListApproved)
		comments.GET("/admin", p.CommentHandler.ListAll, admin)
		comments.PUT("/:id/status", p.CommentHandler.UpdateStatus, admin)
		comments.DELETE("/:id", p.CommentHandler.Delete, admin)
	}

	uploads := api.Group("/upload", admin)
	{
		uploads.POST("/service-image", p.UploadHandler.UploadServiceImage)
		uploads.POST("/product-image", p.UploadHandler.UploadProductImage)
	}
}
