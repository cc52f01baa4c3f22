package usecase

import (
	"context"

	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/domain/repository"
)

// ResourceUsecase is the CRUD contract shared by collection resources.
// I is the create payload and P the patch payload, whose fields are all optional.
type ResourceUsecase[D entity.Document, I any, P any] interface {
	Create(ctx context.Context, input *I) (D, error)
	List(ctx context.Context, filter repository.Filter) ([]D, error)
	Get(ctx context.Context, id string) (D, error)

	// Update overlays only the fields present in patch. An empty patch returns
	// the stored entity unchanged.
	Update(ctx context.Context, id string, patch *P) (D, error)
	Delete(ctx context.Context, id string) error
}

// SingletonUsecase reads and patches a document with a fixed identifier.
type SingletonUsecase[D entity.Document, P any] interface {
	Get(ctx context.Context) (D, error)
	Update(ctx context.Context, patch *P) (D, error)
}

type (
	AppointmentUsecase = ResourceUsecase[*entity.Appointment, AppointmentInput, AppointmentPatch]
	BlogPostUsecase    = ResourceUsecase[*entity.BlogPost, BlogPostInput, BlogPostPatch]
	ServiceUsecase     = ResourceUsecase[*entity.Service, ServiceInput, ServicePatch]
	FeatureUsecase     = ResourceUsecase[*entity.Feature, FeatureInput, FeaturePatch]
	TestimonialUsecase = ResourceUsecase[*entity.Testimonial, TestimonialInput, TestimonialPatch]
	FAQUsecase         = ResourceUsecase[*entity.FAQ, FAQInput, FAQPatch]
	ProductUsecase     = ResourceUsecase[*entity.Product, ProductInput, ProductPatch]
	CTASectionUsecase  = SingletonUsecase[*entity.CTASection, CTASectionPatch]
)

// ContactInfoUsecase adds the WhatsApp QR code to the contact singleton.
type ContactInfoUsecase interface {
	SingletonUsecase[*entity.ContactInfo, ContactInfoPatch]

	// WhatsAppQR renders a PNG linking to a chat with the contact WhatsApp number.
	WhatsAppQR(ctx context.Context) ([]byte, error)
}
