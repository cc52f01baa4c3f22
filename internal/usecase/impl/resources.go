package impl

import (
	"log/slog"

	"bdgaraj/internal/domain/entity"
	domainerrors "bdgaraj/internal/domain/errors"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/usecase"
)

var blogPostDefinition = ResourceDefinition[*entity.BlogPost, usecase.BlogPostInput]{
	Kind:     "blog post",
	NotFound: domainerrors.ErrBlogPostNotFound,
	Sort:     repository.NewestFirst,
	Build: func(in *usecase.BlogPostInput) *entity.BlogPost {
		author := in.Author
		if author == "" {
			author = entity.DefaultBlogAuthor
		}

		return &entity.BlogPost{
			Title:    in.Title,
			Content:  in.Content,
			Author:   author,
			ImageURL: in.ImageURL,
		}
	},
}

// Services have no declared listing order.
var serviceDefinition = ResourceDefinition[*entity.Service, usecase.ServiceInput]{
	Kind:     "service",
	NotFound: domainerrors.ErrServiceNotFound,
	Build: func(in *usecase.ServiceInput) *entity.Service {
		return &entity.Service{
			Name:        in.Name,
			Description: in.Description,
			Icon:        in.Icon,
			ImageURL:    in.ImageURL,
		}
	},
}

var featureDefinition = ResourceDefinition[*entity.Feature, usecase.FeatureInput]{
	Kind:     "feature",
	NotFound: domainerrors.ErrFeatureNotFound,
	Sort:     repository.ByOrder,
	Build: func(in *usecase.FeatureInput) *entity.Feature {
		return &entity.Feature{
			Icon:        in.Icon,
			Title:       in.Title,
			Description: in.Description,
			Order:       in.Order,
		}
	},
}

var testimonialDefinition = ResourceDefinition[*entity.Testimonial, usecase.TestimonialInput]{
	Kind:     "testimonial",
	NotFound: domainerrors.ErrTestimonialNotFound,
	Sort:     repository.ByOrder,
	Build: func(in *usecase.TestimonialInput) *entity.Testimonial {
		return &entity.Testimonial{
			Name:    in.Name,
			Text:    in.Text,
			Rating:  in.Rating,
			Vehicle: in.Vehicle,
			Order:   in.Order,
		}
	},
}

var faqDefinition = ResourceDefinition[*entity.FAQ, usecase.FAQInput]{
	Kind:     "faq",
	NotFound: domainerrors.ErrFAQNotFound,
	Sort:     repository.ByOrder,
	Build: func(in *usecase.FAQInput) *entity.FAQ {
		return &entity.FAQ{
			Question: in.Question,
			Answer:   in.Answer,
			Order:    in.Order,
		}
	},
}

var productDefinition = ResourceDefinition[*entity.Product, usecase.ProductInput]{
	Kind:     "product",
	NotFound: domainerrors.ErrProductNotFound,
	Sort:     repository.NewestFirst,
	Build: func(in *usecase.ProductInput) *entity.Product {
		product := &entity.Product{
			Category:     in.Category,
			Title:        in.Title,
			Description:  in.Description,
			Price:        in.Price,
			Currency:     in.Currency,
			Images:       in.Images,
			Status:       in.Status,
			ContactPhone: in.ContactPhone,
			ContactEmail: in.ContactEmail,
			Specs:        in.Specs,
		}
		if product.Currency == "" {
			product.Currency = entity.DefaultProductCurrency
		}
		if product.Status == "" {
			product.Status = entity.DefaultProductStatus
		}
		if product.Images == nil {
			product.Images = []string{}
		}
		if product.Specs == nil {
			product.Specs = map[string]string{}
		}

		return product
	},
}

var appointmentDefinition = ResourceDefinition[*entity.Appointment, usecase.AppointmentInput]{
	Kind:     "appointment",
	NotFound: domainerrors.ErrAppointmentNotFound,
	Sort:     repository.NewestFirst,
	Build: func(in *usecase.AppointmentInput) *entity.Appointment {
		return &entity.Appointment{
			CustomerName: in.CustomerName,
			Phone:        in.Phone,
			Email:        in.Email,
			Service:      in.Service,
			Date:         in.Date,
			Time:         in.Time,
			Notes:        in.Notes,
		}
	},
}

var commentDefinition = ResourceDefinition[*entity.Comment, usecase.CommentInput]{
	Kind:     "comment",
	NotFound: domainerrors.ErrCommentNotFound,
	Sort:     repository.NewestFirst,
	Build: func(in *usecase.CommentInput) *entity.Comment {
		return &entity.Comment{
			ServiceID:   in.ServiceID,
			UserName:    in.UserName,
			UserEmail:   in.UserEmail,
			CommentText: in.CommentText,
			Rating:      in.Rating,
		}
	},
}

func NewBlogPostService(repo repository.DocumentRepository[*entity.BlogPost], logger *slog.Logger) usecase.BlogPostUsecase {
	return NewResourceService[*entity.BlogPost, usecase.BlogPostInput, usecase.BlogPostPatch](repo, blogPostDefinition, logger)
}

func NewServiceService(repo repository.DocumentRepository[*entity.Service], logger *slog.Logger) usecase.ServiceUsecase {
	return NewResourceService[*entity.Service, usecase.ServiceInput, usecase.ServicePatch](repo, serviceDefinition, logger)
}

func NewFeatureService(repo repository.DocumentRepository[*entity.Feature], logger *slog.Logger) usecase.FeatureUsecase {
	return NewResourceService[*entity.Feature, usecase.FeatureInput, usecase.FeaturePatch](repo, featureDefinition, logger)
}

func NewTestimonialService(repo repository.DocumentRepository[*entity.Testimonial], logger *slog.Logger) usecase.TestimonialUsecase {
	return NewResourceService[*entity.Testimonial, usecase.TestimonialInput, usecase.TestimonialPatch](repo, testimonialDefinition, logger)
}

func NewFAQService(repo repository.DocumentRepository[*entity.FAQ], logger *slog.Logger) usecase.FAQUsecase {
	return NewResourceService[*entity.FAQ, usecase.FAQInput, usecase.FAQPatch](repo, faqDefinition, logger)
}

func NewProductService(repo repository.DocumentRepository[*entity.Product], logger *slog.Logger) usecase.ProductUsecase {
	return NewResourceService[*entity.Product, usecase.ProductInput, usecase.ProductPatch](repo, productDefinition, logger)
}
