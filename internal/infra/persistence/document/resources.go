package document

import (
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/infra/persistence/docstore"
)

func NewAppointmentRepository(store docstore.Store) repository.DocumentRepository[*entity.Appointment] {
	return NewRepository[entity.Appointment](store, docstore.CollectionAppointments)
}

func NewBlogPostRepository(store docstore.Store) repository.DocumentRepository[*entity.BlogPost] {
	return NewRepository[entity.BlogPost](store, docstore.CollectionBlogPosts)
}

func NewServiceRepository(store docstore.Store) repository.DocumentRepository[*entity.Service] {
	return NewRepository[entity.Service](store, docstore.CollectionServices)
}

func NewFeatureRepository(store docstore.Store) repository.DocumentRepository[*entity.Feature] {
	return NewRepository[entity.Feature](store, docstore.CollectionFeatures)
}

func NewTestimonialRepository(store docstore.Store) repository.DocumentRepository[*entity.Testimonial] {
	return NewRepository[entity.Testimonial](store, docstore.CollectionTestimonials)
}

func NewFAQRepository(store docstore.Store) repository.DocumentRepository[*entity.FAQ] {
	return NewRepository[entity.FAQ](store, docstore.CollectionFAQs)
}

func NewContactInfoRepository(store docstore.Store) repository.DocumentRepository[*entity.ContactInfo] {
	return NewRepository[entity.ContactInfo](store, docstore.CollectionContactInfo)
}

func NewCTASectionRepository(store docstore.Store) repository.DocumentRepository[*entity.CTASection] {
	return NewRepository[entity.CTASection](store, docstore.CollectionCTASection)
}

func NewProductRepository(store docstore.Store) repository.DocumentRepository[*entity.Product] {
	return NewRepository[entity.Product](store, docstore.CollectionProducts)
}

func NewCommentRepository(store docstore.Store) repository.DocumentRepository[*entity.Comment] {
	return NewRepository[entity.Comment](store, docstore.CollectionComments)
}
