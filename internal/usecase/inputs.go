package usecase

// Create payloads carry the client-supplied fields only. Identity, timestamps
// and server-controlled status are assigned by the use case.
//
// Patch payloads use pointer fields: a nil field is absent and leaves the
// stored value untouched. The json tag names the stored field.

type AppointmentInput struct {
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,max=32"`
	Email        string `json:"email" validate:"required,email"`
	Service      string `json:"service" validate:"required,max=100"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required,datetime=15:04"`
	Notes        string `json:"notes" validate:"max=1000"`
}

type AppointmentPatch struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

type BlogPostInput struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author" validate:"max=100"`
	ImageURL string `json:"image_url"`
}

type BlogPostPatch struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Content  *string `json:"content"`
	Author   *string `json:"author" validate:"omitempty,max=100"`
	ImageURL *string `json:"image_url"`
}

type ServiceInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required"`
	ImageURL    string `json:"image_url"`
}

type ServicePatch struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	ImageURL    *string `json:"image_url"`
}

type FeatureInput struct {
	Icon        string `json:"icon" validate:"required"`
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Order       int    `json:"order" validate:"gte=0"`
}

type FeaturePatch struct {
	Icon        *string `json:"icon"`
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
}

type TestimonialInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Text    string `json:"text" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Vehicle string `json:"vehicle" validate:"max=100"`
	Order   int    `json:"order" validate:"gte=0"`
}

type TestimonialPatch struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	Text    *string `json:"text"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Vehicle *string `json:"vehicle" validate:"omitempty,max=100"`
	Order   *int    `json:"order" validate:"omitempty,gte=0"`
}

type FAQInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Order    int    `json:"order" validate:"gte=0"`
}

type FAQPatch struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
}

type ContactInfoPatch struct {
	Address        *string `json:"address"`
	Phone          *string `json:"phone" validate:"omitempty,max=32"`
	EmergencyPhone *string `json:"emergency_phone" validate:"omitempty,max=32"`
	Email          *string `json:"email" validate:"omitempty,email"`
	WhatsApp       *string `json:"whatsapp" validate:"omitempty,max=32"`
	WorkingHours   *string `json:"working_hours"`
	MapsURL        *string `json:"maps_url" validate:"omitempty,url"`
}

type CTASectionPatch struct {
	Title      *string `json:"title" validate:"omitempty,max=200"`
	Subtitle   *string `json:"subtitle"`
	ButtonText *string `json:"button_text" validate:"omitempty,max=50"`
	ButtonLink *string `json:"button_link"`
}

type ProductInput struct {
	Category     string            `json:"category" validate:"required,max=50"`
	Title        string            `json:"title" validate:"required,max=200"`
	Description  string            `json:"description"`
	Price        float64           `json:"price" validate:"gte=0"`
	Currency     string            `json:"currency" validate:"omitempty,len=3"`
	Images       []string          `json:"images"`
	Status       string            `json:"status" validate:"max=20"`
	ContactPhone string            `json:"contact_phone" validate:"max=32"`
	ContactEmail string            `json:"contact_email" validate:"omitempty,email"`
	Specs        map[string]string `json:"specs"`
}

type ProductPatch struct {
	Category     *string            `json:"category" validate:"omitempty,max=50"`
	Title        *string            `json:"title" validate:"omitempty,max=200"`
	Description  *string            `json:"description"`
	Price        *float64           `json:"price" validate:"omitempty,gte=0"`
	Currency     *string            `json:"currency" validate:"omitempty,len=3"`
	Images       *[]string          `json:"images"`
	Status       *string            `json:"status" validate:"omitempty,max=20"`
	ContactPhone *string            `json:"contact_phone" validate:"omitempty,max=32"`
	ContactEmail *string            `json:"contact_email" validate:"omitempty,email"`
	Specs        *map[string]string `json:"specs"`
}

// CommentInput has no status field; new comments always wait for moderation.
type CommentInput struct {
	ServiceID   string `json:"service_id" validate:"required"`
	UserName    string `json:"user_name" validate:"required,max=100"`
	UserEmail   string `json:"user_email" validate:"required,email"`
	CommentText string `json:"comment_text" validate:"required,max=2000"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
}

// CommentStatusPatch is the moderation request body.
type CommentStatusPatch struct {
	Status string `json:"status" validate:"required"`
}
