package entity

import "time"

// Product defaults applied on creation.
const (
	DefaultProductCurrency = "TRY"
	DefaultProductStatus   = "active"
)

// Product is a vehicle or spare part listed for sale. Category and status are
// open-ended tags used as query filters.
type Product struct {
	ID           string            `json:"id" bson:"id"`
	Category     string            `json:"category" bson:"category"`
	Title        string            `json:"title" bson:"title"`
	Description  string            `json:"description" bson:"description"`
	Price        float64           `json:"price" bson:"price"`
	Currency     string            `json:"currency" bson:"currency"`
	Images       []string          `json:"images" bson:"images"`
	Status       string            `json:"status" bson:"status"`
	ContactPhone string            `json:"contact_phone" bson:"contact_phone"`
	ContactEmail string            `json:"contact_email" bson:"contact_email"`
	Specs        map[string]string `json:"specs" bson:"specs"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" bson:"updated_at"`
}

func (p *Product) DocumentID() string { return p.ID }

func (p *Product) Assign(id string, now time.Time) {
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
}

func (p *Product) LastUpdated() time.Time { return p.UpdatedAt }
