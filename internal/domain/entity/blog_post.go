package entity

import "time"

// DefaultBlogAuthor is used when a post is created without an author.
const DefaultBlogAuthor = "BD Garaj"

// BlogPost is an article managed by admins and readable by everyone.
type BlogPost struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Author    string    `json:"author" bson:"author"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (p *BlogPost) DocumentID() string { return p.ID }

func (p *BlogPost) Assign(id string, now time.Time) {
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
}

func (p *BlogPost) LastUpdated() time.Time { return p.UpdatedAt }
