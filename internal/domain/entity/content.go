package entity

import "time"

// Feature is a "why choose us" highlight on the home page.
type Feature struct {
	ID          string `json:"id" bson:"id"`
	Icon        string `json:"icon" bson:"icon"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Order       int    `json:"order" bson:"order"`
}

func (f *Feature) DocumentID() string { return f.ID }

func (f *Feature) Assign(id string, _ time.Time) { f.ID = id }

// Testimonial is a curated customer quote.
type Testimonial struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Text    string `json:"text" bson:"text"`
	Rating  int    `json:"rating" bson:"rating"`
	Vehicle string `json:"vehicle" bson:"vehicle"`
	Order   int    `json:"order" bson:"order"`
}

func (t *Testimonial) DocumentID() string { return t.ID }

func (t *Testimonial) Assign(id string, _ time.Time) { t.ID = id }

// FAQ is a frequently asked question.
type FAQ struct {
	ID       string `json:"id" bson:"id"`
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
	Order    int    `json:"order" bson:"order"`
}

func (f *FAQ) DocumentID() string { return f.ID }

func (f *FAQ) Assign(id string, _ time.Time) { f.ID = id }
