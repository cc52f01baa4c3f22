package entity

import "time"

// Service is a static catalog entry. It carries no timestamps.
type Service struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
	ImageURL    string `json:"image_url" bson:"image_url"`
}

func (s *Service) DocumentID() string { return s.ID }

func (s *Service) Assign(id string, _ time.Time) { s.ID = id }
