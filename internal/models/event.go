package models

import (
	"strings"
	"time"
)

// Event represents an event row in the database
type Event struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title" validate:"notblank"`
	Location      string    `json:"location" db:"location" validate:"notblank"`
	ImageURL      string    `json:"imageUrl" db:"image_url" validate:"omitempty,url"`
	StartDateTime time.Time `json:"startDateTime" db:"start_date_time" validate:"required"`
	EndDateTime   time.Time `json:"endDateTime" db:"end_date_time" validate:"required"`
	Price         float64   `json:"price" db:"price" validate:"gte=0,lt=10000000000000000,cents"` // NUMERIC(18,2)
	URL           string    `json:"url" db:"url" validate:"omitempty,url"`
	HostID        int64     `json:"hostId" db:"host_id"` // Owning host, set from the authenticated caller
}

// EventDTO is the public projection of an event
// swagger:model EventDTO
type EventDTO struct {
	// example: 1
	ID int64 `json:"id"`
	// example: Conf
	Title string `json:"title"`
	// example: NYC
	Location string `json:"location"`
	// example: https://example.com/banner.png
	ImageURL string `json:"imageUrl"`
	// example: 2024-06-15T09:00:00Z
	StartDateTime time.Time `json:"startDateTime"`
	// example: 2024-06-15T17:00:00Z
	EndDateTime time.Time `json:"endDateTime"`
	// example: 299.99
	Price float64 `json:"price"`
	// example: https://example.com/conf
	URL string `json:"url"`
}

// ToDTO strips owner-only fields.
func (e Event) ToDTO() EventDTO {
	return EventDTO{
		ID:            e.ID,
		Title:         e.Title,
		Location:      e.Location,
		ImageURL:      e.ImageURL,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Price:         e.Price,
		URL:           e.URL,
	}
}

// ToEventDTOs maps events to DTOs, never returning nil.
func ToEventDTOs(events []Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, e.ToDTO())
	}
	return dtos
}

// EventFilter holds the optional search predicates, combined with AND.
type EventFilter struct {
	Query    string     // Substring of title or location; blank means no text filter
	From     *time.Time // StartDateTime >= From
	To       *time.Time // StartDateTime <= To
	MinPrice *float64   // Price >= MinPrice
	MaxPrice *float64   // Price <= MaxPrice
}

// HasQuery reports whether the text filter applies.
func (f EventFilter) HasQuery() bool {
	return strings.TrimSpace(f.Query) != ""
}
