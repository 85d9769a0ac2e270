package entity

import "time"

// Event is an organizer-created event. The client only ever reads events;
// creation and moderation happen on the organizer and admin surfaces.
type Event struct {
	ID          string
	OrganizerID string
	Title       string
	CityID      string
	VenueName   string
	Location    string
	StartAt     time.Time
	EndAt       time.Time
	Tags        []string
	Description string
	CoverImage  string
	BannerImage string
	Status      string
	CreatedAt   time.Time
	RatingAvg   float64
	RatingCount int
}

// CreateEventRequest is the payload for POST /events (organizer dashboard).
type CreateEventRequest struct {
	Title       string   `json:"title"`
	CityID      string   `json:"cityId"`
	VenueName   string   `json:"venueName"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	StartAt     string   `json:"startAt"`
	EndAt       string   `json:"endAt"`
	CoverImage  string   `json:"coverImage"`
	BannerImage string   `json:"bannerImage"`
	Tags        []string `json:"tags"`
}
