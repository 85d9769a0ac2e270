package gateway

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/samber/lo"

	"sharthi/entity"
)

// The backend's response shapes are inconsistently named across fields and
// revisions (id/_id, qtyLeft/qty_remaining, tier/tierName, ...). Each entity
// gets exactly one wire payload and one mapping function here; nothing
// outside this file guesses field names.

type eventPayload struct {
	ID          string   `json:"id"`
	LegacyID    string   `json:"_id"`
	OrganizerID string   `json:"organizerId"`
	Title       string   `json:"title"`
	CityID      string   `json:"cityId"`
	VenueName   string   `json:"venueName"`
	Location    string   `json:"location"`
	StartAt     string   `json:"startAt"`
	EndAt       string   `json:"endAt"`
	TagsCSV     string   `json:"categoryTagsCsv"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	BannerImage string   `json:"bannerImage"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	RatingAvg   float64  `json:"ratingAvg"`
	RatingCount int      `json:"ratingCount"`
}

func (p eventPayload) normalize() entity.Event {
	tags := p.Tags
	if len(tags) == 0 && p.TagsCSV != "" {
		for _, tag := range strings.Split(p.TagsCSV, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return entity.Event{
		ID:          firstString(p.ID, p.LegacyID),
		OrganizerID: p.OrganizerID,
		Title:       p.Title,
		CityID:      p.CityID,
		VenueName:   p.VenueName,
		Location:    p.Location,
		StartAt:     parseTime(p.StartAt),
		EndAt:       parseTime(p.EndAt),
		Tags:        tags,
		Description: p.Description,
		CoverImage:  p.CoverImage,
		BannerImage: p.BannerImage,
		Status:      p.Status,
		CreatedAt:   parseTime(p.CreatedAt),
		RatingAvg:   p.RatingAvg,
		RatingCount: p.RatingCount,
	}
}

type stallPayload struct {
	ID           string `json:"id"`
	LegacyID     string `json:"_id"`
	Name         string `json:"name"`
	StallName    string `json:"stallName"`
	Tier         string `json:"tier"`
	TierName     string `json:"tierName"`
	Price        *int   `json:"price"`
	Amount       *int   `json:"amount"`
	QtyTotal     *int   `json:"qtyTotal"`
	QtyTotalAlt  *int   `json:"qty_total"`
	Total        *int   `json:"total"`
	QtyLeft      *int   `json:"qtyLeft"`
	QtyRemaining *int   `json:"qty_remaining"`
	Specs        string `json:"specs"`
}

func (p stallPayload) normalize() entity.Stall {
	return entity.Stall{
		ID:       firstString(p.ID, p.LegacyID),
		Name:     firstString(p.Name, p.StallName),
		Tier:     entity.ParseTier(firstString(p.Tier, p.TierName)),
		Price:    firstInt(p.Price, p.Amount),
		QtyTotal: firstInt(p.QtyTotal, p.QtyTotalAlt, p.Total),
		QtyLeft:  firstInt(p.QtyLeft, p.QtyRemaining),
		Specs:    p.Specs,
	}
}

// decodeStalls accepts both response shapes seen in the wild: a bare array
// and an object wrapping it under "stalls".
func decodeStalls(raw json.RawMessage) ([]entity.Stall, error) {
	var list []stallPayload
	if err := json.Unmarshal(raw, &list); err != nil {
		var wrapped struct {
			Stalls []stallPayload `json:"stalls"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, &APIError{Message: "unexpected response from server"}
		}
		list = wrapped.Stalls
	}

	return lo.Map(list, func(p stallPayload, _ int) entity.Stall {
		return p.normalize()
	}), nil
}

type bookingPayload struct {
	ID        string `json:"id"`
	LegacyID  string `json:"_id"`
	Status    string `json:"status"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"createdAt"`
	Event     struct {
		Title   string `json:"title"`
		CityID  string `json:"cityId"`
		StartAt string `json:"startAt"`
		EndAt   string `json:"endAt"`
	} `json:"event"`
	Stall struct {
		Name  string `json:"name"`
		Tier  string `json:"tier"`
		Price int    `json:"price"`
	} `json:"stall"`
	Reviewed bool `json:"reviewed"`
	Rating   int  `json:"rating"`
}

func (p bookingPayload) normalize() entity.Booking {
	status := entity.BookingStatus(strings.ToUpper(p.Status))
	if status == "" {
		status = entity.BookingPaid
	}

	return entity.Booking{
		ID:        firstString(p.ID, p.LegacyID),
		Status:    status,
		Amount:    p.Amount,
		CreatedAt: parseTime(p.CreatedAt),
		Event: entity.BookingEvent{
			Title:   p.Event.Title,
			CityID:  p.Event.CityID,
			StartAt: parseTime(p.Event.StartAt),
			EndAt:   parseTime(p.Event.EndAt),
		},
		Stall: entity.BookingStall{
			Name:  p.Stall.Name,
			Tier:  entity.ParseTier(p.Stall.Tier),
			Price: p.Stall.Price,
		},
		Reviewed: p.Reviewed,
		Rating:   p.Rating,
	}
}

type userPayload struct {
	ID       string `json:"id"`
	LegacyID string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (p userPayload) normalize() entity.User {
	return entity.User{
		ID:    firstString(p.ID, p.LegacyID),
		Name:  p.Name,
		Email: p.Email,
		Role:  entity.ParseRole(p.Role),
	}
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

// parseTime tolerates the timestamp formats the backend emits: RFC3339 and
// naive isoformat with or without time. Unparseable values become the zero
// time, which renders as a dash.
func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
