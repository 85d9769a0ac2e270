package fakeapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

func (s *Server) getEvents(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	city := c.QueryParam("city")
	tags := c.QueryParam("tags")

	out := make([]map[string]any, 0, len(s.order))
	for _, id := range s.order {
		event := s.events[id]
		if city != "" && event["cityId"] != city {
			continue
		}
		if tags != "" && !hasAnyTag(event, strings.Split(tags, ",")) {
			continue
		}
		out = append(out, event)
	}

	return c.JSON(http.StatusOK, out)
}

func hasAnyTag(event map[string]any, wanted []string) bool {
	eventTags, _ := event["tags"].([]string)

	return lo.SomeBy(wanted, func(tag string) bool {
		return lo.Contains(eventTags, strings.TrimSpace(tag))
	})
}

func (s *Server) getEvent(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	event, ok := s.events[c.Param("id")]
	if !ok {
		return detail(c, http.StatusNotFound, "Event not found")
	}

	return c.JSON(http.StatusOK, event)
}

// getStalls returns a bare array, unlike most endpoints which wrap their
// payloads. Clients must accept both shapes.
func (s *Server) getStalls(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.events[c.Param("id")]; !ok {
		return detail(c, http.StatusNotFound, "Event not found")
	}

	stalls := s.stalls[c.Param("id")]
	if stalls == nil {
		stalls = []map[string]any{}
	}

	return c.JSON(http.StatusOK, stalls)
}

func (s *Server) postEvent(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}
	if user.Role != "ORGANIZER" {
		return detail(c, http.StatusForbidden, "Organizer account required")
	}

	var req map[string]any
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if title, _ := req["title"].(string); title == "" {
		return detail(c, http.StatusBadRequest, "Title is required")
	}

	id := newID("evt")
	event := map[string]any{
		"id":          id,
		"organizerId": user.ID,
		"status":      "PENDING",
		"ratingAvg":   0.0,
		"ratingCount": 0,
	}
	for k, v := range req {
		event[k] = v
	}

	s.events[id] = event
	s.order = append(s.order, id)

	// created events start with a default stall inventory
	s.stalls[id] = []map[string]any{
		{"id": newID("stl"), "name": "Bronze", "tier": "BRONZE", "price": 5000, "qtyTotal": 10, "qtyLeft": 10},
		{"id": newID("stl"), "name": "Silver", "tier": "SILVER", "price": 8000, "qtyTotal": 8, "qtyLeft": 8},
		{"id": newID("stl"), "name": "Gold", "tier": "GOLD", "price": 12000, "qtyTotal": 4, "qtyLeft": 4},
	}

	return c.JSON(http.StatusCreated, echo.Map{"event": event})
}
