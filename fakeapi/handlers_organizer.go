package fakeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

func (s *Server) organizerProfile(user *userDoc) map[string]any {
	profile, ok := s.organizers[user.ID]
	if !ok {
		profile = map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		}
		s.organizers[user.ID] = profile
	}
	return profile
}

func (s *Server) requireOrganizer(c echo.Context) (*userDoc, error) {
	user, err := s.authUser(c)
	if err != nil {
		return nil, err
	}
	if user.Role != "ORGANIZER" {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Organizer account required")
	}
	return user, nil
}

func (s *Server) getOrganizer(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, s.organizerProfile(user))
}

func (s *Server) patchOrganizer(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	var req map[string]any
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	profile := s.organizerProfile(user)
	for k, v := range req {
		profile[k] = v
	}

	return c.JSON(http.StatusOK, profile)
}

func (s *Server) getVenues(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	venues := s.venues[user.ID]
	if venues == nil {
		venues = []map[string]any{}
	}

	return c.JSON(http.StatusOK, venues)
}

func (s *Server) postVenue(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	var req map[string]any
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if name, _ := req["name"].(string); name == "" {
		return detail(c, http.StatusBadRequest, "Venue name is required")
	}

	req["id"] = newID("vnu")
	s.venues[user.ID] = append(s.venues[user.ID], req)

	return c.JSON(http.StatusCreated, req)
}

func (s *Server) deleteVenue(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	venues := s.venues[user.ID]
	for i, venue := range venues {
		if venue["id"] == c.Param("id") {
			s.venues[user.ID] = append(venues[:i], venues[i+1:]...)
			return c.NoContent(http.StatusNoContent)
		}
	}

	return detail(c, http.StatusNotFound, "Venue not found")
}

func (s *Server) postOrganizerKYC(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return detail(c, http.StatusBadRequest, "Documents are required")
	}

	docs := map[string]any{}
	for _, field := range []string{"gstDoc", "idDoc"} {
		if files := form.File[field]; len(files) > 0 {
			docs[field] = "https://assets.example/kyc/" + user.ID + "/" + files[0].Filename
		}
	}
	if len(docs) == 0 {
		return detail(c, http.StatusBadRequest, "Documents are required")
	}

	docs["status"] = "PENDING"
	s.kyc[user.ID] = docs

	return c.JSON(http.StatusOK, docs)
}

func (s *Server) organizerBookings(user *userDoc) []*bookingDoc {
	return lo.Filter(s.bookings, func(b *bookingDoc, _ int) bool {
		event, ok := s.events[b.EventID]
		return ok && event["organizerId"] == user.ID
	})
}

func (s *Server) getDashboard(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	bookings := s.organizerBookings(user)
	revenue := lo.SumBy(bookings, func(b *bookingDoc) int { return b.Amount })

	activeEvents := 0
	for _, event := range s.events {
		if event["organizerId"] == user.ID {
			activeEvents++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"revenue":           revenue,
		"stallsSold":        len(bookings),
		"totalStalls":       0,
		"activeEvents":      activeEvents,
		"totalViews":        0,
		"revenueTrend":      []any{},
		"bookingsThisMonth": []int{},
	})
}

func (s *Server) getOrganizerEvents(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	out := []map[string]any{}
	for _, id := range s.order {
		if s.events[id]["organizerId"] == user.ID {
			out = append(out, s.events[id])
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (s *Server) getOrganizerBookings(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	out := lo.Map(s.organizerBookings(user), func(b *bookingDoc, _ int) map[string]any {
		return map[string]any{
			"id":      b.ID,
			"eventId": b.EventID,
			"stallId": b.StallID,
			"amount":  b.Amount,
			"date":    b.CreatedAt,
		}
	})

	return c.JSON(http.StatusOK, out)
}

func (s *Server) getOrganizerStats(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.requireOrganizer(c)
	if err != nil {
		return err
	}

	bookings := s.organizerBookings(user)

	totalEvents := 0
	for _, event := range s.events {
		if event["organizerId"] == user.ID {
			totalEvents++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalEvents":   totalEvents,
		"totalBookings": len(bookings),
		"revenue":       lo.SumBy(bookings, func(b *bookingDoc) int { return b.Amount }),
		"views":         0,
	})
}
