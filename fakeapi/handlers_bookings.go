package fakeapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) postPaymentMock(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.authUser(c); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"paymentRef": "PAY-MOCK-" + uuid.NewString()})
}

func (s *Server) postBooking(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	var req struct {
		EventID    string `json:"eventId"`
		StallID    string `json:"stallId"`
		Amount     int    `json:"amount"`
		PaymentRef string `json:"paymentRef"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}

	if _, ok := s.events[req.EventID]; !ok {
		return detail(c, http.StatusNotFound, "Event not found")
	}

	stall := s.findStall(req.EventID, req.StallID)
	if stall == nil {
		return detail(c, http.StatusNotFound, "Stall not found")
	}
	if stallQtyLeft(stall) <= 0 {
		return detail(c, http.StatusBadRequest, "Stall sold out")
	}
	decrementStall(stall)

	booking := &bookingDoc{
		ID:         newID("bkg"),
		UserID:     user.ID,
		EventID:    req.EventID,
		StallID:    req.StallID,
		Amount:     req.Amount,
		PaymentRef: req.PaymentRef,
		Status:     "PAID",
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	s.bookings = append(s.bookings, booking)

	return c.JSON(http.StatusCreated, echo.Map{"id": booking.ID, "status": booking.Status})
}

func (s *Server) findStall(eventID, stallID string) map[string]any {
	for _, stall := range s.stalls[eventID] {
		if stall["id"] == stallID || stall["_id"] == stallID {
			return stall
		}
	}
	return nil
}

func stallQtyLeft(stall map[string]any) int {
	for _, key := range []string{"qtyLeft", "qty_remaining"} {
		if v, ok := stall[key]; ok {
			if n, ok := asInt(v); ok {
				return n
			}
		}
	}
	return 0
}

func decrementStall(stall map[string]any) {
	for _, key := range []string{"qtyLeft", "qty_remaining"} {
		if v, ok := stall[key]; ok {
			if n, ok := asInt(v); ok {
				stall[key] = n - 1
				return
			}
		}
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func (s *Server) getMyBookings(c echo.Context) error {
	return s.listBookings(c, func(*bookingDoc) bool { return true })
}

func (s *Server) getUpcomingBookings(c echo.Context) error {
	return s.listBookings(c, func(b *bookingDoc) bool {
		return s.eventEndsAfter(b.EventID, time.Now())
	})
}

func (s *Server) getPastBookings(c echo.Context) error {
	return s.listBookings(c, func(b *bookingDoc) bool {
		return !s.eventEndsAfter(b.EventID, time.Now())
	})
}

func (s *Server) eventEndsAfter(eventID string, t time.Time) bool {
	event, ok := s.events[eventID]
	if !ok {
		return false
	}

	raw, _ := event["endAt"].(string)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if end, err := time.Parse(layout, raw); err == nil {
			return end.After(t)
		}
	}
	return false
}

func (s *Server) listBookings(c echo.Context, keep func(*bookingDoc) bool) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	out := []map[string]any{}
	for _, b := range s.bookings {
		if b.UserID != user.ID || !keep(b) {
			continue
		}

		event := s.events[b.EventID]
		stall := s.findStall(b.EventID, b.StallID)

		doc := map[string]any{
			"id":        b.ID,
			"status":    b.Status,
			"amount":    b.Amount,
			"createdAt": b.CreatedAt,
			"reviewed":  b.Reviewed,
			"event":     event,
		}
		if b.Rating > 0 {
			doc["rating"] = b.Rating
		}
		if stall != nil {
			doc["stall"] = stall
		}
		out = append(out, doc)
	}

	return c.JSON(http.StatusOK, out)
}

func (s *Server) postReview(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	var req struct {
		Rating     int    `json:"rating"`
		ReviewText string `json:"reviewText"`
	}
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return detail(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	}

	for _, b := range s.bookings {
		if b.ID != c.Param("id") || b.UserID != user.ID {
			continue
		}
		if b.Reviewed {
			return detail(c, http.StatusBadRequest, "Booking already reviewed")
		}

		b.Reviewed = true
		b.Rating = req.Rating

		return c.JSON(http.StatusOK, echo.Map{"id": b.ID, "reviewed": true})
	}

	return detail(c, http.StatusNotFound, "Booking not found")
}

func (s *Server) getInvoice(c echo.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	user, err := s.authUser(c)
	if err != nil {
		return err
	}

	for _, b := range s.bookings {
		if b.ID != c.Param("id") || b.UserID != user.ID {
			continue
		}

		event := s.events[b.EventID]
		title, _ := event["title"].(string)

		stallName := ""
		if stall := s.findStall(b.EventID, b.StallID); stall != nil {
			if name, ok := stall["name"].(string); ok {
				stallName = name
			} else if name, ok := stall["stallName"].(string); ok {
				stallName = name
			}
		}

		return c.JSON(http.StatusOK, echo.Map{
			"bookingId":  b.ID,
			"invoiceUrl": "https://assets.example/invoices/" + b.ID + ".pdf",
			"amount":     b.Amount,
			"eventTitle": title,
			"stallName":  stallName,
			"date":       b.CreatedAt,
		})
	}

	return detail(c, http.StatusNotFound, "Booking not found")
}
