// Package fakeapi is an in-memory stand-in for the Sharthi backend. It
// serves the same routes and payload shapes, including the looser field
// naming some endpoints produce, so the gateway can be exercised against
// it in tests and local demos.
package fakeapi

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	lock sync.Mutex

	users  map[string]*userDoc
	tokens map[string]string

	events map[string]map[string]any
	order  []string
	stalls map[string][]map[string]any

	bookings  []*bookingDoc
	creators  map[string]map[string]any
	portfolio map[string][]map[string]any
	kyc       map[string]map[string]any

	organizers map[string]map[string]any
	venues     map[string][]map[string]any

	echo *echo.Echo
}

type userDoc struct {
	ID       string
	Name     string
	Email    string
	Role     string
	Password string
}

type bookingDoc struct {
	ID         string
	UserID     string
	EventID    string
	StallID    string
	Amount     int
	PaymentRef string
	Status     string
	CreatedAt  string
	Reviewed   bool
	Rating     int
}

func NewServer() *Server {
	s := &Server{
		users:      map[string]*userDoc{},
		tokens:     map[string]string{},
		events:     map[string]map[string]any{},
		stalls:     map[string][]map[string]any{},
		creators:   map[string]map[string]any{},
		portfolio:  map[string][]map[string]any{},
		kyc:        map[string]map[string]any{},
		organizers: map[string]map[string]any{},
		venues:     map[string][]map[string]any{},
	}
	s.seed()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s.routes(e)
	s.echo = e

	return s
}

// Handler exposes the server for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		logrus.WithField("addr", addr).Info("fake api listening")

		err := s.echo.Start(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echo.Shutdown(context.Background())
	})

	return errgrp.Wait()
}

func (s *Server) routes(e *echo.Echo) {
	e.POST("/auth/signup", s.postSignup)
	e.POST("/auth/login", s.postLogin)
	e.GET("/auth/me", s.getMe)

	e.GET("/events", s.getEvents)
	e.GET("/events/:id", s.getEvent)
	e.GET("/events/:id/stalls", s.getStalls)
	e.POST("/events", s.postEvent)

	e.POST("/payments/mock", s.postPaymentMock)

	e.POST("/bookings", s.postBooking)
	e.GET("/bookings/my", s.getMyBookings)
	e.GET("/bookings/upcoming", s.getUpcomingBookings)
	e.GET("/bookings/past", s.getPastBookings)
	e.POST("/bookings/:id/review", s.postReview)
	e.GET("/bookings/invoice/:id", s.getInvoice)

	e.GET("/creator/me", s.getCreator)
	e.PATCH("/creator/me", s.patchCreator)
	e.POST("/creator/avatar", s.postAvatar)
	e.GET("/creator/portfolio", s.getPortfolio)
	e.POST("/creator/portfolio", s.postPortfolio)
	e.DELETE("/creator/portfolio/:id", s.deletePortfolio)
	e.GET("/creator/kyc", s.getCreatorKYC)
	e.POST("/creator/kyc/submit", s.postCreatorKYC)

	e.GET("/organizer/me", s.getOrganizer)
	e.PATCH("/organizer/me", s.patchOrganizer)
	e.GET("/organizer/venues", s.getVenues)
	e.POST("/organizer/venues", s.postVenue)
	e.DELETE("/organizer/venues/:id", s.deleteVenue)
	e.POST("/organizer/kyc/upload", s.postOrganizerKYC)
	e.GET("/organizer/dashboard", s.getDashboard)
	e.GET("/organizer/me/events", s.getOrganizerEvents)
	e.GET("/organizer/me/bookings", s.getOrganizerBookings)
	e.GET("/organizer/me/stats", s.getOrganizerStats)
}

func (s *Server) seed() {
	expo := map[string]any{
		"id":          "evt-expo",
		"title":       "Jaipur Craft Expo",
		"cityId":      "jaipur",
		"venueName":   "Amber Grounds",
		"location":    "Amer Road, Jaipur",
		"description": "Three days of regional craft and food stalls.",
		"startAt":     "2026-10-09T09:00:00",
		"endAt":       "2026-10-11T21:00:00",
		"tags":        []string{"craft", "food"},
		"coverImage":  "https://assets.example/expo-cover.jpg",
		"status":      "PUBLISHED",
		"ratingAvg":   4.4,
		"ratingCount": 31,
	}
	fest := map[string]any{
		"_id":       "evt-fest",
		"title":     "Indore Winter Fest",
		"cityId":    "indore",
		"venueName": "Lalbagh Lawns",
		"startAt":   "2026-12-18",
		"endAt":     "2026-12-20",
		"tags":      []string{"music", "food"},
		"status":    "PUBLISHED",
	}
	s.events["evt-expo"] = expo
	s.events["evt-fest"] = fest
	s.order = []string{"evt-expo", "evt-fest"}

	// Field naming is intentionally uneven, matching what the live API
	// returns for older records.
	s.stalls["evt-expo"] = []map[string]any{
		{"id": "stl-b1", "name": "Bronze A", "tier": "BRONZE", "price": 4800, "qtyTotal": 10, "qtyLeft": 6},
		{"_id": "stl-b2", "stallName": "Bronze B", "tierName": "BRONZE", "amount": 5200, "qty_total": 10, "qty_remaining": 4},
		{"id": "stl-s1", "name": "Silver Row", "tier": "SILVER", "price": 8000, "total": 8, "qtyLeft": 3},
		{"id": "stl-g1", "name": "Gold Front", "tier": "GOLD", "price": 12000, "qtyTotal": 4, "qtyLeft": 0},
	}
	s.stalls["evt-fest"] = []map[string]any{
		{"id": "stl-f1", "name": "Festival Silver", "price": 7500, "qtyTotal": 12, "qtyLeft": 12},
	}
}

func (s *Server) authUser(c echo.Context) (*userDoc, error) {
	header := c.Request().Header.Get("Authorization")
	if len(header) <= len("Bearer ") || header[:len("Bearer ")] != "Bearer " {
		return nil, echo.NewHTTPError(http.StatusUnauthorized)
	}

	userID, ok := s.tokens[header[len("Bearer "):]]
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized)
	}

	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, echo.NewHTTPError(http.StatusUnauthorized)
}

func detail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"detail": message})
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
