package fakeapi_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharthi/entity"
	"sharthi/fakeapi"
	"sharthi/gateway"
	"sharthi/store"
)

func startFake(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(fakeapi.NewServer().Handler())
	t.Cleanup(server.Close)
	return server
}

func signInOn(t *testing.T, server *httptest.Server, email string, role entity.Role) *gateway.Client {
	t.Helper()
	ctx := context.Background()

	sessions := store.NewSessionRepository(t.TempDir())
	client := gateway.NewClient(server.URL, gateway.WithTokenSource(sessions.Token))
	auth := gateway.NewAuthClient(client)

	require.NoError(t, auth.Signup(ctx, gateway.SignupRequest{
		Name:     "Ravi",
		Email:    email,
		Password: "secret",
		Role:     role,
	}))

	token, err := auth.Login(ctx, email, "secret")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(entity.Session{Token: token}))

	return client
}

func signedInClient(t *testing.T, role entity.Role) *gateway.Client {
	return signInOn(t, startFake(t), "ravi@example.com", role)
}

func TestCreatorProfileJourney(t *testing.T) {
	ctx := context.Background()
	creator := gateway.NewCreatorClient(signedInClient(t, entity.RoleCreator))

	require.NoError(t, creator.Update(ctx, entity.CreatorProfileUpdate{
		Bio:    "Block print artist",
		CityID: "jaipur",
		Tags:   []string{"textile"},
	}))

	profile, err := creator.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Block print artist", profile.Bio)
	assert.Equal(t, "jaipur", profile.CityID)

	url, err := creator.UploadAvatar(ctx, "face.png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)
	assert.Contains(t, url, "face.png")

	urls, err := creator.UploadPortfolio(ctx, []gateway.PortfolioUpload{
		{Filename: "work1.jpg", Content: bytes.NewReader([]byte("jpg-1"))},
		{Filename: "work2.jpg", Content: bytes.NewReader([]byte("jpg-2"))},
	})
	require.NoError(t, err)
	assert.Len(t, urls, 2)

	items, err := creator.Portfolio(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, creator.DeletePortfolio(ctx, items[0].ID))

	items, err = creator.Portfolio(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	kyc, err := creator.KYC(ctx)
	require.NoError(t, err)
	assert.Empty(t, kyc.Status)

	require.NoError(t, creator.SubmitKYC(ctx, entity.CreatorKYC{
		Aadhaar:       "1234-5678-9012",
		PAN:           "ABCDE1234F",
		BankName:      "SBI",
		AccountNumber: "000111222",
		IFSC:          "SBIN0000001",
	}))

	kyc, err = creator.KYC(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", kyc.Status)
}

func TestOrganizerJourney(t *testing.T) {
	ctx := context.Background()
	client := signedInClient(t, entity.RoleOrganizer)
	organizer := gateway.NewOrganizerClient(client)
	events := gateway.NewEventsClient(client)

	require.NoError(t, organizer.Update(ctx, entity.OrganizerProfileUpdate{
		BrandName: "Ravi Events",
		Phone:     "9999999999",
	}))

	profile, err := organizer.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Events", profile.BrandName)

	require.NoError(t, organizer.AddVenue(ctx, entity.VenueCreate{
		Name: "Lalbagh Lawns",
		City: "indore",
	}))

	venues, err := organizer.Venues(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 1)

	created, err := events.Create(ctx, entity.CreateEventRequest{
		Title:     "Ravi Winter Bazaar",
		CityID:    "indore",
		VenueName: "Lalbagh Lawns",
		StartAt:   "2026-12-01",
		EndAt:     "2026-12-03",
		Tags:      []string{"bazaar"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "PENDING", created.Status)

	mine, err := organizer.MyEvents(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Ravi Winter Bazaar", mine[0].Title)

	dashboard, err := organizer.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.ActiveEvents)

	stats, err := organizer.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEvents)

	require.NoError(t, organizer.UploadKYCDocs(ctx, []gateway.KYCDocument{
		{Field: "gstDoc", Filename: "gst.pdf", Content: bytes.NewReader([]byte("pdf"))},
	}))

	require.NoError(t, organizer.DeleteVenue(ctx, venues[0].ID))

	venues, err = organizer.Venues(ctx)
	require.NoError(t, err)
	assert.Empty(t, venues)
}

func TestOrganizerBookingsReflectPurchases(t *testing.T) {
	ctx := context.Background()
	server := startFake(t)

	orgClient := signInOn(t, server, "org@example.com", entity.RoleOrganizer)
	organizer := gateway.NewOrganizerClient(orgClient)

	created, err := gateway.NewEventsClient(orgClient).Create(ctx, entity.CreateEventRequest{
		Title:     "Ravi Winter Bazaar",
		CityID:    "indore",
		VenueName: "Lalbagh Lawns",
		StartAt:   "2026-12-01",
		EndAt:     "2026-12-03",
	})
	require.NoError(t, err)

	rows, err := organizer.MyBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	buyer := signInOn(t, server, "asha@example.com", entity.RoleCreator)
	events := gateway.NewEventsClient(buyer)
	payments := gateway.NewPaymentsClient(buyer)
	bookings := gateway.NewBookingsClient(buyer)

	stalls, err := events.ListStalls(ctx, created.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stalls)

	ref, err := payments.CreateReference(ctx)
	require.NoError(t, err)

	_, err = bookings.Create(ctx, entity.BookingRequest{
		EventID:    created.ID,
		StallID:    stalls[0].ID,
		Amount:     stalls[0].Price,
		PaymentRef: ref,
	})
	require.NoError(t, err)

	rows, err = organizer.MyBookings(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].EventID)
	assert.Equal(t, stalls[0].ID, rows[0].StallID)
	assert.Equal(t, stalls[0].Price, rows[0].Amount)
	assert.NotEmpty(t, rows[0].Date)
}

func TestOrganizerEndpointsRequireRole(t *testing.T) {
	ctx := context.Background()
	organizer := gateway.NewOrganizerClient(signedInClient(t, entity.RoleCreator))

	_, err := organizer.Me(ctx)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
	assert.Equal(t, "Organizer account required", apiErr.Message)
}
