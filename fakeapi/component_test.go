package fakeapi_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharthi/booking"
	"sharthi/entity"
	"sharthi/fakeapi"
	"sharthi/gateway"
	"sharthi/store"
)

type env struct {
	sessions *store.SessionRepository
	drafts   *store.DraftRepository

	auth     gateway.AuthClient
	events   gateway.EventsClient
	payments gateway.PaymentsClient
	bookings gateway.BookingsClient
}

func newEnv(t *testing.T) *env {
	t.Helper()

	server := httptest.NewServer(fakeapi.NewServer().Handler())
	t.Cleanup(server.Close)

	dir := t.TempDir()
	sessions := store.NewSessionRepository(dir)

	client := gateway.NewClient(server.URL, gateway.WithTokenSource(sessions.Token))

	return &env{
		sessions: sessions,
		drafts:   store.NewDraftRepository(dir),
		auth:     gateway.NewAuthClient(client),
		events:   gateway.NewEventsClient(client),
		payments: gateway.NewPaymentsClient(client),
		bookings: gateway.NewBookingsClient(client),
	}
}

func (e *env) signIn(t *testing.T, ctx context.Context) entity.User {
	t.Helper()

	err := e.auth.Signup(ctx, gateway.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
		Role:     entity.RoleCreator,
	})
	require.NoError(t, err)

	token, err := e.auth.Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, e.sessions.Save(entity.Session{Token: token}))

	user, err := e.auth.Me(ctx)
	require.NoError(t, err)
	require.NoError(t, e.sessions.Save(entity.Session{Token: token, User: user}))

	return user
}

func TestBookingJourney(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	user := e.signIn(t, ctx)
	assert.Equal(t, entity.RoleCreator, user.Role)

	events, err := e.events.List(ctx, gateway.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Jaipur Craft Expo", events[0].Title)

	stalls, err := e.events.ListStalls(ctx, events[0].ID)
	require.NoError(t, err)
	require.Len(t, stalls, 4)

	cards := booking.BuildTierCards(stalls)
	require.Len(t, cards, 3)

	silver := cards[1]
	assert.Equal(t, "Premium", silver.Label)
	require.NoError(t, booking.SelectTier(e.drafts, events[0].ID, silver))

	flow, err := booking.StartFlow(ctx, e.drafts, e.sessions, e.events, e.payments, e.bookings)
	require.NoError(t, err)
	require.NoError(t, flow.ProceedToPayment())
	require.NoError(t, flow.Pay(ctx))

	assert.Equal(t, booking.StepSuccess, flow.Step())

	_, err = e.drafts.Get()
	assert.ErrorIs(t, err, entity.ErrNoDraft)

	mine, err := e.bookings.My(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, silver.Price, mine[0].Amount)
	assert.Equal(t, entity.BookingPaid, mine[0].Status)
	assert.Equal(t, "Jaipur Craft Expo", mine[0].Event.Title)

	require.NoError(t, e.bookings.Review(ctx, mine[0].ID, entity.ReviewRequest{Rating: 5, ReviewText: "great spot"}))

	invoice, err := e.bookings.Invoice(ctx, mine[0].ID)
	require.NoError(t, err)
	assert.Equal(t, mine[0].ID, invoice.BookingID)
	assert.NotEmpty(t, invoice.InvoiceURL)
	assert.Equal(t, "Jaipur Craft Expo", invoice.EventTitle)
	assert.Equal(t, "Silver Row", invoice.StallName)
}

func TestBookingSoldOutTier(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.signIn(t, ctx)

	events, err := e.events.List(ctx, gateway.EventFilter{})
	require.NoError(t, err)

	stalls, err := e.events.ListStalls(ctx, events[0].ID)
	require.NoError(t, err)

	gold := booking.BuildTierCards(stalls)[2]
	require.True(t, gold.SoldOut())

	assert.ErrorIs(t, booking.SelectTier(e.drafts, events[0].ID, gold), entity.ErrSoldOut)
}

func TestBookingSoldOutAtSubmission(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.signIn(t, ctx)

	// the server is the authority on inventory even when the client's view
	// was stale at selection time
	_, err := e.bookings.Create(ctx, entity.BookingRequest{
		EventID:    "evt-expo",
		StallID:    "stl-g1",
		Amount:     12000,
		PaymentRef: "PAY-MOCK-test",
	})

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Stall sold out", apiErr.Message)
}

func TestPayWithoutSessionLeavesDraft(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	stalls, err := e.events.ListStalls(ctx, "evt-expo")
	require.NoError(t, err)

	silver := booking.BuildTierCards(stalls)[1]
	require.NoError(t, booking.SelectTier(e.drafts, "evt-expo", silver))

	flow, err := booking.StartFlow(ctx, e.drafts, e.sessions, e.events, e.payments, e.bookings)
	require.NoError(t, err)
	require.NoError(t, flow.ProceedToPayment())

	assert.ErrorIs(t, flow.Pay(ctx), entity.ErrNotSignedIn)

	draft, err := e.drafts.Get()
	require.NoError(t, err)
	assert.Equal(t, "evt-expo", draft.EventID)
}

func TestEventFilters(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	byCity, err := e.events.List(ctx, gateway.EventFilter{City: "indore"})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "Indore Winter Fest", byCity[0].Title)

	byTag, err := e.events.List(ctx, gateway.EventFilter{Tags: []string{"craft"}})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Jaipur Craft Expo", byTag[0].Title)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.bookings.My(ctx)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
}
