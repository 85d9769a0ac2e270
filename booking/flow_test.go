package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharthi/booking"
	"sharthi/entity"
	"sharthi/gateway"
)

type draftStoreStub struct {
	draft   entity.Draft
	has     bool
	deletes int
}

func (s *draftStoreStub) Get() (entity.Draft, error) {
	if !s.has {
		return entity.Draft{}, entity.ErrNoDraft
	}
	return s.draft, nil
}

func (s *draftStoreStub) Delete() error {
	s.has = false
	s.deletes++
	return nil
}

type staticToken string

func (t staticToken) Token() string {
	return string(t)
}

func premiumDraft() *draftStoreStub {
	return &draftStoreStub{
		draft: entity.Draft{EventID: "evt-1", StallID: "stl-s1", Tier: "Premium", Price: 8000},
		has:   true,
	}
}

func eventsWith(stalls ...entity.Stall) *gateway.EventsMock {
	return &gateway.EventsMock{
		Events: map[string]entity.Event{
			"evt-1": {ID: "evt-1", Title: "Jaipur Craft Expo"},
		},
		Stalls: map[string][]entity.Stall{"evt-1": stalls},
	}
}

func silverStall() entity.Stall {
	return entity.Stall{ID: "stl-s1", Name: "Silver Row", Tier: entity.TierSilver, Price: 8000, QtyTotal: 8, QtyLeft: 3}
}

func TestStartFlowWithoutDraft(t *testing.T) {
	drafts := &draftStoreStub{}
	events := eventsWith(silverStall())

	_, err := booking.StartFlow(context.Background(), drafts, staticToken("tok"), events, &gateway.PaymentsMock{}, &gateway.BookingsMock{})

	assert.ErrorIs(t, err, entity.ErrNoDraft)
	assert.Zero(t, events.GetCalls)
	assert.Zero(t, events.StallsCalls)
}

func TestStartFlowLoadsEventAndStall(t *testing.T) {
	events := eventsWith(silverStall())

	flow, err := booking.StartFlow(context.Background(), premiumDraft(), staticToken("tok"), events, &gateway.PaymentsMock{}, &gateway.BookingsMock{})
	require.NoError(t, err)

	assert.Equal(t, booking.StepReview, flow.Step())
	assert.Equal(t, "Jaipur Craft Expo", flow.Event().Title)

	stall, ok := flow.Stall()
	require.True(t, ok)
	assert.Equal(t, "Silver Row", stall.Name)

	assert.Equal(t, 8000, flow.Totals().Total())
}

func TestStartFlowEventLookupFails(t *testing.T) {
	events := eventsWith(silverStall())
	events.GetErr = &gateway.APIError{Message: "network error, please try again"}

	_, err := booking.StartFlow(context.Background(), premiumDraft(), staticToken("tok"), events, &gateway.PaymentsMock{}, &gateway.BookingsMock{})

	require.Error(t, err)
	assert.Zero(t, events.StallsCalls)
}

func TestProceedToPaymentBlocksSoldOutStall(t *testing.T) {
	stall := silverStall()
	stall.QtyLeft = 0

	flow, err := booking.StartFlow(context.Background(), premiumDraft(), staticToken("tok"), eventsWith(stall), &gateway.PaymentsMock{}, &gateway.BookingsMock{})
	require.NoError(t, err)

	assert.ErrorIs(t, flow.ProceedToPayment(), entity.ErrSoldOut)
	assert.Equal(t, booking.StepReview, flow.Step())
}

func TestProceedToPaymentAllowsUnknownStall(t *testing.T) {
	other := entity.Stall{ID: "stl-other", Tier: entity.TierGold, QtyTotal: 1, QtyLeft: 1}

	flow, err := booking.StartFlow(context.Background(), premiumDraft(), staticToken("tok"), eventsWith(other), &gateway.PaymentsMock{}, &gateway.BookingsMock{})
	require.NoError(t, err)

	_, ok := flow.Stall()
	assert.False(t, ok)

	require.NoError(t, flow.ProceedToPayment())
	assert.Equal(t, booking.StepPayment, flow.Step())
}

func TestBackToReview(t *testing.T) {
	flow, err := booking.StartFlow(context.Background(), premiumDraft(), staticToken("tok"), eventsWith(silverStall()), &gateway.PaymentsMock{}, &gateway.BookingsMock{})
	require.NoError(t, err)

	assert.Error(t, flow.BackToReview())

	require.NoError(t, flow.ProceedToPayment())
	require.NoError(t, flow.BackToReview())
	assert.Equal(t, booking.StepReview, flow.Step())
}

func TestPayRequiresPaymentStep(t *testing.T) {
	flow, err := booking.StartFlow(context.Background(), premiumDraft(), staticToken("tok"), eventsWith(silverStall()), &gateway.PaymentsMock{}, &gateway.BookingsMock{})
	require.NoError(t, err)

	assert.Error(t, flow.Pay(context.Background()))
}

func TestPaySignedOutMakesNoRequests(t *testing.T) {
	drafts := premiumDraft()
	payments := &gateway.PaymentsMock{}
	bookings := &gateway.BookingsMock{}

	flow, err := booking.StartFlow(context.Background(), drafts, staticToken(""), eventsWith(silverStall()), payments, bookings)
	require.NoError(t, err)
	require.NoError(t, flow.ProceedToPayment())

	assert.ErrorIs(t, flow.Pay(context.Background()), entity.ErrNotSignedIn)

	assert.Empty(t, payments.References)
	assert.Empty(t, bookings.Created)
	assert.Equal(t, booking.StepPayment, flow.Step())
	assert.True(t, drafts.has)
}

func TestPayBookingFailureKeepsDraftAndStep(t *testing.T) {
	drafts := premiumDraft()
	bookings := &gateway.BookingsMock{
		CreateErr: &gateway.APIError{StatusCode: 400, Message: "Stall sold out"},
	}

	flow, err := booking.StartFlow(context.Background(), drafts, staticToken("tok"), eventsWith(silverStall()), &gateway.PaymentsMock{}, bookings)
	require.NoError(t, err)
	require.NoError(t, flow.ProceedToPayment())

	err = flow.Pay(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "Stall sold out")

	assert.Equal(t, booking.StepPayment, flow.Step())
	assert.True(t, drafts.has)
	assert.Zero(t, drafts.deletes)
}

func TestPaySuccess(t *testing.T) {
	drafts := premiumDraft()
	payments := &gateway.PaymentsMock{}
	bookings := &gateway.BookingsMock{}

	flow, err := booking.StartFlow(context.Background(), drafts, staticToken("tok"), eventsWith(silverStall()), payments, bookings)
	require.NoError(t, err)
	require.NoError(t, flow.ProceedToPayment())

	require.NoError(t, flow.Pay(context.Background()))

	assert.Equal(t, booking.StepSuccess, flow.Step())
	assert.False(t, drafts.has)
	assert.Equal(t, 1, drafts.deletes)

	require.Len(t, bookings.Created, 1)
	assert.Equal(t, entity.BookingRequest{
		EventID:    "evt-1",
		StallID:    "stl-s1",
		Amount:     8000,
		PaymentRef: "PAY-MOCK-1",
	}, bookings.Created[0])
}
