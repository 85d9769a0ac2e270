// Package booking implements the stall booking workflow: tier aggregation,
// the billing totals and the review/payment/success wizard.
package booking

import (
	"context"
	"fmt"

	"sharthi/entity"
)

type Step string

const (
	StepReview  Step = "review"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

type EventsService interface {
	Get(ctx context.Context, eventID string) (entity.Event, error)
	ListStalls(ctx context.Context, eventID string) ([]entity.Stall, error)
}

type PaymentsService interface {
	CreateReference(ctx context.Context) (string, error)
}

type BookingsService interface {
	Create(ctx context.Context, request entity.BookingRequest) (string, error)
}

type DraftStore interface {
	Get() (entity.Draft, error)
	Delete() error
}

type TokenSource interface {
	Token() string
}

// Flow is the booking wizard. Steps move review -> payment -> success;
// payment may go back to review; nothing leaves success. The draft in the
// store exists exactly as long as the flow has not succeeded.
type Flow struct {
	drafts   DraftStore
	session  TokenSource
	payments PaymentsService
	bookings BookingsService

	step       Step
	draft      entity.Draft
	event      entity.Event
	stall      entity.Stall
	stallKnown bool
}

// StartFlow enters the wizard. Without a stored draft it fails with
// entity.ErrNoDraft and the caller must navigate back to event selection;
// the flow never invents a selection. The event and stall lookups run
// sequentially, a failing event lookup short-circuits the stall lookup.
func StartFlow(
	ctx context.Context,
	drafts DraftStore,
	session TokenSource,
	events EventsService,
	payments PaymentsService,
	bookings BookingsService,
) (*Flow, error) {
	draft, err := drafts.Get()
	if err != nil {
		return nil, err
	}

	event, err := events.Get(ctx, draft.EventID)
	if err != nil {
		return nil, fmt.Errorf("could not load event: %w", err)
	}

	stalls, err := events.ListStalls(ctx, draft.EventID)
	if err != nil {
		return nil, fmt.Errorf("could not load stalls: %w", err)
	}

	flow := &Flow{
		drafts:   drafts,
		session:  session,
		payments: payments,
		bookings: bookings,
		step:     StepReview,
		draft:    draft,
		event:    event,
	}

	for _, stall := range stalls {
		if stall.ID == draft.StallID {
			flow.stall = stall
			flow.stallKnown = true
			break
		}
	}

	return flow, nil
}

func (f *Flow) Step() Step {
	return f.step
}

func (f *Flow) Draft() entity.Draft {
	return f.draft
}

func (f *Flow) Event() entity.Event {
	return f.event
}

// Stall returns the resolved stall. ok is false when the draft references a
// stall the listing no longer contains; the flow still proceeds in that case
// and leaves the inventory decision to the server.
func (f *Flow) Stall() (entity.Stall, bool) {
	return f.stall, f.stallKnown
}

func (f *Flow) Totals() Totals {
	return NewTotals(f.draft.Price)
}

// ProceedToPayment moves review -> payment. A stall known to be sold out
// blocks the move as a best-effort UI guard; the authoritative check still
// happens server-side at submission.
func (f *Flow) ProceedToPayment() error {
	if f.step != StepReview {
		return fmt.Errorf("cannot proceed to payment from %q", f.step)
	}

	if f.stallKnown && f.stall.QtyLeft <= 0 {
		return entity.ErrSoldOut
	}

	f.step = StepPayment
	return nil
}

// BackToReview moves payment -> review. Success is terminal.
func (f *Flow) BackToReview() error {
	if f.step != StepPayment {
		return fmt.Errorf("cannot go back to review from %q", f.step)
	}

	f.step = StepReview
	return nil
}

// Pay performs the single submission behind payment -> success: require a
// session token, obtain a payment reference, create the booking, clear the
// draft, then enter success. Any failure leaves the step at payment and the
// draft in place; nothing is retried and nothing is partially committed.
func (f *Flow) Pay(ctx context.Context) error {
	if f.step != StepPayment {
		return fmt.Errorf("cannot pay from %q", f.step)
	}

	if f.session.Token() == "" {
		return entity.ErrNotSignedIn
	}

	paymentRef, err := f.payments.CreateReference(ctx)
	if err != nil {
		return fmt.Errorf("could not create payment reference: %w", err)
	}

	_, err = f.bookings.Create(ctx, entity.BookingRequest{
		EventID:    f.draft.EventID,
		StallID:    f.draft.StallID,
		Amount:     f.Totals().Total(),
		PaymentRef: paymentRef,
	})
	if err != nil {
		return err
	}

	if err := f.drafts.Delete(); err != nil {
		return fmt.Errorf("could not clear draft: %w", err)
	}

	f.step = StepSuccess
	return nil
}
