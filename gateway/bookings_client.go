package gateway

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"sharthi/entity"
)

type BookingsClient struct {
	client *Client
}

func NewBookingsClient(client *Client) BookingsClient {
	return BookingsClient{client: client}
}

// Create commits the reservation. The server performs the authoritative
// inventory check; a sold-out stall comes back as an APIError with the
// server's message.
func (c BookingsClient) Create(ctx context.Context, request entity.BookingRequest) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	if err := c.client.post(ctx, "/bookings", request, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c BookingsClient) My(ctx context.Context) ([]entity.Booking, error) {
	return c.list(ctx, "/bookings/my")
}

func (c BookingsClient) Upcoming(ctx context.Context) ([]entity.Booking, error) {
	return c.list(ctx, "/bookings/upcoming")
}

func (c BookingsClient) Past(ctx context.Context) ([]entity.Booking, error) {
	return c.list(ctx, "/bookings/past")
}

func (c BookingsClient) list(ctx context.Context, path string) ([]entity.Booking, error) {
	var payload []bookingPayload
	if err := c.client.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	return lo.Map(payload, func(p bookingPayload, _ int) entity.Booking {
		return p.normalize()
	}), nil
}

func (c BookingsClient) Review(ctx context.Context, bookingID string, review entity.ReviewRequest) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return c.client.post(ctx, "/bookings/"+bookingID+"/review", review, nil)
}

func (c BookingsClient) Invoice(ctx context.Context, bookingID string) (entity.Invoice, error) {
	var invoice entity.Invoice
	if err := c.client.get(ctx, "/bookings/invoice/"+bookingID, &invoice); err != nil {
		return entity.Invoice{}, err
	}
	return invoice, nil
}
