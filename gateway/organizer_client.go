package gateway

import (
	"context"
	"io"
	"mime/multipart"

	"sharthi/entity"
)

type OrganizerClient struct {
	client *Client
}

func NewOrganizerClient(client *Client) OrganizerClient {
	return OrganizerClient{client: client}
}

func (c OrganizerClient) Me(ctx context.Context) (entity.OrganizerProfile, error) {
	var profile entity.OrganizerProfile
	if err := c.client.get(ctx, "/organizer/me", &profile); err != nil {
		return entity.OrganizerProfile{}, err
	}
	return profile, nil
}

func (c OrganizerClient) Update(ctx context.Context, update entity.OrganizerProfileUpdate) error {
	return c.client.patch(ctx, "/organizer/me", update, nil)
}

func (c OrganizerClient) Venues(ctx context.Context) ([]entity.Venue, error) {
	var venues []entity.Venue
	if err := c.client.get(ctx, "/organizer/venues", &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c OrganizerClient) AddVenue(ctx context.Context, venue entity.VenueCreate) error {
	return c.client.post(ctx, "/organizer/venues", venue, nil)
}

func (c OrganizerClient) DeleteVenue(ctx context.Context, venueID string) error {
	return c.client.delete(ctx, "/organizer/venues/"+venueID)
}

// KYCDocument is one verification document to upload. Field is the form
// field the backend expects: gstDoc or idDoc.
type KYCDocument struct {
	Field    string
	Filename string
	Content  io.Reader
}

func (c OrganizerClient) UploadKYCDocs(ctx context.Context, docs []KYCDocument) error {
	body, err := newMultipartBody(func(w *multipart.Writer) error {
		for _, doc := range docs {
			if err := writeFilePart(w, doc.Field, doc.Filename, doc.Content); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &APIError{Message: err.Error()}
	}

	return c.client.post(ctx, "/organizer/kyc/upload", body, nil)
}

func (c OrganizerClient) Dashboard(ctx context.Context) (entity.Dashboard, error) {
	var dashboard entity.Dashboard
	if err := c.client.get(ctx, "/organizer/dashboard", &dashboard); err != nil {
		return entity.Dashboard{}, err
	}
	return dashboard, nil
}

func (c OrganizerClient) MyEvents(ctx context.Context) ([]entity.OrganizerEvent, error) {
	var events []entity.OrganizerEvent
	if err := c.client.get(ctx, "/organizer/me/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c OrganizerClient) MyBookings(ctx context.Context) ([]entity.OrganizerBooking, error) {
	var bookings []entity.OrganizerBooking
	if err := c.client.get(ctx, "/organizer/me/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c OrganizerClient) Stats(ctx context.Context) (entity.OrganizerTotals, error) {
	var stats entity.OrganizerTotals
	if err := c.client.get(ctx, "/organizer/me/stats", &stats); err != nil {
		return entity.OrganizerTotals{}, err
	}
	return stats, nil
}
