package gateway

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"sharthi/entity"
)

type EventsClient struct {
	client *Client
}

func NewEventsClient(client *Client) EventsClient {
	return EventsClient{client: client}
}

type EventFilter struct {
	City string
	Tags []string
}

func (c EventsClient) List(ctx context.Context, filter EventFilter) ([]entity.Event, error) {
	path := "/events"

	params := url.Values{}
	if filter.City != "" {
		params.Set("city", filter.City)
	}
	if len(filter.Tags) > 0 {
		params.Set("tags", strings.Join(filter.Tags, ","))
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var payload []eventPayload
	if err := c.client.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	return lo.Map(payload, func(p eventPayload, _ int) entity.Event {
		return p.normalize()
	}), nil
}

func (c EventsClient) Get(ctx context.Context, eventID string) (entity.Event, error) {
	var payload eventPayload
	if err := c.client.get(ctx, "/events/"+eventID, &payload); err != nil {
		return entity.Event{}, err
	}
	return payload.normalize(), nil
}

func (c EventsClient) ListStalls(ctx context.Context, eventID string) ([]entity.Stall, error) {
	var raw json.RawMessage
	if err := c.client.get(ctx, "/events/"+eventID+"/stalls", &raw); err != nil {
		return nil, err
	}
	return decodeStalls(raw)
}

// Create posts a new event on behalf of a signed-in organizer.
func (c EventsClient) Create(ctx context.Context, request entity.CreateEventRequest) (entity.Event, error) {
	var resp struct {
		Event eventPayload `json:"event"`
	}
	if err := c.client.post(ctx, "/events", request, &resp); err != nil {
		return entity.Event{}, err
	}
	return resp.Event.normalize(), nil
}
