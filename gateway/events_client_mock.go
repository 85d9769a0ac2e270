package gateway

import (
	"context"
	"sync"

	"sharthi/entity"
)

type EventsMock struct {
	mock sync.Mutex

	Events map[string]entity.Event
	Stalls map[string][]entity.Stall

	GetErr    error
	StallsErr error

	GetCalls    int
	StallsCalls int
}

func (m *EventsMock) Get(ctx context.Context, eventID string) (entity.Event, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.GetCalls++

	if m.GetErr != nil {
		return entity.Event{}, m.GetErr
	}

	event, ok := m.Events[eventID]
	if !ok {
		return entity.Event{}, &APIError{StatusCode: 404, Message: "Event not found"}
	}
	return event, nil
}

func (m *EventsMock) ListStalls(ctx context.Context, eventID string) ([]entity.Stall, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.StallsCalls++

	if m.StallsErr != nil {
		return nil, m.StallsErr
	}
	return m.Stalls[eventID], nil
}
