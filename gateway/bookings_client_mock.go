package gateway

import (
	"context"
	"fmt"
	"sync"

	"sharthi/entity"
)

type BookingsMock struct {
	mock sync.Mutex

	Created   []entity.BookingRequest
	CreateErr error
}

func (m *BookingsMock) Create(ctx context.Context, request entity.BookingRequest) (string, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	if m.CreateErr != nil {
		return "", m.CreateErr
	}

	m.Created = append(m.Created, request)

	return fmt.Sprintf("booking-%d", len(m.Created)), nil
}
