package gateway

import (
	"context"
	"fmt"
	"sync"
)

type PaymentsMock struct {
	mock sync.Mutex

	References []string
	Err        error
}

func (m *PaymentsMock) CreateReference(ctx context.Context) (string, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	ref := fmt.Sprintf("PAY-MOCK-%d", len(m.References)+1)
	m.References = append(m.References, ref)

	return ref, nil
}
