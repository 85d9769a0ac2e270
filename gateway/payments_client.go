package gateway

import "context"

type PaymentsClient struct {
	client *Client
}

func NewPaymentsClient(client *Client) PaymentsClient {
	return PaymentsClient{client: client}
}

// CreateReference runs the mock payment and returns the server-issued
// payment reference. A reference must exist before a booking can be created.
func (c PaymentsClient) CreateReference(ctx context.Context) (string, error) {
	var resp struct {
		PaymentRef string `json:"paymentRef"`
	}
	if err := c.client.post(ctx, "/payments/mock", struct{}{}, &resp); err != nil {
		return "", err
	}

	if resp.PaymentRef == "" {
		return "", &APIError{Message: "payment response carried no reference"}
	}

	return resp.PaymentRef, nil
}
