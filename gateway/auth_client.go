package gateway

import (
	"context"
	"fmt"

	"sharthi/entity"
)

type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) AuthClient {
	return AuthClient{client: client}
}

type SignupRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

func (c AuthClient) Signup(ctx context.Context, request SignupRequest) error {
	return c.client.post(ctx, "/auth/signup", request, nil)
}

// Login exchanges credentials for an opaque bearer token. The caller is
// responsible for persisting it and for fetching /auth/me afterwards.
func (c AuthClient) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.client.post(ctx, "/auth/login", body, &resp); err != nil {
		return "", err
	}

	if resp.AccessToken == "" {
		return "", &APIError{Message: "login response carried no token"}
	}

	return resp.AccessToken, nil
}

func (c AuthClient) Me(ctx context.Context) (entity.User, error) {
	var payload userPayload
	if err := c.client.get(ctx, "/auth/me", &payload); err != nil {
		return entity.User{}, fmt.Errorf("could not fetch current user: %w", err)
	}
	return payload.normalize(), nil
}
