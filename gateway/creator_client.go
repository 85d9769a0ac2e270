package gateway

import (
	"context"
	"io"
	"mime/multipart"

	"sharthi/entity"
)

type CreatorClient struct {
	client *Client
}

func NewCreatorClient(client *Client) CreatorClient {
	return CreatorClient{client: client}
}

func (c CreatorClient) Me(ctx context.Context) (entity.CreatorProfile, error) {
	var profile entity.CreatorProfile
	if err := c.client.get(ctx, "/creator/me", &profile); err != nil {
		return entity.CreatorProfile{}, err
	}
	return profile, nil
}

func (c CreatorClient) Update(ctx context.Context, update entity.CreatorProfileUpdate) error {
	return c.client.patch(ctx, "/creator/me", update, nil)
}

// UploadAvatar pushes a new avatar image and returns its hosted URL.
func (c CreatorClient) UploadAvatar(ctx context.Context, filename string, content io.Reader) (string, error) {
	body, err := newMultipartBody(func(w *multipart.Writer) error {
		return writeFilePart(w, "file", filename, content)
	})
	if err != nil {
		return "", &APIError{Message: err.Error()}
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.client.post(ctx, "/creator/avatar", body, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c CreatorClient) Portfolio(ctx context.Context) ([]entity.PortfolioItem, error) {
	var items []entity.PortfolioItem
	if err := c.client.get(ctx, "/creator/portfolio", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PortfolioUpload is one file to add to the portfolio.
type PortfolioUpload struct {
	Filename string
	Content  io.Reader
}

func (c CreatorClient) UploadPortfolio(ctx context.Context, uploads []PortfolioUpload) ([]string, error) {
	body, err := newMultipartBody(func(w *multipart.Writer) error {
		for _, upload := range uploads {
			if err := writeFilePart(w, "files", upload.Filename, upload.Content); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}

	var resp struct {
		Images []string `json:"images"`
	}
	if err := c.client.post(ctx, "/creator/portfolio", body, &resp); err != nil {
		return nil, err
	}
	return resp.Images, nil
}

func (c CreatorClient) DeletePortfolio(ctx context.Context, itemID string) error {
	return c.client.delete(ctx, "/creator/portfolio/"+itemID)
}

// KYC returns the current submission; Status is empty when nothing has been
// submitted yet.
func (c CreatorClient) KYC(ctx context.Context) (entity.CreatorKYC, error) {
	var kyc entity.CreatorKYC
	if err := c.client.get(ctx, "/creator/kyc", &kyc); err != nil {
		return entity.CreatorKYC{}, err
	}
	return kyc, nil
}

func (c CreatorClient) SubmitKYC(ctx context.Context, kyc entity.CreatorKYC) error {
	kyc.Status = ""
	return c.client.post(ctx, "/creator/kyc/submit", kyc, nil)
}
