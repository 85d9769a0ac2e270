package gateway

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v3"
)

// AssetsClient uploads images to the third-party asset host (banner, cover
// and avatar storage outside the primary backend). Uploads are unsigned:
// the file plus an upload preset, no bearer token.
type AssetsClient struct {
	uploadURL  string
	preset     string
	httpClient *http.Client
}

func NewAssetsClient(uploadURL, preset string, opts ...func(*AssetsClient)) AssetsClient {
	c := AssetsClient{
		uploadURL:  strings.TrimRight(uploadURL, "/"),
		preset:     preset,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func WithAssetsHTTPClient(httpClient *http.Client) func(*AssetsClient) {
	return func(c *AssetsClient) { c.httpClient = httpClient }
}

// UploadImage pushes one image and returns its hosted URL.
func (c AssetsClient) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	body, err := newMultipartBody(func(w *multipart.Writer) error {
		if err := writeFilePart(w, "file", filename, content); err != nil {
			return err
		}
		return w.WriteField("upload_preset", c.preset)
	})
	if err != nil {
		return "", &APIError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL+"/image/upload", body.buf)
	if err != nil {
		return "", &APIError{Message: "could not build upload request"}
	}
	req.Header.Set("Content-Type", body.contentType)
	req.Header.Set("Correlation-ID", shortuuid.New())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Message: "network error, please try again"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{StatusCode: resp.StatusCode, Message: "network error, please try again"}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}

	var uploaded struct {
		SecureURL string `json:"secure_url"`
	}
	if err := unmarshalOrAPIError(raw, &uploaded); err != nil {
		return "", err
	}
	if uploaded.SecureURL == "" {
		return "", &APIError{Message: "upload response carried no URL"}
	}

	return uploaded.SecureURL, nil
}
