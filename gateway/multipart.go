package gateway

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// multipartBody is a fully buffered multipart form. Client.do recognizes it
// and uses the writer's content type (with boundary) instead of
// application/json.
type multipartBody struct {
	buf         *bytes.Buffer
	contentType string
}

func newMultipartBody(build func(w *multipart.Writer) error) (*multipartBody, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := build(w); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("could not finalize multipart form: %w", err)
	}

	return &multipartBody{buf: buf, contentType: w.FormDataContentType()}, nil
}

func writeFilePart(w *multipart.Writer, field, filename string, content io.Reader) error {
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("could not create form file %s: %w", field, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("could not copy file %s: %w", filename, err)
	}
	return nil
}
