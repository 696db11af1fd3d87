package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
)

type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// Form is a multipart body: plain text fields plus uploaded files.
type Form struct {
	Fields map[string]string
	Files  []FilePart
}

func (c *Client) PostMultipart(ctx context.Context, path string, form Form, out any) error {
	return c.doMultipart(ctx, http.MethodPost, path, form, out)
}

func (c *Client) PutMultipart(ctx context.Context, path string, form Form, out any) error {
	return c.doMultipart(ctx, http.MethodPut, path, form, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, form Form, out any) error {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range form.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}

	for _, file := range form.Files {

		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return err
		}

		if _, err := io.Copy(part, file.Content); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, &buf)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	respBody, err := c.send(req)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return serverError.MalformedPayloadError.New(path, err)
	}

	return nil
}
