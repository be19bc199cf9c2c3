// Package httpclient habla con la API JSON de pet-records: arma requests,
// desenvuelve el sobre {success, data|error} y traduce errores.
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"pet-records/internal/platform/validate"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBody = 4 << 20
)

// Client envuelve *http.Client con BaseURL obligatorio.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New valida baseURL y crea un Client con timeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// APIError es una respuesta no-2xx. Message es el "error" del sobre
// (o el body crudo si no era JSON).
type APIError struct {
	StatusCode  int
	Message     string
	Ref         string
	FieldErrors []validate.FieldError
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Ref != "" {
		return fmt.Sprintf("api error: status=%d %s (ref %s)", e.StatusCode, msg, e.Ref)
	}
	return fmt.Sprintf("api error: status=%d %s", e.StatusCode, msg)
}

// IsNotFound reporta si err es un 404 de la API.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success     bool                  `json:"success"`
	Data        json.RawMessage       `json:"data"`
	Error       string                `json:"error"`
	FieldErrors []validate.FieldError `json:"fieldErrors"`
	Ref         string                `json:"ref"`
}

// Do envía in (si no es nil) como JSON y decodifica data en out (si no es nil).
// query puede ser nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	full := c.BaseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, full, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ae := &APIError{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			ae.Message, ae.Ref, ae.FieldErrors = env.Error, env.Ref, env.FieldErrors
		} else {
			ae.Message = strings.TrimSpace(string(raw))
		}
		return ae
	}

	if decodeErr != nil {
		return fmt.Errorf("httpclient: unmarshal envelope: %w", decodeErr)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal data: %w", err)
	}
	return nil
}
