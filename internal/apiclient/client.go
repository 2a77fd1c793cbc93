package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kraviona/seller-console/internal/session"
)

// GenericFailure is surfaced whenever the remote API cannot be reached or
// answers with something undecodable.
const GenericFailure = "Something went wrong"

// ErrUnavailable marks transport-level failures. Callers show
// GenericFailure and treat the operation as failed; nothing is retried.
var ErrUnavailable = errors.New("api unavailable")

// RemoteError carries the server's own message for a success:false reply.
// The message is surfaced verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Client wraps every remote catalog call: fixed base URL, JSON both ways,
// and a bearer token pulled from the request context for authenticated
// endpoints. The client never retries and never invents a success or
// failure determination beyond "did the transport call fail".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(apiURI string) *Client {
	return &Client{
		baseURL: strings.TrimRight(apiURI, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e envelope) ok() error {
	if !e.Success {
		msg := e.Message
		if msg == "" {
			msg = GenericFailure
		}
		return &RemoteError{Message: msg}
	}
	return nil
}

// do issues one call and decodes the reply into out. authed controls the
// Authorization header; login, public product reads and the messages feed
// go out anonymously.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		if token, ok := session.TokenFromContext(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}
