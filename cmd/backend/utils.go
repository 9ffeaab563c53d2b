package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"

	"gitlab.com/nunet/sample-store/internal/config"
)

// Utils talks to the REST API of the sample store listening on BaseURL.
type Utils struct {
	BaseURL string
	Client  *http.Client
}

func NewUtils(addr string, port int) *Utils {
	return &Utils{
		BaseURL: fmt.Sprintf("http://%s:%d", addr, port),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ResponseBody sends a request to endpoint and returns the response body.
// Responses with a non 2xx status are turned into an error carrying the
// problem title and detail.
func (u *Utils) ResponseBody(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.BaseURL+endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := u.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "could not reach sample store at %s", u.BaseURL)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, problemError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

func problemError(status int, body []byte) error {
	title, err := jsonparser.GetString(body, "title")
	if err != nil {
		return fmt.Errorf("unexpected response status %d", status)
	}
	detail, _ := jsonparser.GetString(body, "detail")
	if detail == "" {
		return fmt.Errorf("%s (status %d)", title, status)
	}
	return fmt.Errorf("%s: %s (status %d)", title, detail, status)
}

// Configured sends requests to the REST address found in the config loaded
// at the time of the call.
type Configured struct{}

func (c *Configured) ResponseBody(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	rest := config.GetConfig().Rest
	return NewUtils(rest.Addr, rest.Port).ResponseBody(ctx, method, endpoint, body)
}
