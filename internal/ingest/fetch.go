package ingest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/festroi/festroi/internal/models"
	"github.com/festroi/festroi/internal/utils"
)

// HTTPClient is the minimal transport surface, satisfied by *http.Client and
// by test fakes.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// FetchRecords downloads a delimited-text dataset and normalizes it. The
// download is retried with exponential backoff; parse failures are not.
func FetchRecords(ctx context.Context, c HTTPClient, url string) ([]models.Record, error) {
	if url == "" {
		return nil, errors.New("empty url")
	}
	var body []byte
	err := utils.NewBackoff(100*time.Millisecond, 2).Do(func(i int) error {
		b, err := fetchOnce(ctx, c, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return LoadRecords(bytes.NewReader(body))
}

func fetchOnce(ctx context.Context, c HTTPClient, url string) ([]byte, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return nil, errors.New("non-2xx: " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}
