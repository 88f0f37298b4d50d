package dhl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// Upper bound on response bodies read into memory.
	maxBodyBytes = 4 << 20
	// Upper bound on body text carried in errors and logs.
	maxErrorBodyBytes = 1 << 10
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (f *LocationFinder) newRequest(
	ctx context.Context,
	method string,
	url string,
	apiKey string,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("DHL-API-Key", apiKey)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do issues req once and returns the full body. Any status other than 200
// is reported as *httpStatusError.
func (f *LocationFinder) do(req *http.Request) ([]byte, error) {
	resp, err := f.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: bodySnippet(body),
		}
	}

	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("read response body: exceeds %d bytes", maxBodyBytes)
	}

	return body, nil
}

// bodySnippet returns the trimmed body, cut to maxErrorBodyBytes.
func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= maxErrorBodyBytes {
		return s
	}
	return strings.ToValidUTF8(s[:maxErrorBodyBytes], "") + "...(truncated)"
}
