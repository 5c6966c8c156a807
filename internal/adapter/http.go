package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/docrelay/internal/config"
	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/models"
	"github.com/go-resty/resty/v2"
)

const defaultRelayTimeout = 15 * time.Second

type httpDocumentRelay struct {
	client   *resty.Client
	maxWords int

	logger *logger.Logger
}

// NewHTTPDocumentRelay constructs an HTTP/REST implementation of
// [DocumentRelay]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying HTTP client with the resolved base URL and
// request timeout. Every forwarded request is bounded by cfg.Timeout so a
// stalled backend cannot hold handler goroutines indefinitely.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPDocumentRelay(cfg config.Relay, logger *logger.Logger) (DocumentRelay, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid relay base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRelayTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpDocumentRelay{client: client, maxWords: cfg.MaxWords, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// relayUploadResponse mirrors the processing backend's success envelope.
// Only the assigned filename is consumed.
type relayUploadResponse struct {
	Data struct {
		FileName string `json:"file_name"`
	} `json:"data"`
}

// ForwardDocument implements [DocumentRelay]. It POSTs the file as a
// multipart/form-data field named "file" to POST /document/upload, passing the
// owner's id, username and the word limit as query parameters. On success it
// returns the filename the backend assigned to the stored document. Returns an
// error if the request fails, the backend responds with a non-2xx status, or
// the response body cannot be decoded.
func (h *httpDocumentRelay) ForwardDocument(ctx context.Context, req models.DocumentUploadRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", req.Filename, bytes.NewReader(req.File)).
		SetQueryParams(map[string]string{
			"userId":    strconv.FormatInt(req.UserID, 10),
			"username":  req.Username,
			"max_words": strconv.Itoa(h.maxWords),
		}).
		Post("/document/upload")
	if err != nil {
		return "", fmt.Errorf("forward document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out relayUploadResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode relay response: %w", err)
	}
	if out.Data.FileName == "" {
		return "", ErrMissingAssignedFilename
	}

	return out.Data.FileName, nil
}
