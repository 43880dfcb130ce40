package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-deal-watch/internal/config"
	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/MKhiriev/go-deal-watch/internal/utils"
	"github.com/MKhiriev/go-deal-watch/models"
	"github.com/go-resty/resty/v2"
)

// Endpoints of the deals web application.
const (
	DeleteNotePath = "/delete-note"
	GetDealsPath   = "/get-deals"
)

// RequestIDHeader carries the identifier of every outbound request.
const RequestIDHeader = "X-Request-ID"

type requestIDGenerator interface {
	Generate() string
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    requestIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL. A
// positive adapterCfg.RequestTimeout bounds every request; zero leaves
// requests unbounded.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}

	h.client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		h.client.SetTimeout(adapterCfg.RequestTimeout)
	}
	h.client.
		OnBeforeRequest(h.attachRequestID).
		OnAfterResponse(h.logResponse).
		OnError(h.logError)

	return h, nil
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

// DeleteNote implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID models.NoteID) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteNoteRequest{NoteID: noteID}).
		Post(DeleteNotePath)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetDeals implements [ServerAdapter]. The body is decoded regardless of its
// Content-Type header.
func (h *httpServerAdapter) GetDeals(ctx context.Context) (models.Deals, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(GetDealsPath)
	if err != nil {
		return nil, fmt.Errorf("get deals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var deals models.Deals
	if err = utils.JSON.Unmarshal(resp.Body(), &deals); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDeals, err)
	}

	return deals, nil
}

// LoadPage implements [ServerAdapter].
func (h *httpServerAdapter) LoadPage(ctx context.Context, path string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get(path)
	if err != nil {
		return fmt.Errorf("load page %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) attachRequestID(_ *resty.Client, req *resty.Request) error {
	requestID, ok := utils.GetRequestIDFromContext(req.Context())
	if !ok {
		requestID = h.ids.Generate()
	}
	req.SetHeader(RequestIDHeader, requestID)
	return nil
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("http response")
	return nil
}

func (h *httpServerAdapter) logError(req *resty.Request, err error) {
	h.logger.Warn().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Str("request_id", req.Header.Get(RequestIDHeader)).
		Msg("http request failed")
}
