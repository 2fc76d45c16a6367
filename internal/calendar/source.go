package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/username/holiday-calendar/internal/metrics"
	"go.uber.org/zap"
)

const (
	DefaultPrimaryURL  = "https://www.shuyz.com/githubfiles/china-holiday-calender/master/holidayAPI.json"
	DefaultBackupURL   = "https://unpkg.com/holiday-calendar@1.1.6/data/CN/{year}.json"
	defaultHTTPTimeout = 10 * time.Second

	sourcePrimary = "primary"
	sourceBackup  = "backup"
)

// PayloadKind tags the shape of a raw provider payload
type PayloadKind int

const (
	PayloadEmpty PayloadKind = iota
	PayloadRanged
	PayloadFlat
)

// Payload is the raw provider answer for one year
type Payload struct {
	Kind   PayloadKind
	Ranges []RangedEntry // PayloadRanged
	Dates  []FlatEntry   // PayloadFlat
}

// RangedEntry is one holiday period of the primary source
type RangedEntry struct {
	Name      string   `json:"Name"`
	StartDate string   `json:"StartDate"`
	EndDate   string   `json:"EndDate"`
	CompDays  []string `json:"CompDays"`
}

// FlatEntry is one dated record of the backup source
type FlatEntry struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// primaryResponse represents the primary feed, keyed by year
type primaryResponse struct {
	Years map[string]json.RawMessage `json:"Years"`
}

// backupResponse represents the per-year backup feed
type backupResponse struct {
	Year  int             `json:"year"`
	Dates json.RawMessage `json:"dates"`
}

// Notifier surfaces the failure of every source for a year to the user
type Notifier interface {
	Warn(year int, err error)
}

// Fetcher returns the raw payload for a year
type Fetcher interface {
	Fetch(ctx context.Context, year int) Payload
}

// Source fetches holiday data from the primary feed and falls back to the
// per-year backup feed
type Source struct {
	primaryURL string
	backupURL  string
	httpClient *http.Client
	notifier   Notifier
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewSource creates a new Source. backupURL may contain a {year} placeholder.
func NewSource(primaryURL, backupURL string, timeout time.Duration, notifier Notifier, m *metrics.Metrics, logger *zap.Logger) *Source {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	return &Source{
		primaryURL: primaryURL,
		backupURL:  backupURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Fetch tries the primary source, then the backup. When both fail the
// notifier is warned once and an empty payload is returned.
func (s *Source) Fetch(ctx context.Context, year int) Payload {
	ranges, err := s.fetchPrimary(ctx, year)
	if err == nil {
		s.logger.Info("Holiday data fetched from primary source",
			zap.Int("year", year),
			zap.Int("ranges", len(ranges)))
		return Payload{Kind: PayloadRanged, Ranges: ranges}
	}

	s.logger.Warn("Primary source failed, trying backup",
		zap.Int("year", year),
		zap.Error(err))

	dates, backupErr := s.fetchBackup(ctx, year)
	if backupErr == nil {
		s.logger.Info("Holiday data fetched from backup source",
			zap.Int("year", year),
			zap.Int("dates", len(dates)))
		return Payload{Kind: PayloadFlat, Dates: dates}
	}

	combined := fmt.Errorf("primary and backup both failed: primary=%w, backup=%v", err, backupErr)
	s.logger.Error("No holiday data available",
		zap.Int("year", year),
		zap.Error(combined))

	if s.notifier != nil {
		s.notifier.Warn(year, combined)
	}

	return Payload{Kind: PayloadEmpty}
}

// fetchPrimary downloads the multi-year feed and extracts the requested year
func (s *Source) fetchPrimary(ctx context.Context, year int) ([]RangedEntry, error) {
	var resp primaryResponse
	if err := s.getJSON(ctx, sourcePrimary, s.primaryURL, &resp); err != nil {
		return nil, err
	}

	if resp.Years == nil {
		s.metrics.SourceRequest(sourcePrimary, "malformed")
		return nil, fmt.Errorf("%w: primary body has no Years object", ErrMalformedResponse)
	}

	raw, ok := resp.Years[strconv.Itoa(year)]
	if !ok {
		s.metrics.SourceRequest(sourcePrimary, "year_unavailable")
		return nil, fmt.Errorf("%w: primary source has no %d", ErrYearUnavailable, year)
	}

	entries, err := decodeEntries[RangedEntry](raw, s.logger)
	if err != nil {
		s.metrics.SourceRequest(sourcePrimary, "malformed")
		return nil, fmt.Errorf("%w: primary year %d: %v", ErrMalformedResponse, year, err)
	}

	s.metrics.SourceRequest(sourcePrimary, "ok")
	return entries, nil
}

// fetchBackup downloads the backup feed for one year
func (s *Source) fetchBackup(ctx context.Context, year int) ([]FlatEntry, error) {
	url := strings.ReplaceAll(s.backupURL, "{year}", strconv.Itoa(year))

	var resp backupResponse
	if err := s.getJSON(ctx, sourceBackup, url, &resp); err != nil {
		return nil, err
	}

	if len(resp.Dates) == 0 {
		s.metrics.SourceRequest(sourceBackup, "malformed")
		return nil, fmt.Errorf("%w: backup body has no dates list", ErrMalformedResponse)
	}

	entries, err := decodeEntries[FlatEntry](resp.Dates, s.logger)
	if err != nil {
		s.metrics.SourceRequest(sourceBackup, "malformed")
		return nil, fmt.Errorf("%w: backup year %d: %v", ErrMalformedResponse, year, err)
	}

	s.metrics.SourceRequest(sourceBackup, "ok")
	return entries, nil
}

// getJSON performs a GET and decodes the body into v
func (s *Source) getJSON(ctx context.Context, source, url string, v any) error {
	s.logger.Debug("Fetching holiday data",
		zap.String("source", source),
		zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.metrics.SourceRequest(source, "transport_error")
		return fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.metrics.SourceRequest(source, "transport_error")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.metrics.SourceRequest(source, "transport_error")
		return fmt.Errorf("%w: %s returned status %d", ErrTransport, source, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			s.metrics.SourceRequest(source, "transport_error")
			return fmt.Errorf("%w: reading %s body: %v", ErrTransport, source, err)
		}
		s.metrics.SourceRequest(source, "malformed")
		return fmt.Errorf("%w: failed to parse %s JSON: %v", ErrMalformedResponse, source, err)
	}

	return nil
}

// decodeEntries decodes a JSON array element by element. Elements that do not
// decode into T are logged and skipped; only a non-array value is an error.
func decodeEntries[T any](raw json.RawMessage, logger *zap.Logger) ([]T, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	entries := make([]T, 0, len(items))
	for i, item := range items {
		var entry T
		if err := json.Unmarshal(item, &entry); err != nil {
			logger.Warn("Skipping undecodable entry",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
