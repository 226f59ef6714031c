package transcript

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"FactScanner/internal/domain"
	"FactScanner/internal/extract"
)

const (
	defaultTimedTextBase = "https://www.youtube.com/api/timedtext"
	altTimedTextBase     = "https://video.google.com/timedtext"

	boundedAttemptTimeout = 3 * time.Second
)

// TimedTextStrategy is one self-contained acquisition path: it derives one
// or more captions endpoints from a reference and returns the first
// non-empty transcript. Each registered strategy differs only in how it
// interprets the reference, which keeps the cascade a pure ordering concern.
type TimedTextStrategy struct {
	name      string
	client    *http.Client
	timeout   time.Duration
	endpoints func(base, reference string) []string
	base      string
}

var _ extract.Strategy = (*TimedTextStrategy)(nil)

// Name identifies the strategy inside the registry.
func (s *TimedTextStrategy) Name() string {
	return s.name
}

// Attempt tries each derived endpoint once, in order.
func (s *TimedTextStrategy) Attempt(ctx context.Context, reference string) (domain.AcquiredContent, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	endpoints := s.endpoints(s.base, reference)
	if len(endpoints) == 0 {
		return domain.AcquiredContent{}, fmt.Errorf("no usable endpoint for reference")
	}

	var lastErr error
	for _, endpoint := range endpoints {
		text, err := fetchTimedText(ctx, s.client, endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		return domain.AcquiredContent{RawText: text, Strategy: s.name}, nil
	}

	return domain.AcquiredContent{}, lastErr
}

func timedTextURL(base, videoID string, extra url.Values) string {
	query := url.Values{}
	query.Set("lang", "en")
	query.Set("v", videoID)
	for key, values := range extra {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	return base + "?" + query.Encode()
}

// NewDirectStrategy uses the reference exactly as given: a bare identifier
// or a URL already carrying a v parameter. No normalization is applied.
func NewDirectStrategy(client *http.Client) *TimedTextStrategy {
	return &TimedTextStrategy{
		name:   "direct",
		client: client,
		base:   defaultTimedTextBase,
		endpoints: func(base, reference string) []string {
			if bareIDExpr.MatchString(reference) {
				return []string{timedTextURL(base, reference, nil)}
			}
			parsed, err := url.Parse(reference)
			if err != nil {
				return nil
			}
			if v := parsed.Query().Get("v"); v != "" {
				return []string{timedTextURL(base, v, nil)}
			}
			return nil
		},
	}
}

// NewNormalizedStrategy extracts the canonical 11-character identifier from
// any known URL form before building the captions endpoint.
func NewNormalizedStrategy(client *http.Client) *TimedTextStrategy {
	return &TimedTextStrategy{
		name:   "normalized",
		client: client,
		base:   defaultTimedTextBase,
		endpoints: func(base, reference string) []string {
			id := extractVideoID(reference)
			if id == "" {
				return nil
			}
			return []string{timedTextURL(base, id, nil)}
		},
	}
}

// NewAltFormsStrategy tries alternate endpoint forms: the legacy captions
// host and the auto-generated caption track. Each form is attempted once.
func NewAltFormsStrategy(client *http.Client) *TimedTextStrategy {
	return &TimedTextStrategy{
		name:   "altforms",
		client: client,
		base:   altTimedTextBase,
		endpoints: func(base, reference string) []string {
			id := extractVideoID(reference)
			if id == "" {
				return nil
			}
			return []string{
				timedTextURL(base, id, nil),
				timedTextURL(defaultTimedTextBase, id, url.Values{"kind": {"asr"}}),
			}
		},
	}
}

// NewBoundedStrategy retries the canonical form under a much tighter
// deadline, for endpoints that hang rather than fail.
func NewBoundedStrategy(client *http.Client) *TimedTextStrategy {
	return &TimedTextStrategy{
		name:    "bounded",
		client:  client,
		timeout: boundedAttemptTimeout,
		base:    defaultTimedTextBase,
		endpoints: func(base, reference string) []string {
			id := extractVideoID(reference)
			if id == "" {
				return nil
			}
			return []string{timedTextURL(base, id, url.Values{"fmt": {"srv1"}})}
		},
	}
}
