// Package geography looks up Vietnamese provinces, districts and wards from
// the public provinces API. Results are reference data and are cached in
// Redis without expiry.
package geography

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cosme-store/internal/infra/cache"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/shared"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

var ErrUnavailable = errs.Mark(errs.New("geography service unavailable"), errs.ErrUnavailable)

type Settings struct {
	BaseURL            string
	Timeout            time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]division]
	cache      *cache.RedisCache
	group      singleflight.Group
}

// division is the subset of the API payload the store uses. Codes are numbers
// upstream and strings everywhere else.
type division struct {
	Code      int        `json:"code"`
	Name      string     `json:"name"`
	Districts []division `json:"districts,omitempty"`
	Wards     []division `json:"wards,omitempty"`
}

func NewClient(s Settings, c *cache.RedisCache) *Client {
	return &Client{
		baseURL: strings.TrimRight(s.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   s.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker[[]division](gobreaker.Settings{
			Name:    "geography",
			Timeout: s.BreakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= s.BreakerMaxFailures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, shared.ErrGeographyNotFound)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			},
		}),
		cache: c,
	}
}

func (c *Client) Provinces(ctx context.Context) ([]shared.Division, error) {
	return c.lookup(ctx, "provinces", "/p/", func(d []division) []division { return d })
}

func (c *Client) Districts(ctx context.Context, provinceCode string) ([]shared.Division, error) {
	if err := checkCode(provinceCode); err != nil {
		return nil, err
	}
	return c.lookup(ctx, "districts:"+provinceCode, "/p/"+provinceCode+"?depth=2", func(d []division) []division {
		return d[0].Districts
	})
}

func (c *Client) Wards(ctx context.Context, districtCode string) ([]shared.Division, error) {
	if err := checkCode(districtCode); err != nil {
		return nil, err
	}
	return c.lookup(ctx, "wards:"+districtCode, "/d/"+districtCode+"?depth=2", func(d []division) []division {
		return d[0].Wards
	})
}

// checkCode keeps anything but digits out of the upstream path and the cache
// key. A rejected code never reaches the breaker.
func checkCode(code string) error {
	if code == "" || strings.Trim(code, "0123456789") != "" {
		return errs.Mark(errs.Newf("invalid division code %q", code), errs.ErrValidation)
	}
	return nil
}

// lookup serves key from the cache or fetches it once for all concurrent
// callers. Each caller still stops waiting when its own ctx is done.
func (c *Client) lookup(ctx context.Context, key, path string, pick func([]division) []division) ([]shared.Division, error) {
	var cached []shared.Division
	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("geography cache read failed", "key", key, "error", err.Error())
	}

	ch := c.group.DoChan(key, func() (any, error) {
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.httpClient.Timeout)
		defer cancel()

		raw, err := c.breaker.Execute(func() ([]division, error) {
			return c.fetch(fillCtx, path)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return nil, errs.Mark(err, ErrUnavailable)
			}
			return nil, err
		}
		out := toDivisions(pick(raw))
		if err := c.cache.Set(fillCtx, key, out, 0); err != nil {
			slog.Warn("geography cache write failed", "key", key, "error", err.Error())
		}
		return out, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]shared.Division), nil
	}
}

// fetch returns the decoded body as a slice; object bodies become one element.
func (c *Client) fetch(ctx context.Context, path string) ([]division, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errs.Wrap(err, "create request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "do request"), ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, shared.ErrGeographyNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, errs.Mark(errs.Newf("unexpected status: %d", resp.StatusCode), ErrUnavailable)
	}

	if strings.HasSuffix(path, "/") {
		var list []division
		if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
			return nil, errs.Wrap(err, "decode response")
		}
		return list, nil
	}
	var one division
	if err := json.NewDecoder(resp.Body).Decode(&one); err != nil {
		return nil, errs.Wrap(err, "decode response")
	}
	return []division{one}, nil
}

func toDivisions(in []division) []shared.Division {
	out := make([]shared.Division, len(in))
	for i, d := range in {
		out[i] = shared.Division{Code: strconv.Itoa(d.Code), Name: d.Name}
	}
	return out
}
