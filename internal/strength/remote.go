package strength

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/renato-design/poker-player-the-better-donkey-killers/internal/protocol"
	"github.com/renato-design/poker-player-the-better-donkey-killers/poker"
)

// DefaultRemoteTimeout bounds a single remote scoring call.
const DefaultRemoteTimeout = 500 * time.Millisecond

// Remote asks an external service to rate a hand. Any failure, timeout or
// out-of-range answer yields NeutralScore; errors never reach the caller.
type Remote struct {
	url     string
	client  *http.Client
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger
}

var _ Scorer = (*Remote)(nil)

// RemoteOption configures a Remote scorer.
type RemoteOption func(*Remote)

// WithTimeout overrides DefaultRemoteTimeout.
func WithTimeout(d time.Duration) RemoteOption {
	return func(r *Remote) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithClock sets the clock driving the timeout.
func WithClock(clock quartz.Clock) RemoteOption {
	return func(r *Remote) { r.clock = clock }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *Remote) { r.client = client }
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(logger *log.Logger) RemoteOption {
	return func(r *Remote) { r.logger = logger }
}

// NewRemote creates a scorer posting to url.
func NewRemote(url string, opts ...RemoteOption) *Remote {
	r := &Remote{
		url:     url,
		client:  http.DefaultClient,
		timeout: DefaultRemoteTimeout,
		clock:   quartz.NewReal(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithPrefix("remote-scorer")
	return r
}

type remoteRequest struct {
	HoleCards      []protocol.Card `json:"hole_cards"`
	CommunityCards []protocol.Card `json:"community_cards"`
}

type remoteResponse struct {
	Strength *float64 `json:"strength"`
}

// Score implements Scorer.
func (r *Remote) Score(ctx context.Context, hole, community []poker.Card) float64 {
	if len(hole)+len(community) == 0 {
		return 0
	}

	score, err := r.fetch(ctx, hole, community)
	if err != nil {
		r.logger.Warn("Falling back to neutral score", "error", err)
		return NeutralScore
	}
	return score
}

func (r *Remote) fetch(ctx context.Context, hole, community []poker.Card) (float64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := r.clock.AfterFunc(r.timeout, cancel)
	defer timer.Stop()

	body, err := json.Marshal(remoteRequest{
		HoleCards:      protocol.EncodeCards(hole),
		CommunityCards: protocol.EncodeCards(community),
	})
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if out.Strength == nil {
		return 0, fmt.Errorf("response has no strength")
	}
	if s := *out.Strength; s < 0 || s > 1 {
		return 0, fmt.Errorf("strength %v out of range", s)
	}
	return *out.Strength, nil
}
