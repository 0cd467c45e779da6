package soap

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single round trip unless overridden.
const DefaultTimeout = 30 * time.Second

// Transport performs SOAP round trips against a single endpoint.
type Transport struct {
	Endpoint  string
	TLSVerify bool
	Timeout   time.Duration

	client *http.Client
	log    zerolog.Logger
}

// Option configures the Transport.
type Option func(*Transport)

// WithTLSVerify controls certificate verification. Admin endpoints often
// run with self-signed certificates, so callers can turn this off.
func WithTLSVerify(verify bool) Option {
	return func(t *Transport) {
		t.TLSVerify = verify
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *Transport) {
		t.Timeout = d
	}
}

// WithLogger sets the logger used for wire-level debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Transport) {
		t.log = log
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely. The TLS and
// timeout options are ignored when this is set.
func WithHTTPClient(hc *http.Client) Option {
	return func(t *Transport) {
		t.client = hc
	}
}

// NewTransport creates a transport for the given endpoint URL.
func NewTransport(endpoint string, opts ...Option) *Transport {
	t := &Transport{
		Endpoint:  endpoint,
		TLSVerify: true,
		Timeout:   DefaultTimeout,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.client == nil {
		t.client = &http.Client{
			Timeout: t.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !t.TLSVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
	}
	return t
}

// RoundTrip frames header and body into an envelope, posts it, and returns
// the response body element. Faults and transport failures are returned as
// errors; a fault takes precedence over the HTTP status carrying it.
func (t *Transport) RoundTrip(ctx context.Context, header, body *Element) (*Element, error) {
	payload, err := BuildEnvelope(header, body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("soap: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("soap: %s failed: %w", body.Name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("soap: reading response: %w", err)
	}

	t.log.Debug().
		Str("request", body.Name).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("soap round trip")

	// The service wraps faults in HTTP 500, so try to decode the envelope
	// before judging the status code.
	el, perr := ParseEnvelope(respBody)
	if perr != nil {
		if _, ok := perr.(*Fault); !ok && resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("soap: %s failed with status %d: %s",
				body.Name, resp.StatusCode, string(respBody))
		}
		return nil, perr
	}
	return el, nil
}
