package admin

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/zimadm/zimadm/pkg/soap"
)

// DefaultPort is the admin service port.
const DefaultPort = 7071

// Client talks to the admin SOAP service of a single server. All calls are
// synchronous round trips; the only state between calls is the session.
type Client struct {
	Host string
	Port int

	endpoint   string
	tlsVerify  bool
	timeout    time.Duration
	httpClient *http.Client
	log        zerolog.Logger

	tr      *soap.Transport
	session *Session
}

// Option configures the Client.
type Option func(*Client)

// WithPort overrides the admin service port.
func WithPort(port int) Option {
	return func(c *Client) {
		c.Port = port
	}
}

// WithTLSVerify controls certificate verification for the endpoint.
func WithTLSVerify(verify bool) Option {
	return func(c *Client) {
		c.tlsVerify = verify
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger passed down to the transport.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithEndpoint replaces the derived https://host:port/service/admin/soap
// URL entirely.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the admin service on the given host.
func NewClient(host string, opts ...Option) *Client {
	c := &Client{
		Host:      host,
		Port:      DefaultPort,
		tlsVerify: true,
		timeout:   soap.DefaultTimeout,
		log:       zerolog.Nop(),
		session:   NewSession(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.endpoint == "" {
		c.endpoint = fmt.Sprintf("https://%s:%d/service/admin/soap", c.Host, c.Port)
	}

	topts := []soap.Option{
		soap.WithTLSVerify(c.tlsVerify),
		soap.WithTimeout(c.timeout),
		soap.WithLogger(c.log),
	}
	if c.httpClient != nil {
		topts = append(topts, soap.WithHTTPClient(c.httpClient))
	}
	c.tr = soap.NewTransport(c.endpoint, topts...)

	return c
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Session returns the client's session.
func (c *Client) Session() *Session {
	return c.session
}

// Login authenticates against the service and stores the returned token.
// Invalid credentials surface as the remote fault, unchanged and unretried.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.AuthRequest(ctx, username, password)
	if err != nil {
		return err
	}

	token, err := Single(resp, "authToken")
	if err != nil {
		return err
	}
	lifetime, err := Single(resp, "lifetime")
	if err != nil {
		return err
	}
	secs, err := strconv.ParseInt(lifetime.Text, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: lifetime %q is not a number", ErrUnexpectedResponse, lifetime.Text)
	}

	c.session.establish(token.Text, time.Duration(secs)*time.Second)
	c.log.Debug().Time("expiry", c.session.ExpiresAt()).Msg("authenticated")
	return nil
}

// Call issues an arbitrary admin message by name with the authentication
// context attached, returning the raw response element. This is the generic
// escape hatch behind the named request methods.
func (c *Client) Call(ctx context.Context, name string, children ...*soap.Element) (*soap.Element, error) {
	req := soap.NewElement(name)
	req.Space = soap.AdminNS
	req.Add(children...)
	return c.send(ctx, req)
}

// send dispatches an already-built request element with the auth context.
func (c *Client) send(ctx context.Context, req *soap.Element) (*soap.Element, error) {
	header, err := c.session.AuthContext()
	if err != nil {
		return nil, err
	}
	return c.tr.RoundTrip(ctx, header, req)
}

// sendAnonymous dispatches without an auth context. Only the authentication
// exchange itself goes through here.
func (c *Client) sendAnonymous(ctx context.Context, req *soap.Element) (*soap.Element, error) {
	return c.tr.RoundTrip(ctx, nil, req)
}
