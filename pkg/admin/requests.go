package admin

import (
	"context"

	"github.com/zimadm/zimadm/pkg/soap"
)

// Raw request methods, one per server message name. Each returns the raw
// response element for callers that want the untyped usage mode; the
// high-level methods build on these.

// AuthRequest sends the authentication exchange. It is the only message
// dispatched without a <context> header.
func (c *Client) AuthRequest(ctx context.Context, name, password string) (*soap.Element, error) {
	req := soap.NewElement("AuthRequest")
	req.Space = soap.AdminNS
	req.Add(
		soap.Text("name", name),
		soap.Text("password", password),
	)
	return c.sendAnonymous(ctx, req)
}

// GetAllDomainsRequest lists every domain on the server.
func (c *Client) GetAllDomainsRequest(ctx context.Context) (*soap.Element, error) {
	return c.Call(ctx, "GetAllDomainsRequest")
}

// GetDomainRequest looks up one domain by selector.
func (c *Client) GetDomainRequest(ctx context.Context, sel Selector) (*soap.Element, error) {
	return c.Call(ctx, "GetDomainRequest", sel.element("domain"))
}

// CreateDomainRequest creates a domain with optional named attributes.
func (c *Client) CreateDomainRequest(ctx context.Context, name string, attrs map[string]string) (*soap.Element, error) {
	children := []*soap.Element{soap.Text("name", name)}
	for k, v := range attrs {
		a := soap.Text("a", v)
		a.SetAttr("n", k)
		children = append(children, a)
	}
	return c.Call(ctx, "CreateDomainRequest", children...)
}

// DeleteDomainRequest deletes a domain by id.
func (c *Client) DeleteDomainRequest(ctx context.Context, id string) (*soap.Element, error) {
	req := soap.NewElement("DeleteDomainRequest")
	req.Space = soap.AdminNS
	req.SetAttr("id", id)
	return c.send(ctx, req)
}

// GetMailboxStatsRequest fetches server-wide mailbox statistics.
func (c *Client) GetMailboxStatsRequest(ctx context.Context) (*soap.Element, error) {
	return c.Call(ctx, "GetMailboxStatsRequest")
}

// CountAccountRequest counts accounts in a domain, grouped by class of
// service.
func (c *Client) CountAccountRequest(ctx context.Context, domain Selector) (*soap.Element, error) {
	return c.Call(ctx, "CountAccountRequest", domain.element("domain"))
}

// GetAllMailboxesRequest lists every mailbox on the server.
func (c *Client) GetAllMailboxesRequest(ctx context.Context) (*soap.Element, error) {
	return c.Call(ctx, "GetAllMailboxesRequest")
}

// GetMailboxRequest fetches the mailbox of one account by account id.
func (c *Client) GetMailboxRequest(ctx context.Context, accountID string) (*soap.Element, error) {
	mbox := soap.NewElement("mbox")
	mbox.SetAttr("id", accountID)
	return c.Call(ctx, "GetMailboxRequest", mbox)
}

// GetDistributionListRequest looks up one distribution list by selector.
func (c *Client) GetDistributionListRequest(ctx context.Context, sel Selector) (*soap.Element, error) {
	return c.Call(ctx, "GetDistributionListRequest", sel.element("dl"))
}

// CreateDistributionListRequest creates a distribution list.
func (c *Client) CreateDistributionListRequest(ctx context.Context, name string, dynamic bool) (*soap.Element, error) {
	req := soap.NewElement("CreateDistributionListRequest")
	req.Space = soap.AdminNS
	req.SetAttr("name", name)
	if dynamic {
		req.SetAttr("dynamic", "1")
	} else {
		req.SetAttr("dynamic", "0")
	}
	return c.send(ctx, req)
}

// DeleteDistributionListRequest deletes a distribution list by id.
func (c *Client) DeleteDistributionListRequest(ctx context.Context, id string) (*soap.Element, error) {
	req := soap.NewElement("DeleteDistributionListRequest")
	req.Space = soap.AdminNS
	req.SetAttr("id", id)
	return c.send(ctx, req)
}

// GetAllCosRequest lists every class of service.
func (c *Client) GetAllCosRequest(ctx context.Context) (*soap.Element, error) {
	return c.Call(ctx, "GetAllCosRequest")
}
