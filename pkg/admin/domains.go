package admin

import (
	"context"
	"fmt"
	"strconv"
)

// GetAllDomains returns every domain on the server.
func (c *Client) GetAllDomains(ctx context.Context) ([]Domain, error) {
	resp, err := c.GetAllDomainsRequest(ctx)
	if err != nil {
		return nil, err
	}
	var domains []Domain
	for _, el := range List(resp, "domain") {
		domains = append(domains, domainFromElement(el))
	}
	return domains, nil
}

// GetDomain returns the domain addressed by the selector.
func (c *Client) GetDomain(ctx context.Context, sel Selector) (Domain, error) {
	resp, err := c.GetDomainRequest(ctx, sel)
	if err != nil {
		return Domain{}, err
	}
	el, err := Single(resp, "domain")
	if err != nil {
		return Domain{}, err
	}
	return domainFromElement(el), nil
}

// CreateDomain creates a domain with optional named attributes and returns
// the record the server answered with.
func (c *Client) CreateDomain(ctx context.Context, name string, attrs map[string]string) (Domain, error) {
	resp, err := c.CreateDomainRequest(ctx, name, attrs)
	if err != nil {
		return Domain{}, err
	}
	el, err := Single(resp, "domain")
	if err != nil {
		return Domain{}, err
	}
	return domainFromElement(el), nil
}

// DeleteDomain deletes the domain addressed by the selector. A by-name
// selector costs one extra lookup call to resolve the id first.
func (c *Client) DeleteDomain(ctx context.Context, sel Selector) error {
	id, err := c.resolveDomainID(ctx, sel)
	if err != nil {
		return err
	}
	_, err = c.DeleteDomainRequest(ctx, id)
	return err
}

func (c *Client) resolveDomainID(ctx context.Context, sel Selector) (string, error) {
	if sel.By == ByID {
		return sel.Value, nil
	}
	d, err := c.GetDomain(ctx, sel)
	if err != nil {
		return "", fmt.Errorf("%w: domain %q: %v", ErrUnresolvedEntity, sel.Value, err)
	}
	if d.ID == "" {
		return "", fmt.Errorf("%w: domain %q has no id", ErrUnresolvedEntity, sel.Value)
	}
	return d.ID, nil
}

// CountAccount counts the accounts in a domain, grouped by class of
// service.
func (c *Client) CountAccount(ctx context.Context, domain Selector) ([]CosCount, error) {
	resp, err := c.CountAccountRequest(ctx, domain)
	if err != nil {
		return nil, err
	}
	var counts []CosCount
	for _, el := range List(resp, "cos") {
		n, _ := strconv.ParseInt(el.Text, 10, 64)
		counts = append(counts, CosCount{
			Cos:   cosFromElement(el),
			Count: n,
		})
	}
	return counts, nil
}
