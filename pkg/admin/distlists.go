package admin

import (
	"context"
	"fmt"
)

// GetDistributionList returns the distribution list addressed by the
// selector.
func (c *Client) GetDistributionList(ctx context.Context, sel Selector) (DistributionList, error) {
	resp, err := c.GetDistributionListRequest(ctx, sel)
	if err != nil {
		return DistributionList{}, err
	}
	el, err := Single(resp, "dl")
	if err != nil {
		return DistributionList{}, err
	}
	return distributionListFromElement(el), nil
}

// CreateDistributionList creates a distribution list and returns the record
// the server answered with.
func (c *Client) CreateDistributionList(ctx context.Context, name string, dynamic bool) (DistributionList, error) {
	resp, err := c.CreateDistributionListRequest(ctx, name, dynamic)
	if err != nil {
		return DistributionList{}, err
	}
	el, err := Single(resp, "dl")
	if err != nil {
		return DistributionList{}, err
	}
	return distributionListFromElement(el), nil
}

// DeleteDistributionList deletes the list addressed by the selector. When
// the selector is not by-id, exactly one lookup call resolves the id first;
// an unresolvable selector fails client-side before any delete is issued.
func (c *Client) DeleteDistributionList(ctx context.Context, sel Selector) error {
	id := sel.Value
	if sel.By != ByID {
		dl, err := c.GetDistributionList(ctx, sel)
		if err != nil {
			return fmt.Errorf("%w: distribution list %q: %v", ErrUnresolvedEntity, sel.Value, err)
		}
		if dl.ID == "" {
			return fmt.Errorf("%w: distribution list %q has no id", ErrUnresolvedEntity, sel.Value)
		}
		id = dl.ID
	}
	_, err := c.DeleteDistributionListRequest(ctx, id)
	return err
}
