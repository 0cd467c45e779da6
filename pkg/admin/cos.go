package admin

import "context"

// GetAllCos returns every class of service defined on the server.
func (c *Client) GetAllCos(ctx context.Context) ([]ClassOfService, error) {
	resp, err := c.GetAllCosRequest(ctx)
	if err != nil {
		return nil, err
	}
	var cos []ClassOfService
	for _, el := range List(resp, "cos") {
		cos = append(cos, cosFromElement(el))
	}
	return cos, nil
}
