package admin

import (
	"fmt"

	"github.com/zimadm/zimadm/pkg/soap"
)

// Single extracts the one child with the given name from a response
// element. Zero or multiple matches mean the server answered with a shape
// the binding does not expect, which is an error.
func Single(resp *soap.Element, name string) (*soap.Element, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: no response element", ErrUnexpectedResponse)
	}
	els := resp.ChildrenNamed(name)
	if len(els) != 1 {
		return nil, fmt.Errorf("%w: want one <%s> in <%s>, got %d",
			ErrUnexpectedResponse, name, resp.Name, len(els))
	}
	return els[0], nil
}

// List extracts all children with the given name. An empty result is not an
// error; it just means the server has nothing to report.
func List(resp *soap.Element, name string) []*soap.Element {
	if resp == nil {
		return nil
	}
	return resp.ChildrenNamed(name)
}
