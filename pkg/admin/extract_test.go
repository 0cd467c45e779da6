package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimadm/zimadm/pkg/soap"
)

func TestSingle(t *testing.T) {
	t.Run("exactly one element succeeds", func(t *testing.T) {
		resp := soap.NewElement("GetMailboxResponse")
		resp.Add(soap.NewElement("mbox"))

		el, err := Single(resp, "mbox")
		require.NoError(t, err)
		assert.Equal(t, "mbox", el.Name)
	})

	t.Run("zero elements fail", func(t *testing.T) {
		resp := soap.NewElement("GetMailboxResponse")

		_, err := Single(resp, "mbox")
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})

	t.Run("two elements fail", func(t *testing.T) {
		resp := soap.NewElement("GetMailboxResponse")
		resp.Add(soap.NewElement("mbox"), soap.NewElement("mbox"))

		_, err := Single(resp, "mbox")
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})

	t.Run("nil response fails", func(t *testing.T) {
		_, err := Single(nil, "mbox")
		assert.ErrorIs(t, err, ErrUnexpectedResponse)
	})
}

func TestList(t *testing.T) {
	t.Run("empty response yields empty list, not an error", func(t *testing.T) {
		resp := soap.NewElement("GetAllDomainsResponse")
		assert.Empty(t, List(resp, "domain"))
	})

	t.Run("yields however many are present", func(t *testing.T) {
		resp := soap.NewElement("GetAllDomainsResponse")
		resp.Add(
			soap.NewElement("domain"),
			soap.NewElement("other"),
			soap.NewElement("domain"),
		)
		assert.Len(t, List(resp, "domain"), 2)
	})
}
