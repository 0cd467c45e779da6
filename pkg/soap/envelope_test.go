package soap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnvelope(t *testing.T) {
	t.Run("body only", func(t *testing.T) {
		body := NewElement("GetAllDomainsRequest")
		body.Space = AdminNS

		out, err := BuildEnvelope(nil, body)
		require.NoError(t, err)
		assert.Contains(t, string(out), `<?xml version="1.0" encoding="utf-8"?>`)
		assert.Contains(t, string(out), `xmlns:soap="`+EnvelopeNS+`"`)
		assert.Contains(t, string(out), `<soap:Header></soap:Header>`)
		assert.Contains(t, string(out),
			`<soap:Body><GetAllDomainsRequest xmlns="urn:zimbraAdmin"></GetAllDomainsRequest></soap:Body>`)
	})

	t.Run("header fragment included", func(t *testing.T) {
		header := NewElement("context")
		header.Space = ContextNS
		header.Add(Text("authToken", "tok-1"))
		body := NewElement("GetMailboxStatsRequest")
		body.Space = AdminNS

		out, err := BuildEnvelope(header, body)
		require.NoError(t, err)
		assert.Contains(t, string(out),
			`<soap:Header><context xmlns="urn:zimbra"><authToken>tok-1</authToken></context></soap:Header>`)
	})

	t.Run("nil body rejected", func(t *testing.T) {
		_, err := BuildEnvelope(nil, nil)
		assert.Error(t, err)
	})
}

func envelopeWith(inner string) []byte {
	return []byte(fmt.Sprintf(`<soap:Envelope xmlns:soap="%s"><soap:Body>%s</soap:Body></soap:Envelope>`,
		EnvelopeNS, inner))
}

func TestParseEnvelope(t *testing.T) {
	t.Run("single response element", func(t *testing.T) {
		el, err := ParseEnvelope(envelopeWith(
			`<GetAllDomainsResponse xmlns="urn:zimbraAdmin"><domain id="d1" name="x"/></GetAllDomainsResponse>`))
		require.NoError(t, err)
		assert.Equal(t, "GetAllDomainsResponse", el.Name)
		assert.Len(t, el.ChildrenNamed("domain"), 1)
	})

	t.Run("empty body is an error", func(t *testing.T) {
		_, err := ParseEnvelope(envelopeWith(``))
		assert.Error(t, err)
	})

	t.Run("multiple body elements are an error", func(t *testing.T) {
		_, err := ParseEnvelope(envelopeWith(`<A/><B/>`))
		assert.Error(t, err)
	})

	t.Run("malformed XML is an error", func(t *testing.T) {
		_, err := ParseEnvelope([]byte(`not xml`))
		assert.Error(t, err)
	})

	t.Run("fault becomes a typed error", func(t *testing.T) {
		_, err := ParseEnvelope(envelopeWith(`<soap:Fault>
			<soap:Code><soap:Value>soap:Sender</soap:Value></soap:Code>
			<soap:Reason><soap:Text>authentication failed for admin</soap:Text></soap:Reason>
			<soap:Detail><Error xmlns="urn:zimbra"><Code>account.AUTH_FAILED</Code></Error></soap:Detail>
		</soap:Fault>`))
		require.Error(t, err)

		var fault *Fault
		require.True(t, errors.As(err, &fault))
		assert.Equal(t, "account.AUTH_FAILED", fault.Code)
		assert.Equal(t, "authentication failed for admin", fault.Reason)
		assert.Contains(t, fault.Error(), "account.AUTH_FAILED")
	})

	t.Run("fault without detail falls back to SOAP code", func(t *testing.T) {
		_, err := ParseEnvelope(envelopeWith(`<soap:Fault>
			<soap:Code><soap:Value>soap:Receiver</soap:Value></soap:Code>
			<soap:Reason><soap:Text>internal error</soap:Text></soap:Reason>
		</soap:Fault>`))
		require.Error(t, err)

		var fault *Fault
		require.True(t, errors.As(err, &fault))
		assert.Equal(t, "soap:Receiver", fault.Code)
		assert.Equal(t, "internal error", fault.Reason)
	})
}
