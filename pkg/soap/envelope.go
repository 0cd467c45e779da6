package soap

import (
	"encoding/xml"
	"fmt"
)

// Namespaces used by the admin service.
const (
	EnvelopeNS = "http://www.w3.org/2003/05/soap-envelope"
	AdminNS    = "urn:zimbraAdmin"
	ContextNS  = "urn:zimbra"
)

const envelopeTmpl = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="%s">
  <soap:Header>%s</soap:Header>
  <soap:Body>%s</soap:Body>
</soap:Envelope>`

// BuildEnvelope frames a header fragment and a body element into a SOAP 1.2
// envelope. The header may be nil for unauthenticated exchanges.
func BuildEnvelope(header, body *Element) ([]byte, error) {
	if body == nil {
		return nil, fmt.Errorf("soap: envelope requires a body element")
	}
	hdr := ""
	if header != nil {
		out, err := xml.Marshal(header)
		if err != nil {
			return nil, fmt.Errorf("soap: marshaling header: %w", err)
		}
		hdr = string(out)
	}
	b, err := xml.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("soap: marshaling body: %w", err)
	}
	return []byte(fmt.Sprintf(envelopeTmpl, EnvelopeNS, hdr, string(b))), nil
}

type envelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Elements []*Element `xml:",any"`
	} `xml:"Body"`
}

// ParseEnvelope decodes a response envelope and returns the single element
// carried in its body. A <Fault> body is returned as a *Fault error.
func ParseEnvelope(data []byte) (*Element, error) {
	var env envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("soap: decoding envelope: %w", err)
	}
	els := env.Body.Elements
	if len(els) == 0 {
		return nil, fmt.Errorf("soap: envelope body is empty")
	}
	if len(els) > 1 {
		return nil, fmt.Errorf("soap: envelope body has %d elements, want 1", len(els))
	}
	if els[0].Name == "Fault" {
		return nil, faultFromElement(els[0])
	}
	return els[0], nil
}
