// Package soap implements the XML envelope framing and HTTPS transport
// used by the Zimbra administrative web service.
//
// # Overview
//
// The admin service speaks SOAP 1.2 over HTTPS. Every exchange is a single
// synchronous POST of an envelope whose body carries exactly one request
// element in the urn:zimbraAdmin namespace, answered by an envelope whose
// body carries either the matching response element or a <Fault>.
//
// The package exposes three pieces:
//   - Element: a generic XML element tree used for both request bodies and
//     parsed responses
//   - envelope framing: BuildEnvelope / ParseEnvelope
//   - Transport: the HTTP round-trip with TLS and timeout configuration
//
// # Faults
//
// The service reports remote errors as SOAP faults, usually together with an
// HTTP 500 status. ParseEnvelope decodes those into *Fault, which carries
// the service error code (e.g. "account.AUTH_FAILED") alongside the reason
// text, so callers can match on it with errors.As.
package soap
