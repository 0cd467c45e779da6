// Package admin provides a client for the Zimbra administrative SOAP
// service.
//
// # Overview
//
// The client has two usage modes:
//   - Raw request methods mirror the server's message names (AuthRequest,
//     GetAllDomainsRequest, ...) and return the raw response element.
//   - High-level methods (GetAllDomains, GetDistributionList, ...) translate
//     responses into typed records.
//
// A Session tracks the authentication token and its expiry. Login stores
// the token; every subsequent call attaches it as a <context> header. The
// token is never refreshed automatically: once it expires, calls fail with
// ErrNotAuthenticated until Login is run again.
//
// # Usage
//
//	c := admin.NewClient("mail.example.com", admin.WithTLSVerify(false))
//	if err := c.Login(ctx, "admin", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//
//	domains, err := c.GetAllDomains(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Four error kinds surface from this package, none recovered automatically:
//   - ErrNotAuthenticated: a call was attempted before login or after expiry
//   - ErrUnresolvedEntity: a selector matched no remote entity
//   - ErrUnexpectedResponse: the response shape was not the expected one
//   - *soap.Fault and transport errors, propagated unchanged
package admin
