package soap

import "fmt"

// Fault is a decoded SOAP fault. Code is the service error code from the
// fault detail (e.g. "account.AUTH_FAILED") when present, otherwise the
// SOAP code value; Reason is the human-readable reason text.
type Fault struct {
	Code   string
	Reason string
}

func (f *Fault) Error() string {
	if f.Code != "" {
		return fmt.Sprintf("soap fault %s: %s", f.Code, f.Reason)
	}
	return fmt.Sprintf("soap fault: %s", f.Reason)
}

// faultFromElement maps a <Fault> element to a Fault. The service nests its
// own error code under Detail/Error/Code; the SOAP-level code is only used
// as a fallback.
func faultFromElement(el *Element) *Fault {
	f := &Fault{}
	if detail := el.Child("Detail"); detail != nil {
		if e := detail.Child("Error"); e != nil {
			f.Code = e.ChildText("Code")
		}
	}
	if f.Code == "" {
		if code := el.Child("Code"); code != nil {
			f.Code = code.ChildText("Value")
		}
	}
	if reason := el.Child("Reason"); reason != nil {
		f.Reason = reason.ChildText("Text")
	}
	return f
}
