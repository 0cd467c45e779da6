package admin

import (
	"strconv"

	"github.com/zimadm/zimadm/pkg/soap"
)

// By says how a Selector addresses an entity.
type By string

// Selector address modes.
const (
	ByID   By = "id"
	ByName By = "name"
)

// Selector is a minimal identifying reference (id or name) used to address
// a remote entity without transferring its full record.
type Selector struct {
	By    By
	Value string
}

// SelectID returns a by-id selector.
func SelectID(id string) Selector {
	return Selector{By: ByID, Value: id}
}

// SelectName returns a by-name selector.
func SelectName(name string) Selector {
	return Selector{By: ByName, Value: name}
}

// element renders the selector as <name by="...">value</name>.
func (s Selector) element(name string) *soap.Element {
	el := soap.Text(name, s.Value)
	el.SetAttr("by", string(s.By))
	return el
}

// Domain is a mail domain record. Named attributes the binding does not
// type explicitly are kept in Attrs.
type Domain struct {
	ID    string
	Name  string
	Attrs map[string]string
}

func domainFromElement(el *soap.Element) Domain {
	return Domain{
		ID:    el.Attr("id"),
		Name:  el.Attr("name"),
		Attrs: namedAttrs(el),
	}
}

// Mailbox is a message store record. Size is the store size in bytes.
type Mailbox struct {
	ID           string
	AccountID    string
	Size         int64
	ContactCount int64
	NewMessages  int64
}

func mailboxFromElement(el *soap.Element) Mailbox {
	id := el.Attr("mbxid")
	if id == "" {
		id = el.Attr("id")
	}
	return Mailbox{
		ID:           id,
		AccountID:    el.Attr("accountId"),
		Size:         attrInt(el, "s"),
		ContactCount: attrInt(el, "contactCount"),
		NewMessages:  attrInt(el, "newMessages"),
	}
}

// MailboxStats are server-wide message store statistics.
type MailboxStats struct {
	NumMboxes int64
	TotalSize int64
}

func mailboxStatsFromElement(el *soap.Element) MailboxStats {
	return MailboxStats{
		NumMboxes: attrInt(el, "numMboxes"),
		TotalSize: attrInt(el, "totalSize"),
	}
}

// DistributionList is a mailing list record.
type DistributionList struct {
	ID      string
	Name    string
	Dynamic bool
	Members []string
	Attrs   map[string]string
}

func distributionListFromElement(el *soap.Element) DistributionList {
	dl := DistributionList{
		ID:      el.Attr("id"),
		Name:    el.Attr("name"),
		Dynamic: el.Attr("dynamic") == "1" || el.Attr("dynamic") == "true",
		Attrs:   namedAttrs(el),
	}
	for _, m := range el.ChildrenNamed("dlm") {
		dl.Members = append(dl.Members, m.Text)
	}
	return dl
}

// ClassOfService is a service class record.
type ClassOfService struct {
	ID   string
	Name string
}

func cosFromElement(el *soap.Element) ClassOfService {
	return ClassOfService{
		ID:   el.Attr("id"),
		Name: el.Attr("name"),
	}
}

// CosCount pairs a class of service with its account count.
type CosCount struct {
	Cos   ClassOfService
	Count int64
}

// namedAttrs collects the <a n="key">value</a> children the service uses
// for free-form entity attributes.
func namedAttrs(el *soap.Element) map[string]string {
	attrs := make(map[string]string)
	for _, a := range el.ChildrenNamed("a") {
		if n := a.Attr("n"); n != "" {
			attrs[n] = a.Text
		}
	}
	return attrs
}

// attrInt parses a numeric attribute, treating absent or malformed values
// as zero.
func attrInt(el *soap.Element, name string) int64 {
	n, _ := strconv.ParseInt(el.Attr(name), 10, 64)
	return n
}
