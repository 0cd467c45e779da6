package soap

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementMarshal(t *testing.T) {
	t.Run("namespace, attributes and children", func(t *testing.T) {
		el := NewElement("AuthRequest")
		el.Space = AdminNS
		el.Add(
			Text("name", "admin"),
			Text("password", "secret"),
		)

		out, err := xml.Marshal(el)
		require.NoError(t, err)
		assert.Equal(t,
			`<AuthRequest xmlns="urn:zimbraAdmin"><name>admin</name><password>secret</password></AuthRequest>`,
			string(out))
	})

	t.Run("attributes are emitted sorted", func(t *testing.T) {
		el := NewElement("dl")
		el.SetAttr("name", "staff")
		el.SetAttr("id", "abc")

		out, err := xml.Marshal(el)
		require.NoError(t, err)
		assert.Equal(t, `<dl id="abc" name="staff"></dl>`, string(out))
	})

	t.Run("text and attribute combined", func(t *testing.T) {
		sel := Text("domain", "example.com")
		sel.SetAttr("by", "name")

		out, err := xml.Marshal(sel)
		require.NoError(t, err)
		assert.Equal(t, `<domain by="name">example.com</domain>`, string(out))
	})
}

func TestElementUnmarshal(t *testing.T) {
	t.Run("attributes, children and text", func(t *testing.T) {
		raw := `<GetAllDomainsResponse xmlns="urn:zimbraAdmin">
			<domain id="d1" name="example.com">
				<a n="zimbraDomainStatus">active</a>
			</domain>
			<domain id="d2" name="example.org"/>
		</GetAllDomainsResponse>`

		el := &Element{}
		require.NoError(t, xml.Unmarshal([]byte(raw), el))

		assert.Equal(t, "GetAllDomainsResponse", el.Name)
		assert.Equal(t, "urn:zimbraAdmin", el.Space)

		domains := el.ChildrenNamed("domain")
		require.Len(t, domains, 2)
		assert.Equal(t, "d1", domains[0].Attr("id"))
		assert.Equal(t, "example.com", domains[0].Attr("name"))
		assert.Equal(t, "active", domains[0].ChildText("a"))
		assert.Equal(t, "", domains[1].Attr("missing"))
	})

	t.Run("namespace declarations are not attributes", func(t *testing.T) {
		raw := `<context xmlns="urn:zimbra"><authToken>tok</authToken></context>`

		el := &Element{}
		require.NoError(t, xml.Unmarshal([]byte(raw), el))
		assert.Empty(t, el.Attrs)
		assert.Equal(t, "tok", el.ChildText("authToken"))
	})

	t.Run("whitespace around text is trimmed", func(t *testing.T) {
		raw := "<lifetime>\n\t3600\n</lifetime>"

		el := &Element{}
		require.NoError(t, xml.Unmarshal([]byte(raw), el))
		assert.Equal(t, "3600", el.Text)
	})
}

func TestElementAccessors(t *testing.T) {
	el := NewElement("resp")
	el.Add(Text("a", "1"), Text("b", "2"), Text("a", "3"))

	assert.Equal(t, "1", el.Child("a").Text)
	assert.Nil(t, el.Child("missing"))
	assert.Len(t, el.ChildrenNamed("a"), 2)
	assert.Empty(t, el.ChildrenNamed("missing"))
	assert.Equal(t, "", el.ChildText("missing"))
}
