package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRoundTrip(t *testing.T) {
	seq := Sequence{
		Heading{Text: "Hi", Level: 2},
		Paragraph{Text: "Some text."},
		Image{Src: "/uploads/pic.png", Caption: "a picture"},
		Code{Code: "console.log(1)", Language: "javascript"},
		LinkList{Links: []Link{{Title: "MDN", URL: "https://developer.mozilla.org"}}},
	}

	data, err := json.Marshal(seq)
	require.NoError(t, err)

	var got Sequence
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, seq, got)
}

func TestSequenceOrderPreserved(t *testing.T) {
	seq := Sequence{
		Paragraph{Text: "first"},
		Paragraph{Text: "second"},
		Paragraph{Text: "third"},
	}

	data, err := json.Marshal(seq)
	require.NoError(t, err)

	var got Sequence
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 3)
	assert.Equal(t, Paragraph{Text: "first"}, got[0])
	assert.Equal(t, Paragraph{Text: "second"}, got[1])
	assert.Equal(t, Paragraph{Text: "third"}, got[2])
}

func TestSequenceTypeTag(t *testing.T) {
	data, err := json.Marshal(Sequence{Heading{Text: "Hi", Level: 2}})
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "heading", raw[0]["type"])
}

func TestUnmarshalUnknownType(t *testing.T) {
	var got Sequence
	err := json.Unmarshal([]byte(`[{"type":"video","url":"x"}]`), &got)
	assert.Error(t, err)
}

func TestUnmarshalMissingType(t *testing.T) {
	var got Sequence
	err := json.Unmarshal([]byte(`[{"text":"no tag"}]`), &got)
	assert.Error(t, err)
}

func TestCodeLanguageDefault(t *testing.T) {
	var got Sequence
	require.NoError(t, json.Unmarshal([]byte(`[{"type":"code","code":"x = 1"}]`), &got))
	require.Len(t, got, 1)
	assert.Equal(t, Code{Code: "x = 1", Language: "javascript"}, got[0])
}

func TestLinkListNeverNil(t *testing.T) {
	var got Sequence
	require.NoError(t, json.Unmarshal([]byte(`[{"type":"linkList"}]`), &got))
	require.Len(t, got, 1)
	assert.Equal(t, LinkList{Links: []Link{}}, got[0])

	data, err := json.Marshal(Sequence{LinkList{}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"linkList","links":[]}]`, string(data))
}

func TestValidate(t *testing.T) {
	valid := Sequence{
		Heading{Text: "Hi", Level: 3},
		Paragraph{Text: "p"},
		Image{Src: "/x.png"},
		Code{Code: "1", Language: "python"},
		LinkList{Links: []Link{{Title: "t", URL: "u"}}},
	}
	assert.NoError(t, valid.Validate())

	invalid := []Block{
		Heading{Level: 2},                      // no text
		Heading{Text: "x", Level: 1},           // level out of range
		Heading{Text: "x", Level: 5},           // level out of range
		Paragraph{},                            // no text
		Image{Caption: "only caption"},         // no src
		Code{Language: "go"},                   // no code
		Code{Code: "x"},                        // no language
		LinkList{Links: []Link{{Title: "t"}}},  // link without url
		LinkList{Links: []Link{{URL: "u"}}},    // link without title
	}
	for i, b := range invalid {
		assert.Error(t, b.Validate(), "case %d", i)
	}
}

func TestKnown(t *testing.T) {
	for _, typ := range []Type{TypeHeading, TypeParagraph, TypeImage, TypeCode, TypeLinkList} {
		assert.True(t, Known(typ))
	}
	assert.False(t, Known(Type("video")))
	assert.False(t, Known(Type("")))
}

func TestRenderHTML(t *testing.T) {
	seq := Sequence{
		Heading{Text: "Title", Level: 3},
		Paragraph{Text: "Hello <world>"},
		Image{Src: "/uploads/x.png", Caption: "cap"},
		Code{Code: "if a < b {}", Language: "go"},
		LinkList{Links: []Link{{Title: "MDN", URL: "https://mdn.dev"}}},
	}

	html := RenderHTML(seq)
	assert.Contains(t, html, "<h3>Title</h3>")
	assert.Contains(t, html, "<p>Hello &lt;world&gt;</p>")
	assert.Contains(t, html, `<img src="/uploads/x.png" alt="cap">`)
	assert.Contains(t, html, "<figcaption>cap</figcaption>")
	assert.Contains(t, html, `<code class="language-go">if a &lt; b {}</code>`)
	assert.Contains(t, html, `<a href="https://mdn.dev">MDN</a>`)
}

func TestRenderHTMLClampsHeadingLevel(t *testing.T) {
	html := RenderHTML(Sequence{Heading{Text: "x", Level: 9}})
	assert.Contains(t, html, "<h2>x</h2>")
}
