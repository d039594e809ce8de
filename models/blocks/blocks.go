package blocks

import (
	"encoding/json"
	"fmt"
)

// Type tags a content block variant.
type Type string

const (
	TypeHeading   Type = "heading"
	TypeParagraph Type = "paragraph"
	TypeImage     Type = "image"
	TypeCode      Type = "code"
	TypeLinkList  Type = "linkList"
)

// DefaultCodeLanguage is applied when a code block arrives without a language.
const DefaultCodeLanguage = "javascript"

// Known reports whether t is one of the five block variants.
func Known(t Type) bool {
	switch t {
	case TypeHeading, TypeParagraph, TypeImage, TypeCode, TypeLinkList:
		return true
	}
	return false
}

// Block is one typed unit of lesson body content.
type Block interface {
	BlockType() Type
	Validate() error
}

// Link is a single entry of a linkList block.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Heading is a section heading, levels 2-4.
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Paragraph is a plain text paragraph.
type Paragraph struct {
	Text string `json:"text"`
}

// Image embeds an image by URL with an optional caption.
type Image struct {
	Src     string `json:"src"`
	Caption string `json:"caption,omitempty"`
}

// Code is a syntax-highlighted code snippet.
type Code struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// LinkList is an ordered list of resource links.
type LinkList struct {
	Links []Link `json:"links"`
}

func (Heading) BlockType() Type   { return TypeHeading }
func (Paragraph) BlockType() Type { return TypeParagraph }
func (Image) BlockType() Type     { return TypeImage }
func (Code) BlockType() Type      { return TypeCode }
func (LinkList) BlockType() Type  { return TypeLinkList }

func (h Heading) Validate() error {
	if h.Text == "" {
		return fmt.Errorf("heading text is required")
	}
	if h.Level < 2 || h.Level > 4 {
		return fmt.Errorf("heading level must be 2, 3 or 4")
	}
	return nil
}

func (p Paragraph) Validate() error {
	if p.Text == "" {
		return fmt.Errorf("paragraph text is required")
	}
	return nil
}

func (i Image) Validate() error {
	if i.Src == "" {
		return fmt.Errorf("image src is required")
	}
	return nil
}

func (c Code) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("code snippet is required")
	}
	if c.Language == "" {
		return fmt.Errorf("code language is required")
	}
	return nil
}

func (l LinkList) Validate() error {
	for i, link := range l.Links {
		if link.Title == "" {
			return fmt.Errorf("link %d: title is required", i)
		}
		if link.URL == "" {
			return fmt.Errorf("link %d: url is required", i)
		}
	}
	return nil
}

// Sequence is the ordered body of a lesson. Array index is display order.
type Sequence []Block

// Validate checks every block against its variant rules.
func (s Sequence) Validate() error {
	for i, b := range s {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("block %d (%s): %w", i, b.BlockType(), err)
		}
	}
	return nil
}

// MarshalJSON encodes each block with its type tag injected.
func (s Sequence) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(s))
	for _, b := range s {
		raw, err := marshalBlock(b)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a tagged block array back into concrete variants.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	seq := make(Sequence, 0, len(raws))
	for i, raw := range raws {
		b, err := unmarshalBlock(raw)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		seq = append(seq, b)
	}
	*s = seq
	return nil
}

func marshalBlock(b Block) (json.RawMessage, error) {
	switch v := b.(type) {
	case Heading:
		return json.Marshal(struct {
			Type Type `json:"type"`
			Heading
		}{TypeHeading, v})
	case Paragraph:
		return json.Marshal(struct {
			Type Type `json:"type"`
			Paragraph
		}{TypeParagraph, v})
	case Image:
		return json.Marshal(struct {
			Type Type `json:"type"`
			Image
		}{TypeImage, v})
	case Code:
		return json.Marshal(struct {
			Type Type `json:"type"`
			Code
		}{TypeCode, v})
	case LinkList:
		if v.Links == nil {
			v.Links = []Link{}
		}
		return json.Marshal(struct {
			Type Type `json:"type"`
			LinkList
		}{TypeLinkList, v})
	default:
		return nil, fmt.Errorf("unknown block type %T", b)
	}
}

func unmarshalBlock(raw json.RawMessage) (Block, error) {
	var tag struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case TypeHeading:
		var v Heading
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TypeParagraph:
		var v Paragraph
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TypeImage:
		var v Image
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TypeCode:
		v := Code{Language: DefaultCodeLanguage}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TypeLinkList:
		v := LinkList{Links: []Link{}}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		if v.Links == nil {
			v.Links = []Link{}
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", tag.Type)
	}
}
