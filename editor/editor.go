// Package editor holds the in-memory state of the lesson form: an ordered,
// heterogeneous sequence of content blocks that can be composed, edited and
// drag-reordered before being submitted as a whole.
package editor

import (
	"fmt"

	"eduapi/models/blocks"

	"github.com/google/uuid"
)

// Entry pairs a block with its transient editor key. The key exists only for
// reorder bookkeeping inside one editing session; it is regenerated on every
// load and stripped before submission, so it never reaches storage.
type Entry struct {
	Key   string
	Block blocks.Block
}

// Document is the lesson form state prior to submission.
type Document struct {
	Title   string
	Entries []Entry
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Load builds a document from a persisted block sequence, assigning a fresh
// key to every block.
func Load(title string, seq blocks.Sequence) *Document {
	d := &Document{Title: title, Entries: make([]Entry, 0, len(seq))}
	for _, b := range seq {
		d.Entries = append(d.Entries, Entry{Key: newKey(), Block: b})
	}
	return d
}

func newKey() string {
	return uuid.NewString()
}

// AddBlock appends a new block of the given variant with its field defaults.
// Unknown variants are ignored.
func (d *Document) AddBlock(t blocks.Type) {
	var b blocks.Block
	switch t {
	case blocks.TypeHeading:
		b = blocks.Heading{Level: 2}
	case blocks.TypeParagraph:
		b = blocks.Paragraph{}
	case blocks.TypeImage:
		b = blocks.Image{}
	case blocks.TypeCode:
		b = blocks.Code{Language: blocks.DefaultCodeLanguage}
	case blocks.TypeLinkList:
		b = blocks.LinkList{Links: []blocks.Link{}}
	default:
		return
	}
	d.Entries = append(d.Entries, Entry{Key: newKey(), Block: b})
}

// RemoveBlock deletes the block at index. Out-of-range indexes are ignored.
func (d *Document) RemoveBlock(index int) {
	if index < 0 || index >= len(d.Entries) {
		return
	}
	d.Entries = append(d.Entries[:index], d.Entries[index+1:]...)
}

// Reorder moves the block at source to target, shifting the blocks in
// between. All other blocks keep their relative order.
func (d *Document) Reorder(source, target int) {
	n := len(d.Entries)
	if source < 0 || source >= n || target < 0 || target >= n || source == target {
		return
	}
	moved := d.Entries[source]
	rest := append(d.Entries[:source:source], d.Entries[source+1:]...)
	d.Entries = append(rest[:target:target], append([]Entry{moved}, rest[target:]...)...)
}

// UpdateField mutates a single field of the block at index. The field names
// match the wire names of the block variant.
func (d *Document) UpdateField(index int, field string, value interface{}) error {
	if index < 0 || index >= len(d.Entries) {
		return fmt.Errorf("block index %d out of range", index)
	}

	b := d.Entries[index].Block
	switch v := b.(type) {
	case blocks.Heading:
		switch field {
		case "text":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			v.Text = s
		case "level":
			n, err := asInt(field, value)
			if err != nil {
				return err
			}
			v.Level = n
		default:
			return fmt.Errorf("heading has no field %q", field)
		}
		d.Entries[index].Block = v
	case blocks.Paragraph:
		if field != "text" {
			return fmt.Errorf("paragraph has no field %q", field)
		}
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		v.Text = s
		d.Entries[index].Block = v
	case blocks.Image:
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "src":
			v.Src = s
		case "caption":
			v.Caption = s
		default:
			return fmt.Errorf("image has no field %q", field)
		}
		d.Entries[index].Block = v
	case blocks.Code:
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		switch field {
		case "code":
			v.Code = s
		case "language":
			v.Language = s
		default:
			return fmt.Errorf("code has no field %q", field)
		}
		d.Entries[index].Block = v
	case blocks.LinkList:
		return fmt.Errorf("linkList fields are edited through the link operations")
	default:
		return fmt.Errorf("unknown block type %T", b)
	}
	return nil
}

// AddLink appends an empty link to the linkList block at blockIndex.
func (d *Document) AddLink(blockIndex int) error {
	v, err := d.linkList(blockIndex)
	if err != nil {
		return err
	}
	v.Links = append(v.Links, blocks.Link{})
	d.Entries[blockIndex].Block = v
	return nil
}

// RemoveLink deletes one link from the linkList block at blockIndex.
func (d *Document) RemoveLink(blockIndex, linkIndex int) error {
	v, err := d.linkList(blockIndex)
	if err != nil {
		return err
	}
	if linkIndex < 0 || linkIndex >= len(v.Links) {
		return fmt.Errorf("link index %d out of range", linkIndex)
	}
	v.Links = append(v.Links[:linkIndex], v.Links[linkIndex+1:]...)
	d.Entries[blockIndex].Block = v
	return nil
}

// UpdateLink sets the title or url of one link in the linkList block at
// blockIndex.
func (d *Document) UpdateLink(blockIndex, linkIndex int, field, value string) error {
	v, err := d.linkList(blockIndex)
	if err != nil {
		return err
	}
	if linkIndex < 0 || linkIndex >= len(v.Links) {
		return fmt.Errorf("link index %d out of range", linkIndex)
	}
	switch field {
	case "title":
		v.Links[linkIndex].Title = value
	case "url":
		v.Links[linkIndex].URL = value
	default:
		return fmt.Errorf("link has no field %q", field)
	}
	d.Entries[blockIndex].Block = v
	return nil
}

func (d *Document) linkList(blockIndex int) (blocks.LinkList, error) {
	if blockIndex < 0 || blockIndex >= len(d.Entries) {
		return blocks.LinkList{}, fmt.Errorf("block index %d out of range", blockIndex)
	}
	v, ok := d.Entries[blockIndex].Block.(blocks.LinkList)
	if !ok {
		return blocks.LinkList{}, fmt.Errorf("block %d is not a linkList", blockIndex)
	}
	// Copy the slice so edits do not alias the stored block.
	v.Links = append([]blocks.Link(nil), v.Links...)
	return v, nil
}

// Payload strips the transient keys and returns the block sequence in its
// submission form.
func (d *Document) Payload() blocks.Sequence {
	seq := make(blocks.Sequence, 0, len(d.Entries))
	for _, e := range d.Entries {
		seq = append(seq, e.Block)
	}
	return seq
}

func asString(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q expects a string, got %T", field, value)
	}
	return s, nil
}

func asInt(field string, value interface{}) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case float64: // JSON numbers decode as float64
		return int(n), nil
	}
	return 0, fmt.Errorf("field %q expects a number, got %T", field, value)
}
