package customid

import "errors"

// ElementKind identifies one building block of a custom ID format.
type ElementKind string

const (
	KindText     ElementKind = "text"
	KindSequence ElementKind = "sequence"
	KindRandom20 ElementKind = "random20"
	KindRandom32 ElementKind = "random32"
	KindRandom6  ElementKind = "random6"
	KindRandom9  ElementKind = "random9"
	KindGUID     ElementKind = "guid"
	KindDatetime ElementKind = "datetime"
)

// Element is one entry of an inventory's ordered custom ID format.
// Value is the literal for text elements; Format is the zero-padding mask for
// sequence elements (a string of digits whose length sets the width).
type Element struct {
	Kind   ElementKind `json:"type"`
	Value  string      `json:"value,omitempty"`
	Format string      `json:"format,omitempty"`
}

// MaxElements is the maximum number of elements in a format.
const MaxElements = 10

// DefaultSequenceMask is used when a sequence element carries no mask.
const DefaultSequenceMask = "000000"

// ErrInvalidFormat is returned when a format fails validation. Nothing is
// generated or written for an invalid format.
var ErrInvalidFormat = errors.New("invalid custom ID format")

// DefaultFormat is the format assigned to newly created inventories.
func DefaultFormat() []Element {
	return []Element{
		{Kind: KindText, Value: "ITEM"},
		{Kind: KindSequence, Format: DefaultSequenceMask},
	}
}

// Validate checks a format specification: 1 to MaxElements entries, and every
// text element must carry a non-empty value.
func Validate(elements []Element) error {
	if len(elements) == 0 || len(elements) > MaxElements {
		return ErrInvalidFormat
	}
	for _, el := range elements {
		if el.Kind == KindText && el.Value == "" {
			return ErrInvalidFormat
		}
	}
	return nil
}
