package tagfile

// AttributeKind discriminates the typed ASF extended-attribute variants.
type AttributeKind int

const (
	AttributeUnicode AttributeKind = iota
	AttributeBool
	AttributeWord
	AttributeDWord
	AttributeQWord
	AttributeBytes
	AttributeGuid
)

// Attribute is one ASF extended attribute, as a tagged union over
// AttributeKind. Only the fields relevant to the Kind are meaningful.
type Attribute struct {
	// Name is the attribute name, e.g. "WM/AlbumTitle".
	Name string

	Kind AttributeKind

	// String (AttributeUnicode).
	String string

	// Bool (AttributeBool).
	Bool bool

	// Uint carries AttributeWord, AttributeDWord and AttributeQWord
	// values.
	Uint uint64

	// Data (AttributeBytes, AttributeGuid).
	Data []byte
}

// ASFTag holds the five basic fields ASF stores separately from the
// attribute list, plus the ordered extended attributes. Repeated names in
// Attributes are the list mechanism.
type ASFTag struct {
	Title     string
	Artist    string
	Copyright string
	Comment   string
	Rating    string

	Attributes []Attribute
}
