package tagfile

// ItemKind discriminates the typed MP4 item variants.
type ItemKind int

const (
	ItemBool ItemKind = iota
	ItemInt
	ItemUInt
	ItemByte
	ItemLongLong
	ItemIntPair
	ItemStringList
	ItemCoverArtList
	ItemByteVectorList
)

// Item is one MP4 atom item, as a tagged union over ItemKind. Only the
// fields relevant to the Kind are meaningful.
type Item struct {
	Kind ItemKind

	// Bool (ItemBool).
	Bool bool

	// Int carries ItemInt, ItemUInt, ItemByte and ItemLongLong values.
	Int int64

	// Pair is (number, total) for ItemIntPair, e.g. track 3 of 12.
	Pair [2]int

	// Strings (ItemStringList).
	Strings []string

	// Data holds the binary payloads (ItemCoverArtList,
	// ItemByteVectorList). The raw item codec never surfaces these bytes;
	// pictures go through the picture operations instead.
	Data [][]byte
}

// MP4Tag is the item map of one MP4 tag, keyed by atom name ("\xa9ART",
// "trkn", ...).
type MP4Tag struct {
	Items map[string]Item
}
