package message

// Part is the interface for the parts of a message tree. Each Part is either
// a branch or a leaf.
//
// A branch Part is one that has sub-parts. In this case, the IsMultipart()
// method will return true. The GetParts() method is available, but the body
// methods must not be called.
//
// A leaf Part is one that contains content. In this case, the IsMultipart()
// method will return false. The GetParts() method must not be called on a
// leaf Part. The body methods will read and replace the content of the part.
//
// It should be noted that it is possible for a leaf Part to contain content
// that is itself a serialized multipart MIME message. If the sub-parts have
// not been broken out separately by whatever built the tree, the part is
// still a leaf as far as this library is concerned. This is perfectly legal.
type Part interface {
	// IsMultipart will return true if this Part is a branch with nested
	// parts. You may call the GetParts() method to process the parts only if
	// this returns true. If it returns false, this Part is a leaf and it has
	// no sub-parts. You may call the body methods only when this method
	// returns false.
	IsMultipart() bool

	// GetParts provides the sub-parts of a branch Part, in order. This must
	// return nil when IsMultipart() returns false.
	GetParts() []Part

	// GetMediaType returns the effective content type of the part. This is a
	// MIME media type such as "text/plain" and may be followed by parameters
	// such as "; charset=utf-8". It never includes the header field name.
	GetMediaType() string

	// GetCharset returns the charset declared for the content of the part,
	// or the empty string when no charset has been declared. Branch parts
	// always return the empty string.
	GetCharset() string

	// GetBody returns the current raw body content of a leaf Part. This must
	// return nil when IsMultipart() returns true.
	GetBody() []byte

	// GetBodyLines returns the current raw body content of a leaf Part
	// split into lines. Each line includes its own line terminator, if it
	// has one. A final line without a terminator is returned as-is. This
	// must return nil when IsMultipart() returns true.
	GetBodyLines() [][]byte

	// SetBody replaces the entire raw body content of a leaf Part with the
	// given bytes. Implementations must replace the whole body in a single
	// operation. The body methods are a leaf-only concern, so this must do
	// nothing when IsMultipart() returns true.
	SetBody(body []byte)
}
