package message

// Multipart is a branch part. It groups an ordered list of sub-parts and
// carries no content of its own. When building these the MediaType field
// should always start with "multipart/".
type Multipart struct {
	// MediaType is the effective content type of the container, such as
	// "multipart/mixed" or "multipart/alternative; boundary=xyz".
	MediaType string

	// Parts holds this layer's parts, in order.
	Parts []Part
}

// IsMultipart always returns true.
func (mm *Multipart) IsMultipart() bool {
	return true
}

// GetParts returns the sub-parts of this part, in order.
func (mm *Multipart) GetParts() []Part {
	return mm.Parts
}

// GetMediaType returns the declared content type of the container.
func (mm *Multipart) GetMediaType() string {
	return mm.MediaType
}

// GetCharset always returns an empty string. A branch carries no content,
// so a charset declaration would have nothing to describe.
func (mm *Multipart) GetCharset() string {
	return ""
}

// GetBody always returns nil. A branch has no body.
func (mm *Multipart) GetBody() []byte {
	return nil
}

// GetBodyLines always returns nil. A branch has no body.
func (mm *Multipart) GetBodyLines() [][]byte {
	return nil
}

// SetBody does nothing. A branch has no body to replace.
func (mm *Multipart) SetBody(_ []byte) {}
