package message

import "bytes"

// Opaque is a leaf part. It is simply a declared content type, a declared
// charset, and a body. This library assigns no meaning to the body bytes
// beyond what the MediaType and Charset fields declare about them.
type Opaque struct {
	// MediaType is the effective content type of the part, such as
	// "text/plain" or "text/html; charset=iso-8859-1". Parameters may be
	// present following the type itself.
	MediaType string

	// Charset is the charset declared for the body, such as "UTF-8". It
	// should be left empty when no charset has been declared. The rewrite
	// package falls back to ISO-8859-1 in that case.
	Charset string

	// Body is the raw body content of the part.
	Body []byte
}

// IsMultipart always returns false.
func (m *Opaque) IsMultipart() bool {
	return false
}

// GetParts always returns nil.
func (m *Opaque) GetParts() []Part {
	return nil
}

// GetMediaType returns the declared content type of the part.
func (m *Opaque) GetMediaType() string {
	return m.MediaType
}

// GetCharset returns the declared charset of the part or an empty string if
// none has been declared.
func (m *Opaque) GetCharset() string {
	return m.Charset
}

// GetBody returns the current raw body of the part.
func (m *Opaque) GetBody() []byte {
	return m.Body
}

// GetBodyLines returns the current raw body of the part split into lines.
// A line ends immediately after each LF, so CRLF terminators stay attached
// to their line. If the body ends without a terminator, the trailing bytes
// form the final line. An empty body has no lines.
func (m *Opaque) GetBodyLines() [][]byte {
	if len(m.Body) == 0 {
		return nil
	}

	lines := make([][]byte, 0, bytes.Count(m.Body, []byte{'\n'})+1)
	rest := m.Body
	for len(rest) > 0 {
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			lines = append(lines, rest)
			break
		}
		lines = append(lines, rest[:nl+1])
		rest = rest[nl+1:]
	}

	return lines
}

// SetBody replaces the body of the part with the given bytes.
func (m *Opaque) SetBody(body []byte) {
	m.Body = body
}
