// Package charset converts between raw part bytes and decoded text. Charset
// names are resolved against the IANA index using MIME names, which covers
// pretty much any character set a message might declare in the wild wild
// world of email. This will make the size of your compiled binaries
// considerably larger, but a rewriter that chokes on declared charsets is
// not much of a rewriter.
//
// Real-world text parts are frequently unlabeled or mislabeled, so
// resolution never fails: a missing or unrecognized charset resolves to
// ISO-8859-1, a single-byte encoding that can decode any byte sequence.
// Decoding and encoding with a resolved charset can still fail, and those
// failures are reported rather than papered over.
package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Fallback is the name of the charset assumed when a part declares no
// usable charset. ISO-8859-1 maps every byte to a rune, so decoding with
// the fallback cannot fail.
const Fallback = "ISO-8859-1"

// ErrInvalidUTF8 is the cause reported in a DecodeError when a part
// declares UTF-8 but its body is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("body is not valid UTF-8")

// DecodeError is returned when raw bytes are not valid text under the
// charset they were declared with.
type DecodeError struct {
	Charset string
	Cause   error
}

// Error returns the error message describing the failed decode.
func (d *DecodeError) Error() string {
	return fmt.Sprintf("decoding text from charset %q: %v", d.Charset, d.Cause)
}

// Unwrap returns the error that caused the failed decode.
func (d *DecodeError) Unwrap() error {
	return d.Cause
}

// EncodeError is returned when text cannot be represented in the charset it
// is being encoded to.
type EncodeError struct {
	Charset string
	Cause   error
}

// Error returns the error message describing the failed encode.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding text to charset %q: %v", e.Charset, e.Cause)
}

// Unwrap returns the error that caused the failed encode.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Codec decodes and encodes text for one resolved charset. Resolve a Codec
// once per part and reuse it for every decode and encode performed on that
// part's content.
type Codec struct {
	name   string
	enc    encoding.Encoding
	strict bool
}

var fallback = &Codec{name: Fallback, enc: charmap.ISO8859_1}

// Resolve returns the Codec for the named charset. The lookup is performed
// against the IANA index using MIME names. An empty name, a name the index
// does not know, or a name the index knows but has no implementation for
// all resolve to the Fallback charset, so Resolve always returns a usable
// Codec.
func Resolve(name string) *Codec {
	if name == "" {
		return fallback
	}

	e, err := ianaindex.MIME.Encoding(name)
	if err != nil || e == nil {
		return fallback
	}

	return &Codec{name: name, enc: e, strict: isUTF8(name)}
}

// Name returns the name of the charset this Codec resolved to. This is the
// name Resolve was given, or Fallback if that name was empty or unusable.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts raw bytes into text using the resolved charset. It
// returns a *DecodeError if the bytes are not valid for the charset.
//
// UTF-8 input is validated before decoding. The x/text UTF-8 decoder
// substitutes U+FFFD for invalid input instead of failing, and a silent
// substitution here would corrupt the part on re-encode.
func (c *Codec) Decode(b []byte) (string, error) {
	if c.strict && !utf8.Valid(b) {
		return "", &DecodeError{Charset: c.name, Cause: ErrInvalidUTF8}
	}

	db, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", &DecodeError{Charset: c.name, Cause: err}
	}

	return string(db), nil
}

// Encode converts text into raw bytes using the resolved charset. It
// returns an *EncodeError if the text contains a rune the charset cannot
// represent.
func (c *Codec) Encode(s string) ([]byte, error) {
	eb, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &EncodeError{Charset: c.name, Cause: err}
	}

	return eb, nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}
