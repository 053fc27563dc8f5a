// Package rewrite applies caller-supplied text transformations to the
// content of message parts. It owns the decode/transform/encode cycle, so a
// Transform works with decoded text and never sees raw bytes or charset
// names. Whole-body and line-by-line modes are provided for a single part,
// along with whole-tree entry points that rewrite every text leaf of a
// message.
package rewrite

import (
	"bytes"

	"github.com/zostay/go-mimevisitor/message"
	"github.com/zostay/go-mimevisitor/message/charset"
	"github.com/zostay/go-mimevisitor/message/walker"
)

// Transform is a callback that rewrites one unit of decoded text, either
// the whole body of a part or a single line of it depending on the entry
// point it is passed to. In line mode the text includes the line's original
// terminator, if it had one, and the returned text may keep it, drop it, or
// replace it.
//
// The part is provided as context so the callback can branch on its media
// type or charset. The callback must not write the part's body itself; it
// returns the replacement text and this package performs the encode and the
// write-back. Returning an error aborts the rewrite with that error.
type Transform func(part message.Part, text string) (string, error)

// Content rewrites the whole body of one leaf part.
//
// The body is decoded using the part's declared charset (or the
// charset.Fallback when none is declared), handed to the transform as a
// single string, and the returned text is encoded with the same charset and
// written back to the part. The new text may be of any length, but it must
// be representable in that charset.
//
// If the decode, the transform, or the encode fails, the error is returned
// and the part is left unmodified.
func Content(part message.Part, transform Transform) error {
	cs := charset.Resolve(part.GetCharset())

	text, err := cs.Decode(part.GetBody())
	if err != nil {
		return err
	}

	text, err = transform(part, text)
	if err != nil {
		return err
	}

	body, err := cs.Encode(text)
	if err != nil {
		return err
	}

	part.SetBody(body)
	return nil
}

// Lines rewrites the body of one leaf part a line at a time.
//
// The body is split into lines, each including its original terminator.
// Every line is decoded, transformed, and re-encoded independently and in
// order, all with the charset resolved once for the part. The encoded
// results are concatenated in order and written back to the part in a
// single operation, so an identity transform leaves the body byte-for-byte
// unchanged.
//
// If any line fails to decode, transform, or encode, the error is returned
// and the part is left unmodified. There is no partial write-back.
func Lines(part message.Part, transform Transform) error {
	cs := charset.Resolve(part.GetCharset())

	var body bytes.Buffer
	for _, line := range part.GetBodyLines() {
		text, err := cs.Decode(line)
		if err != nil {
			return err
		}

		text, err = transform(part, text)
		if err != nil {
			return err
		}

		eb, err := cs.Encode(text)
		if err != nil {
			return err
		}

		body.Write(eb)
	}

	part.SetBody(body.Bytes())
	return nil
}

// AllContent rewrites the whole body of every text leaf of a message by
// calling Content on each part selected by walker.WalkTextLeaves, in walk
// order.
//
// Each part's body is written back before the walk moves on, so a failure
// part way through leaves earlier parts rewritten and later parts
// untouched. The first error aborts the walk and is returned; callers that
// need all-or-nothing behavior across a whole tree should keep a copy of
// the message and restore it on failure.
func AllContent(msg message.Part, transform Transform) error {
	var w walker.PartWalker = func(part message.Part) error {
		return Content(part, transform)
	}
	return w.WalkTextLeaves(msg)
}

// AllLines rewrites every text leaf of a message a line at a time by
// calling Lines on each part selected by walker.WalkTextLeaves, in walk
// order. Failure behavior across the tree is the same as for AllContent,
// though within a single part Lines never writes back partially.
func AllLines(msg message.Part, transform Transform) error {
	var w walker.PartWalker = func(part message.Part) error {
		return Lines(part, transform)
	}
	return w.WalkTextLeaves(msg)
}
