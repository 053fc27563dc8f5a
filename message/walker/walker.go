// Package walker provides depth-first traversal of a message part tree.
// Traversal is pre-order: a part is always visited before any of its
// sub-parts, and sub-parts are visited in order. The three walk methods
// differ only in which parts the callback is run for.
package walker

import (
	"strings"

	"github.com/zostay/go-mimevisitor/message"
)

// Media types eligible for text rewriting.
const (
	TextPlain = "text/plain"
	TextHTML  = "text/html"
)

// PartWalker is a function that can be run for each part of a message.
type PartWalker func(part message.Part) error

// Walk performs a depth first search for all the parts of a message starting
// with the message itself. It calls the PartWalker for each part of the
// message exactly once, parents before their sub-parts. If the PartWalker
// returns an error, then processing stops immediately and the error is
// returned unchanged.
func (w PartWalker) Walk(msg message.Part) error {
	openStack := make([]message.Part, 0, 10)

	pushStack := func(msg message.Part) {
		parts := msg.GetParts()
		for i := len(parts) - 1; i >= 0; i-- {
			openStack = append(openStack, parts[i])
		}
	}

	popStack := func() message.Part {
		end := len(openStack) - 1
		p := openStack[end]
		openStack = openStack[:end]
		return p
	}

	openStack = append(openStack, msg)
	for len(openStack) > 0 {
		p := popStack()
		if err := w(p); err != nil {
			return err
		}
		pushStack(p)
	}

	return nil
}

// WalkLeaves will call the PartWalker function for each leaf part using a
// depth first traversal. Branch parts are descended into but never passed to
// the PartWalker. It will terminate the walk immediately if the PartWalker
// returns an error and will return that error.
func (w PartWalker) WalkLeaves(msg message.Part) error {
	var lw PartWalker = func(part message.Part) error {
		if !part.IsMultipart() {
			if err := w(part); err != nil {
				return err
			}
		}
		return nil
	}
	return lw.Walk(msg)
}

// WalkTextLeaves will call the PartWalker function for each text leaf using
// a depth first traversal. A text leaf is a leaf part for which IsTextPart()
// returns true. All other parts are skipped, though branches are still
// descended into. It will terminate the walk immediately if the PartWalker
// returns an error and will return that error.
func (w PartWalker) WalkTextLeaves(msg message.Part) error {
	var tw PartWalker = func(part message.Part) error {
		if IsTextPart(part) {
			if err := w(part); err != nil {
				return err
			}
		}
		return nil
	}
	return tw.Walk(msg)
}

// IsTextPart returns true when the given part is a leaf whose media type is
// text/plain or text/html. The comparison ignores case and any parameters
// following the type, so "TEXT/HTML; charset=utf-8" is a text part. Other
// text subtypes are not considered text parts here because this library
// cannot assume their content is safe to rewrite as free text.
func IsTextPart(part message.Part) bool {
	if part.IsMultipart() {
		return false
	}

	mt := part.GetMediaType()
	return hasMediaType(mt, TextPlain) || hasMediaType(mt, TextHTML)
}

// hasMediaType checks that mt names exactly the wanted type, i.e. that the
// wanted type is followed by nothing or by a parameter section.
func hasMediaType(mt, want string) bool {
	if len(mt) < len(want) || !strings.EqualFold(mt[:len(want)], want) {
		return false
	}

	rest := mt[len(want):]
	return rest == "" || rest[0] == ';'
}
