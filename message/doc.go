// Package message models a MIME message as a tree of parts. A part is
// either a branch with sub-parts (Multipart) or a leaf with content
// (Opaque). The Part interface is the contract the walker and rewrite
// packages operate on, so any application-side part implementation that
// satisfies it can be walked and rewritten the same way.
//
// This package deliberately does not model headers or parse wire format.
// Each part carries its effective media type and, for leaves, the declared
// charset and raw body bytes. How those values were discovered (header
// parsing, defaults, sniffing) is the business of whatever built the tree.
package message
