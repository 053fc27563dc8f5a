// Package mimevisitor provides tools for walking the part tree of a MIME
// message and rewriting the text content of its parts without making the
// caller deal with tree structure or character encodings.
//
// A message is modeled as a tree of message.Part objects. A part is either a
// branch (a multipart container holding sub-parts and no content of its own)
// or a leaf (a part with a body and no sub-parts). The message package
// provides the Part interface along with message.Multipart and message.Opaque
// implementations of branches and leaves. This library does not parse wire
// format or model headers; it expects the surrounding application to build
// the tree and to record each leaf's effective media type and declared
// charset on it.
//
// The message/walker package walks a part tree in depth-first pre-order. A
// walker.PartWalker callback may be run for every part, for leaf parts only,
// or for text leaves only (leaves whose media type is text/plain or
// text/html). Walks are fail-fast: the first error returned by the callback
// stops the walk and is returned to the caller unchanged.
//
// The message/rewrite package rewrites the body of text leaves. It decodes
// the raw body bytes using the part's declared charset (falling back to
// ISO-8859-1, which can decode any byte sequence, when no usable charset is
// declared), hands the decoded text to a caller-supplied rewrite.Transform,
// encodes the result with the same charset, and writes the new bytes back to
// the part. Whole-body and line-by-line modes are provided, along with
// whole-tree entry points that combine the walker with the rewriter. The
// line-by-line mode hands each line to the callback with its original line
// terminator attached, so callbacks can preserve or deliberately change line
// endings.
//
// The message/charset package holds the codec the rewriter uses. It resolves
// charset names through the golang.org/x/text IANA index, so the long tail of
// declared charsets found in real mail decodes correctly.
package mimevisitor
