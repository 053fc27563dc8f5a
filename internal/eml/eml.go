// Package eml builds a message part tree from a raw message stream. It
// exists to feed realistic input to the manual QA tooling and is not part
// of the library's contract. It handles just enough of the wire format for
// that job: headers are read only for Content-type and
// Content-transfer-encoding, nested multiparts are recursed into, and
// base64 or quoted-printable bodies are decoded so the tree holds the
// actual content bytes.
package eml

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"

	"github.com/zostay/go-mimevisitor/message"
)

// DefaultMediaType is assumed for parts that declare no Content-type.
const DefaultMediaType = "text/plain"

// Parse reads an RFC 5322 style message from r and builds a part tree from
// it. Multipart bodies are broken out recursively into message.Multipart
// branches; everything else becomes a message.Opaque leaf holding the
// transfer-decoded body bytes.
func Parse(r io.Reader) (message.Part, error) {
	tr := textproto.NewReader(bufio.NewReader(r))
	hdr, err := tr.ReadMIMEHeader()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading message header: %w", err)
	}

	return parsePart(hdr, tr.R)
}

func parsePart(hdr textproto.MIMEHeader, body io.Reader) (message.Part, error) {
	ct := hdr.Get("Content-Type")
	if ct == "" {
		ct = DefaultMediaType
	}

	mt, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return nil, fmt.Errorf("parsing Content-type %q: %w", ct, err)
	}

	if strings.HasPrefix(mt, "multipart/") {
		return parseMultipart(ct, params["boundary"], body)
	}

	b, err := io.ReadAll(transferDecoder(hdr, body))
	if err != nil {
		return nil, fmt.Errorf("reading %s body: %w", mt, err)
	}

	return &message.Opaque{
		MediaType: ct,
		Charset:   params["charset"],
		Body:      b,
	}, nil
}

func parseMultipart(ct, boundary string, body io.Reader) (message.Part, error) {
	if boundary == "" {
		return nil, fmt.Errorf("the boundary parameter is missing from Content-type %q", ct)
	}

	mm := &message.Multipart{MediaType: ct}
	mr := multipart.NewReader(body, boundary)
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading next part of %q: %w", ct, err)
		}

		sub, err := parsePart(p.Header, p)
		if err != nil {
			return nil, err
		}

		mm.Parts = append(mm.Parts, sub)
	}

	return mm, nil
}

// transferDecoder wraps the body reader with a decoder for the declared
// Content-transfer-encoding. The identity encodings (7bit, 8bit, binary)
// and anything unrecognized are passed through as-is.
func transferDecoder(hdr textproto.MIMEHeader, body io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(hdr.Get("Content-Transfer-Encoding"))) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		return quotedprintable.NewReader(body)
	}
	return body
}
