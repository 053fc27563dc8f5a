package eml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimevisitor/internal/eml"
	"github.com/zostay/go-mimevisitor/message"
	"github.com/zostay/go-mimevisitor/message/rewrite"
)

const multipartMsg = `Subject: Hello World
Content-Type: multipart/mixed; boundary=aaaaaaa

--aaaaaaa
Content-Type: text/plain; charset=UTF-8

Hello World!
--aaaaaaa
Content-Type: multipart/alternative; boundary=bbbbbbb

--bbbbbbb
Content-Type: text/html; charset=ISO-8859-1
Content-Transfer-Encoding: quoted-printable

<p>caf=E9</p>
--bbbbbbb--
--aaaaaaa--
`

func TestParse(t *testing.T) {
	t.Parallel()

	msg, err := eml.Parse(strings.NewReader(multipartMsg))
	require.NoError(t, err)

	require.True(t, msg.IsMultipart())
	assert.Equal(t, "multipart/mixed; boundary=aaaaaaa", msg.GetMediaType())

	parts := msg.GetParts()
	require.Len(t, parts, 2)

	text := parts[0]
	require.False(t, text.IsMultipart())
	assert.Equal(t, "text/plain; charset=UTF-8", text.GetMediaType())
	assert.Equal(t, "UTF-8", text.GetCharset())
	assert.Equal(t, []byte("Hello World!"), text.GetBody())

	alt := parts[1]
	require.True(t, alt.IsMultipart())
	require.Len(t, alt.GetParts(), 1)

	html := alt.GetParts()[0]
	require.False(t, html.IsMultipart())
	assert.Equal(t, "ISO-8859-1", html.GetCharset())
	assert.Equal(t, []byte{'<', 'p', '>', 'c', 'a', 'f', 0xE9, '<', '/', 'p', '>'}, html.GetBody())
}

func TestParse_simple(t *testing.T) {
	t.Parallel()

	msg, err := eml.Parse(strings.NewReader("Subject: plain\n\nJust a body.\n"))
	require.NoError(t, err)

	require.False(t, msg.IsMultipart())
	assert.Equal(t, eml.DefaultMediaType, msg.GetMediaType())
	assert.Equal(t, "", msg.GetCharset())
	assert.Equal(t, []byte("Just a body.\n"), msg.GetBody())
}

func TestParse_base64(t *testing.T) {
	t.Parallel()

	const b64Msg = "Content-Type: application/octet-stream\n" +
		"Content-Transfer-Encoding: base64\n" +
		"\n" +
		"SGVsbG8g\nV29ybGQh\n"

	msg, err := eml.Parse(strings.NewReader(b64Msg))
	require.NoError(t, err)

	require.False(t, msg.IsMultipart())
	assert.Equal(t, []byte("Hello World!"), msg.GetBody())
}

func TestParse_missingBoundary(t *testing.T) {
	t.Parallel()

	_, err := eml.Parse(strings.NewReader("Content-Type: multipart/mixed\n\nbody\n"))
	assert.Error(t, err)
}

func TestParse_rewrite(t *testing.T) {
	t.Parallel()

	msg, err := eml.Parse(strings.NewReader(multipartMsg))
	require.NoError(t, err)

	err = rewrite.AllContent(msg, func(_ message.Part, text string) (string, error) {
		return strings.ToUpper(text), nil
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("HELLO WORLD!"), msg.GetParts()[0].GetBody())

	// the HTML part is written back in its declared ISO-8859-1 charset
	html := msg.GetParts()[1].GetParts()[0]
	assert.Equal(t, []byte{'<', 'P', '>', 'C', 'A', 'F', 0xC9, '<', '/', 'P', '>'}, html.GetBody())
}
