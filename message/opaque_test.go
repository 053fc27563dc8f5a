package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-mimevisitor/message"
)

func TestOpaque(t *testing.T) {
	t.Parallel()

	m := &message.Opaque{
		MediaType: "text/plain; charset=utf-8",
		Charset:   "utf-8",
		Body:      []byte("Hello World!"),
	}

	assert.False(t, m.IsMultipart())
	assert.Nil(t, m.GetParts())
	assert.Equal(t, "text/plain; charset=utf-8", m.GetMediaType())
	assert.Equal(t, "utf-8", m.GetCharset())
	assert.Equal(t, []byte("Hello World!"), m.GetBody())

	m.SetBody([]byte("Goodbye World!"))
	assert.Equal(t, []byte("Goodbye World!"), m.GetBody())
}

func TestOpaque_GetBodyLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		lines []string
	}{
		{"empty", "", nil},
		{"no terminator", "abc", []string{"abc"}},
		{"single line", "abc\n", []string{"abc\n"}},
		{"lf lines", "abc\ndef\n", []string{"abc\n", "def\n"}},
		{"crlf lines", "abc\r\ndef\r\n", []string{"abc\r\n", "def\r\n"}},
		{"trailing fragment", "abc\ndef", []string{"abc\n", "def"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
		{"mixed terminators", "abc\r\ndef\nghi", []string{"abc\r\n", "def\n", "ghi"}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m := &message.Opaque{Body: []byte(test.body)}

			var got []string
			for _, line := range m.GetBodyLines() {
				got = append(got, string(line))
			}

			assert.Equal(t, test.lines, got)
		})
	}
}

func TestOpaque_GetBodyLines_roundTrip(t *testing.T) {
	t.Parallel()

	body := "first\r\nsecond\n\nlast without newline"
	m := &message.Opaque{Body: []byte(body)}

	var joined []byte
	for _, line := range m.GetBodyLines() {
		joined = append(joined, line...)
	}

	assert.Equal(t, []byte(body), joined)
}
