package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hostcities/notify/pkg/sanitizer"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes script tags",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "escapes quotes and ampersands",
			input:    `"test" & 'value'`,
			expected: "&#34;test&#34; &amp; &#39;value&#39;",
		},
		{
			name:     "leaves plain text alone",
			input:    "Estadio Azteca",
			expected: "Estadio Azteca",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.EscapeHTML(tt.input))
		})
	}
}

func TestMultilineHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "converts unix newlines",
			input:    "line one\nline two",
			expected: "line one<br>line two",
		},
		{
			name:     "converts windows and old mac newlines",
			input:    "a\r\nb\rc",
			expected: "a<br>b<br>c",
		},
		{
			name:     "escapes before inserting breaks",
			input:    "<b>hi</b>\n& bye",
			expected: "&lt;b&gt;hi&lt;/b&gt;<br>&amp; bye",
		},
		{
			name:     "literal br in input stays escaped",
			input:    "<br>",
			expected: "&lt;br&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MultilineHTML(tt.input))
		})
	}
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Contact form: Bob Bcc: evil@x.com", sanitizer.SingleLine("Contact form: Bob\r\nBcc: evil@x.com"))
	assert.Equal(t, "a b", sanitizer.SingleLine("  a\t\tb  "))
	assert.Equal(t, "", sanitizer.SingleLine("\n\n"))
}
