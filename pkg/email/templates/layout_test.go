package templates_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostcities/notify/pkg/email/templates"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(),
		templates.Layout("<Hi>", "https://example.com", templ.Raw("<p>body</p>")),
	)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>&lt;Hi&gt;</title>")
	assert.Contains(t, html, "<p>body</p>")
	assert.Contains(t, html, `href="https://example.com"`)
	assert.Less(t, strings.Index(html, "<p>body</p>"), strings.Index(html, `href="https://example.com"`))
}

func TestButton(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(),
		templates.Button("Open <board>", "https://example.com/predictor?entry=a&b"),
	)
	require.NoError(t, err)

	assert.Contains(t, html, `href="https://example.com/predictor?entry=a&amp;b"`)
	assert.Contains(t, html, "Open &lt;board&gt;")
}

func TestJoin(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(),
		templates.Join(templ.Raw("<a>"), nil, templ.Raw("<b>")),
	)
	require.NoError(t, err)
	assert.Equal(t, "<a><b>", html)
}
