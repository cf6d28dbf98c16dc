// Package templates holds the shared email layout and the render helper.
// Components are plain templ.ComponentFunc values, so callers can compose
// them with any templ component.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	brandName  = "World Cup 2026 Host Cities"
	brandColor = "#0b5394"
)

// Layout wraps body in the branded email shell. title is escaped; body is
// rendered as-is and must escape its own user input.
func Layout(title, siteURL string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		sb.WriteString(`<title>` + templ.EscapeString(title) + `</title></head>`)
		sb.WriteString(`<body style="margin:0;padding:0;background:#f4f6f8;font-family:Arial,Helvetica,sans-serif;color:#1f2933;">`)
		sb.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr><td align="center" style="padding:24px 12px;">`)
		sb.WriteString(`<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;background:#ffffff;border-radius:8px;">`)
		sb.WriteString(`<tr><td style="background:` + brandColor + `;color:#ffffff;padding:20px 24px;font-size:20px;font-weight:bold;border-radius:8px 8px 0 0;">`)
		sb.WriteString(templ.EscapeString(brandName))
		sb.WriteString(`</td></tr><tr><td style="padding:24px;font-size:15px;line-height:1.6;">`)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		sb.Reset()
		sb.WriteString(`</td></tr><tr><td style="padding:16px 24px;font-size:12px;color:#7b8794;border-top:1px solid #e4e7eb;">`)
		if siteURL != "" {
			sb.WriteString(`<a href="` + templ.EscapeString(siteURL) + `" style="color:` + brandColor + `;">` + templ.EscapeString(siteURL) + `</a>`)
		} else {
			sb.WriteString(templ.EscapeString(brandName))
		}
		sb.WriteString(`</td></tr></table></td></tr></table></body></html>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Button renders a call-to-action link. label and href are escaped.
func Button(label, href string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<p style="margin:24px 0;"><a href="`+templ.EscapeString(href)+
				`" style="display:inline-block;padding:12px 20px;background:`+brandColor+
				`;color:#ffffff;text-decoration:none;border-radius:6px;font-weight:bold;">`+
				templ.EscapeString(label)+`</a></p>`)
		return err
	})
}

// Join renders components one after another.
func Join(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range parts {
			if p == nil {
				continue
			}
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
