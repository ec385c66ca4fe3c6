package helpers

import (
	"bytes"
	"sync"

	"github.com/aymerick/raymond"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md       goldmark.Markdown
	mdPolicy *bluemonday.Policy
	mdOnce   sync.Once
)

func initMarkdown() {
	mdOnce.Do(func() {
		md = goldmark.New(goldmark.WithExtensions(extension.GFM))
		mdPolicy = bluemonday.UGCPolicy()
	})
}

// Markdown renders a value as markdown and sanitizes the resulting HTML.
// The result is not escaped again by the template.
func Markdown(payload any) raymond.SafeString {
	initMarkdown()

	var buf bytes.Buffer
	if err := md.Convert([]byte(raymond.Str(payload)), &buf); err != nil {
		return ""
	}
	return raymond.SafeString(mdPolicy.SanitizeBytes(buf.Bytes()))
}
