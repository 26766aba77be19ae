package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("# Title\n\nSome *emphasis* here.")
	if !strings.Contains(html, "<h1") {
		t.Errorf("expected heading in output, got %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("expected emphasis in output, got %q", html)
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := RenderMarkdown(`hello <script>alert(1)</script> [link](javascript:alert(1))`)
	if strings.Contains(html, "<script") {
		t.Errorf("script tag survived sanitization: %q", html)
	}
	if strings.Contains(html, "javascript:") {
		t.Errorf("javascript URL survived sanitization: %q", html)
	}
}
