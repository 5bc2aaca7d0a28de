package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmpty(t *testing.T) {
	html := Render("", "")

	assert.Contains(t, html, "<form method=\"post\" action=\"/chat\">")
	assert.NotContains(t, html, "class=\"answer\"")
}

func TestRenderEchoesMessage(t *testing.T) {
	html := Render("who left Apple?", "")

	assert.Contains(t, html, ">who left Apple?</textarea>")
	assert.NotContains(t, html, "class=\"answer\"")
}

func TestRenderAnswerBlock(t *testing.T) {
	html := Render("who left Apple?", "Tim Cook is still there.")

	assert.Contains(t, html, "who left Apple?")
	assert.Equal(t, 1, strings.Count(html, "Tim Cook is still there."))
	assert.Equal(t, 1, strings.Count(html, "class=\"answer\""))
}

func TestRenderEscapesMessage(t *testing.T) {
	html := Render("<script>alert(1)</script>", "")

	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "&amp;lt;")
}

func TestRenderEscapesAnswer(t *testing.T) {
	html := Render("q", "a < b && c > d")

	assert.Contains(t, html, "a &lt; b &amp;&amp; c &gt; d")
	assert.NotContains(t, html, "&amp;lt;")
	assert.NotContains(t, html, "&amp;amp;")
}
