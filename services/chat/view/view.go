package view

import (
	_ "embed"
	"html/template"
	"strings"
)

//go:embed index.html.tmpl
var indexTmpl string

var index = template.Must(template.New("index").Parse(indexTmpl))

type page struct {
	Message string
	Answer  string
}

// Render builds the chat page. The submitted message is echoed back into the
// form field and the answer block is only present when answer is non-empty.
// Both values are escaped by the template engine before substitution.
func Render(message, answer string) string {
	var b strings.Builder
	if err := index.Execute(&b, page{Message: message, Answer: answer}); err != nil {
		return ""
	}
	return b.String()
}
