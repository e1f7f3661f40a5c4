package render

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// summaryStatements are the fixed narrative findings for this dataset.
// They are static text, not computed from the live table, and do not change
// when the underlying file does.
var summaryStatements = []string{
	"**Age** shows a significant relationship with heart disease prevalence.",
	"**Maximum heart rate** has negative correlation with disease risk.",
	"**Chest pain type** is an important diagnostic factor.",
	"**Exercise induced angina** is associated with higher risk.",
	"**Cholesterol** and **resting blood pressure** contribute to overall risk assessment.",
}

// SummaryView is the Summary page view model.
type SummaryView struct {
	Statements []template.HTML
}

// Summary builds the Summary page by rendering each fixed statement from
// markdown.
func Summary() SummaryView {
	view := SummaryView{Statements: make([]template.HTML, len(summaryStatements))}
	for i, statement := range summaryStatements {
		view.Statements[i] = renderMarkdown(statement)
	}
	return view
}

func renderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(src), p, renderer)
	return template.HTML(strings.TrimSpace(string(out)))
}
