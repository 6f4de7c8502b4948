package boipress

import (
	"html/template"
	"strings"
)

// docTemplate wraps a converted body in a complete printable HTML document.
// The styling targets Bangla prose: the Hind Siliguri web font with a
// SolaimanLipi fallback, justified paragraphs, centered headings, and print
// rules (orphans/widows, no page break after headings) for PDF output.
var docTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="bn">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
@import url('https://fonts.googleapis.com/css2?family=Hind+Siliguri:wght@300;400;500;600;700&display=swap');

body {
    font-family: 'Hind Siliguri', 'SolaimanLipi', sans-serif;
    font-size: 16px;
    line-height: 1.8;
    color: #333;
    max-width: 800px;
    margin: 0 auto;
    padding: 20px;
    text-align: justify;
    text-justify: inter-word;
}

h1, h2, h3, h4, h5, h6 {
    color: #000;
    margin-top: 1.5em;
    margin-bottom: 0.5em;
    text-align: center;
}

h1 { font-size: 28px; font-weight: 700; }
h2 { font-size: 24px; font-weight: 600; }
h3 { font-size: 20px; font-weight: 600; }

p {
    margin-bottom: 1.5em;
    text-align: justify;
}

strong { font-weight: 700; }

em { font-style: italic; }

code {
    font-family: monospace;
    font-size: 0.9em;
}

ul {
    margin-bottom: 1.5em;
    padding-left: 20px;
}

li { margin-bottom: 0.5em; }

@media print {
    body {
        font-size: 12pt;
        max-width: 100%;
        padding: 0;
    }

    p {
        orphans: 3;
        widows: 3;
    }

    h1, h2, h3 {
        page-break-after: avoid;
    }
}
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// documentData feeds docTemplate. Body is trusted converter output and is
// inserted verbatim; Title goes through the template engine's escaping.
type documentData struct {
	Title string
	Body  template.HTML
}

// DefaultTitle is used when no document title is provided.
const DefaultTitle = "Document"

// WrapDocument embeds an HTML body into the complete styled document.
// A blank title falls back to DefaultTitle.
func WrapDocument(body, title string) string {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	var sb strings.Builder
	// The template and data shapes are fixed; Execute cannot fail here.
	_ = docTemplate.Execute(&sb, documentData{Title: title, Body: template.HTML(body)})
	return sb.String()
}
