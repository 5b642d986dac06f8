package markdown

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	DefaultLightStyle = "github"
	DefaultDarkStyle  = "monokai"
)

var stylesheets sync.Map

// ChromaCSS returns the highlight stylesheet for the default style pair.
func ChromaCSS() template.CSS {
	return Stylesheet(DefaultLightStyle, DefaultDarkStyle)
}

// Stylesheet renders light and dark highlight rules behind
// prefers-color-scheme queries. Results are cached per style pair.
func Stylesheet(lightStyle string, darkStyle string) template.CSS {
	key := lightStyle + "|" + darkStyle
	if cached, ok := stylesheets.Load(key); ok {
		return cached.(template.CSS)
	}

	css := template.CSS(buildStylesheet(lightStyle, darkStyle))
	stylesheets.Store(key, css)
	return css
}

func buildStylesheet(lightStyle string, darkStyle string) string {
	var out strings.Builder
	writeSchemeBlock(&out, "light", lightStyle)
	writeSchemeBlock(&out, "dark", darkStyle)
	return out.String()
}

func writeSchemeBlock(out *strings.Builder, scheme string, styleName string) {
	css := styleCSS(styleName)
	if css == "" {
		return
	}

	out.WriteString("@media (prefers-color-scheme: " + scheme + ") {\n")
	out.WriteString(css)
	out.WriteString("}\n")
}

func styleCSS(styleName string) string {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buffer bytes.Buffer
	if err := formatter.WriteCSS(&buffer, style); err != nil {
		return ""
	}

	return buffer.String()
}
