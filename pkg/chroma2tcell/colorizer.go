package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// Colorize renders text as tview colour tags. Token values are escaped.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// Highlight colorizes text using the lexer matching fileName.
// Text of unknown file types is only escaped.
func Highlight(fileName, text, styleName string) (string, error) {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return tview.Escape(text), nil
	}
	return Colorize(text, styleName, lexer)
}

// Language returns the lexer name for fileName, or "" if none matches.
func Language(fileName string) string {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
