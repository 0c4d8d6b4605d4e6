// Package highlight renders source text through the chroma registry.
package highlight

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/mattn/go-isatty"

	_ "github.com/ewts-lang/ewts/internal/lexer"
)

// DefaultStyle is used when no style is requested.
const DefaultStyle = "dracula"

// Format selects the output formatter.
type Format string

const (
	FormatAuto     Format = "auto"
	FormatTerminal Format = "terminal"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatAuto, FormatTerminal, FormatHTML, FormatText:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want auto, terminal, html or text)", s)
}

// Render tokenizes code with the lexer registered for lang and writes the
// formatted result to w.
func Render(w io.Writer, code, lang, styleName string, format Format) error {
	lexer := ResolveLexer(code, lang)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenise: %w", err)
	}
	return formatterFor(format).Format(w, styleFor(styleName), iterator)
}

func styleFor(name string) *chroma.Style {
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}
	return style
}

func formatterFor(format Format) chroma.Formatter {
	switch format {
	case FormatTerminal:
		return formatters.TTY256
	case FormatHTML:
		return html.New(html.Standalone(true))
	case FormatText:
		return formatters.Fallback
	default:
		if os.Getenv("NO_COLOR") != "" {
			return formatters.Fallback
		}
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return formatters.TTY256
		}
		return formatters.Fallback
	}
}

// ResolveLexer finds a lexer for lang, sniffing the content when the name
// is unknown. The result is coalesced so adjacent same-type tokens merge.
func ResolveLexer(code, lang string) chroma.Lexer {
	lang = strings.ToLower(strings.TrimSpace(lang))
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
