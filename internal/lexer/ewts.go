// Package lexer defines the Ewts lexer and registers it with the chroma
// lexer registry. Chroma owns the scanning loop; this package only
// contributes the state table.
package lexer

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
)

// Identifiers cover the full Unicode identifier classes plus the \uXXXX
// escape form. Continuation additionally allows combining marks, digits,
// connector punctuation, and the zero-width (non-)joiner.
const ewtsIdentStart = `(?:[$_\p{Lu}\p{Ll}\p{Lt}\p{Lm}\p{Lo}\p{Nl}]|\\u[a-fA-F0-9]{4})`

const ewtsIdentPart = `(?:[$\p{Lu}\p{Ll}\p{Lt}\p{Lm}\p{Lo}\p{Nl}\p{Mn}\p{Mc}\p{Nd}\p{Pc}` +
	"\u200c\u200d" + `]|\\u[a-fA-F0-9]{4})`

const ewtsIdent = ewtsIdentStart + `(?:` + ewtsIdentPart + `)*`

// Ewts is the lexer for the Ewts scripting dialect.
//
// Rule order matters throughout: chroma takes the first pattern that
// matches, so the sized numeric forms sit above the generic float rule
// and the keyword alternations sit above the identifier rule.
// States that can syntactically precede a regex literal push
// "slashstartsregex"; if no regex matches there, the default action pops
// back without consuming input, leaving "/" to lex as an operator.
var Ewts = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "Ewts",
		Aliases:   []string{"ewts"},
		Filenames: []string{"*.ewts", "*.script", "*.ewtsub", "*.subscript"},
		MimeTypes: []string{"text/x-ewts"},
		DotAll:    true,
		EnsureNL:  true,
	},
	chroma.Rules{
		"commentsandwhitespace": {
			{Pattern: `\s+`, Type: chroma.TextWhitespace},
			{Pattern: `<!--`, Type: chroma.Comment},
			{Pattern: `//.*?$`, Type: chroma.CommentSingle},
			{Pattern: `/\*.*?\*/`, Type: chroma.CommentMultiline},
		},
		"slashstartsregex": {
			chroma.Include("commentsandwhitespace"),
			{Pattern: `/(\\.|[^[/\\\n]|\[(\\.|[^\]\\\n])*])+/([gimuysd]+\b|\B)`, Type: chroma.LiteralStringRegex, Mutator: chroma.Pop(1)},
			{Pattern: `(?=/)`, Type: chroma.Text, Mutator: chroma.Push("#pop", "badregex")},
			chroma.Default(chroma.Pop(1)),
		},
		"badregex": {
			// Everything up to the newline falls through to the error
			// fallback; the newline itself ends the recovery state.
			{Pattern: `\n`, Type: chroma.TextWhitespace, Mutator: chroma.Pop(1)},
		},
		"root": {
			{Pattern: `\A#! ?/.*?$`, Type: chroma.CommentHashbang},
			{Pattern: `^(?=\s|/|<!--)`, Type: chroma.Text, Mutator: chroma.Push("slashstartsregex")},
			chroma.Include("commentsandwhitespace"),
			{Pattern: `0[bB][01]+n?`, Type: chroma.LiteralNumberBin},
			{Pattern: `0[oO]?[0-7]+n?`, Type: chroma.LiteralNumberOct},
			{Pattern: `0[xX][0-9a-fA-F]+n?`, Type: chroma.LiteralNumberHex},
			{Pattern: `[0-9]+n`, Type: chroma.LiteralNumberInteger},
			{Pattern: `(\.[0-9]+|[0-9]+\.[0-9]*|[0-9]+)([eE][-+]?[0-9]+)?`, Type: chroma.LiteralNumberFloat},
			{Pattern: `\.\.\.|=>`, Type: chroma.Punctuation},
			{Pattern: `\+\+|--|~|\?\?=?|\?|:|\\(?=\n)|(<<|>>>?|==?|!=?|(?:\*\*|\|\||&&|[-<>+*%&|^/]))=?`, Type: chroma.Operator, Mutator: chroma.Push("slashstartsregex")},
			{Pattern: `[{(\[;,]`, Type: chroma.Punctuation, Mutator: chroma.Push("slashstartsregex")},
			{Pattern: `[})\].]`, Type: chroma.Punctuation},
			{Pattern: `(typeof|instanceof|in|void|delete|new)\b`, Type: chroma.OperatorWord, Mutator: chroma.Push("slashstartsregex")},
			{Pattern: `\b(constructor|from|as)\b`, Type: chroma.KeywordReserved},
			{Pattern: `(for|in|while|do|break|return|continue|switch|case|default|if|else|throw|try|catch|finally|yield|await|async|this|of|static|export|import|debugger|extends|super)\b`, Type: chroma.Keyword, Mutator: chroma.Push("slashstartsregex")},
			{Pattern: `(var|let|const|with|function|class)\b`, Type: chroma.KeywordDeclaration, Mutator: chroma.Push("slashstartsregex")},
			{Pattern: `(abstract|boolean|byte|char|double|enum|final|float|goto|implements|int|interface|long|native|package|private|protected|public|short|synchronized|throws|transient|volatile)\b`, Type: chroma.KeywordReserved},
			{Pattern: `(true|false|null|NaN|Infinity|undefined)\b`, Type: chroma.KeywordConstant},
			{Pattern: `(Array|Boolean|Date|BigInt|Function|Math|ArrayBuffer|Number|Object|RegExp|String|Promise|Proxy|decodeURI|decodeURIComponent|encodeURI|encodeURIComponent|eval|isFinite|isNaN|parseFloat|parseInt|DataView|document|window|globalThis|global|Symbol|Intl|WeakSet|WeakMap|Set|Map|Reflect|JSON|Atomics|Int(?:8|16|32)Array|BigInt64Array|Float32Array|Float64Array|Uint8ClampedArray|Uint(?:8|16|32)Array|BigUint64Array)\b`, Type: chroma.NameBuiltin},
			{Pattern: `((?:Eval|Internal|Range|Reference|Syntax|Type|URI)?Error)\b`, Type: chroma.NameException},
			{Pattern: `(super)(\s*)(\([\w,?.$\s]+\s*\))`, Type: chroma.ByGroups(chroma.Keyword, chroma.TextWhitespace, chroma.UsingSelf("root")), Mutator: chroma.Push("slashstartsregex")},
			{Pattern: `([a-zA-Z_?.$][\w?.$]*)(?=\(\) \{)`, Type: chroma.NameOther, Mutator: chroma.Push("slashstartsregex")},
			{Pattern: ewtsIdent, Type: chroma.NameOther},
			{Pattern: `"(\\\\|\\[^\\]|[^"\\])*"`, Type: chroma.LiteralStringDouble},
			{Pattern: `'(\\\\|\\[^\\]|[^'\\])*'`, Type: chroma.LiteralStringSingle},
			{Pattern: "`", Type: chroma.LiteralStringBacktick, Mutator: chroma.Push("interp")},
		},
		"interp": {
			{Pattern: "`", Type: chroma.LiteralStringBacktick, Mutator: chroma.Pop(1)},
			{Pattern: `\\.`, Type: chroma.LiteralStringBacktick},
			{Pattern: `\$\{`, Type: chroma.LiteralStringInterpol, Mutator: chroma.Push("interp-inside")},
			{Pattern: `\$`, Type: chroma.LiteralStringBacktick},
			{Pattern: "[^`\\\\$]+", Type: chroma.LiteralStringBacktick},
		},
		// interp-inside pulls in the whole root rule set so arbitrary
		// expressions lex correctly inside ${...}. Chroma resolves the
		// include by name at scan time, so the self-reference is fine.
		"interp-inside": {
			{Pattern: `\}`, Type: chroma.LiteralStringInterpol, Mutator: chroma.Pop(1)},
			chroma.Include("root"),
		},
	},
))
