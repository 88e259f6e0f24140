package key

import (
	"unicode"
	"unicode/utf8"
)

// charCodes maps a typed character to the physical key that produces it
// unshifted. Shifted symbols ('!', '@', ...) deliberately have no entry:
// their release is untrackable and they are closed out immediately.
var charCodes = map[rune]Code{
	'`':  CodeBackquote,
	'-':  CodeMinus,
	'=':  CodeEqual,
	'[':  CodeBracketLeft,
	']':  CodeBracketRight,
	'\\': CodeBackslash,
	';':  CodeSemicolon,
	'\'': CodeQuote,
	',':  CodeComma,
	'.':  CodePeriod,
	'/':  CodeSlash,
	' ':  CodeSpace,
}

// namedCodes maps canonical key names back to their physical codes.
// Several names correspond to more than one code.
var namedCodes = map[string][]Code{
	NameArrowDown:  {CodeArrowDown},
	NameArrowLeft:  {CodeArrowLeft},
	NameArrowRight: {CodeArrowRight},
	NameArrowUp:    {CodeArrowUp},
	NameBackspace:  {CodeBackspace},
	NameDelete:     {CodeDelete},
	NameEnd:        {CodeEnd},
	NameEnter:      {CodeEnter, CodeNumpadEnter},
	NameEscape:     {CodeEscape},
	NameHome:       {CodeHome},
	NameInsert:     {CodeInsert},
	NamePageDown:   {CodePageDown},
	NamePageUp:     {CodePageUp},
	NameTab:        {CodeTab},
	NameShift:      {CodeShiftLeft, CodeShiftRight},
	NameControl:    {CodeControlLeft, CodeControlRight},
	NameAlt:        {CodeAltLeft, CodeAltRight},
	NameMeta:       {CodeWinLeft, CodeWinRight, CodeCommandLeft, CodeCommandRight},
}

func init() {
	for i := 0; i < 26; i++ {
		charCodes['a'+rune(i)] = CodeA + Code(i)
	}
	for i := 0; i < 10; i++ {
		charCodes['0'+rune(i)] = CodeDigit0 + Code(i)
	}
}

// CodeForChar returns the physical key that produces c. Uppercase letters
// resolve to the same key as their lowercase form. The second result is
// false when c has no trackable key (shifted symbols, exotic input).
func CodeForChar(c rune) (Code, bool) {
	code, ok := charCodes[unicode.ToLower(c)]
	return code, ok
}

// NameForChar returns the canonical web key name for a typed character.
// Control characters that web surfaces expect as named keys are special
// cased; everything else is its own one-rune name.
func NameForChar(c rune) string {
	switch c {
	case '\b', 0x7f:
		return NameBackspace
	case '\r', '\n':
		return NameEnter
	}
	return string(c)
}

// CodesForName resolves a canonical key name back to the physical codes
// that can produce it. Names with no physical correlate return false.
func CodesForName(name string) ([]Code, bool) {
	if codes, ok := namedCodes[name]; ok {
		return codes, true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if code, ok := CodeForChar(r); ok {
			return []Code{code}, true
		}
	}
	return nil, false
}
