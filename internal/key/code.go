package key

import "runtime"

// Code identifies a physical key in a platform-neutral way. The host
// device translates its native scan or virtual key codes into these before
// answering per-tick pressed/released queries.
type Code uint16

const (
	CodeNone Code = iota

	// Letters
	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	// Digits
	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9

	// Punctuation
	CodeBackquote
	CodeMinus
	CodeEqual
	CodeBracketLeft
	CodeBracketRight
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeComma
	CodePeriod
	CodeSlash
	CodeSpace

	// Control keys
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
	CodeArrowUp
	CodeBackspace
	CodeDelete
	CodeEnd
	CodeEnter
	CodeNumpadEnter
	CodeEscape
	CodeHome
	CodeInsert
	CodePageDown
	CodePageUp
	CodeTab

	// Modifiers
	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeWinLeft
	CodeWinRight
	CodeCommandLeft
	CodeCommandRight
)

// MetaCodes returns the physical codes that act as the Meta key on the
// running platform: the Windows-logo pair on Windows builds, the Command
// pair everywhere else.
func MetaCodes() []Code {
	return metaCodesFor(runtime.GOOS)
}

func metaCodesFor(goos string) []Code {
	if goos == "windows" {
		return []Code{CodeWinLeft, CodeWinRight}
	}
	return []Code{CodeCommandLeft, CodeCommandRight}
}
