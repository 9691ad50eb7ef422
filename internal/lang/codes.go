// Package lang normalizes customer messages into English and renders
// replies back into the customer's language. Routing and retrieval only
// ever see English text; every supported language reduces to one
// matching pipeline.
package lang

// Code is a supported language code. Anything outside the set
// normalizes to English.
type Code string

const (
	CodeEnglish Code = "en"
	CodeSwahili Code = "sw"
	CodeAmharic Code = "am"
	CodeSomali  Code = "so"
	CodeArabic  Code = "ar"
)

var names = map[Code]string{
	CodeEnglish: "English",
	CodeSwahili: "Kiswahili",
	CodeAmharic: "Amharic",
	CodeSomali:  "Somali",
	CodeArabic:  "Arabic",
}

func IsSupported(code Code) bool {
	_, ok := names[code]
	return ok
}

// Name returns the display name used in translation prompts. Unknown
// codes fall back to the raw code so prompts stay usable.
func Name(code Code) string {
	if name, ok := names[code]; ok {
		return name
	}
	return string(code)
}

// Normalize maps unknown or empty codes to English.
func Normalize(code Code) Code {
	if IsSupported(code) {
		return code
	}
	return CodeEnglish
}
