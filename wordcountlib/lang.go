package wordcountlib

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/chrisport/go-lang-detector/langdet/langdetdef"
)

// maxDetectLen bounds how much text is handed to the language detector
const maxDetectLen = 10000

// detectLanguage returns the closest known language name, e.g. "english".
// The default language profiles are loaded on first use. Tests swap it out.
var detectLanguage = func() func(string) string {
	var once sync.Once
	var closest func(string) string
	return func(text string) string {
		once.Do(func() {
			detector := langdetdef.NewWithDefaultLanguages()
			closest = detector.GetClosestLanguage
		})
		return closest(truncate(text, maxDetectLen))
	}
}()

// truncate cuts text to at most n bytes without splitting a UTF-8 sequence
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}

func isEnglish(lang string) bool {
	lang = strings.ToLower(lang)
	return lang == "english" || lang == "en"
}
