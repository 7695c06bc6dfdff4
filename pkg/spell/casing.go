package spell

import (
	"strings"
	"unicode"
)

// transferCasing rewrites term so its casing mirrors the phrase the
// caller looked up. Equal-length pairs are mapped character by
// character; when an edit changed the length, casing is carried over
// along the common prefix and suffix and the edited middle stays
// lowercase.
func transferCasing(phrase, term string) string {
	src := []rune(phrase)
	dst := []rune(strings.ToLower(term))

	if len(src) == len(dst) {
		for i := range dst {
			if unicode.IsUpper(src[i]) {
				dst[i] = unicode.ToUpper(dst[i])
			}
		}
		return string(dst)
	}

	lowerSrc := []rune(strings.ToLower(phrase))
	i := 0
	for i < len(dst) && i < len(src) && lowerSrc[i] == dst[i] {
		if unicode.IsUpper(src[i]) {
			dst[i] = unicode.ToUpper(dst[i])
		}
		i++
	}
	si, di := len(src)-1, len(dst)-1
	for si >= i && di >= i && lowerSrc[si] == dst[di] {
		if unicode.IsUpper(src[si]) {
			dst[di] = unicode.ToUpper(dst[di])
		}
		si--
		di--
	}
	return string(dst)
}
