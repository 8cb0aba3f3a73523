package util

import "unicode/utf8"

// ellipsis помечает усечённую строку в логах.
const ellipsis = "…"

// TruncateRunes — безопасное усечение по рунам: не более n рун исходной
// строки, при усечении дописывается "…".
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n]) + ellipsis
}
