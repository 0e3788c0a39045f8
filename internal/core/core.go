package core

import (
	"strings"
	"unicode/utf16"
)

const (
	AppName        = "SoftModal MessageBox"
	AppID          = "com.yubsoft.softmodal"
	InstallDirName = "SoftModalMessageBox"
	ConfigFileName = "config.json"
	AppLogName     = "softmodal.log"
)

// nulReplacement stands in for interior NUL characters, which would
// otherwise terminate the UTF-16 string early.
const nulReplacement = "␀"

// SanitizeText replaces interior NUL characters so the text survives the
// conversion to a NUL-terminated UTF-16 string.
func SanitizeText(text string) string {
	if !strings.Contains(text, "\x00") {
		return text
	}
	return strings.ReplaceAll(text, "\x00", nulReplacement)
}

// TruncateUTF16 shortens text so that its UTF-16 encoding is at most max
// code units. A surrogate pair is never split.
func TruncateUTF16(text string, max int) string {
	if max <= 0 {
		return ""
	}
	units := 0
	for i, r := range text {
		n := utf16.RuneLen(r)
		if n < 0 {
			// Invalid runes are encoded as U+FFFD.
			n = 1
		}
		if units+n > max {
			return text[:i]
		}
		units += n
	}
	return text
}

// StripMnemonic removes the '&' accelerator markers from a Win32 button
// label. "&&" is an escaped ampersand and becomes a single '&'.
func StripMnemonic(label string) string {
	if !strings.Contains(label, "&") {
		return label
	}
	var b strings.Builder
	b.Grow(len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c != '&' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(label) && label[i+1] == '&' {
			b.WriteByte('&')
			i++
		}
	}
	return b.String()
}
