package msgbox

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// LangNeutral lets the system pick the language of stock labels.
const LangNeutral LangID = 0

var knownLanguages = []struct {
	tag language.Tag
	id  LangID
}{
	{language.AmericanEnglish, 0x0409},
	{language.BritishEnglish, 0x0809},
	{language.Japanese, 0x0411},
	{language.SimplifiedChinese, 0x0804},
	{language.TraditionalChinese, 0x0404},
	{language.Korean, 0x0412},
	{language.French, 0x040C},
	{language.German, 0x0407},
	{language.Italian, 0x0410},
	{language.EuropeanSpanish, 0x0C0A},
	{language.LatinAmericanSpanish, 0x580A},
	{language.BrazilianPortuguese, 0x0416},
	{language.EuropeanPortuguese, 0x0816},
	{language.Russian, 0x0419},
	{language.Ukrainian, 0x0422},
	{language.Polish, 0x0415},
	{language.Czech, 0x0405},
	{language.Dutch, 0x0413},
	{language.Swedish, 0x041D},
	{language.Norwegian, 0x0414},
	{language.Danish, 0x0406},
	{language.Finnish, 0x040B},
	{language.Greek, 0x0408},
	{language.Turkish, 0x041F},
	{language.Hungarian, 0x040E},
	{language.Hebrew, 0x040D},
	{language.Arabic, 0x0401},
	{language.Thai, 0x041E},
	{language.Vietnamese, 0x042A},
	{language.Indonesian, 0x0421},
}

var languageMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(knownLanguages))
	for i, l := range knownLanguages {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// ParseLanguage accepts "" (neutral), a LANGID in hex ("0x0411") or decimal
// ("1041"), or a BCP 47 tag ("ja", "pt-BR") matched to the closest
// Windows language.
func ParseLanguage(s string) (LangID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LangNeutral, nil
	}
	if hex, ok := cutHexPrefix(s); ok {
		n, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid LANGID %q: %w", s, err)
		}
		return LangID(n), nil
	}
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return LangID(n), nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid language %q: %w", s, err)
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return 0, fmt.Errorf("no Windows language matches %q", s)
	}
	return knownLanguages[index].id, nil
}

func cutHexPrefix(s string) (string, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return "", false
}

// Tag returns the BCP 47 tag of a known LANGID, or language.Und.
func (l LangID) Tag() language.Tag {
	for _, k := range knownLanguages {
		if k.id == l {
			return k.tag
		}
	}
	return language.Und
}

func (l LangID) String() string {
	if tag := l.Tag(); tag != language.Und {
		return fmt.Sprintf("0x%04X(%s)", uint16(l), tag)
	}
	return fmt.Sprintf("0x%04X", uint16(l))
}
