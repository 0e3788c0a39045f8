package msgbox

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"softmodal/internal/core"
)

// CodePageUTF8 is CP_UTF8.
const CodePageUTF8 = 65001

// ANSIButton is a Button whose label is narrow text. A nil Text selects
// the stock label.
type ANSIButton struct {
	ID   ButtonID
	Text []byte
}

// ANSIRequest is a Request whose strings are encoded in a Windows code page.
type ANSIRequest struct {
	Owner    uintptr
	Text     []byte
	Caption  []byte
	Style    Style
	Buttons  []ANSIButton
	Timeout  time.Duration
	Instance uintptr
	Icon     Icon
	Language LangID
	// CodePage of Text, Caption and labels; 0 means the system ANSI code page.
	CodePage uint32
}

var codePages = map[uint32]encoding.Encoding{
	437:          charmap.CodePage437,
	850:          charmap.CodePage850,
	852:          charmap.CodePage852,
	855:          charmap.CodePage855,
	858:          charmap.CodePage858,
	860:          charmap.CodePage860,
	862:          charmap.CodePage862,
	863:          charmap.CodePage863,
	865:          charmap.CodePage865,
	866:          charmap.CodePage866,
	874:          charmap.Windows874,
	932:          japanese.ShiftJIS,
	936:          simplifiedchinese.GBK,
	949:          korean.EUCKR,
	950:          traditionalchinese.Big5,
	1250:         charmap.Windows1250,
	1251:         charmap.Windows1251,
	1252:         charmap.Windows1252,
	1253:         charmap.Windows1253,
	1254:         charmap.Windows1254,
	1255:         charmap.Windows1255,
	1256:         charmap.Windows1256,
	1257:         charmap.Windows1257,
	1258:         charmap.Windows1258,
	20866:        charmap.KOI8R,
	21866:        charmap.KOI8U,
	28591:        charmap.ISO8859_1,
	28592:        charmap.ISO8859_2,
	28595:        charmap.ISO8859_5,
	28597:        charmap.ISO8859_7,
	28605:        charmap.ISO8859_15,
	54936:        simplifiedchinese.GB18030,
	CodePageUTF8: unicode.UTF8,
}

// CodePageEncoding returns the decoder table for a Windows code page.
// Unknown code pages fall back to Windows-1252.
func CodePageEncoding(cp uint32) (encoding.Encoding, bool) {
	if e, ok := codePages[cp]; ok {
		return e, true
	}
	return charmap.Windows1252, false
}

// EncodeCodePage encodes s in code page cp, 0 meaning the system ANSI code
// page. Characters the code page cannot represent are replaced.
func EncodeCodePage(s string, cp uint32) []byte {
	if s == "" {
		return nil
	}
	if cp == 0 {
		cp = systemCodePage()
	}
	enc, _ := CodePageEncoding(cp)
	out, _, err := transform.Bytes(encoding.ReplaceUnsupported(enc.NewEncoder()), []byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

var (
	bufferPool  = sync.Pool{New: func() interface{} { return new(bytes.Buffer) }}
	liveBuffers atomic.Int64
)

// conversion decodes narrow strings into pooled buffers. release must be
// called once the decoded strings are no longer needed by the pool.
type conversion struct {
	enc  encoding.Encoding
	held []*bytes.Buffer
}

func newConversion(cp uint32) *conversion {
	enc, _ := CodePageEncoding(cp)
	return &conversion{enc: enc}
}

func (c *conversion) decode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	liveBuffers.Add(1)
	c.held = append(c.held, buf)

	w := transform.NewWriter(buf, c.enc.NewDecoder())
	_, err := w.Write(src)
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		return strings.ToValidUTF8(string(src), "�")
	}
	return buf.String()
}

func (c *conversion) release() {
	for _, buf := range c.held {
		buf.Reset()
		bufferPool.Put(buf)
		liveBuffers.Add(-1)
	}
	c.held = nil
}

// widen converts r into a Request.
func (r ANSIRequest) widen(c *conversion) Request {
	req := Request{
		Owner:    r.Owner,
		Text:     c.decode(r.Text),
		Caption:  c.decode(r.Caption),
		Style:    r.Style,
		Timeout:  r.Timeout,
		Instance: r.Instance,
		Icon:     r.Icon,
		Language: r.Language,
	}
	n := len(r.Buttons)
	if n > MaxButtons {
		n = MaxButtons
	}
	if n > 0 {
		req.Buttons = make([]Button, n)
	}
	for i := 0; i < n; i++ {
		req.Buttons[i].ID = r.Buttons[i].ID
		if r.Buttons[i].Text != nil {
			req.Buttons[i].Text = core.TruncateUTF16(c.decode(r.Buttons[i].Text), maxLabelUnits)
		}
	}
	return req
}
