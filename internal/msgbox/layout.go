package msgbox

import (
	"unicode/utf16"
	"unsafe"
)

// msgBoxParams is MSGBOXPARAMSW.
type msgBoxParams struct {
	Size        uint32
	Owner       uintptr
	Instance    uintptr
	Text        *uint16
	Caption     *uint16
	Style       uint32
	Icon        uintptr
	ContextHelp uintptr
	Callback    uintptr
	LanguageID  uint32
}

// msgBoxData is the private MSGBOXDATA block read by SoftModalMessageBox on
// Windows Vista and later.
type msgBoxData struct {
	Params      msgBoxParams
	OwnerWindow uintptr
	Padding     uint32
	LanguageID  uint16
	ButtonIDs   *int32
	ButtonTexts **uint16
	ButtonCount uint32
	DefButton   uint32
	CancelID    uint32
	Timeout     uint32
	WindowList  uintptr
	Reserved    [20]uint32
}

// legacyMsgBoxData is MSGBOXDATA as laid out by Windows XP, which has no
// padding DWORD after the owner window.
type legacyMsgBoxData struct {
	Params      msgBoxParams
	OwnerWindow uintptr
	LanguageID  uint16
	ButtonIDs   *int32
	ButtonTexts **uint16
	ButtonCount uint32
	DefButton   uint32
	CancelID    uint32
	Timeout     uint32
	WindowList  uintptr
	Reserved    [20]uint32
}

// nativeLayout owns a MSGBOXDATA block and every buffer it points into.
// It must stay reachable until the call returns.
type nativeLayout struct {
	modern   msgBoxData
	legacy   legacyMsgBoxData
	isLegacy bool

	text     []uint16
	caption  []uint16
	iconName []uint16
	ids      []int32
	labels   [][]uint16
	texts    []*uint16
}

func encodeLayout(p *Prepared, legacy bool) *nativeLayout {
	l := &nativeLayout{isLegacy: legacy}
	l.text = utf16z(p.Text)
	l.caption = utf16z(p.Caption)

	params := msgBoxParams{
		Size:     uint32(unsafe.Sizeof(msgBoxParams{})),
		Owner:    p.Owner,
		Instance: p.Instance,
		Text:     &l.text[0],
		Caption:  &l.caption[0],
		Style:    uint32(p.Style),
	}
	switch {
	case p.Icon.Name != "":
		l.iconName = utf16z(p.Icon.Name)
		params.Icon = uintptr(unsafe.Pointer(&l.iconName[0]))
	case p.Icon.ID != 0:
		params.Icon = uintptr(p.Icon.ID)
	}

	n := len(p.IDs)
	l.ids = make([]int32, n)
	l.labels = make([][]uint16, n)
	l.texts = make([]*uint16, n)
	for i := range p.IDs {
		l.ids[i] = int32(p.IDs[i])
		l.labels[i] = utf16z(p.Labels[i])
		l.texts[i] = &l.labels[i][0]
	}
	var ids *int32
	var texts **uint16
	if n > 0 {
		ids = &l.ids[0]
		texts = &l.texts[0]
	}

	if legacy {
		l.legacy = legacyMsgBoxData{
			Params:      params,
			LanguageID:  uint16(p.Language),
			ButtonIDs:   ids,
			ButtonTexts: texts,
			ButtonCount: uint32(n),
			DefButton:   p.DefButton,
			CancelID:    uint32(p.CancelID),
			Timeout:     p.TimeoutMs,
		}
		return l
	}
	l.modern = msgBoxData{
		Params:      params,
		LanguageID:  uint16(p.Language),
		ButtonIDs:   ids,
		ButtonTexts: texts,
		ButtonCount: uint32(n),
		DefButton:   p.DefButton,
		CancelID:    uint32(p.CancelID),
		Timeout:     p.TimeoutMs,
	}
	return l
}

// pointer returns the address handed to SoftModalMessageBox.
func (l *nativeLayout) pointer() unsafe.Pointer {
	if l.isLegacy {
		return unsafe.Pointer(&l.legacy)
	}
	return unsafe.Pointer(&l.modern)
}

func utf16z(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}
