package msgbox

// Style is the MB_* bitmask accepted by MessageBox.
type Style uint32

const (
	StyleOK                Style = 0x00000000
	StyleOKCancel          Style = 0x00000001
	StyleAbortRetryIgnore  Style = 0x00000002
	StyleYesNoCancel       Style = 0x00000003
	StyleYesNo             Style = 0x00000004
	StyleRetryCancel       Style = 0x00000005
	StyleCancelTryContinue Style = 0x00000006
	TypeMask               Style = 0x0000000F

	IconHand        Style = 0x00000010
	IconQuestion    Style = 0x00000020
	IconExclamation Style = 0x00000030
	IconAsterisk    Style = 0x00000040
	UserIcon        Style = 0x00000080
	IconMask        Style = 0x000000F0
	IconError             = IconHand
	IconWarning           = IconExclamation
	IconInformation       = IconAsterisk

	DefMask Style = 0x00000F00

	ApplModal           Style = 0x00000000
	SystemModal         Style = 0x00001000
	TaskModal           Style = 0x00002000
	Help                Style = 0x00004000
	NoFocus             Style = 0x00008000
	SetForeground       Style = 0x00010000
	DefaultDesktopOnly  Style = 0x00020000
	TopMost             Style = 0x00040000
	Right               Style = 0x00080000
	RTLReading          Style = 0x00100000
	ServiceNotification Style = 0x00200000
)

// DefButton returns the MB_DEFBUTTONn bits for the 1-based button index n.
// SoftModalMessageBox honours indexes up to 11; out of range values select
// the first button.
func DefButton(n int) Style {
	if n < 1 || n > MaxButtons {
		return 0
	}
	return Style(n-1) << 8
}

// DefaultIndex returns the 0-based default button index encoded in s.
func (s Style) DefaultIndex() uint32 {
	return uint32(s&DefMask) >> 8
}

// Icon references an icon resource either by name or by integer id
// (MAKEINTRESOURCE). The zero value means no custom icon.
type Icon struct {
	Name string
	ID   uint16
}

// Predefined system icons, valid with a zero Request.Instance.
var (
	IconApplication    = Icon{ID: 32512}
	IconHandRes        = Icon{ID: 32513}
	IconQuestionRes    = Icon{ID: 32514}
	IconWarningRes     = Icon{ID: 32515}
	IconInformationRes = Icon{ID: 32516}
	IconWinLogo        = Icon{ID: 32517}
	IconShield         = Icon{ID: 32518}
)

// IsZero reports whether no icon is referenced.
func (i Icon) IsZero() bool {
	return i.Name == "" && i.ID == 0
}

// LangID is a Windows LANGID.
type LangID uint16

// MakeLangID mirrors the MAKELANGID macro.
func MakeLangID(primary, sub uint16) LangID {
	return LangID(sub<<10 | primary)
}

// Primary returns the primary language part of the id.
func (l LangID) Primary() uint16 { return uint16(l) & 0x3FF }

// Sub returns the sublanguage part of the id.
func (l LangID) Sub() uint16 { return uint16(l) >> 10 }
