package msgbox

import (
	"time"

	"softmodal/internal/core"
)

// Infinite is the timeout value meaning "never close automatically".
const Infinite uint32 = 0xFFFFFFFF

// Request describes one message box.
type Request struct {
	// Owner is the owning window handle, or 0 for none.
	Owner   uintptr
	Text    string
	Caption string
	Style   Style
	// Buttons are shown in order. Nil or empty shows a single OK button;
	// entries after the 11th are ignored.
	Buttons []Button
	// Timeout closes the dialog with IDTimeout. Zero waits forever.
	Timeout time.Duration
	// Instance is the module holding Icon when Icon is not a system icon.
	Instance uintptr
	Icon     Icon
	// Language selects the language of stock button labels.
	Language LangID
}

// Prepared is a Request normalized for a backend.
type Prepared struct {
	Owner     uintptr
	Text      string
	Caption   string
	Style     Style
	Instance  uintptr
	Icon      Icon
	Language  LangID
	IDs       []ButtonID
	Labels    []string
	Sources   []LabelSource
	DefButton uint32
	// CancelID is the id reported by Escape or the close control. Zero
	// means the close control is disabled.
	CancelID ButtonID
	// TimeoutMs is Infinite when the request has no timeout.
	TimeoutMs uint32
}

// EscapeResult returns the id reported when the user dismisses the dialog
// without pressing a button, and false when dismissal is disabled.
func (p *Prepared) EscapeResult() (ButtonID, bool) {
	if p.CancelID == 0 {
		return 0, false
	}
	return p.CancelID, true
}

// Prepare normalizes req, filling missing labels from resolver.
func Prepare(req Request, resolver *LabelResolver) Prepared {
	buttons := req.Buttons
	if len(buttons) == 0 {
		buttons = []Button{{ID: IDOK}}
	}
	if len(buttons) > MaxButtons {
		buttons = buttons[:MaxButtons]
	}

	p := Prepared{
		Owner:     req.Owner,
		Text:      core.SanitizeText(req.Text),
		Caption:   core.SanitizeText(req.Caption),
		Style:     req.Style,
		Instance:  req.Instance,
		Icon:      req.Icon,
		Language:  req.Language,
		IDs:       make([]ButtonID, len(buttons)),
		Labels:    make([]string, len(buttons)),
		Sources:   make([]LabelSource, len(buttons)),
		TimeoutMs: timeoutMs(req.Timeout),
	}

	hasCancel := false
	for i, b := range buttons {
		p.IDs[i] = b.ID
		if b.ID == IDCancel {
			hasCancel = true
		}
		if b.Text != "" {
			p.Labels[i] = core.SanitizeText(b.Text)
			p.Sources[i] = SourceCaller
			continue
		}
		p.Labels[i], p.Sources[i] = resolver.Resolve(b.ID, req.Language)
	}

	if !req.Icon.IsZero() {
		p.Style = p.Style&^IconMask | UserIcon
	}
	p.DefButton = p.Style.DefaultIndex()

	switch {
	case len(p.IDs) == 1 && p.IDs[0] == IDOK:
		p.CancelID = IDOK
	case hasCancel:
		p.CancelID = IDCancel
		p.Style = p.Style&^TypeMask | StyleOKCancel
	default:
		// With MB_OK the primitive reports IDOK for every button.
		p.Style = p.Style&^TypeMask | StyleOKCancel
	}
	return p
}

func timeoutMs(d time.Duration) uint32 {
	if d <= 0 {
		return Infinite
	}
	ms := d.Milliseconds()
	if ms < 1 {
		return 1
	}
	if ms >= int64(Infinite) {
		return Infinite - 1
	}
	return uint32(ms)
}
