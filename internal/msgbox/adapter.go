package msgbox

import (
	"errors"
	"sync"

	"softmodal/internal/logger"
)

var (
	// ErrEntryPointNotFound means user32!SoftModalMessageBox could not be
	// resolved. The call cannot be retried on this system.
	ErrEntryPointNotFound = errors.New("SoftModalMessageBox entry point not found")
	// ErrUnsupported is returned by the native backend on non-Windows systems.
	ErrUnsupported = errors.New("SoftModalMessageBox is only available on Windows")
	// ErrDialogFailed means the system could not create the dialog.
	ErrDialogFailed = errors.New("SoftModalMessageBox failed")
)

// Capabilities describes what the running system provides.
type Capabilities struct {
	// SoftModal is set when the private entry point is resolvable.
	SoftModal bool
	// ExtendedLoader is set when kernel32!LoadStringBaseExW exists, which
	// is the case from Windows Vista on.
	ExtendedLoader bool
}

// LegacyLayout reports whether MSGBOXDATA must use the Windows XP layout.
func (c Capabilities) LegacyLayout() bool {
	return !c.ExtendedLoader
}

// Backend displays prepared dialogs.
type Backend interface {
	// Probe inspects the system. It is called once per dialog.
	Probe() Capabilities
	// Strings returns the stock label loader for caps, or nil.
	Strings(caps Capabilities) StringLoader
	// Invoke blocks until the dialog closes and returns the button id.
	Invoke(p *Prepared, caps Capabilities) (ButtonID, error)
}

// Adapter turns requests into calls on a Backend.
type Adapter struct {
	backend Backend
	log     *logger.Logger
}

// New returns an adapter over backend. log may be nil.
func New(backend Backend, log *logger.Logger) *Adapter {
	return &Adapter{backend: backend, log: log}
}

// NewNative returns an adapter over the system SoftModalMessageBox.
func NewNative(log *logger.Logger) *Adapter {
	return New(Native(), log)
}

// Show displays req and blocks until a button is pressed or the timeout
// expires. It returns IDFailed and an error when the dialog could not be
// shown.
func (a *Adapter) Show(req Request) (ButtonID, error) {
	caps := a.backend.Probe()
	if !caps.SoftModal {
		err := ErrEntryPointNotFound
		if u, ok := a.backend.(interface{ Unavailable() error }); ok {
			err = u.Unavailable()
		}
		a.log.Warn().Err(err).Msg("SoftModalMessageBox is not available")
		return IDFailed, err
	}

	p := Prepare(req, NewLabelResolver(a.backend.Strings(caps)))
	a.log.Debug().
		Int("buttons", len(p.IDs)).
		Uint32("style", uint32(p.Style)).
		Int32("cancel", int32(p.CancelID)).
		Uint32("timeout_ms", p.TimeoutMs).
		Bool("legacy_layout", caps.LegacyLayout()).
		Str("language", p.Language.String()).
		Msg("showing message box")
	for i, src := range p.Sources {
		if src == SourceBuiltin {
			a.log.Debug().Str("button", p.IDs[i].String()).Msg("stock label unavailable, using built-in text")
		}
	}

	id, err := a.backend.Invoke(&p, caps)
	if err != nil {
		a.log.Warn().Err(err).Msg("message box failed")
		return IDFailed, err
	}
	a.log.Debug().Str("result", id.String()).Msg("message box closed")
	return id, nil
}

// ShowANSI converts the narrow strings of req before showing it. The
// conversion buffers are released before returning.
func (a *Adapter) ShowANSI(req ANSIRequest) (ButtonID, error) {
	cp := req.CodePage
	if cp == 0 {
		cp = systemCodePage()
	}
	conv := newConversion(cp)
	defer conv.release()
	return a.Show(req.widen(conv))
}

var (
	defaultOnce    sync.Once
	defaultAdapter *Adapter
)

func defaultNative() *Adapter {
	defaultOnce.Do(func() {
		defaultAdapter = NewNative(nil)
	})
	return defaultAdapter
}

// Show displays a message box with no timeout and neutral stock labels.
func Show(owner uintptr, text, caption string, style Style, buttons ...Button) (ButtonID, error) {
	return defaultNative().Show(Request{Owner: owner, Text: text, Caption: caption, Style: style, Buttons: buttons})
}

// ShowEx displays req on the system dialog.
func ShowEx(req Request) (ButtonID, error) {
	return defaultNative().Show(req)
}

// ShowANSI is Show for strings in the system ANSI code page.
func ShowANSI(owner uintptr, text, caption []byte, style Style, buttons ...ANSIButton) (ButtonID, error) {
	return defaultNative().ShowANSI(ANSIRequest{Owner: owner, Text: text, Caption: caption, Style: style, Buttons: buttons})
}

// ShowExANSI displays req on the system dialog.
func ShowExANSI(req ANSIRequest) (ButtonID, error) {
	return defaultNative().ShowANSI(req)
}
