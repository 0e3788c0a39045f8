//go:build cgo && !(windows && arm64)

package fynebox

import (
	"errors"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	fyneApp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"softmodal/internal/core"
	"softmodal/internal/msgbox"
)

// ErrAlreadyShown is returned for a second dialog: a fyne app runs only
// once per process.
var ErrAlreadyShown = errors.New("fyne backend can show one dialog per process")

// Backend shows dialogs in a fyne window. Invoke must be called from the
// main goroutine.
type Backend struct {
	mu   sync.Mutex
	used bool
}

// New returns a fyne backend.
func New() *Backend {
	return &Backend{}
}

func (b *Backend) Probe() msgbox.Capabilities {
	return msgbox.Capabilities{SoftModal: true, ExtendedLoader: true}
}

// Strings returns nil: fyne has no user32 string table, so stock labels
// come from the built-in table.
func (b *Backend) Strings(msgbox.Capabilities) msgbox.StringLoader {
	return nil
}

func (b *Backend) Invoke(p *msgbox.Prepared, _ msgbox.Capabilities) (msgbox.ButtonID, error) {
	b.mu.Lock()
	if b.used {
		b.mu.Unlock()
		return msgbox.IDFailed, ErrAlreadyShown
	}
	b.used = true
	b.mu.Unlock()

	m := newModel(p)
	application := fyneApp.NewWithID(core.AppID)
	window := application.NewWindow(m.Title)
	window.SetMaster()
	window.SetFixedSize(true)

	var (
		once   sync.Once
		result = msgbox.IDFailed
	)
	finish := func(id msgbox.ButtonID) {
		once.Do(func() {
			result = id
			window.Close()
		})
	}

	buttons := container.NewHBox(layout.NewSpacer())
	var defaultID msgbox.ButtonID
	for _, mb := range m.Buttons {
		id := mb.ID
		btn := widget.NewButton(mb.Label, func() { finish(id) })
		if mb.Default {
			btn.Importance = widget.HighImportance
			defaultID = id
		}
		buttons.Add(btn)
	}
	buttons.Add(layout.NewSpacer())

	text := widget.NewLabel(m.Text)
	text.Wrapping = fyne.TextWrapWord
	var body fyne.CanvasObject = text
	if res := iconResource(m.Icon); res != nil {
		body = container.NewBorder(nil, nil, widget.NewIcon(res), nil, text)
	}
	window.SetContent(container.NewVBox(body, widget.NewSeparator(), buttons))
	window.Resize(fyne.NewSize(360, 0))

	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			if m.CanEscape {
				finish(m.Escape)
			}
		case fyne.KeyReturn, fyne.KeyEnter:
			if defaultID != 0 {
				finish(defaultID)
			}
		}
	})
	window.SetCloseIntercept(func() {
		if m.CanEscape {
			finish(m.Escape)
		}
	})

	if m.Timeout > 0 {
		timer := time.AfterFunc(m.Timeout, func() { finish(msgbox.IDTimeout) })
		defer timer.Stop()
	}

	window.CenterOnScreen()
	window.ShowAndRun()
	return result, nil
}

func iconResource(kind iconKind) fyne.Resource {
	switch kind {
	case iconInfo:
		return theme.InfoIcon()
	case iconWarning:
		return theme.WarningIcon()
	case iconError:
		return theme.ErrorIcon()
	case iconQuestion:
		return theme.QuestionIcon()
	default:
		return nil
	}
}
