//go:build windows

package msgbox

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"

	"softmodal/internal/win32"
)

type nativeBackend struct{}

// Native returns the backend calling user32!SoftModalMessageBox.
func Native() Backend { return nativeBackend{} }

func (nativeBackend) Probe() Capabilities {
	return Capabilities{
		SoftModal:      win32.FindSoftModalMessageBox() == nil,
		ExtendedLoader: win32.HasLoadStringBaseEx(),
	}
}

func (nativeBackend) Unavailable() error {
	if err := win32.FindSoftModalMessageBox(); err != nil {
		return fmt.Errorf("%w: %v", ErrEntryPointNotFound, err)
	}
	return ErrEntryPointNotFound
}

func (nativeBackend) Strings(caps Capabilities) StringLoader {
	module, err := win32.User32()
	if err != nil {
		return nil
	}
	return &user32Strings{module: module, extended: caps.ExtendedLoader}
}

func (nativeBackend) Invoke(p *Prepared, caps Capabilities) (ButtonID, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l := encodeLayout(p, caps.LegacyLayout())
	ret, err := win32.SoftModalMessageBox(l.pointer())
	runtime.KeepAlive(l)
	if ret == 0 {
		if err != nil {
			return IDFailed, fmt.Errorf("%w: %v", ErrDialogFailed, err)
		}
		return IDFailed, ErrDialogFailed
	}
	return ButtonID(ret), nil
}

// user32Strings reads stock labels from user32's string table.
type user32Strings struct {
	module   windows.Handle
	extended bool
}

func (s *user32Strings) LoadString(id uint32, lang LangID) (string, bool) {
	if s.extended {
		return win32.LoadStringBaseEx(s.module, id, uint16(lang))
	}
	block, index := StringBlockID(id)
	data, err := win32.FindStringBlock(s.module, block, uint16(lang))
	if err != nil {
		return "", false
	}
	return ParseStringBlock(data, index)
}

func (s *user32Strings) LoadDefault(id uint32) (string, bool) {
	return win32.LoadString(s.module, id)
}

func systemCodePage() uint32 {
	if cp := win32.ACP(); cp != 0 {
		return cp
	}
	return 1252
}

// SystemLanguage returns the system default LANGID.
func SystemLanguage() LangID {
	return LangID(win32.SystemDefaultLangID())
}
