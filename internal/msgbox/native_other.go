//go:build !windows

package msgbox

import (
	"fmt"
	"runtime"
)

type nativeBackend struct{}

// Native returns the system backend. Outside Windows it reports the entry
// point as missing.
func Native() Backend { return nativeBackend{} }

func (nativeBackend) Probe() Capabilities { return Capabilities{} }

func (nativeBackend) Unavailable() error {
	return fmt.Errorf("%w (%s): %w", ErrUnsupported, runtime.GOOS, ErrEntryPointNotFound)
}

func (nativeBackend) Strings(Capabilities) StringLoader { return nil }

func (b nativeBackend) Invoke(*Prepared, Capabilities) (ButtonID, error) {
	return IDFailed, b.Unavailable()
}

func systemCodePage() uint32 { return 1252 }

// SystemLanguage returns LangNeutral outside Windows.
func SystemLanguage() LangID { return LangNeutral }
