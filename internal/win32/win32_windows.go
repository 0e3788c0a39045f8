//go:build windows

package win32

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modUser32   = windows.NewLazySystemDLL("user32.dll")
	modKernel32 = windows.NewLazySystemDLL("kernel32.dll")
)

var (
	procSoftModalMessageBox    = modUser32.NewProc("SoftModalMessageBox")
	procMessageBox             = modUser32.NewProc("MessageBoxW")
	procLoadString             = modUser32.NewProc("LoadStringW")
	procLoadStringBaseEx       = modKernel32.NewProc("LoadStringBaseExW")
	procFindResourceEx         = modKernel32.NewProc("FindResourceExW")
	procGetACP                 = modKernel32.NewProc("GetACP")
	procGetSystemDefaultLangID = modKernel32.NewProc("GetSystemDefaultLangID")
)

const (
	rtString = 6

	// labelBufferLen matches the fixed label buffers of the stock dialog.
	labelBufferLen = 32
)

// FindSoftModalMessageBox resolves user32!SoftModalMessageBox.
func FindSoftModalMessageBox() error {
	return procSoftModalMessageBox.Find()
}

// HasLoadStringBaseEx reports whether kernel32 exports LoadStringBaseExW.
func HasLoadStringBaseEx() bool {
	return procLoadStringBaseEx.Find() == nil
}

// User32 returns the module handle of user32.dll.
func User32() (windows.Handle, error) {
	if err := modUser32.Load(); err != nil {
		return 0, err
	}
	return windows.Handle(modUser32.Handle()), nil
}

// SoftModalMessageBox calls the private dialog entry point with a
// MSGBOXDATA block. It returns 0 on failure.
func SoftModalMessageBox(data unsafe.Pointer) (int32, error) {
	if err := procSoftModalMessageBox.Find(); err != nil {
		return 0, err
	}
	ret, _, err := procSoftModalMessageBox.Call(uintptr(data))
	if ret == 0 {
		if err != syscall.Errno(0) {
			return 0, err
		}
		return 0, nil
	}
	return int32(ret), nil
}

// LoadStringBaseEx loads string id of module in language lang.
func LoadStringBaseEx(module windows.Handle, id uint32, lang uint16) (string, bool) {
	if procLoadStringBaseEx.Find() != nil {
		return "", false
	}
	var buf [labelBufferLen]uint16
	n, _, _ := procLoadStringBaseEx.Call(
		uintptr(module),
		uintptr(id),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(lang),
	)
	if n == 0 || n > uintptr(len(buf)) {
		return "", false
	}
	return windows.UTF16ToString(buf[:n]), true
}

// LoadString loads string id of module in the default language.
func LoadString(module windows.Handle, id uint32) (string, bool) {
	var buf [labelBufferLen]uint16
	n, _, _ := procLoadString.Call(
		uintptr(module),
		uintptr(id),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if n == 0 || n > uintptr(len(buf)) {
		return "", false
	}
	return windows.UTF16ToString(buf[:n]), true
}

// FindStringBlock returns the raw RT_STRING block of module in language lang.
func FindStringBlock(module windows.Handle, block uint16, lang uint16) ([]byte, error) {
	res, _, err := procFindResourceEx.Call(uintptr(module), rtString, uintptr(block), uintptr(lang))
	if res == 0 {
		return nil, err
	}
	return windows.LoadResourceData(module, windows.Handle(res))
}

// ACP returns the system ANSI code page.
func ACP() uint32 {
	cp, _, _ := procGetACP.Call()
	return uint32(cp)
}

// SystemDefaultLangID returns the system default LANGID.
func SystemDefaultLangID() uint16 {
	id, _, _ := procGetSystemDefaultLangID.Call()
	return uint16(id)
}

// Message box flags for ShowMessage.
const (
	MBOK          = 0x00000000
	MBIconError   = 0x00000010
	MBIconWarning = 0x00000030
	MBIconInfo    = 0x00000040
)

// ShowMessage displays a plain MessageBoxW. It is used to report errors
// when the private entry point itself is missing.
func ShowMessage(text, title string, flags uint32) int {
	txtPtr, _ := windows.UTF16PtrFromString(text)
	titlePtr, _ := windows.UTF16PtrFromString(title)
	ret, _, _ := procMessageBox.Call(0, uintptr(unsafe.Pointer(txtPtr)), uintptr(unsafe.Pointer(titlePtr)), uintptr(flags))
	return int(ret)
}
