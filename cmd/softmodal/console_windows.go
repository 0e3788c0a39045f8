//go:build windows

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"

	"softmodal/internal/core"
	"softmodal/internal/win32"
)

const attachParentProcess = ^uint32(0)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole    = kernel32.NewProc("AttachConsole")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

// ensureConsole attaches to the parent console when built as a GUI
// executable so the result line reaches the calling shell.
func ensureConsole() {
	if hasConsole() {
		return
	}
	if r, _, _ := procAttachConsole.Call(uintptr(attachParentProcess)); r == 0 {
		return
	}
	redirectStdHandles()
}

func hasConsole() bool {
	if hwnd, _, _ := procGetConsoleWindow.Call(); hwnd != 0 {
		return true
	}
	handle, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return false
	}
	return handle != 0 && handle != windows.InvalidHandle
}

func redirectStdHandles() {
	if h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE); err == nil && h != 0 && h != windows.InvalidHandle {
		if f := os.NewFile(uintptr(h), "CONOUT$"); f != nil {
			os.Stdout = f
		}
	}
	if h, err := windows.GetStdHandle(windows.STD_ERROR_HANDLE); err == nil && h != 0 && h != windows.InvalidHandle {
		if f := os.NewFile(uintptr(h), "CONOUT$"); f != nil {
			os.Stderr = f
		}
	}
}

// reportFatal prints to stderr and also raises a plain MessageBoxW when no
// console is attached.
func reportFatal(message string) {
	fmt.Fprintln(os.Stderr, message)
	if !hasConsole() {
		win32.ShowMessage(message, core.AppName, win32.MBOK|win32.MBIconError)
	}
}
