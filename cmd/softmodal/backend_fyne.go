//go:build cgo && !(windows && arm64)

package main

import (
	"softmodal/internal/config"
	"softmodal/internal/fynebox"
	"softmodal/internal/msgbox"
)

func newBackend(name string) (msgbox.Backend, error) {
	if name == config.BackendFyne {
		return fynebox.New(), nil
	}
	return msgbox.Native(), nil
}
