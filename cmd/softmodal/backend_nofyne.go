//go:build !cgo || (windows && arm64)

package main

import (
	"fmt"

	"softmodal/internal/config"
	"softmodal/internal/msgbox"
)

func newBackend(name string) (msgbox.Backend, error) {
	if name == config.BackendFyne {
		return nil, fmt.Errorf("the %s backend needs a cgo build", name)
	}
	return msgbox.Native(), nil
}
