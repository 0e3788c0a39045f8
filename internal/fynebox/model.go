// Package fynebox renders prepared message boxes with fyne on systems
// without SoftModalMessageBox.
package fynebox

import (
	"time"

	"softmodal/internal/core"
	"softmodal/internal/msgbox"
)

type iconKind int

const (
	iconNone iconKind = iota
	iconInfo
	iconWarning
	iconError
	iconQuestion
)

type modelButton struct {
	ID      msgbox.ButtonID
	Label   string
	Default bool
}

// model is the toolkit independent view of a prepared dialog.
type model struct {
	Title     string
	Text      string
	Icon      iconKind
	Buttons   []modelButton
	Escape    msgbox.ButtonID
	CanEscape bool
	Timeout   time.Duration
}

func newModel(p *msgbox.Prepared) model {
	m := model{
		Title: p.Caption,
		Text:  p.Text,
		Icon:  kindOf(p),
	}
	if m.Title == "" {
		// MessageBox uses "Error" for a missing caption.
		m.Title = "Error"
	}
	def := int(p.DefButton)
	if def >= len(p.IDs) {
		def = 0
	}
	for i, id := range p.IDs {
		m.Buttons = append(m.Buttons, modelButton{
			ID:      id,
			Label:   core.StripMnemonic(p.Labels[i]),
			Default: i == def,
		})
	}
	m.Escape, m.CanEscape = p.EscapeResult()
	if p.TimeoutMs != msgbox.Infinite {
		m.Timeout = time.Duration(p.TimeoutMs) * time.Millisecond
	}
	return m
}

func kindOf(p *msgbox.Prepared) iconKind {
	if p.Style&msgbox.IconMask == msgbox.UserIcon {
		switch p.Icon {
		case msgbox.IconHandRes:
			return iconError
		case msgbox.IconQuestionRes:
			return iconQuestion
		case msgbox.IconWarningRes, msgbox.IconShield:
			return iconWarning
		case msgbox.IconInformationRes:
			return iconInfo
		default:
			return iconNone
		}
	}
	switch p.Style & msgbox.IconMask {
	case msgbox.IconHand:
		return iconError
	case msgbox.IconQuestion:
		return iconQuestion
	case msgbox.IconExclamation:
		return iconWarning
	case msgbox.IconAsterisk:
		return iconInfo
	default:
		return iconNone
	}
}
