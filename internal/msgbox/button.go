package msgbox

import (
	"fmt"
	"strconv"
	"strings"
)

// ButtonID is the command id a button reports when it closes the dialog.
type ButtonID int32

const (
	IDFailed   ButtonID = 0
	IDOK       ButtonID = 1
	IDCancel   ButtonID = 2
	IDAbort    ButtonID = 3
	IDRetry    ButtonID = 4
	IDIgnore   ButtonID = 5
	IDYes      ButtonID = 6
	IDNo       ButtonID = 7
	IDClose    ButtonID = 8
	IDHelp     ButtonID = 9
	IDTryAgain ButtonID = 10
	IDContinue ButtonID = 11
	IDTimeout  ButtonID = 32000
)

// MaxButtons is the number of buttons SoftModalMessageBox can lay out.
const MaxButtons = 11

var buttonNames = map[ButtonID]string{
	IDFailed:   "failed",
	IDOK:       "ok",
	IDCancel:   "cancel",
	IDAbort:    "abort",
	IDRetry:    "retry",
	IDIgnore:   "ignore",
	IDYes:      "yes",
	IDNo:       "no",
	IDClose:    "close",
	IDHelp:     "help",
	IDTryAgain: "tryagain",
	IDContinue: "continue",
	IDTimeout:  "timeout",
}

func (id ButtonID) String() string {
	if name, ok := buttonNames[id]; ok {
		return name
	}
	return strconv.Itoa(int(id))
}

// Valid reports whether id is one of the stock dialog commands IDOK..IDCONTINUE.
func (id ButtonID) Valid() bool {
	return id >= IDOK && id <= IDContinue
}

// Button pairs a command id with its label. An empty Text selects the
// localized stock label for the id.
type Button struct {
	ID   ButtonID
	Text string
}

// ParseButton parses "ok", "cancel=Annuler" or "6=Sì".
func ParseButton(s string) (Button, error) {
	name, text, _ := strings.Cut(s, "=")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Button{}, fmt.Errorf("empty button id in %q", s)
	}
	for id, n := range buttonNames {
		if n == name && id.Valid() {
			return Button{ID: id, Text: text}, nil
		}
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		return Button{}, fmt.Errorf("unknown button %q", name)
	}
	id := ButtonID(n)
	if !id.Valid() {
		return Button{}, fmt.Errorf("button id %d out of range %d..%d", n, IDOK, IDContinue)
	}
	return Button{ID: id, Text: text}, nil
}
