package msgbox

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStockStringID(t *testing.T) {
	if got := StockStringID(IDOK); got != 800 {
		t.Errorf("StockStringID(ok) = %d", got)
	}
	if got := StockStringID(IDContinue); got != 810 {
		t.Errorf("StockStringID(continue) = %d", got)
	}
}

func TestLabelResolutionOrder(t *testing.T) {
	ja := MakeLangID(0x11, 0x01)
	cancel := StockStringID(IDCancel)

	tests := []struct {
		name       string
		requested  map[loadKey]string
		defaults   map[uint32]string
		wantLabel  string
		wantSource LabelSource
		wantCalls  []string
	}{
		{
			name:       "requested language",
			requested:  map[loadKey]string{{cancel, ja}: "キャンセル"},
			defaults:   map[uint32]string{cancel: "Abbrechen"},
			wantLabel:  "キャンセル",
			wantSource: SourceRequested,
			wantCalls:  []string{"requested"},
		},
		{
			name:       "requested unavailable",
			requested:  map[loadKey]string{{cancel, 0x0409}: "Cancel"},
			defaults:   map[uint32]string{cancel: "Abbrechen"},
			wantLabel:  "Abbrechen",
			wantSource: SourceDefault,
			wantCalls:  []string{"requested", "default"},
		},
		{
			name:       "requested empty string",
			requested:  map[loadKey]string{{cancel, ja}: ""},
			defaults:   map[uint32]string{cancel: "Abbrechen"},
			wantLabel:  "Abbrechen",
			wantSource: SourceDefault,
			wantCalls:  []string{"requested", "default"},
		},
		{
			name:       "both unavailable",
			wantLabel:  "Cancel",
			wantSource: SourceBuiltin,
			wantCalls:  []string{"requested", "default"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &fakeStrings{requested: tt.requested, defaults: tt.defaults}
			label, src := NewLabelResolver(loader).Resolve(IDCancel, ja)
			if label != tt.wantLabel || src != tt.wantSource {
				t.Errorf("Resolve = %q/%v, want %q/%v", label, src, tt.wantLabel, tt.wantSource)
			}
			if diff := cmp.Diff(tt.wantCalls, loader.calls); diff != "" {
				t.Errorf("calls (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabelNilLoaderUsesBuiltin(t *testing.T) {
	var nilResolver *LabelResolver
	for id := IDOK; id <= IDContinue; id++ {
		if got := NewLabelResolver(nil).Label(id, 0); got != BuiltinLabel(id) {
			t.Errorf("Label(%v) = %q", id, got)
		}
		if got := nilResolver.Label(id, 0); got != BuiltinLabel(id) {
			t.Errorf("nil resolver Label(%v) = %q", id, got)
		}
	}
	if BuiltinLabel(IDTryAgain) != "&Try Again" {
		t.Errorf("BuiltinLabel(tryagain) = %q", BuiltinLabel(IDTryAgain))
	}
}

func TestLabelInvalidIDSkipsLoader(t *testing.T) {
	loader := &fakeStrings{}
	label, src := NewLabelResolver(loader).Resolve(ButtonID(42), 0)
	if label != "42" || src != SourceBuiltin {
		t.Errorf("Resolve(42) = %q/%v", label, src)
	}
	if len(loader.calls) != 0 {
		t.Errorf("loader called for invalid id: %v", loader.calls)
	}
}

func TestLabelTruncatedToBuffer(t *testing.T) {
	long := strings.Repeat("x", 40)
	loader := &fakeStrings{defaults: map[uint32]string{StockStringID(IDOK): long}}
	got := NewLabelResolver(loader).Label(IDOK, 0)
	if len(got) != maxLabelUnits {
		t.Errorf("label length = %d, want %d", len(got), maxLabelUnits)
	}
}
