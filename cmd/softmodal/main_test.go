package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"softmodal/internal/config"
	"softmodal/internal/logger"
	"softmodal/internal/msgbox"
)

// recordingBackend captures the prepared dialog instead of showing it.
type recordingBackend struct {
	prepared *msgbox.Prepared
}

func (b *recordingBackend) Probe() msgbox.Capabilities {
	return msgbox.Capabilities{SoftModal: true, ExtendedLoader: true}
}

func (b *recordingBackend) Strings(msgbox.Capabilities) msgbox.StringLoader { return nil }

func (b *recordingBackend) Invoke(p *msgbox.Prepared, _ msgbox.Capabilities) (msgbox.ButtonID, error) {
	cp := *p
	b.prepared = &cp
	return msgbox.IDOK, nil
}

func TestParseOptionsBuildsRequest(t *testing.T) {
	opts, err := parseOptions([]string{
		"-text", `Line one\nLine two`,
		"-caption", "Editor",
		"-button", "yes=Oui",
		"-button", "no",
		"-button", "cancel",
		"-icon", "question",
		"-default", "2",
		"-timeout", "5s",
		"-lang", "ja",
		"-topmost",
	}, nil, io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	req, err := opts.request()
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	want := msgbox.Request{
		Text:     "Line one\nLine two",
		Caption:  "Editor",
		Style:    msgbox.IconQuestion | msgbox.DefButton(2) | msgbox.TopMost | msgbox.SetForeground,
		Buttons:  []msgbox.Button{{ID: msgbox.IDYes, Text: "Oui"}, {ID: msgbox.IDNo}, {ID: msgbox.IDCancel}},
		Timeout:  5 * time.Second,
		Language: 0x0411,
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("request (-want +got):\n%s", diff)
	}
}

func TestParseOptionsUsesConfigDefaults(t *testing.T) {
	cfg := &config.Config{
		Caption:   "Installer",
		Language:  "fr",
		CodePage:  932,
		TimeoutMs: 1500,
		Backend:   "FYNE",
	}
	opts, err := parseOptions([]string{"hello", "world"}, cfg, io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.Caption != "Installer" || opts.Lang != "fr" || opts.CodePage != 932 {
		t.Errorf("config defaults not applied: %+v", opts)
	}
	if opts.Timeout != 1500*time.Millisecond {
		t.Errorf("Timeout = %v", opts.Timeout)
	}
	if opts.Backend != config.BackendFyne {
		t.Errorf("Backend = %q", opts.Backend)
	}
	if opts.Text != "hello world" {
		t.Errorf("Text = %q, want positional arguments", opts.Text)
	}
}

func TestParseOptionsRejectsBadInput(t *testing.T) {
	tests := [][]string{
		{"-button", "bogus"},
		{"-button", "12"},
		{"-backend", "qt"},
		{"-codepage", "70000"},
	}
	for _, args := range tests {
		if _, err := parseOptions(args, nil, io.Discard); err == nil {
			t.Errorf("parseOptions(%q) succeeded", args)
		}
	}

	bad := []*options{
		{Icon: "sparkles", Default: 1},
		{Icon: "none", Default: 0},
		{Icon: "none", Default: 1, ResourceIcon: "nope"},
		{Icon: "none", Default: 1, Lang: "xx-invalid-tag-!!"},
	}
	for _, o := range bad {
		if _, err := o.request(); err == nil {
			t.Errorf("request(%+v) succeeded", o)
		}
	}
}

func TestResourceIcon(t *testing.T) {
	tests := []struct {
		in   string
		want msgbox.Icon
	}{
		{"", msgbox.Icon{}},
		{"Shield", msgbox.IconShield},
		{"32516", msgbox.IconInformationRes},
		{"0x7F00", msgbox.IconApplication},
	}
	for _, tt := range tests {
		got, err := (&options{ResourceIcon: tt.in}).icon()
		if err != nil {
			t.Errorf("icon(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("icon(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestANSIRequestReadsRawTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.txt")
	raw := []byte{0x92, 0x86, 0x8E, 0x7E}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err := parseOptions([]string{"-ansi", "-codepage", "932", "-text-file", path, "-button", "abort", "-button", "retry=Again"}, nil, io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	req, err := opts.ansiRequest()
	if err != nil {
		t.Fatalf("ansiRequest: %v", err)
	}
	if diff := cmp.Diff(raw, req.Text); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}
	if req.CodePage != 932 {
		t.Errorf("CodePage = %d", req.CodePage)
	}
	wantButtons := []msgbox.ANSIButton{{ID: msgbox.IDAbort}, {ID: msgbox.IDRetry, Text: []byte("Again")}}
	if diff := cmp.Diff(wantButtons, req.Buttons); diff != "" {
		t.Errorf("buttons (-want +got):\n%s", diff)
	}
}

func TestSaveToWritesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	opts := &options{Caption: "Setup", Lang: "ja", CodePage: 932, Timeout: 2 * time.Second, Backend: config.BackendNative}
	if err := opts.saveTo(cfg); err != nil {
		t.Fatalf("saveTo: %v", err)
	}
	loaded, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Caption != "Setup" || loaded.Language != "ja" || loaded.CodePage != 932 || loaded.TimeoutMs != 2000 {
		t.Errorf("saved config = %+v", loaded)
	}
}

func TestButtonListString(t *testing.T) {
	var list buttonList
	_ = list.Set("ok")
	_ = list.Set("cancel=Annuler")
	if got := list.String(); got != "ok,cancel=Annuler" {
		t.Errorf("String() = %q", got)
	}
}

func TestANSIRequestEncodesCommandLineText(t *testing.T) {
	tests := []struct {
		name     string
		codePage string
		caption  string
		text     string
		label    string
		want     []byte
	}{
		{"windows-1252", "1252", "Café", "Sì", "Sì", []byte("Caf\xe9")},
		{"shift-jis", "932", "中止", "続行しますか", "中止", []byte{0x92, 0x86, 0x8e, 0x7e}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseOptions([]string{
				"-ansi", "-codepage", tt.codePage,
				"-caption", tt.caption,
				"-text", tt.text,
				"-button", "yes=" + tt.label,
				"-button", "cancel",
			}, nil, io.Discard)
			if err != nil {
				t.Fatalf("parseOptions: %v", err)
			}
			req, err := opts.ansiRequest()
			if err != nil {
				t.Fatalf("ansiRequest: %v", err)
			}
			if diff := cmp.Diff(tt.want, req.Caption); diff != "" {
				t.Errorf("encoded caption (-want +got):\n%s", diff)
			}
			if req.Buttons[1].Text != nil {
				t.Errorf("stock label encoded as %q", req.Buttons[1].Text)
			}

			backend := &recordingBackend{}
			if _, err := msgbox.New(backend, nil).ShowANSI(req); err != nil {
				t.Fatalf("ShowANSI: %v", err)
			}
			p := backend.prepared
			if p.Caption != tt.caption || p.Text != tt.text || p.Labels[0] != tt.label {
				t.Errorf("dialog shows caption=%q text=%q label=%q", p.Caption, p.Text, p.Labels[0])
			}
			if p.Labels[1] != "Cancel" {
				t.Errorf("stock label = %q", p.Labels[1])
			}
		})
	}
}

func TestSavedTimeout(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want uint32
	}{
		{-5 * time.Second, 0},
		{0, 0},
		{1500 * time.Millisecond, 1500},
		{time.Duration(msgbox.Infinite) * time.Millisecond, msgbox.Infinite - 1},
	}
	for _, tt := range tests {
		if got := savedTimeout(tt.in); got != tt.want {
			t.Errorf("savedTimeout(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSaveToClampsNegativeTimeout(t *testing.T) {
	cfg, err := config.LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	opts := &options{Timeout: -time.Minute, Backend: config.BackendNative}
	if err := opts.saveTo(cfg); err != nil {
		t.Fatalf("saveTo: %v", err)
	}
	if cfg.TimeoutMs != 0 {
		t.Errorf("TimeoutMs = %d, want 0", cfg.TimeoutMs)
	}
}

func TestLogTailKeepsRecentLines(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "")
	tail := &logTail{}
	log.SetObserver(tail.Append)
	for i := 1; i <= maxTailLines+2; i++ {
		log.Logf("step %d", i)
	}

	got := tail.report("Failed to show message box")
	if !strings.HasPrefix(got, "Failed to show message box\n\nRecent log:\n") {
		t.Errorf("report = %q", got)
	}
	if strings.Contains(got, "step 2\n") || !strings.Contains(got, "step 3") || !strings.HasSuffix(got, "step 7") {
		t.Errorf("report should hold the last %d lines: %q", maxTailLines, got)
	}
	if empty := (&logTail{}).report("boom"); empty != "boom" {
		t.Errorf("empty report = %q", empty)
	}
}
