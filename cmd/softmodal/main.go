package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"softmodal/internal/config"
	"softmodal/internal/core"
	"softmodal/internal/logger"
	"softmodal/internal/msgbox"
)

func main() {
	ensureConsole()
	os.Exit(run(os.Args[1:], os.Stdout))
}

type buttonList []msgbox.Button

func (b *buttonList) String() string {
	if b == nil {
		return ""
	}
	parts := make([]string, len(*b))
	for i, btn := range *b {
		parts[i] = btn.ID.String()
		if btn.Text != "" {
			parts[i] += "=" + btn.Text
		}
	}
	return strings.Join(parts, ",")
}

func (b *buttonList) Set(value string) error {
	btn, err := msgbox.ParseButton(value)
	if err != nil {
		return err
	}
	*b = append(*b, btn)
	return nil
}

type options struct {
	Text         string
	TextFile     string
	Caption      string
	Buttons      buttonList
	Icon         string
	ResourceIcon string
	Default      int
	Timeout      time.Duration
	Lang         string
	ANSI         bool
	CodePage     uint
	TopMost      bool
	Backend      string
	Save         bool
	Verbose      bool
}

func parseOptions(args []string, cfg *config.Config, output io.Writer) (*options, error) {
	opts := &options{
		Caption:  core.AppName,
		Backend:  config.BackendNative,
		Icon:     "none",
		CodePage: 0,
	}
	if cfg != nil {
		if cfg.Caption != "" {
			opts.Caption = cfg.Caption
		}
		opts.Backend = config.NormalizeBackend(cfg.Backend)
		opts.Lang = cfg.Language
		opts.CodePage = uint(cfg.CodePage)
		opts.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
	}

	fs := flag.NewFlagSet("softmodal", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.Text, "text", "", `Message text. "\n" starts a new line.`)
	fs.StringVar(&opts.TextFile, "text-file", "", "Read the message text from a file (raw bytes with -ansi).")
	fs.StringVar(&opts.Caption, "caption", opts.Caption, "Dialog title.")
	fs.Var(&opts.Buttons, "button", "Button as id[=label], e.g. ok, cancel=Annuler, 6=Sì. Repeatable, up to 11.")
	fs.StringVar(&opts.Icon, "icon", opts.Icon, "Stock icon: info, warning, error, question or none.")
	fs.StringVar(&opts.ResourceIcon, "resource-icon", "", "System icon resource: shield, application, winlogo, hand, question, warning, information or a number.")
	fs.IntVar(&opts.Default, "default", 1, "1-based index of the default button.")
	fs.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "Close the dialog after this long (0 waits forever).")
	fs.StringVar(&opts.Lang, "lang", opts.Lang, "Language of stock button labels: BCP 47 tag or LANGID.")
	fs.BoolVar(&opts.ANSI, "ansi", false, "Pass text through the narrow (code page) entry point.")
	fs.UintVar(&opts.CodePage, "codepage", opts.CodePage, "Code page for -ansi text; 0 uses the system ANSI code page.")
	fs.BoolVar(&opts.TopMost, "topmost", false, "Keep the dialog above other windows.")
	fs.StringVar(&opts.Backend, "backend", opts.Backend, "Dialog backend: native or fyne.")
	fs.BoolVar(&opts.Save, "save", false, "Store -caption, -lang, -codepage, -timeout and -backend as defaults.")
	fs.BoolVar(&opts.Verbose, "v", false, "Log debug details.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && opts.Text == "" && opts.TextFile == "" {
		opts.Text = strings.Join(fs.Args(), " ")
	}
	switch strings.ToLower(opts.Backend) {
	case config.BackendNative, config.BackendFyne:
		opts.Backend = strings.ToLower(opts.Backend)
	default:
		return nil, fmt.Errorf("unknown backend %q", opts.Backend)
	}
	if opts.CodePage > 0xFFFF {
		return nil, fmt.Errorf("code page %d out of range", opts.CodePage)
	}
	return opts, nil
}

var iconStyles = map[string]msgbox.Style{
	"none":     0,
	"info":     msgbox.IconInformation,
	"warning":  msgbox.IconWarning,
	"error":    msgbox.IconError,
	"question": msgbox.IconQuestion,
}

var resourceIcons = map[string]msgbox.Icon{
	"application": msgbox.IconApplication,
	"hand":        msgbox.IconHandRes,
	"question":    msgbox.IconQuestionRes,
	"warning":     msgbox.IconWarningRes,
	"information": msgbox.IconInformationRes,
	"winlogo":     msgbox.IconWinLogo,
	"shield":      msgbox.IconShield,
}

func (o *options) style() (msgbox.Style, error) {
	style, ok := iconStyles[strings.ToLower(o.Icon)]
	if !ok {
		return 0, fmt.Errorf("unknown icon %q", o.Icon)
	}
	if o.Default < 1 || o.Default > msgbox.MaxButtons {
		return 0, fmt.Errorf("default button %d out of range 1..%d", o.Default, msgbox.MaxButtons)
	}
	style |= msgbox.DefButton(o.Default)
	if o.TopMost {
		style |= msgbox.TopMost | msgbox.SetForeground
	}
	return style, nil
}

func (o *options) icon() (msgbox.Icon, error) {
	name := strings.ToLower(strings.TrimSpace(o.ResourceIcon))
	if name == "" {
		return msgbox.Icon{}, nil
	}
	if icon, ok := resourceIcons[name]; ok {
		return icon, nil
	}
	n, err := strconv.ParseUint(name, 0, 16)
	if err != nil || n == 0 {
		return msgbox.Icon{}, fmt.Errorf("unknown resource icon %q", o.ResourceIcon)
	}
	return msgbox.Icon{ID: uint16(n)}, nil
}

// text returns the message text. File contents are passed through
// unchanged.
func (o *options) text() (string, error) {
	if o.TextFile != "" {
		data, err := os.ReadFile(o.TextFile)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	}
	return strings.ReplaceAll(o.Text, `\n`, "\n"), nil
}

func (o *options) request() (msgbox.Request, error) {
	style, err := o.style()
	if err != nil {
		return msgbox.Request{}, err
	}
	icon, err := o.icon()
	if err != nil {
		return msgbox.Request{}, err
	}
	lang, err := msgbox.ParseLanguage(o.Lang)
	if err != nil {
		return msgbox.Request{}, err
	}
	text, err := o.text()
	if err != nil {
		return msgbox.Request{}, err
	}
	return msgbox.Request{
		Text:     text,
		Caption:  o.Caption,
		Style:    style,
		Buttons:  o.Buttons,
		Timeout:  o.Timeout,
		Icon:     icon,
		Language: lang,
	}, nil
}

// ansiRequest builds the narrow request. Command line strings are encoded
// in the target code page; a text file is assumed to be in it already.
func (o *options) ansiRequest() (msgbox.ANSIRequest, error) {
	req, err := o.request()
	if err != nil {
		return msgbox.ANSIRequest{}, err
	}
	cp := uint32(o.CodePage)
	text := msgbox.EncodeCodePage(req.Text, cp)
	if o.TextFile != "" {
		text = []byte(req.Text)
	}
	areq := msgbox.ANSIRequest{
		Text:     text,
		Caption:  msgbox.EncodeCodePage(req.Caption, cp),
		Style:    req.Style,
		Timeout:  req.Timeout,
		Icon:     req.Icon,
		Language: req.Language,
		CodePage: cp,
	}
	for _, b := range req.Buttons {
		areq.Buttons = append(areq.Buttons, msgbox.ANSIButton{
			ID:   b.ID,
			Text: msgbox.EncodeCodePage(b.Text, cp),
		})
	}
	return areq, nil
}

func (o *options) saveTo(cfg *config.Config) error {
	cfg.Caption = o.Caption
	cfg.Language = o.Lang
	cfg.CodePage = uint32(o.CodePage)
	cfg.TimeoutMs = savedTimeout(o.Timeout)
	cfg.Backend = o.Backend
	return cfg.Save()
}

func savedTimeout(d time.Duration) uint32 {
	ms := d.Milliseconds()
	switch {
	case ms <= 0:
		return 0
	case ms >= int64(msgbox.Infinite):
		return msgbox.Infinite - 1
	default:
		return uint32(ms)
	}
}

const maxTailLines = 5

// logTail keeps the last log lines for fatal error reports.
type logTail struct {
	mu    sync.Mutex
	lines []string
}

func (t *logTail) Append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > maxTailLines {
		t.lines = t.lines[len(t.lines)-maxTailLines:]
	}
}

func (t *logTail) report(message string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.lines) == 0 {
		return message
	}
	return message + "\n\nRecent log:\n" + strings.Join(t.lines, "\n")
}

func run(args []string, stdout io.Writer) int {
	cfg, cfgErr := config.Load()

	opts, err := parseOptions(args, cfg, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := logger.New(cfg)
	log.SetVerbose(opts.Verbose)
	tail := &logTail{}
	log.SetObserver(tail.Append)
	if cfgErr != nil {
		log.Logf("Configuration load warning: %v", cfgErr)
	}
	if cfg != nil && cfg.FirstRun() && !opts.Save {
		log.Logf("No configuration at %s; run with -save to store defaults.", cfg.ConfigPath())
	}

	if opts.Save && cfg != nil {
		if err := opts.saveTo(cfg); err != nil {
			reportFatal(tail.report(fmt.Sprintf("Failed to save configuration:\n%v", err)))
			return 1
		}
		log.Logf("Configuration saved to %s", cfg.ConfigPath())
	}

	backend, err := newBackend(opts.Backend)
	if err != nil {
		reportFatal(tail.report(err.Error()))
		return 1
	}
	adapter := msgbox.New(backend, log)

	var id msgbox.ButtonID
	if opts.ANSI {
		req, err := opts.ansiRequest()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		id, err = adapter.ShowANSI(req)
		if err != nil {
			reportFatal(tail.report(fmt.Sprintf("Failed to show message box:\n%v", err)))
			return 1
		}
	} else {
		req, err := opts.request()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		id, err = adapter.Show(req)
		if err != nil {
			reportFatal(tail.report(fmt.Sprintf("Failed to show message box:\n%v", err)))
			return 1
		}
	}

	fmt.Fprintf(stdout, "%d %s\n", id, id)
	return 0
}
