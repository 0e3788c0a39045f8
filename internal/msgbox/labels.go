package msgbox

import "softmodal/internal/core"

// maxLabelUnits is the UTF-16 capacity of a stock label buffer, excluding
// the terminating NUL.
const maxLabelUnits = 32 - 1

// stockStringBase is the user32 string table id of the IDOK label. The
// labels for IDOK..IDCONTINUE follow in order.
const stockStringBase = 800

// StringLoader reads the user32 string table.
type StringLoader interface {
	// LoadString returns string id in language lang.
	LoadString(id uint32, lang LangID) (string, bool)
	// LoadDefault returns string id in the system default language.
	LoadDefault(id uint32) (string, bool)
}

// LabelSource tells which step of the fallback chain produced a label.
type LabelSource int

const (
	SourceCaller LabelSource = iota
	SourceRequested
	SourceDefault
	SourceBuiltin
)

func (s LabelSource) String() string {
	switch s {
	case SourceCaller:
		return "caller"
	case SourceRequested:
		return "requested-language"
	case SourceDefault:
		return "default-language"
	default:
		return "builtin"
	}
}

var builtinLabels = [MaxButtons]string{
	"OK", "Cancel", "&Abort", "&Retry", "&Ignore", "&Yes", "&No",
	"&Close", "Help", "&Try Again", "&Continue",
}

// BuiltinLabel returns the English label used when user32 has none.
func BuiltinLabel(id ButtonID) string {
	if !id.Valid() {
		return id.String()
	}
	return builtinLabels[id-1]
}

// StockStringID returns the user32 string table id of the label for id.
func StockStringID(id ButtonID) uint32 {
	return uint32(int32(id) + stockStringBase - 1)
}

// LabelResolver resolves missing labels: requested language, then the
// system default language, then the built-in table.
type LabelResolver struct {
	loader StringLoader
}

// NewLabelResolver returns a resolver over loader. A nil loader resolves
// every label from the built-in table.
func NewLabelResolver(loader StringLoader) *LabelResolver {
	return &LabelResolver{loader: loader}
}

// Label returns the stock label for id.
func (r *LabelResolver) Label(id ButtonID, lang LangID) string {
	label, _ := r.Resolve(id, lang)
	return label
}

// Resolve returns the stock label for id together with the step that
// produced it.
func (r *LabelResolver) Resolve(id ButtonID, lang LangID) (string, LabelSource) {
	if r != nil && r.loader != nil && id.Valid() {
		sid := StockStringID(id)
		if s, ok := r.loader.LoadString(sid, lang); ok && s != "" {
			return core.TruncateUTF16(s, maxLabelUnits), SourceRequested
		}
		if s, ok := r.loader.LoadDefault(sid); ok && s != "" {
			return core.TruncateUTF16(s, maxLabelUnits), SourceDefault
		}
	}
	return BuiltinLabel(id), SourceBuiltin
}
