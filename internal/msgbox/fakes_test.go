package msgbox

type loadKey struct {
	id   uint32
	lang LangID
}

// fakeStrings serves labels from maps and records every lookup.
type fakeStrings struct {
	requested map[loadKey]string
	defaults  map[uint32]string
	calls     []string
}

func (f *fakeStrings) LoadString(id uint32, lang LangID) (string, bool) {
	f.calls = append(f.calls, "requested")
	s, ok := f.requested[loadKey{id, lang}]
	return s, ok
}

func (f *fakeStrings) LoadDefault(id uint32) (string, bool) {
	f.calls = append(f.calls, "default")
	s, ok := f.defaults[id]
	return s, ok
}

// fakeBackend records what the adapter hands it.
type fakeBackend struct {
	caps    Capabilities
	strings StringLoader
	result  ButtonID
	err     error

	stringsCaps []Capabilities
	invokeCaps  []Capabilities
	prepared    []Prepared
}

func (f *fakeBackend) Probe() Capabilities { return f.caps }

func (f *fakeBackend) Strings(caps Capabilities) StringLoader {
	f.stringsCaps = append(f.stringsCaps, caps)
	return f.strings
}

func (f *fakeBackend) Invoke(p *Prepared, caps Capabilities) (ButtonID, error) {
	f.invokeCaps = append(f.invokeCaps, caps)
	f.prepared = append(f.prepared, *p)
	if f.err != nil {
		return IDFailed, f.err
	}
	return f.result, nil
}

func availableBackend() *fakeBackend {
	return &fakeBackend{caps: Capabilities{SoftModal: true, ExtendedLoader: true}, result: IDOK}
}
