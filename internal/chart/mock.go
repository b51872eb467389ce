package chart

import "sync"

// Call is one provider call seen by RecordingProvider.
type Call struct {
	Op        string // "mount" or "unmount"
	Container string
	Config    WidgetConfig
}

// RecordingProvider records calls instead of rendering anything.
// FailMount makes Mount fail for the named container.
type RecordingProvider struct {
	mu        sync.Mutex
	calls     []Call
	FailMount map[string]error
}

func NewRecordingProvider() *RecordingProvider {
	return &RecordingProvider{}
}

func (r *RecordingProvider) Mount(container string, cfg WidgetConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Op: "mount", Container: container, Config: cfg})
	if err, ok := r.FailMount[container]; ok {
		return err
	}
	return nil
}

func (r *RecordingProvider) Unmount(container string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Op: "unmount", Container: container})
	return nil
}

// Calls returns a copy of the recorded calls.
func (r *RecordingProvider) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
