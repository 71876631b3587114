package presenter

import "fmt"

// LogEntry is one recorded Log call
type LogEntry struct {
	Key  string
	Args []any
}

// Recorder is a Presenter that records every call for assertions in tests
type Recorder struct {
	Logs       []LogEntry
	Animations []string
	Sounds     []string
	Waited     int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// PlayAnimation implements Presenter
func (r *Recorder) PlayAnimation(targetID, animation string) {
	r.Animations = append(r.Animations, fmt.Sprintf("%s:%s", targetID, animation))
}

// PlaySound implements Presenter
func (r *Recorder) PlaySound(name string) {
	r.Sounds = append(r.Sounds, name)
}

// Log implements Presenter
func (r *Recorder) Log(key string, args ...any) {
	r.Logs = append(r.Logs, LogEntry{Key: key, Args: args})
}

// WaitFrames implements Presenter
func (r *Recorder) WaitFrames(frames int) {
	r.Waited += frames
}

// LogKeys returns the recorded message keys in order
func (r *Recorder) LogKeys() []string {
	keys := make([]string, 0, len(r.Logs))
	for _, entry := range r.Logs {
		keys = append(keys, entry.Key)
	}
	return keys
}

// HasLog reports whether a message key was logged
func (r *Recorder) HasLog(key string) bool {
	for _, entry := range r.Logs {
		if entry.Key == key {
			return true
		}
	}
	return false
}

// Reset clears all recorded calls
func (r *Recorder) Reset() {
	r.Logs = nil
	r.Animations = nil
	r.Sounds = nil
	r.Waited = 0
}
