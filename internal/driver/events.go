package driver

import "time"

// Stage describes a step of formatting one file.
type Stage string

const (
	StageRead   Stage = "read"
	StageParse  Stage = "parse"
	StageFormat Stage = "format"
	StageWrite  Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is in Stage.
	StatusWorking Status = "working"
	// StatusDone indicates the file is finished.
	StatusDone Status = "done"
	// StatusCached indicates the file was skipped through the cache.
	StatusCached Status = "cached"
	// StatusError indicates the file failed.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. It may be called from several
// goroutines at once.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
