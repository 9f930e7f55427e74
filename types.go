package nestwalk

import eng "github.com/reoring/nestwalk/internal/engine"

// Severity expresses how an enforcement finding is handled.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// WalkOpt bundles enforcement options for token-stream operations.
type WalkOpt struct {
	MaxDepth   int   // Maximum container nesting (0 disables).
	MaxBytes   int64 // Maximum consumed input bytes when the source reports offsets (0 disables).
	Duplicates Severity
	FailFast   bool // Treat warnings as errors.
	// OnIssue receives non-fatal issues (duplicate keys under Warn).
	OnIssue func(Issue)
}

// GatherOpt configures Gather and GatherOrdered.
type GatherOpt struct {
	Limit int // Maximum concurrently running workers (0 = unlimited).
}

func lastOpt[T any](opts []T) T {
	var o T
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	return o
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func (o WalkOpt) engineOptions() eng.EnforceOptions {
	var sink func(eng.SimpleIssue)
	if o.OnIssue != nil {
		sink = func(si eng.SimpleIssue) { o.OnIssue(fromEngineIssue(si)) }
	}
	return eng.EnforceOptions{
		OnDuplicate: toEngineDup(o.Duplicates),
		MaxDepth:    o.MaxDepth,
		MaxBytes:    o.MaxBytes,
		IssueSink:   sink,
		FailFast:    o.FailFast,
	}
}
