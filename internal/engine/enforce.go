package engine

import "strconv"

// Enforcement wrapper for TokenSource to apply duplicate key handling,
// max depth checks, and max bytes truncation in a streaming fashion.

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives non-fatal issues (duplicate keys under DupWarn).
	IssueSink func(SimpleIssue)
	// FailFast turns every issue into an error.
	FailFast bool
}

// Enabled reports whether any check is active.
func (o EnforceOptions) Enabled() bool {
	return o.OnDuplicate != DupIgnore || o.MaxDepth > 0 || o.MaxBytes > 0
}

// WrapWithEnforcement returns a TokenSource that enforces duplicate key policy,
// maximum nesting depth, and maximum consumed bytes.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	track Tracker
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	dup := false
	if tok.Kind == KindKey && e.opt.OnDuplicate != DupIgnore {
		dup = e.track.NoteKey(tok.String)
	}
	path := e.track.Advance(tok)

	if dup {
		si := SimpleIssue{Code: "duplicate_key", Path: DisplayPath(path), Message: "key '" + tok.String + "' duplicated", Offset: tok.Offset}
		if e.opt.OnDuplicate == DupError || e.opt.FailFast {
			return Token{}, IssueError{si}
		}
		if e.opt.IssueSink != nil {
			e.opt.IssueSink(si)
		}
	}

	if e.opt.MaxDepth > 0 && e.track.Depth() > e.opt.MaxDepth {
		return Token{}, IssueError{SimpleIssue{
			Code:    "max_depth",
			Path:    DisplayPath(path),
			Message: "max depth " + strconv.Itoa(e.opt.MaxDepth) + " exceeded",
			Offset:  tok.Offset,
		}}
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off > e.opt.MaxBytes {
			return Token{}, IssueError{SimpleIssue{
				Code:    "truncated",
				Path:    DisplayPath(path),
				Message: "max bytes exceeded",
				Offset:  off,
			}}
		}
	}

	return tok, nil
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }
