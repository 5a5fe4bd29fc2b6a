package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/storage"
)

func TestClassifySentinels(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"missing object", fmt.Errorf("download: %w", storage.ErrObjectNotFound), FailureMissingRemoteFile},
		{"corrupt file", fmt.Errorf("probe: %w", extract.ErrCorruptFile), FailureCorruptFile},
		{"unsupported format", fmt.Errorf("extension %q: %w", "docx", extract.ErrUnsupportedFormat), FailurePermanent},
		{"plain error", errors.New("connection reset by peer"), FailureTransient},
		{"nil-adjacent wrap", fmt.Errorf("deadline exceeded"), FailureTransient},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Errorf("Classify(%v) = %s, want %s", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassifyTaggedFailureWinsOverSentinel(t *testing.T) {
	// an explicit tag always beats whatever the wrapped chain contains
	err := &Failure{Kind: FailurePermanent, Phase: "probe", Err: storage.ErrObjectNotFound}
	if got := Classify(err); got != FailurePermanent {
		t.Errorf("Classify = %s, want permanent", got)
	}
}

func TestClassifyNeverMatchesMessageText(t *testing.T) {
	err := errors.New("object not found: file is corrupt and unsupported")
	if got := Classify(err); got != FailureTransient {
		t.Errorf("Classify = %s, want transient for an untagged error", got)
	}
}

func TestTerminalStatusMapping(t *testing.T) {
	cases := []struct {
		kind   FailureKind
		status constants.OCRStatus
		ok     bool
	}{
		{FailureMissingRemoteFile, constants.StatusMissingRemoteFile, true},
		{FailureCorruptFile, constants.StatusPDFCorrupt, true},
		{FailurePermanent, constants.StatusPermanentFailure, true},
		{FailureTransient, "", false},
	}
	for _, tc := range cases {
		status, ok := TerminalStatus(tc.kind)
		if ok != tc.ok || status != tc.status {
			t.Errorf("TerminalStatus(%s) = (%q, %v), want (%q, %v)", tc.kind, status, ok, tc.status, tc.ok)
		}
	}
}

func TestFailureUnwrap(t *testing.T) {
	inner := errors.New("boom")
	f := &Failure{Kind: FailureTransient, Phase: "extract", Err: inner}
	if !errors.Is(f, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
}
