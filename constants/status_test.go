package constants

import "testing"

func TestIsTerminal(t *testing.T) {
	terminal := map[OCRStatus]bool{
		StatusPending:           false,
		StatusQueued:            false,
		StatusProcessing:        false,
		StatusCompleted:         false,
		StatusMissingRemoteFile: true,
		StatusPDFCorrupt:        true,
		StatusPermanentFailure:  true,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestTerminalStatesHaveNoAutomaticExit(t *testing.T) {
	for _, from := range TerminalStatuses {
		for _, to := range Statuses {
			if from.CanTransitionTo(OCRStatus(to)) {
				t.Errorf("terminal %s must not transition to %s automatically", from, to)
			}
		}
	}
}

func TestCompletedIsFrozen(t *testing.T) {
	for _, to := range Statuses {
		if StatusCompleted.CanTransitionTo(OCRStatus(to)) {
			t.Errorf("completed must not transition to %s", to)
		}
	}
}

func TestProcessingCanRequeue(t *testing.T) {
	// the reaper path: processing back to queued
	if !StatusProcessing.CanTransitionTo(StatusQueued) {
		t.Error("processing -> queued must be allowed for stuck-job recovery")
	}
	if !StatusProcessing.CanTransitionTo(StatusCompleted) {
		t.Error("processing -> completed must be allowed")
	}
	if StatusQueued.CanTransitionTo(StatusCompleted) {
		t.Error("queued -> completed skips the claim step")
	}
}

func TestMapExtToFormat(t *testing.T) {
	cases := []struct {
		ext  string
		want string
	}{
		{"pdf", PDF},
		{"PDF", PDF},
		{".pdf", PDF},
		{"jpg", IMAGE},
		{"jpeg", IMAGE},
		{"png", IMAGE},
		{"tiff", IMAGE},
		{"docx", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MapExtToFormat(tc.ext); got != tc.want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}
