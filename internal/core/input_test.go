package core

import (
	"slices"
	"testing"
)

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		a        Action
		expected bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		if tc.a.IsDirection() != tc.expected {
			t.Errorf("%s.IsDirection() = %v, expected %v", tc.a, !tc.expected, tc.expected)
		}
	}
}

func TestJournalEncoding(t *testing.T) {
	actions := []Action{ActionNone, ActionRight, ActionRight, ActionDown, ActionLeft, ActionUp, ActionQuit}

	s, err := EncodeActions(actions)
	if err != nil {
		t.Fatalf("EncodeActions() failed: %v", err)
	}
	if s != ".RRDLUQ" {
		t.Errorf("EncodeActions() = %q, expected %q", s, ".RRDLUQ")
	}

	decoded, err := DecodeActions(s)
	if err != nil {
		t.Fatalf("DecodeActions() failed: %v", err)
	}
	if !slices.Equal(decoded, actions) {
		t.Errorf("DecodeActions() = %v, expected %v", decoded, actions)
	}
}

func TestJournalEncodingRejectsPlatformActions(t *testing.T) {
	if _, err := EncodeActions([]Action{ActionUp, ActionPause}); err == nil {
		t.Error("EncodeActions() should reject Pause")
	}
	if _, err := DecodeActions("UDx"); err == nil {
		t.Error("DecodeActions() should reject unknown bytes")
	}
}
