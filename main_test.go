package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRunError(t *testing.T) {
	device := errors.New("audio: no output device")

	tests := []struct {
		name     string
		audioOn  bool
		wantHint bool
	}{
		{"Audio on names mute switch", true, true},
		{"Muted passes error through", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runError(device, tt.audioOn)
			if !errors.Is(err, device) {
				t.Fatalf("Expected wrapped device error, got %v", err)
			}
			if got := strings.Contains(err.Error(), "BLACKHOLE_MUTE=1"); got != tt.wantHint {
				t.Errorf("Expected hint=%v, got %q", tt.wantHint, err.Error())
			}
		})
	}
}
