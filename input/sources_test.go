package input

import (
	"errors"
	"testing"
)

func TestCheckSources(t *testing.T) {
	tests := []struct {
		name   string
		listen string
		replay string
		demo   bool
		ok     bool
	}{
		{"none", "", "", false, true},
		{"listen only", ":8765", "", false, true},
		{"replay only", "", "hands.csv", false, true},
		{"demo only", "", "", true, true},
		{"listen with replay", ":8765", "hands.csv", false, false},
		{"listen with demo", ":8765", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSources(tt.listen, tt.replay, tt.demo)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrSourceConflict) {
				t.Fatalf("expected ErrSourceConflict, got %v", err)
			}
		})
	}
}
