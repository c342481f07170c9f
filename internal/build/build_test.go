package build

import "testing"

func TestVersion(t *testing.T) {
	if Version() != "0.1.0" {
		t.Errorf("Version() = %q, want embedded VERSION", Version())
	}

	version = "9.9.9"
	defer func() { version = "" }()
	if Version() != "9.9.9" {
		t.Errorf("Version() = %q, want ldflags override", Version())
	}
}
