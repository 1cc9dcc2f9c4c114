package env

import "testing"

func TestDetectMode(t *testing.T) {
	t.Setenv("ACCORDION_DEV", "1")
	if DetectMode() != ModeDev {
		t.Error("Expected dev mode when ACCORDION_DEV=1")
	}
	if !IsDev() {
		t.Error("Expected IsDev() to be true")
	}

	t.Setenv("ACCORDION_DEV", "")
	if DetectMode() != ModeProd {
		t.Error("Expected prod mode when ACCORDION_DEV is empty")
	}
	if ModeProd.String() != "prod" || ModeDev.String() != "dev" {
		t.Error("unexpected mode names")
	}
}
