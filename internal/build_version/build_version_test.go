package build_version

import "testing"

func TestGetVersion(t *testing.T) {
	saved := version
	defer func() { version = saved }()

	version = ""
	if got := GetVersion(); got != "dev" {
		t.Errorf("GetVersion() = %q, want dev", got)
	}
	version = "v1.2.3"
	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() = %q, want v1.2.3", got)
	}
}
