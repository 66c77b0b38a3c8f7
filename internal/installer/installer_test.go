package installer

import (
	"os"
	"reflect"
	"testing"

	"github.com/printforge/printforge/internal/config"
)

func TestArgs(t *testing.T) {
	got := Args([]string{"mainsail", "kamp"})
	want := []string{"--components", "mainsail", "kamp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestArgs_Empty(t *testing.T) {
	got := Args(nil)
	want := []string{"--components"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args(nil) = %v, want %v", got, want)
	}
}

func TestResolve(t *testing.T) {
	cfgWithScript := config.DefaultConfig()
	cfgWithScript.Installer.Script = "/opt/custom/install.sh"

	tests := []struct {
		name string
		flag string
		cfg  *config.Config
		want string
	}{
		{"flag wins", "/tmp/flag.sh", cfgWithScript, "/tmp/flag.sh"},
		{"config fallback", "", cfgWithScript, "/opt/custom/install.sh"},
		{"default when config empty", "", config.DefaultConfig(), DefaultScript},
		{"default when config nil", "", nil, DefaultScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.flag, tt.cfg); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestCheckRoot(t *testing.T) {
	err := CheckRoot()
	if os.Geteuid() == 0 {
		if err != nil {
			t.Errorf("CheckRoot() = %v for root, want nil", err)
		}
	} else if err == nil {
		t.Error("CheckRoot() = nil for non-root user, want error")
	}
}

func TestRun_DryRun(t *testing.T) {
	code, err := Run(Options{
		Script:     "/does/not/exist.sh",
		Components: []string{"mainsail"},
		DryRun:     true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if code != 0 {
		t.Errorf("Run() code = %d, want 0", code)
	}
}

func TestRun_MissingScript(t *testing.T) {
	// Fails on the root check or the script check depending on the
	// caller's privileges, either way before any exec.
	code, err := Run(Options{
		Script:     "/does/not/exist.sh",
		Components: []string{"mainsail"},
	})
	if err == nil {
		t.Fatal("Run() error = nil, want error")
	}
	if code != 1 {
		t.Errorf("Run() code = %d, want 1", code)
	}
}
