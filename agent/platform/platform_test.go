package platform_test

import (
	"runtime"
	"testing"

	"github.com/amidaware/cpuutilization/agent/platform"
)

func TestDetect(t *testing.T) {
	testTable := []struct {
		name     string
		input    string
		expected platform.Family
	}{
		{"Linux", "Linux", platform.Linux},
		{"Cygwin", "CYGWIN_NT-10.0", platform.Linux},
		{"FreeBSD", "FreeBSD", platform.BSD},
		{"OpenBSD", "OpenBSD", platform.BSD},
		{"NetBSD", "NetBSD", platform.BSD},
		{"Darwin", "Darwin", platform.Darwin},
		{"Solaris", "Solaris", platform.Solaris},
		{"SunOS", "SunOS", platform.Solaris},
		{"BeOS", "BeOS", platform.BeOS},
		{"Haiku", "Haiku", platform.BeOS},
		{"Windows", "Windows", platform.Windows},
		{"Surrounding whitespace", "  linux\n", platform.Linux},
		{"Mixed case", "dArWiN", platform.Darwin},
		{"Empty", "", platform.Unknown},
		{"Whitespace only", " \t ", platform.Unknown},
		{"Plan 9", "plan9", platform.Unknown},
		{"No family token", "macos", platform.Unknown},
		// inputs naming more than one family resolve by priority
		{"Cygwin on windows", "cygwin windows", platform.Linux},
		{"Linux before bsd", "bsd linux", platform.Linux},
		{"Bsd before darwin", "darwin bsd", platform.BSD},
		{"Darwin before sunos", "sunos darwin", platform.Darwin},
		{"Sunos before haiku", "haiku sunos", platform.Solaris},
		{"Haiku before windows", "windows haiku", platform.BeOS},
	}

	for _, tt := range testTable {
		t.Run(tt.name, func(t *testing.T) {
			result := platform.Detect(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	expected := map[string]platform.Family{
		"linux":   platform.Linux,
		"darwin":  platform.Darwin,
		"freebsd": platform.BSD,
		"openbsd": platform.BSD,
		"netbsd":  platform.BSD,
		"solaris": platform.Solaris,
		"illumos": platform.Solaris,
		"windows": platform.Windows,
	}

	want, ok := expected[runtime.GOOS]
	if !ok {
		t.Skipf("no expectation for %s", runtime.GOOS)
	}

	if got := platform.Current(); got != want {
		t.Fatalf("Expected %s for %s (%q), got %s", want, runtime.GOOS, platform.OSName(), got)
	}
}

func TestLookup(t *testing.T) {
	testTable := []struct {
		family   platform.Family
		expected string
	}{
		{platform.Linux, "top -b -n 2 -d 1"},
		{platform.BSD, "top -b -P -s 2 -d 2"},
		{platform.Darwin, "top -F -l 2 -i 2 -n 0"},
		{platform.Solaris, "top -b -s 2 -d 2"},
		{platform.BeOS, "top -d -i 2 -n 2"},
		{platform.Windows, "wmic cpu get loadpercentage"},
	}

	for _, tt := range testTable {
		t.Run(tt.family.String(), func(t *testing.T) {
			spec, ok := platform.Lookup(tt.family)
			if !ok {
				t.Fatalf("no command for %s", tt.family)
			}
			if spec.Command != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, spec.Command)
			}
			if spec.Family != tt.family {
				t.Errorf("expected family %s, got %s", tt.family, spec.Family)
			}
		})
	}

	if _, ok := platform.Lookup(platform.Unknown); ok {
		t.Fatal("Unknown should have no command")
	}
}

func TestCommandsCoverFamilies(t *testing.T) {
	cmds := platform.Commands()
	if len(cmds) != len(platform.Families()) {
		t.Fatalf("Expected %d commands, got %d", len(platform.Families()), len(cmds))
	}

	for _, f := range platform.Families() {
		if _, ok := platform.Lookup(f); !ok {
			t.Errorf("family %s has no command", f)
		}
	}

	cmds[0].Command = "rm -rf /"
	if spec, _ := platform.Lookup(platform.Linux); spec.Command == "rm -rf /" {
		t.Fatal("Commands must return a copy")
	}
}

func TestFamilyString(t *testing.T) {
	if platform.BeOS.String() != "beos" {
		t.Fatalf("Expected beos, got %s", platform.BeOS)
	}
	if platform.Family(42).String() != "unknown" {
		t.Fatalf("Expected unknown, got %s", platform.Family(42))
	}
}
