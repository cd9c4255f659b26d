package doctor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	tu "devcheck/internal/testutil"
)

// writeFakeTool drops an executable shell script that prints output.
func writeFakeTool(t *testing.T, dir, name, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts need a POSIX shell")
	}
	p := filepath.Join(dir, name)
	script := "#!/bin/sh\necho \"" + output + "\"\n"
	if err := os.WriteFile(p, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	return p
}

func TestCheckCommand_Missing(t *testing.T) {
	defer tu.WithEnv(t, "PATH", t.TempDir())()

	d := ToolDescriptor{
		ID: "widget", Name: "Widget", Category: CategoryRequired,
		Check: CheckSpec{Type: KindCommand, Command: "widget"},
		Installation: &InstallOptions{Primary: &Installation{
			Method: "homebrew", Command: "brew install widget",
		}},
	}
	res := Check(d)
	if res.Status != StatusNotFound || res.Installed || res.Working {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Version != "" {
		t.Fatalf("missing command should have no version, got %q", res.Version)
	}
	if res.Installation == nil || res.Installation.Command != "brew install widget" {
		t.Fatalf("primary install hint not attached: %+v", res.Installation)
	}
	if len(res.Issues) != 1 || res.Issues[0].Level != LevelError || res.Issues[0].Fix != "brew install widget" {
		t.Fatalf("unexpected issues: %+v", res.Issues)
	}
}

func TestCheckCommand_Found(t *testing.T) {
	dir := t.TempDir()
	path := writeFakeTool(t, dir, "gadget", "gadget version 2.0.0")
	defer tu.WithEnv(t, "PATH", dir)()

	d := ToolDescriptor{
		ID: "gadget", Name: "Gadget", Category: CategoryOptional,
		Check: CheckSpec{Type: KindCommand, Command: "gadget"},
	}
	res := Check(d)
	if res.Status != StatusFound || !res.Installed || !res.Working {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Version != "2.0.0" {
		t.Fatalf("version = %q, want 2.0.0", res.Version)
	}
	if res.Path != path {
		t.Fatalf("path = %q, want %q", res.Path, path)
	}
	if len(res.Issues) != 0 {
		t.Fatalf("found tool should carry no issues: %+v", res.Issues)
	}
}

// writeScript drops an executable shell script with the given body.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts need a POSIX shell")
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}

func TestCheckCommand_VersionFlagFallback(t *testing.T) {
	dir := t.TempDir()
	// Rejects --version without output; only -v answers.
	writeScript(t, dir, "frob", `if [ "$1" = "-v" ]; then echo "frob 3.1.4"; exit 0; fi
exit 1
`)
	defer tu.WithEnv(t, "PATH", dir)()

	res := Check(ToolDescriptor{
		ID: "frob", Name: "Frob", Category: CategoryOptional,
		Check: CheckSpec{Type: KindCommand, Command: "frob"},
	})
	if res.Status != StatusFound || !res.Working {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Version != "3.1.4" {
		t.Fatalf("fallback flags not tried: version = %q, want 3.1.4", res.Version)
	}
}

func TestCheckCommand_VersionOnStderr(t *testing.T) {
	dir := t.TempDir()
	// Prints the version to stderr and exits non-zero, like several
	// older toolchains.
	writeScript(t, dir, "grumble", `echo "grumble version 1.8.0" 1>&2
exit 1
`)
	defer tu.WithEnv(t, "PATH", dir)()

	res := Check(ToolDescriptor{
		ID: "grumble", Name: "Grumble", Category: CategoryOptional,
		Check: CheckSpec{Type: KindCommand, Command: "grumble"},
	})
	if res.Version != "1.8.0" {
		t.Fatalf("stderr output ignored: version = %q, want 1.8.0", res.Version)
	}
}

func TestCheckCommand_FallbackAcceptsNonZeroExit(t *testing.T) {
	dir := t.TempDir()
	// Silent on --version; -v produces output but still exits non-zero.
	// For the fallback flags any output counts.
	writeScript(t, dir, "crank", `if [ "$1" = "-v" ]; then echo "crank 2.5.0" 1>&2; exit 1; fi
exit 1
`)
	defer tu.WithEnv(t, "PATH", dir)()

	res := Check(ToolDescriptor{
		ID: "crank", Name: "Crank", Category: CategoryOptional,
		Check: CheckSpec{Type: KindCommand, Command: "crank"},
	})
	if res.Version != "2.5.0" {
		t.Fatalf("noisy non-zero fallback rejected: version = %q, want 2.5.0", res.Version)
	}
}

func TestCheckCommand_NoVersionStillWorking(t *testing.T) {
	dir := t.TempDir()
	// No flag ever produces output; existence on PATH is still enough.
	writeScript(t, dir, "mute", "exit 1\n")
	defer tu.WithEnv(t, "PATH", dir)()

	res := Check(ToolDescriptor{
		ID: "mute", Name: "Mute", Category: CategoryOptional,
		Check: CheckSpec{Type: KindCommand, Command: "mute"},
	})
	if res.Status != StatusFound || !res.Installed || !res.Working {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Version != "" {
		t.Fatalf("expected unknown version, got %q", res.Version)
	}
}

func TestCheckDirectory_FirstMatchWins(t *testing.T) {
	real := t.TempDir()
	d := ToolDescriptor{
		ID: "sdk", Name: "SDK", Category: CategoryRequired,
		Check: CheckSpec{Type: KindDirectory, Paths: []string{"/does/not/exist", real}},
	}
	res := Check(d)
	if res.Status != StatusFound || res.Path != real {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Version != "" {
		t.Fatalf("path probes never report a version, got %q", res.Version)
	}

	d.Check.Paths = []string{"/does/not/exist", "/also/missing"}
	res = Check(d)
	if res.Status != StatusNotFound || res.Installed || res.Working {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCheckFramework_MissingGetsWarning(t *testing.T) {
	d := ToolDescriptor{
		ID: "appkit", Name: "AppKit", Category: CategoryProject,
		Check: CheckSpec{Type: KindFramework, Paths: []string{"/no/such/framework"}},
	}
	res := Check(d)
	if res.Status != StatusNotFound || res.CheckKind != KindFramework {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Issues) != 1 || res.Issues[0].Level != LevelWarning {
		t.Fatalf("expected one warning issue, got %+v", res.Issues)
	}
}

func TestCheckCustom_UnknownRoutine(t *testing.T) {
	d := ToolDescriptor{
		ID: "mystery", Name: "Mystery", Category: CategoryOptional,
		Check: CheckSpec{Type: KindCustom, Routine: "check_mystery"},
	}
	res := Check(d)
	if res.Status != StatusError {
		t.Fatalf("unknown routine should yield an error result: %+v", res)
	}
	if len(res.Issues) != 1 || res.Issues[0].Level != LevelError {
		t.Fatalf("unexpected issues: %+v", res.Issues)
	}
}

func TestCheck_UnknownKind(t *testing.T) {
	d := ToolDescriptor{
		ID: "odd", Name: "Odd", Category: CategoryOptional,
		Check: CheckSpec{Type: "telepathy"},
	}
	res := Check(d)
	if res.Status != StatusError || res.Installed || res.Working {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRun_OneResultPerDescriptor(t *testing.T) {
	defer tu.WithEnv(t, "PATH", t.TempDir())()

	descriptors := []ToolDescriptor{
		{ID: "a", Name: "A", Category: CategoryRequired, Check: CheckSpec{Type: KindCommand, Command: "a"}},
		{ID: "b", Name: "B", Category: CategoryOptional, Check: CheckSpec{Type: KindDirectory, Paths: []string{"/missing"}}},
		{ID: "c", Name: "C", Category: CategoryProject, Check: CheckSpec{Type: KindCustom, Routine: "bogus"}},
		{ID: "d", Name: "D", Category: CategoryOptional, Check: CheckSpec{Type: "nope"}},
	}
	results := Run(descriptors)
	if len(results) != len(descriptors) {
		t.Fatalf("got %d results for %d descriptors", len(results), len(descriptors))
	}
	for i, r := range results {
		if r.ID != descriptors[i].ID || r.Category != descriptors[i].Category {
			t.Fatalf("result %d does not match its descriptor: %+v", i, r)
		}
		if !r.Installed && r.Working {
			t.Fatalf("invariant violated: working without installed: %+v", r)
		}
	}
}

func TestEndToEnd_WidgetGadget(t *testing.T) {
	dir := t.TempDir()
	writeFakeTool(t, dir, "gadget", "gadget version 2.0.0")
	defer tu.WithEnv(t, "PATH", dir)()

	descriptors := []ToolDescriptor{
		{ID: "widget", Name: "widget", Category: CategoryRequired, Check: CheckSpec{Type: KindCommand, Command: "widget"}},
		{ID: "gadget", Name: "gadget", Category: CategoryOptional, Check: CheckSpec{Type: KindCommand, Command: "gadget"}},
	}
	rep := BuildReport(Run(descriptors), Requirements{})

	s := rep.Summary
	if s.AllRequiredPresent || s.RequiredCount != 1 || s.RequiredPresent != 0 ||
		s.OptionalCount != 1 || s.OptionalPresent != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	var critical []Recommendation
	for _, rec := range rep.Recommendations {
		if rec.Priority == PriorityCritical {
			critical = append(critical, rec)
		}
	}
	if len(critical) != 1 {
		t.Fatalf("expected exactly one critical recommendation, got %+v", rep.Recommendations)
	}
	if got := rep.Tools[1].Version; got != "2.0.0" {
		t.Fatalf("gadget version = %q, want 2.0.0", got)
	}
}
