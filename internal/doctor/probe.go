package doctor

import (
	"fmt"
	"os"
	"os/exec"
)

// Alternative flags tried when the configured version flag fails. The
// primary attempt already covers --version, so it is not repeated here.
var versionFlagFallbacks = []string{"-v", "version", "-version"}

// Run probes every descriptor in order and returns one result per
// descriptor. It never fails the batch: probing errors degrade to
// not_found/error results.
func Run(descriptors []ToolDescriptor) []ToolResult {
	results := make([]ToolResult, 0, len(descriptors))
	for _, d := range descriptors {
		results = append(results, Check(d))
	}
	return results
}

// Check produces exactly one result for one descriptor.
func Check(d ToolDescriptor) ToolResult {
	switch d.Check.Type {
	case KindCommand:
		return checkCommand(d)
	case KindDirectory:
		return checkPaths(d, KindDirectory)
	case KindFramework:
		return checkFramework(d)
	case KindCustom:
		return checkCustom(d)
	default:
		res := newResult(d, d.Check.Type)
		res.Status = StatusError
		res.Issues = append(res.Issues, Issue{
			Level:   LevelError,
			Message: fmt.Sprintf("Unknown check type: %s", d.Check.Type),
		})
		return res
	}
}

// newResult seeds a result with the descriptor's identity. Status and the
// installed/working flags start at their zero values (not_found would be
// wrong for error paths, so callers set Status themselves).
func newResult(d ToolDescriptor, kind CheckKind) ToolResult {
	return ToolResult{
		ID:        d.ID,
		Name:      d.Name,
		Category:  d.Category,
		CheckKind: kind,
		Issues:    []Issue{},
	}
}

func checkCommand(d ToolDescriptor) ToolResult {
	res := newResult(d, KindCommand)
	name := d.Check.Command
	if name == "" {
		name = d.ID
	}
	path, err := exec.LookPath(name)
	if err != nil {
		res.Status = StatusNotFound
		res.Installation = d.primaryInstall()
		level := LevelWarning
		if d.Category == CategoryRequired {
			level = LevelError
		}
		issue := Issue{Level: level, Message: fmt.Sprintf("%s not found", d.Name)}
		if res.Installation != nil {
			issue.Fix = res.Installation.Command
		}
		res.Issues = append(res.Issues, issue)
		return res
	}
	res.Status = StatusFound
	res.Installed = true
	// Existence on PATH is sufficient to call a command working; an
	// unknown version does not demote it.
	res.Working = true
	res.Path = path
	res.Version = commandVersion(path, d.Check.VersionFlag, d.Check.VersionRegex)
	return res
}

// commandVersion probes for a version string. When the configured flag fails
// without producing output, the fallback flags are tried; for those, any
// output counts, even on a non-zero exit, because several tools print their
// version to stderr or reject --version.
func commandVersion(path, flag, pattern string) string {
	if flag == "" {
		flag = "--version"
	}
	stdout, stderr, err := probe(path, flag)
	output := firstNonEmpty(stdout, stderr)
	if err != nil && output == "" {
		for _, alt := range versionFlagFallbacks {
			so, se, aerr := probe(path, alt)
			if aerr == nil || so != "" || se != "" {
				output = firstNonEmpty(so, se)
				break
			}
		}
	}
	return ExtractVersion(output, pattern)
}

// checkPaths returns found at the first existing candidate path. No version
// is ever reported for path probes.
func checkPaths(d ToolDescriptor, kind CheckKind) ToolResult {
	res := newResult(d, kind)
	for _, p := range d.Check.Paths {
		if _, err := os.Stat(p); err == nil {
			res.Status = StatusFound
			res.Installed = true
			res.Working = true
			res.Path = p
			return res
		}
	}
	res.Status = StatusNotFound
	return res
}

func checkFramework(d ToolDescriptor) ToolResult {
	res := checkPaths(d, KindFramework)
	if res.Status == StatusNotFound {
		res.Issues = append(res.Issues, Issue{
			Level:   LevelWarning,
			Message: fmt.Sprintf("%s not found", d.Name),
			Fix:     "May require Xcode or macOS SDK installation",
		})
	}
	return res
}

func checkCustom(d ToolDescriptor) ToolResult {
	switch d.Check.Routine {
	case RoutineXcode:
		return checkXcode(d)
	case RoutineXcodeCLT:
		return checkXcodeCLT(d)
	case RoutineXcodebuild:
		return checkXcodebuild(d)
	default:
		res := newResult(d, KindCustom)
		res.Status = StatusError
		res.Issues = append(res.Issues, Issue{
			Level:   LevelError,
			Message: fmt.Sprintf("Unknown check routine: %s", d.Check.Routine),
		})
		return res
	}
}
