package doctor

import "time"

// Status classifies the outcome of a single tool check.
type Status string

const (
	StatusFound    Status = "found"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
	StatusWarning  Status = "warning"
)

// Category groups tools by how much the build cares about them.
type Category string

const (
	CategoryRequired Category = "required"
	CategoryOptional Category = "optional"
	CategoryProject  Category = "project-specific"
)

// CheckKind is the closed set of detection strategies.
type CheckKind string

const (
	KindCommand   CheckKind = "command"
	KindDirectory CheckKind = "directory"
	KindFramework CheckKind = "framework"
	KindCustom    CheckKind = "custom"
)

// Routine names the special-case checks reachable through KindCustom.
type Routine string

const (
	RoutineXcode      Routine = "xcode"
	RoutineXcodeCLT   Routine = "xcode_clt"
	RoutineXcodebuild Routine = "xcodebuild"
)

// Issue severity levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// Recommendation priorities.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityLow      = "low"
)

// CheckSpec holds the strategy-specific parameters of a descriptor.
type CheckSpec struct {
	Type         CheckKind `json:"type" yaml:"type"`
	Command      string    `json:"command,omitempty" yaml:"command,omitempty"`
	VersionFlag  string    `json:"version_flag,omitempty" yaml:"version_flag,omitempty"`
	VersionRegex string    `json:"version_regex,omitempty" yaml:"version_regex,omitempty"`
	Paths        []string  `json:"paths,omitempty" yaml:"paths,omitempty"`
	Routine      Routine   `json:"routine,omitempty" yaml:"routine,omitempty"`
}

// Installation describes one way to install a tool.
type Installation struct {
	Method  string `json:"method" yaml:"method"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// InstallOptions carries the installation hints of a descriptor. Primary is
// the entry surfaced on failed checks.
type InstallOptions struct {
	Primary *Installation `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// ToolDescriptor declares how to check one tool. Descriptors are loaded once
// per run and never mutated.
type ToolDescriptor struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Category     Category        `json:"category" yaml:"category"`
	Check        CheckSpec       `json:"check" yaml:"check"`
	Installation *InstallOptions `json:"installation,omitempty" yaml:"installation,omitempty"`
}

// primaryInstall returns the descriptor's primary installation hint, if any.
func (d ToolDescriptor) primaryInstall() *Installation {
	if d.Installation == nil {
		return nil
	}
	return d.Installation.Primary
}

// Issue is a purely descriptive problem attached to a result. It never drives
// control flow after creation.
type Issue struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// ToolResult is the uniform outcome of one check. Installed means the binary
// or path exists; Working additionally means the tool is usable. A result
// never has Working without Installed.
type ToolResult struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     Category      `json:"category"`
	Status       Status        `json:"status"`
	Installed    bool          `json:"installed"`
	Working      bool          `json:"working"`
	Version      string        `json:"version,omitempty"`
	Path         string        `json:"path,omitempty"`
	CheckKind    CheckKind     `json:"check_type"`
	Issues       []Issue       `json:"issues"`
	Installation *Installation `json:"installation,omitempty"`
}

// installAction resolves the remediation action for a failing result:
// install command first, URL second, empty when neither exists.
func (r ToolResult) installAction() string {
	if r.Installation == nil {
		return ""
	}
	if r.Installation.Command != "" {
		return r.Installation.Command
	}
	return r.Installation.URL
}

// Summary condenses the per-category outcome of a run.
type Summary struct {
	AllRequiredPresent bool `json:"all_required_present"`
	RequiredCount      int  `json:"required_count"`
	RequiredPresent    int  `json:"required_present"`
	OptionalCount      int  `json:"optional_count"`
	OptionalPresent    int  `json:"optional_present"`
}

// SystemInfo describes the machine the checks ran on.
type SystemInfo struct {
	OS           string `json:"os"`
	OSVersion    string `json:"os_version"`
	Architecture string `json:"architecture"`
	Hostname     string `json:"hostname"`
}

// Requirements carries the catalog's system constraints.
type Requirements struct {
	MinOSVersion  string   `json:"min_macos_version,omitempty" yaml:"min_macos_version,omitempty"`
	Architectures []string `json:"supported_architectures,omitempty" yaml:"supported_architectures,omitempty"`
}

// Recommendation is a prioritized remediation suggestion derived from the
// results, not stored on them.
type Recommendation struct {
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action,omitempty"`
}

// Report is the aggregate outcome of one run.
type Report struct {
	Timestamp       time.Time        `json:"timestamp"`
	Summary         Summary          `json:"summary"`
	System          SystemInfo       `json:"system"`
	Tools           []ToolResult     `json:"tools"`
	Recommendations []Recommendation `json:"recommendations"`
}
