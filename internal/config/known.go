package config

import "devcheck/internal/doctor"

// KnownTools lists descriptors that `devcheck init` can seed a catalog
// with. Version flags default to --version unless a tool needs otherwise.
var KnownTools = []doctor.ToolDescriptor{
	{
		ID:       "xcode",
		Name:     "Xcode",
		Category: doctor.CategoryRequired,
		Check:    doctor.CheckSpec{Type: doctor.KindCustom, Routine: doctor.RoutineXcode},
		Installation: &doctor.InstallOptions{Primary: &doctor.Installation{
			Method: "Mac App Store",
			URL:    "https://apps.apple.com/us/app/xcode/id497799835",
		}},
	},
	{
		ID:       "xcode_clt",
		Name:     "Xcode Command Line Tools",
		Category: doctor.CategoryRequired,
		Check:    doctor.CheckSpec{Type: doctor.KindCustom, Routine: doctor.RoutineXcodeCLT},
		Installation: &doctor.InstallOptions{Primary: &doctor.Installation{
			Method:  "xcode-select",
			Command: "xcode-select --install",
		}},
	},
	{
		ID:       "xcodebuild",
		Name:     "xcodebuild",
		Category: doctor.CategoryRequired,
		Check:    doctor.CheckSpec{Type: doctor.KindCustom, Routine: doctor.RoutineXcodebuild},
	},
	{
		ID:       "swift",
		Name:     "Swift",
		Category: doctor.CategoryRequired,
		Check: doctor.CheckSpec{
			Type:         doctor.KindCommand,
			Command:      "swift",
			VersionRegex: `Swift version (\d+\.\d+(?:\.\d+)?)`,
		},
	},
	{
		ID:       "git",
		Name:     "Git",
		Category: doctor.CategoryRequired,
		Check:    doctor.CheckSpec{Type: doctor.KindCommand, Command: "git"},
		Installation: &doctor.InstallOptions{Primary: &doctor.Installation{
			Method:  "homebrew",
			Command: "brew install git",
		}},
	},
	{
		ID:       "just",
		Name:     "just",
		Category: doctor.CategoryRequired,
		Check:    doctor.CheckSpec{Type: doctor.KindCommand, Command: "just"},
		Installation: &doctor.InstallOptions{Primary: &doctor.Installation{
			Method:  "homebrew",
			Command: "brew install just",
		}},
	},
	{
		ID:       "brew",
		Name:     "Homebrew",
		Category: doctor.CategoryOptional,
		Check:    doctor.CheckSpec{Type: doctor.KindCommand, Command: "brew"},
		Installation: &doctor.InstallOptions{Primary: &doctor.Installation{
			Method: "curl",
			URL:    "https://brew.sh",
			Notes:  "Needed for most optional tool installs",
		}},
	},
	{
		ID:       "gh",
		Name:     "GitHub CLI",
		Category: doctor.CategoryOptional,
		Check:    doctor.CheckSpec{Type: doctor.KindCommand, Command: "gh"},
		Installation: &doctor.InstallOptions{Primary: &doctor.Installation{
			Method:  "homebrew",
			Command: "brew install gh",
		}},
	},
	{
		ID:       "swiftlint",
		Name:     "SwiftLint",
		Category: doctor.CategoryOptional,
		Check:    doctor.CheckSpec{Type: doctor.KindCommand, Command: "swiftlint", VersionFlag: "version"},
		Installation: &doctor.InstallOptions{Primary: &doctor.Installation{
			Method:  "homebrew",
			Command: "brew install swiftlint",
		}},
	},
	{
		ID:       "appkit",
		Name:     "AppKit",
		Category: doctor.CategoryProject,
		Check: doctor.CheckSpec{Type: doctor.KindFramework, Paths: []string{
			"/System/Library/Frameworks/AppKit.framework",
		}},
	},
	{
		ID:       "swiftui",
		Name:     "SwiftUI",
		Category: doctor.CategoryProject,
		Check: doctor.CheckSpec{Type: doctor.KindFramework, Paths: []string{
			"/System/Library/Frameworks/SwiftUI.framework",
		}},
	},
}
