package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// A single version probe cannot characterize the Xcode toolchain: the app
// bundle, the Command Line Tools package, and the xcode-select pointer vary
// independently. The routines below walk those states explicitly.

const (
	xcodeAppPath    = "/Applications/Xcode.app"
	xcodeSelectFix  = "sudo xcode-select -s /Applications/Xcode.app/Contents/Developer"
	xcodeStoreURL   = "https://apps.apple.com/us/app/xcode/id497799835"
	requiresXcode   = "requires Xcode"
	cltPathMarker   = "CommandLineTools"
	xcodePathMarker = "Xcode.app"
)

// checkXcode reports the state of the full Xcode installation: absent,
// shadowed by Command Line Tools, present but unselected, or selected and
// verified through xcodebuild.
func checkXcode(d ToolDescriptor) ToolResult {
	res := newResult(d, KindCustom)

	selected := ""
	if out, _, err := probe("xcode-select", "-p"); err == nil {
		selected = strings.TrimSpace(out)
	}

	if _, err := os.Stat(xcodeAppPath); err == nil {
		if !strings.Contains(selected, xcodePathMarker) {
			// Bundle present but the active toolchain points elsewhere.
			res.Status = StatusError
			res.Installed = true
			res.Path = xcodeAppPath
			res.Issues = append(res.Issues, Issue{
				Level:   LevelError,
				Message: fmt.Sprintf("Xcode.app exists but not selected (current: %s)", selected),
				Fix:     xcodeSelectFix,
			})
			res.Installation = &Installation{Method: "Fix selection", Command: xcodeSelectFix}
			return res
		}

		out, _, err := probe("xcodebuild", "-version")
		if err != nil {
			res.Status = StatusError
			res.Installed = true
			res.Path = selected
			res.Issues = append(res.Issues, Issue{
				Level:   LevelError,
				Message: "Xcode is installed but xcodebuild doesn't work",
				Fix:     fmt.Sprintf("Check Xcode installation at %s", xcodeAppPath),
			})
			return res
		}

		res.Status = StatusFound
		res.Installed = true
		res.Working = true
		res.Version = ExtractVersion(out, "")
		res.Path = selected
		if _, _, err := probe("xcodebuild", "-checkFirstLaunchStatus"); err != nil {
			res.Status = StatusWarning
			res.Issues = append(res.Issues, Issue{
				Level:   LevelWarning,
				Message: "Xcode may need to complete first launch setup",
				Fix:     "sudo xcodebuild -runFirstLaunch",
			})
		}
		return res
	}

	if strings.Contains(selected, cltPathMarker) {
		// Only the lighter Command Line Tools package is active; the full
		// suite is still required.
		res.Status = StatusNotFound
		res.Issues = append(res.Issues, Issue{
			Level:   LevelError,
			Message: "Only Command Line Tools installed, full Xcode required",
			Fix:     "Download Xcode from Mac App Store",
		})
		res.Installation = &Installation{
			Method: "Mac App Store",
			URL:    xcodeStoreURL,
			Notes:  "Full Xcode installation required for building macOS apps",
		}
		return res
	}

	res.Status = StatusNotFound
	res.Issues = append(res.Issues, Issue{
		Level:   LevelError,
		Message: "Xcode not installed",
		Fix:     "Download from Mac App Store or https://developer.apple.com",
	})
	res.Installation = &Installation{Method: "Mac App Store", URL: xcodeStoreURL}
	return res
}

// checkXcodeCLT reports whether the active-toolchain selector returns a
// usable path.
func checkXcodeCLT(d ToolDescriptor) ToolResult {
	res := newResult(d, KindCustom)
	out, _, err := probe("xcode-select", "-p")
	path := strings.TrimSpace(out)
	if err == nil && path != "" {
		res.Status = StatusFound
		res.Installed = true
		res.Working = true
		res.Path = path
		return res
	}
	res.Status = StatusNotFound
	res.Issues = append(res.Issues, Issue{
		Level:   LevelError,
		Message: "Command Line Tools not installed",
		Fix:     "xcode-select --install",
	})
	res.Installation = &Installation{Method: "xcode-select", Command: "xcode-select --install"}
	return res
}

// checkXcodebuild verifies the build driver actually runs, tailoring the
// issue when the error text shows that only Command Line Tools are active.
func checkXcodebuild(d ToolDescriptor) ToolResult {
	res := newResult(d, KindCustom)
	out, stderr, err := probe("xcodebuild", "-version")
	if err == nil {
		res.Status = StatusFound
		res.Installed = true
		res.Working = true
		res.Version = ExtractVersion(out, "")
		return res
	}

	res.Status = StatusError
	_, lookErr := exec.LookPath("xcodebuild")
	res.Installed = lookErr == nil

	errText := strings.TrimSpace(stderr)
	if errText == "" {
		errText = err.Error()
	}
	if strings.Contains(errText, requiresXcode) {
		res.Issues = append(res.Issues, Issue{
			Level:   LevelError,
			Message: "xcodebuild requires Xcode but only Command Line Tools installed",
			Fix:     "Install full Xcode from Mac App Store",
		})
		res.Installation = &Installation{Method: "Install Xcode", URL: xcodeStoreURL}
	} else {
		res.Issues = append(res.Issues, Issue{
			Level:   LevelError,
			Message: fmt.Sprintf("xcodebuild not working: %s", errText),
			Fix:     "Check Xcode installation",
		})
	}
	return res
}
