package doctor

import (
	"fmt"
	"slices"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"
)

// BuildReport assembles the aggregate report for a finished run.
func BuildReport(results []ToolResult, req Requirements) Report {
	sys := Info()
	rep := Report{
		Timestamp: time.Now(),
		System:    sys,
		Tools:     results,
	}
	allRequired := true
	for _, r := range results {
		switch r.Category {
		case CategoryRequired:
			rep.Summary.RequiredCount++
			if r.Working {
				rep.Summary.RequiredPresent++
			} else {
				allRequired = false
			}
		case CategoryOptional:
			rep.Summary.OptionalCount++
			if r.Working {
				rep.Summary.OptionalPresent++
			}
		}
	}
	rep.Summary.AllRequiredPresent = allRequired
	rep.Recommendations = Recommend(results)
	rep.Recommendations = append(rep.Recommendations, checkRequirements(sys, req)...)
	return rep
}

// Recommend derives prioritized remediation suggestions: a critical entry
// for every required tool that is not working, then a low entry for every
// optional one, preserving result order within each pass.
func Recommend(results []ToolResult) []Recommendation {
	recs := []Recommendation{}
	for _, r := range results {
		if r.Category == CategoryRequired && !r.Working {
			recs = append(recs, Recommendation{
				Priority: PriorityCritical,
				Message:  fmt.Sprintf("Install %s - required for building", r.Name),
				Action:   r.installAction(),
			})
		}
	}
	for _, r := range results {
		if r.Category == CategoryOptional && !r.Working {
			recs = append(recs, Recommendation{
				Priority: PriorityLow,
				Message:  fmt.Sprintf("Consider installing %s", r.Name),
				Action:   r.installAction(),
			})
		}
	}
	return recs
}

// checkRequirements compares the running system against the catalog's
// constraints. Unparseable versions are skipped rather than reported.
func checkRequirements(sys SystemInfo, req Requirements) []Recommendation {
	var recs []Recommendation
	if req.MinOSVersion != "" && sys.OSVersion != "" {
		minVer, minErr := goversion.NewVersion(req.MinOSVersion)
		cur, curErr := goversion.NewVersion(sys.OSVersion)
		if minErr == nil && curErr == nil && cur.LessThan(minVer) {
			recs = append(recs, Recommendation{
				Priority: PriorityHigh,
				Message:  fmt.Sprintf("OS version %s is below the required minimum %s", sys.OSVersion, req.MinOSVersion),
			})
		}
	}
	if len(req.Architectures) > 0 && !slices.Contains(req.Architectures, sys.Architecture) {
		recs = append(recs, Recommendation{
			Priority: PriorityHigh,
			Message: fmt.Sprintf("Architecture %s is not supported (supported: %s)",
				sys.Architecture, strings.Join(req.Architectures, ", ")),
		})
	}
	return recs
}
