package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"devcheck/internal/config"
	"devcheck/internal/doctor"
	"devcheck/internal/report"
	"devcheck/internal/system"
)

// errMissingRequired maps --exit-on-missing to a non-zero exit without a
// redundant message; the text rendering already explains the failure.
var errMissingRequired = errors.New("required tools are missing")

var (
	checkOutput  string
	checkConfig  string
	checkFile    string
	checkPretty  bool
	checkVerbose bool
	checkExit    bool
	checkWatch   bool
)

func init() {
	rootCmd.AddCommand(checkCmd)
	f := checkCmd.Flags()
	f.StringVarP(&checkOutput, "output", "o", "text", "output format: json, text, markdown, or both")
	f.StringVarP(&checkConfig, "config", "c", "", "path to tools catalog file")
	f.StringVarP(&checkFile, "file", "f", "", "also write the rendering to a file")
	f.BoolVar(&checkPretty, "pretty", false, "pretty print JSON output")
	f.BoolVarP(&checkVerbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&checkExit, "exit-on-missing", false, "exit non-zero when required tools are missing")
	f.BoolVar(&checkWatch, "watch", false, "re-run checks when the catalog file changes")
}

var checkCmd = &cobra.Command{
	Use:   "check [query...]",
	Short: "Run the configured tool checks",
	Long:  "Probes every tool in the catalog and renders the results. Positional arguments fuzzy-filter the catalog by tool id or name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func runCheck(queries []string) error {
	if checkVerbose {
		system.SetVerbose()
	}
	if checkWatch {
		return watchAndCheck(queries)
	}
	return runOnce(queries)
}

func runOnce(queries []string) error {
	rep, err := buildReport(queries)
	if err != nil {
		return err
	}
	if err := emit(rep); err != nil {
		return err
	}
	if checkExit && !rep.Summary.AllRequiredPresent {
		return errMissingRequired
	}
	return nil
}

func buildReport(queries []string) (doctor.Report, error) {
	cat, err := config.Load(checkConfig)
	if err != nil {
		return doctor.Report{}, fmt.Errorf("load catalog: %w", err)
	}
	tools := filterTools(cat.Tools, queries)
	system.Logger.Debug("running checks", "tools", len(tools))
	results := doctor.Run(tools)
	return doctor.BuildReport(results, cat.SystemRequirements), nil
}

// filterTools keeps descriptors whose id or name fuzzy-matches any query,
// preserving catalog order. No queries keeps everything.
func filterTools(tools []doctor.ToolDescriptor, queries []string) []doctor.ToolDescriptor {
	if len(queries) == 0 {
		return tools
	}
	haystack := make([]string, len(tools))
	for i, t := range tools {
		haystack[i] = t.ID + " " + t.Name
	}
	keep := make(map[int]bool)
	for _, q := range queries {
		for _, m := range fuzzy.Find(q, haystack) {
			keep[m.Index] = true
		}
	}
	out := make([]doctor.ToolDescriptor, 0, len(keep))
	for i, t := range tools {
		if keep[i] {
			out = append(out, t)
		}
	}
	return out
}

// emit prints the selected renderings to stdout and, when requested,
// persists one to a file. File write failures are fatal: the file was an
// explicit user request.
func emit(rep doctor.Report) error {
	var fileOut string
	switch checkOutput {
	case "json":
		b, err := report.JSON(rep, checkPretty)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		fileOut = string(b)
	case "markdown":
		md := report.Markdown(rep)
		fmt.Print(report.RenderMarkdown(md))
		fileOut = md
	case "both":
		b, err := report.JSON(rep, checkPretty)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		fmt.Println("\n" + strings.Repeat("=", 50) + "\n")
		text := report.Text(rep)
		fmt.Print(text)
		fileOut = text
	case "text":
		text := report.Text(rep)
		fmt.Print(text)
		fileOut = text
	default:
		return fmt.Errorf("unknown output format: %s", checkOutput)
	}
	if checkFile != "" {
		if err := os.WriteFile(checkFile, []byte(fileOut), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", checkFile, err)
		}
		system.Logger.Info("report written", "path", checkFile)
	}
	return nil
}

// watchAndCheck runs once, then re-runs whenever the catalog file changes.
func watchAndCheck(queries []string) error {
	path := checkConfig
	if path == "" {
		path = config.DefaultPath()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}
	if err := w.Add(dir); err != nil {
		return err
	}

	if err := runOnce(queries); err != nil && !errors.Is(err, errMissingRequired) {
		return err
	}
	system.Logger.Info("watching catalog", "path", path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// let editors finish their rename/write dance
			time.Sleep(120 * time.Millisecond)
			system.Logger.Info("catalog changed, re-running checks")
			if err := runOnce(queries); err != nil && !errors.Is(err, errMissingRequired) {
				return err
			}
		case _, ok := <-w.Errors:
			if !ok {
				return nil
			}
		}
	}
}
