// Command proptool generates CaptainBigButt proportion-trick files for a
// decompiled Garry's Mod playermodel. It is a thin shell over the
// proportion package: flags in, event lines out, no business logic.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Link2738/GMod-PM-Proportions-Tool/proportion"
)

// options holds the parsed CLI arguments.
type options struct {
	qcPath      string
	outputDir   string
	subFolder   string
	analyzeOnly bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// run executes the whole CLI flow against explicit streams so tests can
// capture output.
func run(args []string, out, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	if opts.analyzeOnly {
		analysis, err := proportion.Analyze(opts.qcPath)
		if err != nil {
			return err
		}
		printAnalysis(out, analysis)
		return nil
	}

	genOpts := proportion.DefaultOptions()
	genOpts.SubFolder = opts.subFolder
	genOpts.OnEvent = func(e proportion.Event) {
		fmt.Fprintf(out, "[%s] %s\n", e.Level, e.Message)
	}
	result, err := proportion.Generate(opts.qcPath, opts.outputDir, genOpts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Done! %d bones -- files saved to %s\n", result.BoneCount, opts.outputDir)
	return nil
}

// parseOptions parses and validates CLI flags. The output directory
// defaults to the QC file's own directory, matching where a decompile
// usually gets recompiled from.
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("proptool", flag.ContinueOnError)
	fs.SetOutput(errOut)

	qcPath := fs.String("qc", "", "decompiled QC file path (required)")
	outputDir := fs.String("out", "", "output directory (default: QC file's directory)")
	subFolder := fs.String("anims", proportion.DefaultSubFolder, "animation sub-folder name")
	analyzeOnly := fs.Bool("analyze", false, "analyze the skeleton and exit without writing")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *qcPath == "" && fs.NArg() > 0 {
		*qcPath = fs.Arg(0)
	}
	if *qcPath == "" {
		return options{}, fmt.Errorf("missing QC file path (-qc)")
	}
	if *outputDir == "" {
		*outputDir = filepath.Dir(*qcPath)
	}

	return options{
		qcPath:      *qcPath,
		outputDir:   *outputDir,
		subFolder:   *subFolder,
		analyzeOnly: *analyzeOnly,
	}, nil
}

// printAnalysis renders the compatibility report in the order the
// original tool's analysis panel used.
func printAnalysis(out io.Writer, a proportion.AnalysisResult) {
	fmt.Fprintf(out, "Model: %s\n", a.ModelName)
	fmt.Fprintf(out, "Total bones: %d\n", a.TotalBones)
	fmt.Fprintf(out, "Matched ValveBiped: %d\n", len(a.MatchedNames))
	fmt.Fprintf(out, "Custom bones: %d\n", len(a.CustomNames))
	ik := "not found"
	if a.HasIKChains {
		ik = "detected"
	}
	fmt.Fprintf(out, "IK Chains: %s\n", ik)

	if len(a.MatchedNames) > 0 {
		fmt.Fprintf(out, "\nMatched bones:\n")
		for _, name := range a.MatchedNames {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if len(a.CustomNames) > 0 {
		fmt.Fprintf(out, "\nCustom bones (not in proportion trick):\n")
		for _, name := range a.CustomNames {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
}
