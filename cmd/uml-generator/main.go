// Package main provides the CLI entrypoint for uml-generator.
//
// uml-generator compiles a Gaphor UML model into Go source:
//   - Parses the model file into an element graph
//   - Resolves generalizations, stereotypes and association ends
//   - Applies the manual overrides from YAML
//   - Generates one Go file targeting the properties runtime
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"uml-generator/internal/config"
	"uml-generator/internal/diagnostic"
	"uml-generator/internal/gaphor"
	"uml-generator/internal/gen"
	"uml-generator/internal/override"
	"uml-generator/internal/resolve"
)

const usage = `usage: uml-generator [flags] [<model.gaphor>]

Reads a Gaphor model and writes the generated Go model code.
Flags default to the UMLGEN_* environment variables, which may also be set
in a .env file in the current directory.

Flags:
`

func main() {
	os.Exit(runWithArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	cfg, err := config.Load(".env")
	if err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	fs := flag.NewFlagSet("uml-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 1 {
		logger.Printf("error: at most one model file argument is allowed")
		fs.Usage()

		return 2
	}

	if fs.NArg() == 1 {
		cfg.ModelPath = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		logger.Printf("error: %v", err)
		fs.Usage()

		return 2
	}

	if err := generate(cfg, stdout, logger); err != nil {
		logger.Printf("error: %v", err)
		return 1
	}

	return 0
}

func generate(cfg config.Config, stdout io.Writer, logger *log.Logger) error {
	g, err := gaphor.ParseFile(cfg.ModelPath)
	if err != nil {
		return err
	}

	var policy resolve.Policy
	if cfg.OverridesPath != "" {
		f, err := override.LoadFile(cfg.OverridesPath)
		if err != nil {
			return err
		}

		policy = f
	}

	plan, err := resolve.Resolve(g, policy, cfg.Resolve())
	if plan != nil {
		printDiagnostics(logger, &plan.Diagnostics, cfg.Verbose)
	}

	if err != nil {
		return err
	}

	// stdout may carry the generated file.
	if cfg.Dump {
		dumpEnds(logger.Writer(), plan)
	}

	if cfg.ToStdout() {
		src, err := gen.Generate(plan, cfg.Gen())
		if err != nil {
			return err
		}

		_, err = stdout.Write(src)

		return err
	}

	if err := gen.WriteFile(plan, cfg.OutputPath, cfg.Gen()); err != nil {
		return err
	}

	logger.Printf("wrote %s: %d classes, %d enumerations, %d attributes, %d associations",
		cfg.OutputPath, len(plan.Classes), len(plan.Enumerations), len(plan.Attributes), len(plan.Associations))

	return nil
}

func printDiagnostics(logger *log.Logger, d *diagnostic.Diagnostics, verbose bool) {
	for _, diag := range d.All() {
		if diag.Severity == diagnostic.DiagnosticInfo && !verbose {
			continue
		}

		logger.Printf("%s: %s", diag.Severity, diag)
	}
}

// endSummary is the dump form of a resolved association end.
type endSummary struct {
	Property       string
	End            string
	Classification string
	Lower, Upper   string
	Composite      bool
	Subsets        []string
	Redefines      string
}

func dumpEnds(w io.Writer, plan *resolve.Plan) {
	summaries := make([]endSummary, 0, len(plan.Ends))

	for _, e := range plan.Ends {
		s := endSummary{
			Property:       e.Property.ID,
			Classification: e.Classification.String(),
		}

		if e.Navigable {
			s.End = e.Qualified()
			s.Lower, s.Upper = e.Lower, e.Upper
			s.Composite = e.Composite
			s.Subsets = e.Subsets
			s.Redefines = e.Redefines
		}

		summaries = append(summaries, s)
	}

	cs := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cs.Fdump(w, summaries)
}
