// Package main provides the CLI entrypoint for resultgen.
//
// resultgen is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to discover status schemas
//   - Validates generation directives from YAML against the schemas
//   - Generates Result families and wire-status mappings next to each schema
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"

	"resultgen/internal/analyze"
	"resultgen/internal/diagnostic"
	"resultgen/internal/directive"
	"resultgen/internal/gen"
	"resultgen/internal/plan"
)

const usage = `resultgen - Result-family code generation for status schemas

Usage:
  resultgen [flags] check    validate directives against the loaded schemas
  resultgen [flags] gen      validate, then write generated files

Flags:
  -config path   directive file (default "resultgen.yaml")
  -debug         dump the resolved plan; keep unformatted output of
                 artifacts that fail gofmt
  -watch         (gen only) regenerate when sources or directives change
`

func main() {
	var (
		configPath = flag.String("config", "resultgen.yaml", "directive file")
		debug      = flag.Bool("debug", false, "dump the resolved plan")
		watch      = flag.Bool("watch", false, "regenerate on change (gen only)")
	)

	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	command := flag.Arg(0)

	switch command {
	case "check":
		if runOnce(*configPath, *debug, false) != nil {
			os.Exit(1)
		}
	case "gen":
		if *watch {
			if err := runWatch(*configPath, *debug); err != nil {
				fmt.Fprintln(os.Stderr, "watch:", err)
				os.Exit(1)
			}

			return
		}

		if runOnce(*configPath, *debug, true) != nil {
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runOnce executes the full pipeline: load directives, discover schemas,
// resolve, and (optionally) write the generated files.
func runOnce(configPath string, debug, write bool) error {
	p, err := resolve(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resultgen:", err)
		return err
	}

	report(p.Diagnostics)

	if debug {
		fmt.Fprint(os.Stderr, spew.Sdump(p))
	}

	if !write {
		fmt.Fprintf(os.Stderr, "ok: %d schema(s) resolved\n", len(p.Schemas))
		return p.Diagnostics.Error()
	}

	// A rejected schema skips only itself; generation proceeds for the
	// rest. The run fails outright only when nothing resolved.
	if p.Diagnostics.HasErrors() && len(p.Schemas) == 0 {
		return p.Diagnostics.Error()
	}

	config := gen.DefaultGeneratorConfig()
	config.DebugUnformatted = debug

	generator := gen.NewGenerator(config)

	files, err := generator.Generate(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		return err
	}

	if err := gen.WriteFiles(files); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)
		return err
	}

	for _, f := range files {
		fmt.Fprintln(os.Stderr, "wrote", filepath.Join(f.Dir, f.Filename))
	}

	return nil
}

func resolve(configPath string) (*plan.ResolvedPlan, error) {
	cfg, err := directive.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading directives: %w", err)
	}

	set, err := loadSchemas(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	return plan.NewResolver(set, cfg, plan.DefaultConfig()).Resolve()
}

// report prints every diagnostic; warnings and infos never stop a run.
func report(d diagnostic.Diagnostics) {
	for _, diags := range [][]diagnostic.Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range diags {
			fmt.Fprintln(os.Stderr, diag.String())
		}
	}
}

// runWatch reruns generation whenever the directive file or a watched
// source directory changes. Events are debounced so editor save bursts
// trigger one run.
func runWatch(configPath string, debug bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchTargets(watcher, configPath); err != nil {
		return err
	}

	// First run happens immediately; failures keep the watch alive.
	_ = runOnce(configPath, debug, true)

	const debounce = 500 * time.Millisecond

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ignoreEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}

			pending = timer.C
		case <-pending:
			pending = nil

			_ = runOnce(configPath, debug, true)
			// Re-add targets: new packages may have appeared.
			_ = addWatchTargets(watcher, configPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			fmt.Fprintln(os.Stderr, "watch:", err)
		}
	}
}

// addWatchTargets watches the directive file plus the directory of every
// discovered schema.
func addWatchTargets(watcher *fsnotify.Watcher, configPath string) error {
	if err := watcher.Add(configPath); err != nil {
		return err
	}

	cfg, err := directive.LoadFile(configPath)
	if err != nil {
		return nil // reported by the pipeline run itself
	}

	set, err := loadSchemas(cfg)
	if err != nil {
		return nil
	}

	for _, s := range set.Schemas {
		_ = watcher.Add(s.Dir) // duplicates are fine
	}

	return nil
}

// ignoreEvent drops events that cannot change generation output, most
// importantly writes to the generated files themselves.
func ignoreEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return true
	}

	name := filepath.Base(event.Name)
	if strings.HasSuffix(name, "_gen.go") || strings.HasSuffix(name, ".unformatted.go") {
		return true
	}

	relevant := strings.HasSuffix(name, ".go") ||
		strings.HasSuffix(name, ".yaml") ||
		strings.HasSuffix(name, ".yml")

	return !relevant
}

func loadSchemas(cfg *directive.ConfigFile) (*analyze.SchemaSet, error) {
	return analyze.LoadPackages(cfg.Packages...)
}
