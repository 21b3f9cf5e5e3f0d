package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"yamlguard/internal/diag"
	"yamlguard/internal/diagfmt"
	"yamlguard/internal/lintcore"
	"yamlguard/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [files or directories...]",
	Short: "Apply auto-fixes and re-lint until the result converges",
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "apply fixes in memory only and print the diagnostics that remain, without writing files")
}

func runFix(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	paths, fromStdin, err := sess.targets(args)
	if err != nil {
		return err
	}
	if fromStdin {
		return fmt.Errorf("yamlguard: fix does not support stdin (\"-\"), pipe through `lint` instead")
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	engine := lintcore.New(sess.cfg, sess.catalog)

	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var (
		mu       sync.Mutex
		anyError bool
	)

	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			hadErrors, err := fixOne(cmd, engine, path, dryRun)
			if err != nil {
				return err
			}
			if hadErrors {
				mu.Lock()
				anyError = true
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if anyError {
		os.Exit(1)
	}
	return nil
}

// fixOne applies fixes to one file and reports whether any error-level
// diagnostic — including a fix-did-not-converge diagnostic — remains, so
// the caller's exit code reflects it the same way `lint` does.
func fixOne(cmd *cobra.Command, engine *lintcore.Engine, path string, dryRun bool) (bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return false, fmt.Errorf("yamlguard: %w", err)
	}

	result, _, err := engine.Fix(fs, fileID)
	if err != nil {
		return false, fmt.Errorf("yamlguard: fix %s: %w", path, err)
	}

	if !dryRun {
		info, statErr := os.Stat(path)
		mode := os.FileMode(0o644)
		if statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, result.Fixed, mode); err != nil {
			return false, fmt.Errorf("yamlguard: write %s: %w", path, err)
		}
	}

	remaining := diag.NewBag(len(result.Remaining) + 1)
	for _, d := range result.Remaining {
		remaining.Add(d)
	}
	remaining.Sort()
	if remaining.Len() > 0 {
		diagfmt.Pretty(cmd.OutOrStdout(), remaining, fs, diagfmt.PrettyOpts{})
	}
	return remaining.HasErrors(), nil
}
