package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"yamlguard/internal/cache"
	"yamlguard/internal/diag"
	"yamlguard/internal/diagfmt"
	"yamlguard/internal/lintcore"
	"yamlguard/internal/source"
)

var lintCmd = &cobra.Command{
	Use:   "lint [files or directories...]",
	Short: "Lint YAML files and report diagnostics",
	RunE:  runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}

	paths, fromStdin, err := sess.targets(args)
	if err != nil {
		return err
	}

	engine := lintcore.New(sess.cfg, sess.catalog)

	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	var disk *cache.Disk
	if cacheDir != "" {
		disk, err = cache.Open(cacheDir)
		if err != nil {
			return err
		}
	}

	var (
		mu       sync.Mutex
		anyError bool
		anyWarn  bool
	)

	format, _ := cmd.Flags().GetString("format")
	colorMode, _ := cmd.Flags().GetString("color")
	color := resolveColor(colorMode, os.Stdout)

	report := func(fs *source.FileSet, fileID source.FileID, bag *diag.Bag) error {
		mu.Lock()
		defer mu.Unlock()
		if bag.HasErrors() {
			anyError = true
		}
		if bag.HasWarnings() {
			anyWarn = true
		}
		return writeReport(cmd.OutOrStdout(), bag, fs, format, color)
	}

	if fromStdin {
		fs := source.NewFileSet()
		content, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("yamlguard: read stdin: %w", readErr)
		}
		fileID := fs.Add("stdin", content, source.FileVirtual)
		result, lintErr := engine.Lint(fs, fileID)
		if lintErr != nil {
			return lintErr
		}
		if err := report(fs, fileID, result.Bag); err != nil {
			return err
		}
	} else {
		jobs, _ := cmd.Flags().GetInt("jobs")
		if jobs <= 0 {
			jobs = runtime.GOMAXPROCS(0)
		}

		g := new(errgroup.Group)
		g.SetLimit(jobs)
		for _, path := range paths {
			path := path
			g.Go(func() error {
				fs := source.NewFileSet()
				fileID, loadErr := fs.Load(path)
				if loadErr != nil {
					return fmt.Errorf("yamlguard: %w", loadErr)
				}
				bag, lintErr := lintOneCached(engine, disk, sess.configHash, fs, fileID)
				if lintErr != nil {
					return lintErr
				}
				return report(fs, fileID, bag)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	switch {
	case anyError:
		os.Exit(1)
	case anyWarn:
		// warnings alone don't fail the run unless --strict is set
		strict, _ := cmd.Flags().GetBool("strict")
		if strict {
			os.Exit(1)
		}
	}
	return nil
}

// lintOneCached replays a disk cache hit when one exists for fileID's
// content under the current config, and runs the engine (storing the
// result) on a miss. A nil disk means caching is disabled and every call
// falls through to the engine.
func lintOneCached(engine *lintcore.Engine, disk *cache.Disk, configHash [32]byte, fs *source.FileSet, fileID source.FileID) (*diag.Bag, error) {
	if disk == nil {
		result, err := engine.Lint(fs, fileID)
		if err != nil {
			return nil, err
		}
		return result.Bag, nil
	}

	content := fs.Get(fileID).Content
	contentHash := sha256.Sum256(content)

	if entry, ok, err := disk.Get(contentHash); err == nil && ok && entry.ConfigHash == configHash {
		bag := diag.NewBag(len(entry.Diagnostics) + 1)
		for _, d := range cache.FromEntry(entry, fileID) {
			bag.Add(d)
		}
		return bag, nil
	}

	result, err := engine.Lint(fs, fileID)
	if err != nil {
		return nil, err
	}
	_ = disk.Put(contentHash, cache.ToEntry(configHash, result.Bag.Items()))
	return result.Bag, nil
}

func writeReport(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string, color bool) error {
	if format == "json" {
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{IncludeFixes: true, IncludeNotes: true})
	}
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{Color: color})
	return nil
}

func init() {
	lintCmd.Flags().Bool("strict", false, "exit non-zero when only warnings are found")
	lintCmd.Flags().String("cache-dir", "", "cache lint results on disk, keyed by file content hash")
}
