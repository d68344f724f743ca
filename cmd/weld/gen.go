package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/weld-dev/weld/cmd/weld/internal/cache"
	"github.com/weld-dev/weld/cmd/weld/internal/config"
	"github.com/weld-dev/weld/cmd/weld/internal/project"
	"github.com/weld-dev/weld/cmd/weld/internal/widget"
)

func newGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate code from declarative sources",
		Long:  `Generate Go code from declarative widget definitions and other sources.`,
	}

	cmd.AddCommand(newGenWidgetsCommand())

	return cmd
}

func newGenWidgetsCommand() *cobra.Command {
	var (
		watch      bool
		directory  string
		configPath string
		verbose    bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "widgets [files...]",
		Short: "Compile widget definition files into Go code",
		Long: `Compile widget definition files (.weld.yml) into Go code.

Each definition describes a component's widget tree declaratively; the
compiler lowers it into an imperative build function, a component struct,
and the container plumbing the relay runtime expects.

If no files are specified, searches for .weld.yml files in the directory
named by weld.yml (default: widgets/) and the current directory.

Examples:
  weld gen widgets                       # Compile all .weld.yml files
  weld gen widgets widgets/counter.weld.yml
  weld gen widgets --dir ./ui            # Compile all in directory
  weld gen widgets --watch               # Watch and recompile on changes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime := time.Now()

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			c := &compiler{
				opts:    cfg.FileOptions(),
				cache:   cache.Open(""),
				force:   force,
				verbose: verbose,
			}
			defer func() {
				if err := c.cache.Save(); err != nil {
					log.Printf("⚠️  Failed to save cache: %v", err)
				}
			}()

			if verbose {
				fmt.Println("🔧 Starting widget compilation...")
			}

			// If specific files provided, compile them
			if len(args) > 0 {
				for _, file := range args {
					if _, err := c.compile(file); err != nil {
						return fmt.Errorf("failed to compile %s: %w", file, err)
					}
				}
			} else {
				searchDirs := []string{}
				if directory != "" {
					searchDirs = []string{directory}
				} else {
					searchDirs = []string{cfg.WidgetsDir, "."}
				}

				total, err := c.compileDirs(searchDirs)
				if err != nil {
					return err
				}

				if total == 0 {
					fmt.Println("ℹ️  No .weld.yml files found")
				} else {
					fmt.Printf("\n✨ Successfully compiled %d widget files in %v\n", total, time.Since(startTime))
				}
			}

			if watch {
				dirs := []string{cfg.WidgetsDir, "."}
				if directory != "" {
					dirs = []string{directory}
				}
				if len(args) > 0 {
					dirs = nil
					for _, file := range args {
						dirs = append(dirs, filepath.Dir(file))
					}
				}
				return c.watch(dirs)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch for file changes and recompile")
	cmd.Flags().StringVarP(&directory, "dir", "d", "", "Directory to search for .weld.yml files")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to weld.yml (default: nearest weld.yml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", true, "Verbose output")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Recompile even when the cache says a file is unchanged")

	return cmd
}

// compiler drives widget compilation for one gen run, skipping files
// whose fingerprint matches the cache.
type compiler struct {
	opts    widget.FileOptions
	cache   *cache.Cache
	force   bool
	verbose bool
}

// fingerprint keys a compilation on the definition source and every
// option that shapes the output.
func fingerprint(data []byte, o widget.FileOptions) string {
	return cache.Key(data, []byte(strings.Join(append([]string{
		o.Package, o.ToolkitImport, o.ToolkitIdent, o.RuntimeImport, o.RuntimeIdent,
	}, o.ExtraImports...), "\x00")))
}

// packageFor derives the fallback package clause for a definition that
// does not name one: the enclosing module's name at the project root,
// the directory name below it.
func packageFor(path string) string {
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return ""
	}
	root, err := project.FindRoot(dir)
	if err != nil {
		return packageIdent(filepath.Base(dir))
	}
	if dir == root {
		if mod, err := project.ModulePath(root); err == nil {
			return packageIdent(filepath.Base(mod))
		}
	}
	return packageIdent(filepath.Base(dir))
}

// packageIdent strips the characters a path segment may carry that a
// package clause may not.
func packageIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if b.Len() > 0 {
				b.WriteRune(r)
			}
		}
	}
	return strings.ToLower(b.String())
}

// compile processes one definition file. It reports whether the file
// was actually compiled (false means the cached output is current).
func (c *compiler) compile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	opts := c.opts
	if opts.Package == "" {
		opts.Package = packageFor(path)
	}

	hash := fingerprint(data, opts)
	if !c.force && c.cache.Fresh(path, hash) {
		if c.verbose {
			fmt.Printf("⏭️  %s unchanged, skipping\n", path)
		}
		return false, nil
	}

	if c.verbose {
		fmt.Printf("📝 Compiling %s...\n", path)
	}
	if err := widget.ProcessWidgetFile(path, opts); err != nil {
		c.cache.Forget(path)
		return false, err
	}

	c.cache.Record(path, hash, widget.OutputPath(path))
	if c.verbose {
		fmt.Printf("✅ Generated %s\n", widget.OutputPath(path))
	}
	return true, nil
}

// compileDirs walks each directory and compiles every .weld.yml file
// found. A failed file is reported and skipped so the rest still compile.
func (c *compiler) compileDirs(dirs []string) (int, error) {
	total := 0
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		if c.verbose {
			fmt.Printf("🔍 Searching %s for .weld.yml files...\n", dir)
		}

		count := 0
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != dir {
				return filepath.SkipDir
			}

			if !info.IsDir() && strings.HasSuffix(path, ".weld.yml") {
				if _, err := c.compile(path); err != nil {
					log.Printf("⚠️  Failed to compile %s: %v\n", path, err)
					// Continue with other files
				} else {
					count++
					total++
				}
			}

			return nil
		})
		if err != nil {
			return total, fmt.Errorf("failed to walk directory %s: %w", dir, err)
		}

		if c.verbose && count > 0 {
			fmt.Printf("✅ Compiled %d widget files in %s\n", count, dir)
		}
	}
	return total, nil
}

// watch blocks, recompiling widget definitions as they change. Events
// are debounced so editors that write in multiple syscalls only
// trigger one compile.
func (c *compiler) watch(dirs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	fmt.Println("\n👀 Watching for changes... (Press Ctrl+C to stop)")

	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	var pendingFiles []string
	var mu sync.Mutex

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !strings.HasSuffix(event.Name, ".weld.yml") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			mu.Lock()
			pendingFiles = append(pendingFiles, event.Name)
			mu.Unlock()

			// Reset debounce timer
			debounce.Reset(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("Watcher error:", err)

		case <-debounce.C:
			mu.Lock()
			files := pendingFiles
			pendingFiles = nil
			mu.Unlock()

			seen := map[string]bool{}
			for _, file := range files {
				if seen[file] {
					continue
				}
				seen[file] = true

				if _, err := c.compile(file); err != nil {
					log.Printf("⚠️  Failed to compile %s: %v\n", file, err)
				}
			}
			if err := c.cache.Save(); err != nil {
				log.Printf("⚠️  Failed to save cache: %v", err)
			}
		}
	}
}
