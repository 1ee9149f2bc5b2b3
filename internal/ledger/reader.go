package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the file extension of ledger source files.
const SourceExt = ".csv"

// ListSources returns the paths of ledger files in dir, skipping any file
// whose base name is in exclude. Exclusions keep a report from re-ingesting
// previously generated output.
func ListSources(dir string, exclude ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing sources in %s: %w", dir, err)
	}

	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, SourceExt) || excluded[name] {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

// ReadAll reads every file concurrently and returns the contents in the same
// order as paths. Any single read failure fails the whole call; there is no
// partial-success policy at this layer.
func ReadAll(ctx context.Context, paths []string) ([]string, error) {
	contents := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading source %s: %w", path, err)
			}
			contents[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}
