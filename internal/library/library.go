// Package library loads every prefab below a project root.
package library

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/specialistvlad/prefabgo/internal/fsutil"
	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/parser"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"golang.org/x/sync/errgroup"
)

// Extension is the file extension of prefab files.
const Extension = ".go"

// Library is a read-only set of parsed definitions keyed by resource path.
type Library struct {
	root string
	defs map[resourcepath.Path]*model.Definition
}

// Load parses all prefab files below root using at most workers goroutines
// (unbounded when workers <= 0). The first failure aborts the load.
func Load(ctx context.Context, root string, p *parser.Parser, workers int) (*Library, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading prefab library.", "root", root, "workers", workers)

	files, err := fsutil.FindFilesByExtension(root, Extension)
	if err != nil {
		return nil, fmt.Errorf("failed to discover prefabs in %s: %w", root, err)
	}

	paths := make([]resourcepath.Path, len(files))
	for i, file := range files {
		if paths[i], err = fsutil.ResourcePath(root, file); err != nil {
			return nil, err
		}
	}

	defs := make([]*model.Definition, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range files {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := os.ReadFile(files[i])
			if err != nil {
				return fmt.Errorf("failed to read prefab %s: %w", files[i], err)
			}
			def, err := p.Parse(gctx, string(paths[i]), text)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", paths[i], err)
			}
			defs[i] = def
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lib := &Library{root: root, defs: make(map[resourcepath.Path]*model.Definition, len(defs))}
	for i, def := range defs {
		lib.defs[paths[i]] = def
	}
	logger.Debug("Prefab library loaded.", "root", root, "prefabs", len(lib.defs))
	return lib, nil
}

// Root returns the directory the library was loaded from.
func (l *Library) Root() string { return l.root }

// Len returns the number of loaded definitions.
func (l *Library) Len() int { return len(l.defs) }

// Get returns the definition stored at p.
func (l *Library) Get(p resourcepath.Path) (*model.Definition, bool) {
	def, ok := l.defs[p]
	return def, ok
}

// Paths returns the resource paths of all definitions, sorted.
func (l *Library) Paths() []resourcepath.Path {
	paths := make([]resourcepath.Path, 0, len(l.defs))
	for p := range l.defs {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
	return paths
}
