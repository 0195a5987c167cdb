package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/prefabgo/internal/instantiate"
	"github.com/specialistvlad/prefabgo/internal/library"
	"github.com/specialistvlad/prefabgo/internal/manifest"
	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"github.com/specialistvlad/prefabgo/internal/validate"
)

// ErrCheckFailed is returned by Check when at least one prefab has invalid
// references. The report has already been written.
var ErrCheckFailed = errors.New("reference check failed")

// Parse parses a single prefab file and writes its definition.
func (a *App) Parse(ctx context.Context, file string) error {
	ctx = a.context(ctx)
	s, _ := a.settings(nil)

	def, err := s.parser(a.registry).ParseFile(ctx, file)
	if err != nil {
		return err
	}
	return a.write(s, def)
}

// Instantiate parses a prefab file, resolves it for name and writes the
// instance. extra holds additional token substitutions.
func (a *App) Instantiate(ctx context.Context, file, name string, extra map[string]string) error {
	ctx = a.context(ctx)
	s, _ := a.settings(nil)

	def, err := s.parser(a.registry).ParseFile(ctx, file)
	if err != nil {
		return err
	}
	inst, err := instantiate.InstantiateWith(ctx, def, name, extra)
	if err != nil {
		return err
	}
	return a.write(s, inst)
}

// CheckResult is the outcome of checking one prefab.
type CheckResult struct {
	Prefab resourcepath.Path `json:"prefab" yaml:"prefab"`
	Digest string            `json:"digest" yaml:"digest"`
	Errors []string          `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Check parses every prefab below dir, validates their references and writes
// one CheckResult per prefab. A parse failure aborts the check; reference
// failures are reported and yield ErrCheckFailed.
func (a *App) Check(ctx context.Context, dir string) error {
	ctx = a.context(ctx)
	s, _ := a.settings(nil)

	lib, err := library.Load(ctx, dir, s.parser(a.registry), a.config.WorkerCount)
	if err != nil {
		return err
	}

	v := s.validator()
	results := make([]CheckResult, 0, lib.Len())
	failed := 0
	for _, p := range lib.Paths() {
		def, _ := lib.Get(p)
		result := CheckResult{Prefab: p, Digest: def.Digest}
		if err := validate.References(def, v); err != nil {
			failed++
			for _, e := range unjoin(err) {
				result.Errors = append(result.Errors, e.Error())
			}
			a.logger.Warn("Prefab has invalid references.", "prefab", p, "errors", len(result.Errors))
		}
		results = append(results, result)
	}
	a.logger.Info("Check finished.", "prefabs", len(results), "failed", failed)

	if err := a.write(s, results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d prefabs", ErrCheckFailed, failed, len(results))
	}
	return nil
}

// Spawn resolves every instance a manifest asks for, using the prefabs below
// projectDir, and writes them in manifest order.
func (a *App) Spawn(ctx context.Context, projectDir, manifestPath string) error {
	ctx = a.context(ctx)

	m, err := manifest.Load(ctx, manifestPath)
	if err != nil {
		return err
	}
	s, err := a.settings(m)
	if err != nil {
		return err
	}

	lib, err := library.Load(ctx, projectDir, s.parser(a.registry), a.config.WorkerCount)
	if err != nil {
		return err
	}

	v := s.validator()
	instances := make([]*model.Instance, 0, m.InstanceCount())
	for _, spawn := range m.Spawns {
		def, ok := lib.Get(spawn.Prefab)
		if !ok {
			return fmt.Errorf("spawn %q: prefab %s not found in %s", spawn.Label, spawn.Prefab, projectDir)
		}
		if err := validate.References(def, v); err != nil {
			return fmt.Errorf("spawn %q: %w", spawn.Label, err)
		}
		for _, name := range spawn.Names {
			inst, err := instantiate.Instantiate(ctx, def, name)
			if err != nil {
				return fmt.Errorf("spawn %q: %w", spawn.Label, err)
			}
			instances = append(instances, inst)
		}
	}
	a.logger.Info("Spawned instances.", "spawns", len(m.Spawns), "instances", len(instances))

	return a.write(s, instances)
}

func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
