// Package validate checks the resource paths a Definition refers to.
//
// Only syntax is checked. Whether an asset exists is up to whoever resolves
// the paths.
package validate

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
)

// PathValidator checks a single resource path.
type PathValidator interface {
	Validate(p resourcepath.Path) error
}

// References validates every resource path in def. All failures are
// returned joined; each is an *resourcepath.InvalidPathError whose Location
// names where the path was found.
func References(def *model.Definition, v PathValidator) error {
	var errs []error
	check := func(location string, p resourcepath.Path) {
		if err := v.Validate(p); err != nil {
			errs = append(errs, locate(err, location))
		}
	}

	for _, c := range def.Components {
		check(fmt.Sprintf("components[%s].component", c.ID), c.Component)
	}
	for _, e := range def.Embedded {
		for _, ref := range e.Payload.References() {
			check(fmt.Sprintf("embedded_components[%s].%s", e.ID, ref.Field), ref.Path)
		}
	}
	return errors.Join(errs...)
}

func locate(err error, location string) error {
	var pathErr *resourcepath.InvalidPathError
	if errors.As(err, &pathErr) {
		located := *pathErr
		located.Location = location
		return &located
	}
	return fmt.Errorf("%s: %w", location, err)
}
