// Package instantiate turns a parsed Definition into a named Instance.
package instantiate

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/specialistvlad/prefabgo/internal/model"
)

// Placeholder is the reserved token replaced by the instance name.
const Placeholder = "{{NAME}}"

// NamespaceInstance is the UUID v5 namespace for instance ids.
var NamespaceInstance = uuid.NewSHA1(uuid.NameSpaceURL, []byte("prefabgo/node-instance/v1"))

// Instantiate resolves def for the given name. Every occurrence of
// Placeholder in a name template is replaced; templates without it are copied
// unchanged.
func Instantiate(ctx context.Context, def *model.Definition, name string) (*model.Instance, error) {
	return InstantiateWith(ctx, def, name, nil)
}

// InstantiateWith is Instantiate with additional token substitutions. All
// tokens, Placeholder included, are replaced in a single pass, so a
// replacement value is never scanned for further tokens.
func InstantiateWith(ctx context.Context, def *model.Definition, name string, extra map[string]string) (*model.Instance, error) {
	if name == "" {
		return nil, &model.InvalidNameError{Name: name, Reason: "name must not be empty"}
	}

	pairs := []string{Placeholder, name}
	tokens := make([]string, 0, len(extra))
	for token := range extra {
		switch token {
		case "":
			return nil, &model.InvalidNameError{Name: name, Reason: "substitution token must not be empty"}
		case Placeholder:
			return nil, &model.InvalidNameError{Name: name, Reason: Placeholder + " is reserved for the instance name"}
		}
		tokens = append(tokens, token)
	}
	// Replacer breaks ties by argument order; sorting keeps the output stable.
	sort.Strings(tokens)
	for _, token := range tokens {
		pairs = append(pairs, token, extra[token])
	}
	replacer := strings.NewReplacer(pairs...)

	inst := model.NewInstance(id(def, name, tokens, extra), name, def, replacer.Replace)
	ctxlog.FromContext(ctx).Debug("Instantiated node.", "source", def.Source, "name", name, "id", inst.ID)
	return inst, nil
}

// ID returns the stable identifier of the instance of def called name.
func ID(def *model.Definition, name string) uuid.UUID {
	return id(def, name, nil, nil)
}

// IDWith returns the identifier InstantiateWith assigns for the same
// arguments. Equal extra maps yield equal ids whatever their iteration order.
func IDWith(def *model.Definition, name string, extra map[string]string) uuid.UUID {
	tokens := make([]string, 0, len(extra))
	for token := range extra {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return id(def, name, tokens, extra)
}

// id hashes the digest, the name and each sorted token pair. Without extra
// tokens the input is just digest/name.
func id(def *model.Definition, name string, tokens []string, extra map[string]string) uuid.UUID {
	var b strings.Builder
	b.WriteString(def.Digest)
	b.WriteString("/")
	b.WriteString(name)
	for _, token := range tokens {
		b.WriteString("\x00")
		b.WriteString(token)
		b.WriteString("=")
		b.WriteString(extra[token])
	}
	return uuid.NewSHA1(NamespaceInstance, []byte(b.String()))
}
