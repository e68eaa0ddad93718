package scan

// ABOUTME: Directory and archive traversal deriving type names under a namespace prefix
// ABOUTME: Process-wide result cache keyed by (context identity, prefix), never invalidated

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/udonne/kara/pkg/internal/debug"
	"github.com/udonne/kara/pkg/typesys"
)

const (
	// TypeSuffix is the file suffix marking a compiled type definition.
	TypeSuffix = ".class"

	// archiveScheme prefixes root locators that address a zip archive
	// rather than a directory tree.
	archiveScheme = "jar:"
)

// syntheticName matches compiler-generated type names: a separator
// immediately followed by a digit, anywhere in the simple name (Foo$1,
// Foo$1Bar). This is a naming convention, not a verified modifier; Foo$Bar
// is retained.
var syntheticName = regexp.MustCompile(`\$\d`)

type cacheKey struct {
	contextID string
	prefix    string
}

var (
	scanMu    sync.Mutex
	scanCache = make(map[cacheKey][]*typesys.Descriptor)
)

// Scan enumerates the type definitions found under the namespace prefix
// across the context's roots, in scan order. Results are cached per
// (context identity, prefix) for the process lifetime; the get-or-compute
// critical section is mutually exclusive, so concurrent requests for the
// same key execute the underlying scan exactly once and every caller
// observes the same result. Callers must not depend on result ordering
// across filesystem implementations, and must not mutate the returned
// slice.
func Scan(prefix string, ctx *Context) ([]*typesys.Descriptor, error) {
	key := cacheKey{contextID: ctx.ID(), prefix: prefix}

	scanMu.Lock()
	defer scanMu.Unlock()

	if cached, ok := scanCache[key]; ok {
		debug.Printf("scan", "cache hit for %s @ %s\n", prefix, ctx.ID())
		return cached, nil
	}

	fqns, err := scanRoots(prefix, ctx)
	if err != nil {
		return nil, err
	}

	descs := make([]*typesys.Descriptor, 0, len(fqns))
	for _, fqn := range fqns {
		d, err := ctx.LoadType(fqn)
		if err != nil {
			// Stale or inconsistent build output; drop the entry, never
			// the scan.
			ctx.logger.Warn("skipping unresolvable type", "type", fqn, "error", err)
			continue
		}
		descs = append(descs, d)
	}

	scanCache[key] = descs
	return descs, nil
}

// Entries returns the fully-qualified names derived under the prefix
// without loading them. Unlike Scan the result is not cached; it exists
// for inspecting a layout (the CLI uses it to show unresolvable entries
// too).
func Entries(prefix string, ctx *Context) ([]string, error) {
	return scanRoots(prefix, ctx)
}

// scanRoots walks every root in order, collecting derived names. A fault
// opening a root propagates; there is no root-level retry.
func scanRoots(prefix string, ctx *Context) ([]string, error) {
	pathPrefix := strings.ReplaceAll(prefix, ".", "/")

	var fqns []string
	for _, root := range ctx.roots {
		var (
			found []string
			err   error
		)
		if archivePath, ok := strings.CutPrefix(root, archiveScheme); ok {
			found, err = scanArchive(archivePath, pathPrefix)
		} else {
			found, err = scanDir(root, pathPrefix)
		}
		if err != nil {
			return nil, fmt.Errorf("scanning root %s: %w", root, err)
		}
		ctx.logger.Debug("scanned root", "root", root, "prefix", prefix, "entries", len(found))
		fqns = append(fqns, found...)
	}
	return fqns, nil
}

// scanArchive iterates a zip archive's entry table, keeping non-directory
// entries with the type suffix whose path starts with the prefix in path
// form and whose simple name is not synthetic.
func scanArchive(archivePath, pathPrefix string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var fqns []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := f.Name
		if !strings.HasSuffix(name, TypeSuffix) || !strings.HasPrefix(name, pathPrefix) {
			continue
		}
		simple := strings.TrimSuffix(path.Base(name), TypeSuffix)
		if syntheticName.MatchString(simple) {
			continue
		}
		fqns = append(fqns, toDotted(name))
	}
	return fqns, nil
}

// scanDir recursively walks a directory tree with the same suffix, prefix
// and synthetic-name rules. The fully-qualified name is taken from the
// path segment after the last occurrence of the prefix path: the prefix
// string can also appear earlier in the absolute path, and splitting at
// the last occurrence avoids misidentifying the package boundary there.
func scanDir(root, pathPrefix string) ([]string, error) {
	var fqns []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, TypeSuffix) {
			return nil
		}

		slashPath := filepath.ToSlash(p)
		idx := strings.LastIndex(slashPath, pathPrefix)
		if idx < 0 {
			return nil
		}

		rel := slashPath[idx:]
		simple := strings.TrimSuffix(path.Base(rel), TypeSuffix)
		if syntheticName.MatchString(simple) {
			return nil
		}
		fqns = append(fqns, toDotted(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fqns, nil
}

// toDotted converts an entry path like "com/acme/Foo.class" to the
// fully-qualified name "com.acme.Foo".
func toDotted(entryPath string) string {
	return strings.ReplaceAll(strings.TrimSuffix(entryPath, TypeSuffix), "/", ".")
}
