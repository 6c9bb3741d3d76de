package nav

import (
	"net/url"
	"path"
	"strings"
)

// Resolver converts logical destination paths into absolute URLs under
// a fixed site root. The root is determined once at startup; Resolve is
// a pure function of the root and its input, so resolved URLs are
// stable for both link rendering and programmatic navigation.
type Resolver struct {
	root string
}

// NewResolver creates a resolver for the given site root.
// The root is normalized to end with a single trailing slash.
func NewResolver(root string) *Resolver {
	return &Resolver{root: ensureTrailingSlash(root)}
}

// DetectRoot derives the site root from the shell's own script URL by
// taking its parent-of-parent directory. This lets the dashboard be
// deployed at a domain root or any subpath without configuration:
// https://example.com/dash/assets/shell.js -> https://example.com/dash/
func DetectRoot(scriptURL string) (string, error) {
	u, err := url.Parse(scriptURL)
	if err != nil {
		return "", err
	}

	dir := path.Dir(u.Path)        // .../dash/assets
	parent := path.Dir(dir)        // .../dash
	u.Path = ensureTrailingSlash(parent)
	u.RawQuery = ""
	u.Fragment = ""

	return u.String(), nil
}

// Root returns the resolved site root
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the absolute URL for a logical path. "/" yields the
// root exactly; any other path has its leading slash stripped and is
// appended to the root.
func (r *Resolver) Resolve(logicalPath string) string {
	if logicalPath == "/" || logicalPath == "" {
		return r.root
	}
	return r.root + strings.TrimPrefix(logicalPath, "/")
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
