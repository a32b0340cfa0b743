// Package resolve maps site-relative link targets onto the scanned document
// snapshot, following the pretty-URL convention: a trailing-slash path may
// name either a like-named file or an index file in a like-named directory.
package resolve

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/linkcheck/internal/docscan"
)

const markdownExt = ".md"

// Resolver resolves path-only targets against a document snapshot.
type Resolver struct {
	snap        *docscan.Snapshot
	mountPrefix string
}

// New creates a resolver. mountPrefix is the repo-relative documentation
// mount (e.g. "/docs") stripped from targets before resolution; empty
// disables stripping.
func New(snap *docscan.Snapshot, mountPrefix string) *Resolver {
	return &Resolver{snap: snap, mountPrefix: strings.TrimSuffix(mountPrefix, "/")}
}

// Normalize strips the mount prefix from a site-relative target, preserving
// the leading separator.
func (r *Resolver) Normalize(target string) string {
	if r.mountPrefix == "" {
		return target
	}
	if target == r.mountPrefix {
		return "/"
	}
	if strings.HasPrefix(target, r.mountPrefix+"/") {
		return target[len(r.mountPrefix):]
	}
	return target
}

// Resolve determines whether a path-only target corresponds to a scanned
// document, returning its root-relative path. Order: mount prefix strip;
// trailing-slash targets try the like-named file first, then the index
// fallback; other targets try the direct path, then markdown extension
// inference. Targets without a trailing slash never use the index fallback.
func (r *Resolver) Resolve(target string) (string, bool) {
	p := r.Normalize(target)
	rel := strings.TrimPrefix(p, "/")

	if strings.HasSuffix(p, "/") {
		base := strings.TrimSuffix(rel, "/")
		if base == "" {
			return r.tryFile("index.md")
		}
		if found, ok := r.tryFile(base + markdownExt); ok {
			return found, ok
		}
		return r.tryFile(base + "/index.md")
	}

	if rel != "" {
		if found, ok := r.tryFile(rel); ok {
			return found, ok
		}
	}
	return r.tryFile(rel + markdownExt)
}

func (r *Resolver) tryFile(rel string) (string, bool) {
	if r.snap.Has(rel) {
		return rel, true
	}
	return "", false
}

// Route converts a snapshot document path into its site-relative pretty URL.
// Index files map to their directory with a trailing slash.
func Route(rel string) string {
	rel = strings.TrimSuffix(strings.ReplaceAll(rel, "\\", "/"), markdownExt)
	if path.Base(rel) == "index" {
		dir := path.Dir(rel)
		if dir == "." {
			return "/"
		}
		return "/" + dir + "/"
	}
	return "/" + rel + "/"
}
