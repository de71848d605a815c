package fsview

import (
	"os"
	"slices"

	"fsview/internal/pathutil"
)

// MetadataCache memoizes stat and directory-listing observations for one
// analysis pass, including failed observations: a path that could not be
// statted once keeps failing the same way until Flush, with no further OS
// calls. This keeps every metadata query during a pass mutually
// consistent even while the underlying filesystem changes.
//
// Not safe for concurrent use. Each pass owns its own instance.
type MetadataCache struct {
	fs FS

	statCache     map[string]os.FileInfo
	statErrors    map[string]*Error
	listdirCache  map[string][]string
	listdirErrors map[string]*Error

	stats Stats
}

// NewMetadataCache creates a metadata cache reading through fsys.
func NewMetadataCache(fsys FS) *MetadataCache {
	c := &MetadataCache{fs: fsys}
	c.reset()
	return c
}

func (c *MetadataCache) reset() {
	c.statCache = make(map[string]os.FileInfo)
	c.statErrors = make(map[string]*Error)
	c.listdirCache = make(map[string][]string)
	c.listdirErrors = make(map[string]*Error)
}

// Stat returns the metadata recorded for path, performing at most one
// underlying stat per path per pass. A recorded failure is replayed with
// the same kind on every subsequent call.
func (c *MetadataCache) Stat(path string) (os.FileInfo, error) {
	if info, ok := c.statCache[path]; ok {
		c.stats.StatHits++
		return info, nil
	}
	if err, ok := c.statErrors[path]; ok {
		c.stats.StatHits++
		return nil, err
	}

	c.stats.StatMisses++
	info, err := c.fs.Stat(path)
	if err != nil {
		cerr := classify("stat", path, err)
		c.statErrors[path] = cerr
		return nil, cerr
	}
	c.statCache[path] = info
	return info, nil
}

// ListDir returns the sorted entry names recorded for the directory at
// path, with the same memoize-including-failures contract as Stat. The
// returned slice is shared with the cache; callers must not modify it.
func (c *MetadataCache) ListDir(path string) ([]string, error) {
	if names, ok := c.listdirCache[path]; ok {
		c.stats.ListDirHits++
		return names, nil
	}
	if err, ok := c.listdirErrors[path]; ok {
		c.stats.ListDirHits++
		return nil, err
	}

	c.stats.ListDirMisses++
	infos, err := c.fs.ReadDir(path)
	if err != nil {
		cerr := classify("listdir", path, err)
		c.listdirErrors[path] = cerr
		return nil, cerr
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	slices.Sort(names)
	c.listdirCache[path] = names
	return names, nil
}

// IsFile reports whether path names a regular file. Failures of any kind
// read as false; this method never returns an error.
func (c *MetadataCache) IsFile(path string) bool {
	info, err := c.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path names a directory. Failures of any kind
// read as false; this method never returns an error.
func (c *MetadataCache) IsDir(path string) bool {
	info, err := c.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Exists reports whether path exists. Only a missing path reads as
// (false, nil); every other failure, a permission problem for example, is
// returned to the caller instead of being hidden behind false.
func (c *MetadataCache) Exists(path string) (bool, error) {
	if _, err := c.Stat(path); err != nil {
		if KindOf(err) == KindNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ExistsCaseSensitive reports whether path names a file whose final
// component matches its on-disk spelling exactly. Case-folding
// filesystems answer a stat for foo.py when the directory really holds
// Foo.py; listing the parent exposes the true spelling. A path with an
// empty final component reads as false, as does any listing failure.
func (c *MetadataCache) ExistsCaseSensitive(path string) bool {
	head, tail := pathutil.Split(path)
	if tail == "" {
		return false
	}
	names, err := c.ListDir(head)
	if err != nil {
		return false
	}
	if !slices.Contains(names, tail) {
		return false
	}
	return c.IsFile(path)
}

// Flush discards every recorded observation at once. The next query per
// path re-reads the filesystem and may observe changed state.
func (c *MetadataCache) Flush() {
	c.reset()
	c.stats.Flushes++
}

// Stats returns a snapshot of the cache counters.
func (c *MetadataCache) Stats() Stats {
	return c.stats
}
