package fsview

// ContentCache memoizes decoded source text and content fingerprints on
// top of a MetadataCache. Metadata for a path is always observed before
// its content, so recorded text is never staler than the recorded mtime
// regardless of the order queries arrive in.
//
// Not safe for concurrent use. Each pass owns its own instance.
type ContentCache struct {
	*MetadataCache

	reader SourceReader

	readCache  map[string]string
	hashCache  map[string]string
	readErrors map[string]*Error
}

// NewContentCache creates a content cache reading metadata through fsys
// and content through reader.
func NewContentCache(fsys FS, reader SourceReader) *ContentCache {
	c := &ContentCache{
		MetadataCache: NewMetadataCache(fsys),
		reader:        reader,
	}
	c.resetContent()
	return c
}

func (c *ContentCache) resetContent() {
	c.readCache = make(map[string]string)
	c.hashCache = make(map[string]string)
	c.readErrors = make(map[string]*Error)
}

// ReadText returns the decoded content recorded for path, reading and
// decoding at most once per path per pass. A recorded read failure is
// replayed on every subsequent call.
func (c *ContentCache) ReadText(path string) (string, error) {
	if text, ok := c.readCache[path]; ok {
		c.stats.ReadHits++
		return text, nil
	}
	if err, ok := c.readErrors[path]; ok {
		c.stats.ReadHits++
		return "", err
	}

	// Stat first so the content read below is from no earlier instant
	// than the mtime recorded for path. A failing stat surfaces here and
	// leaves the content caches untouched.
	if _, err := c.Stat(path); err != nil {
		return "", err
	}

	c.stats.ReadMisses++
	text, fingerprint, err := c.reader.ReadSource(path)
	if err != nil {
		cerr := classify("read", path, err)
		c.readErrors[path] = cerr
		return "", cerr
	}
	c.readCache[path] = text
	c.hashCache[path] = fingerprint
	c.stats.BytesRead += uint64(len(text))
	return text, nil
}

// Fingerprint returns the content fingerprint recorded for path, reading
// the content first when no fingerprint is recorded yet.
func (c *ContentCache) Fingerprint(path string) (string, error) {
	if hash, ok := c.hashCache[path]; ok {
		return hash, nil
	}
	if _, err := c.ReadText(path); err != nil {
		return "", err
	}
	return c.hashCache[path], nil
}

// Flush discards every recorded observation, content and metadata alike.
func (c *ContentCache) Flush() {
	c.MetadataCache.Flush()
	c.resetContent()
}
