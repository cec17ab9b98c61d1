// Package sources parses the source-list configuration and exposes the
// index files each configured entry contributes to the cache.
package sources

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ajxudir/aptshow/pkg/cache"
	"github.com/ajxudir/aptshow/pkg/verbose"
)

// Entry is one usable source-list line.
//
// Fields:
//   - Type: Entry type ("deb"); deb-src entries are dropped during parsing
//   - URI: Repository URI as written
//   - Distribution: The declared distribution/suite string, which may
//     contain a path suffix (e.g., "stable/updates")
//   - Components: Declared components (e.g., "main", "contrib"); empty for
//     absolute-path distributions ending in "/"
type Entry struct {
	Type         string
	URI          string
	Distribution string
	Components   []string
}

// IndexFile describes one index file an entry contributes, used to test
// which repository-file records in the cache belong to the entry.
//
// Fields:
//   - Site: Host part of the entry URI
//   - Distribution: The entry's declared distribution string
//   - Component: One of the entry's components; empty for absolute entries
type IndexFile struct {
	Site         string
	Distribution string
	Component    string
}

// Owns reports whether a cache repository file corresponds to this index
// file.
//
// Correspondence is a transport-level test on site and component; the
// distribution-name cross-validation against the file's archive/codename
// attributes is the resolver's responsibility.
//
// Parameters:
//   - f: The repository file to test
//
// Returns:
//   - bool: true if the file belongs to this index
func (i IndexFile) Owns(f *cache.RepositoryFile) bool {
	if f == nil || f.NotSource {
		return false
	}
	if f.Site != i.Site {
		return false
	}
	return i.Component == "" || f.Component == i.Component
}

// IndexFiles returns the index files this entry contributes, one per
// component.
//
// Returns:
//   - []IndexFile: The entry's index files
func (e Entry) IndexFiles() []IndexFile {
	site := siteOf(e.URI)
	if len(e.Components) == 0 {
		return []IndexFile{{Site: site, Distribution: e.Distribution}}
	}
	out := make([]IndexFile, 0, len(e.Components))
	for _, comp := range e.Components {
		out = append(out, IndexFile{Site: site, Distribution: e.Distribution, Component: comp})
	}
	return out
}

// List is the parsed source-list configuration.
//
// Fields:
//   - Entries: Usable entries in declaration order
type List struct {
	Entries []Entry
}

// LoadFile reads and parses a sources.list file.
//
// A missing file yields an empty list rather than an error: the resolver
// degrades gracefully to the files' own archive/codename attributes.
//
// Parameters:
//   - path: Path to the sources.list file
//
// Returns:
//   - *List: The parsed list (possibly empty)
//   - error: Read error other than absence
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			verbose.Infof("Sources file %s not found, using empty source list", path)
			return &List{}, nil
		}
		return nil, fmt.Errorf("reading sources list: %w", err)
	}
	l := Parse(string(data))
	verbose.SourcesLoaded(path, len(l.Entries))
	return l, nil
}

// Parse parses sources.list content.
//
// It performs the following operations:
//   - Step 1: Splits the content into lines, dropping comments and blanks
//   - Step 2: Splits each line into fields, skipping bracketed options
//   - Step 3: Keeps binary ("deb") entries with a URI and distribution;
//     deb-src and malformed lines are ignored
//
// Parameters:
//   - content: The sources.list text
//
// Returns:
//   - *List: The parsed list
func Parse(content string) *List {
	l := &List{}
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if fields[0] != "deb" {
			continue
		}
		rest := fields[1:]
		if strings.HasPrefix(rest[0], "[") {
			// Skip option blocks like [arch=amd64 signed-by=...].
			for len(rest) > 0 {
				done := strings.HasSuffix(rest[0], "]")
				rest = rest[1:]
				if done {
					break
				}
			}
		}
		if len(rest) < 2 {
			continue
		}

		entry := Entry{
			Type:         fields[0],
			URI:          rest[0],
			Distribution: rest[1],
		}
		if strings.HasSuffix(entry.Distribution, "/") {
			entry.Distribution = strings.TrimSuffix(entry.Distribution, "/")
		} else {
			entry.Components = append(entry.Components, rest[2:]...)
		}
		l.Entries = append(l.Entries, entry)
	}
	return l
}

// siteOf extracts the host part of a repository URI.
//
// Parameters:
//   - uri: Repository URI (e.g., "http://deb.debian.org/debian")
//
// Returns:
//   - string: The host (e.g., "deb.debian.org")
func siteOf(uri string) string {
	s := uri
	if idx := strings.Index(s, "://"); idx >= 0 {
		s = s[idx+3:]
	}
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		s = s[:idx]
	}
	return s
}
