package site

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/sitetree/pkg/errors"
)

// DefaultSentinel is the header line that marks the start of the
// description body.
const DefaultSentinel = "Description-Content-Type"

// maxLineSize bounds a single header line. Long Classifier or License
// values are fine; a megabyte is not a header line.
const maxLineSize = 1 << 20

// Source is one installed distribution's metadata file.
type Source struct {
	Dir  string // Metadata directory (or file, for a flat .egg-info)
	Path string // File to read
}

// Scan lists the metadata sources of the distributions installed in dir:
//   - <name>.dist-info/METADATA
//   - <name>.egg-info/PKG-INFO
//   - <name>.egg-info as a plain file (old setuptools layout)
//
// Metadata directories without their file are skipped. Sources are returned
// in directory-listing order, which is sorted by file name.
func Scan(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read site-packages %s", dir)
	}

	var sources []Source
	for _, e := range entries {
		full := filepath.Join(dir, e.Name())
		switch {
		case strings.HasSuffix(e.Name(), ".dist-info") && e.IsDir():
			if src, ok := metadataFile(full, "METADATA"); ok {
				sources = append(sources, src)
			}
		case strings.HasSuffix(e.Name(), ".egg-info") && e.IsDir():
			if src, ok := metadataFile(full, "PKG-INFO"); ok {
				sources = append(sources, src)
			}
		case strings.HasSuffix(e.Name(), ".egg-info") && e.Type().IsRegular():
			sources = append(sources, Source{Dir: full, Path: full})
		}
	}
	return sources, nil
}

func metadataFile(dir, name string) (Source, bool) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Source{}, false
	}
	return Source{Dir: dir, Path: path}, true
}

// ReadHeader returns the header lines of a metadata file, stopping before
// the first line equal to sentinel or the first blank line, whichever comes
// first. The blank line is where an RFC 822 header ends; the sentinel
// guards against files that run the description straight on. Trailing
// carriage returns are removed. An empty sentinel disables that check.
func ReadHeader(r io.Reader, sentinel string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || (sentinel != "" && line == sentinel) {
			break
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// ReadHeaderFile opens path, reads its header with [ReadHeader] and closes
// the file before returning.
func ReadHeaderFile(path, sentinel string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	lines, err := ReadHeader(f, sentinel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return lines, nil
}
