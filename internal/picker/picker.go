// Package picker is the document-picker capability used by the files
// screen's upload flow. Picked files stay where they are; only their
// metadata enters the app.
package picker

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalmasoud/unilife/internal/common"
)

// Document describes a picked file.
type Document struct {
	Name     string
	URI      string
	Size     int64
	MimeType string
}

// Picker presents a file choice to the user. A dismissed dialog returns
// common.ErrCancelled.
type Picker interface {
	Pick(ctx context.Context, filterTypes []string) (Document, error)
}

// FSPicker offers the files of a local directory. Choose is the selection
// seam: it receives the matching candidate paths and returns the chosen
// one, or empty to cancel.
type FSPicker struct {
	Dir    string
	Choose func(candidates []string) (string, error)
}

func (p *FSPicker) Pick(ctx context.Context, filterTypes []string) (Document, error) {
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return Document{}, fmt.Errorf("reading picker dir: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesFilter(mimeOf(entry.Name()), filterTypes) {
			candidates = append(candidates, filepath.Join(p.Dir, entry.Name()))
		}
	}
	sort.Strings(candidates)

	if len(candidates) == 0 {
		return Document{}, common.ErrCancelled
	}

	chosen, err := p.Choose(candidates)
	if err != nil {
		return Document{}, err
	}
	if chosen == "" {
		return Document{}, common.ErrCancelled
	}

	info, err := os.Stat(chosen)
	if err != nil {
		return Document{}, fmt.Errorf("inspecting picked file: %w", err)
	}
	return Document{
		Name:     filepath.Base(chosen),
		URI:      chosen,
		Size:     info.Size(),
		MimeType: mimeOf(chosen),
	}, nil
}

func mimeOf(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		// Strip parameters like "; charset=utf-8".
		if i := strings.IndexByte(t, ';'); i >= 0 {
			return strings.TrimSpace(t[:i])
		}
		return t
	}
	return "application/octet-stream"
}

// matchesFilter reports whether mimeType matches any filter. Filters are
// full types or prefixes ("application/pdf", "image/"); no filters means
// everything matches.
func matchesFilter(mimeType string, filterTypes []string) bool {
	if len(filterTypes) == 0 {
		return true
	}
	for _, f := range filterTypes {
		if strings.HasPrefix(mimeType, f) {
			return true
		}
	}
	return false
}
