// Package docstore is the app's persistence boundary: documents addressed
// by collection and key, holding free-form field maps. Writes can either
// replace a document or merge fields into it, leaving other stored fields
// untouched. The profile is the only document the app keeps here.
package docstore

import "context"

// Store reads and writes single documents.
type Store interface {
	// Get returns the document's fields, or common.ErrNotFound when no
	// document exists under the key.
	Get(ctx context.Context, collection, key string) (map[string]any, error)

	// Set writes fields. With merge, given fields overlay the stored
	// document; without, the document is replaced whole. Writing to a
	// missing key creates the document either way.
	Set(ctx context.Context, collection, key string, fields map[string]any, merge bool) error
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
