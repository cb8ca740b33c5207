// Package archive implements metadata-bearing ZIP archives.
//
// An Archive is a handle over a standard ZIP container that carries JSON
// metadata in the container's comment fields: one optional blob per entry
// and one for the archive as a whole. The on-disk result is a plain ZIP
// file, fully readable by metadata-blind tools.
//
// A handle is opened in exactly one mode for its whole lifetime. Write
// mode creates the archive: entries are staged (and deflate-compressed)
// in memory as they are added, and the container is emitted on Close.
// Read mode opens an existing archive and serves metadata and listings
// from its central directory.
//
//	a, err := archive.Open("example.zip", archive.ModeWrite)
//	if err != nil { ... }
//	defer a.Close()
//
//	err = a.AddFile("document.txt", archive.WithMetadata(map[string]any{"type": "text"}))
//	err = a.SetMetadata(map[string]any{"created": "2026-03-15"})
//
// A handle must not be used from multiple goroutines, and exactly one
// write handle should exist for a given path at a time; the package does
// no locking.
package archive
