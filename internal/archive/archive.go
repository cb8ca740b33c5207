package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"

	zerrors "github.com/Yobazuk/zipper/internal/errors"
	"github.com/Yobazuk/zipper/internal/metadata"
)

// Mode selects what an archive handle may do for its whole lifetime.
type Mode string

const (
	// ModeWrite creates a new archive. The file at the target path is
	// created (or truncated) on Open; the container itself is written
	// on Close.
	ModeWrite Mode = "w"

	// ModeRead opens an existing archive for inspection.
	ModeRead Mode = "r"
)

// Entry describes one file in an archive as reported by List.
type Entry struct {
	Name           string
	Size           uint64
	CompressedSize uint64
	Metadata       any
}

// staged is an entry accepted by AddFile but not yet written to disk.
// Content is compressed at add time so sizes and CRC are known before
// Close emits the container.
type staged struct {
	name       string
	size       uint64
	crc        uint32
	compressed []byte
	comment    []byte
	modified   time.Time
}

// Archive is a handle over one ZIP file in one mode. It is not safe for
// concurrent use.
type Archive struct {
	path  string
	mode  Mode
	level int

	// Write mode state.
	file    *os.File
	order   []string
	entries map[string]*staged
	comment []byte

	// Read mode state.
	reader *zip.ReadCloser

	closed bool
}

// Open opens the archive at path in the given mode.
//
// ModeWrite creates or truncates the file at path immediately, so path
// problems surface early; entries accumulate in memory and the container
// is emitted by Close. A handle abandoned without a successful Close
// leaves an empty or partial file, never a valid archive claiming the
// staged contents.
//
// ModeRead requires an existing, valid ZIP file: a missing path fails
// with an fs.ErrNotExist-wrapping error and anything that is not a ZIP
// container fails with ErrCorruptArchive.
func Open(path string, mode Mode, opts ...Option) (*Archive, error) {
	cfg := openConfig{level: flate.DefaultCompression}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Archive{path: path, mode: mode, level: cfg.level}

	switch mode {
	case ModeWrite:
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating archive %s: %w", path, err)
		}
		a.file = f
		a.entries = make(map[string]*staged)

	case ModeRead:
		r, err := zip.OpenReader(path)
		if err != nil {
			if errors.Is(err, zip.ErrFormat) {
				return nil, fmt.Errorf("%w: %s", zerrors.ErrCorruptArchive, path)
			}
			return nil, fmt.Errorf("opening archive %s: %w", path, err)
		}
		a.reader = r

	default:
		return nil, fmt.Errorf("%w: got %q", zerrors.ErrInvalidMode, string(mode))
	}

	return a, nil
}

// Close flushes and releases the handle. In write mode it writes the
// staged entries and the archive comment through the ZIP writer; if that
// fails, the on-disk file is left truncated or partial and the error is
// returned. Close is idempotent: calls after the first are no-ops.
// Callers should defer Close so the file is released on every exit path.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	if a.mode == ModeRead {
		return a.reader.Close()
	}

	err := a.flush()
	if cerr := a.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// flush writes the staged container through a zip.Writer. Entries were
// compressed at add time, so they go out via CreateRaw with their
// precomputed CRC and sizes.
func (a *Archive) flush() error {
	zw := zip.NewWriter(a.file)

	if a.comment != nil {
		if err := zw.SetComment(string(a.comment)); err != nil {
			return fmt.Errorf("setting archive comment: %w", err)
		}
	}

	for _, name := range a.order {
		e := a.entries[name]
		hdr := &zip.FileHeader{
			Name:               e.name,
			Method:             zip.Deflate,
			Comment:            string(e.comment),
			Modified:           e.modified,
			CRC32:              e.crc,
			CompressedSize64:   uint64(len(e.compressed)),
			UncompressedSize64: e.size,
		}
		w, err := zw.CreateRaw(hdr)
		if err != nil {
			return fmt.Errorf("writing entry %s: %w", e.name, err)
		}
		if _, err := w.Write(e.compressed); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive %s: %w", a.path, err)
	}
	return nil
}

// AddFile reads the file at path and stages it as an archive entry.
// The entry name defaults to the base name of path (archives are flat
// unless WithName overrides it). Adding a name that is already staged
// replaces the earlier entry and its metadata; the entry keeps its
// original position in container order.
//
// The source file is read and compressed in full before the entry is
// committed, so a missing file or unserializable metadata leaves the
// archive state untouched.
func (a *Archive) AddFile(path string, opts ...AddOption) error {
	if a.closed {
		return zerrors.ErrArchiveClosed
	}
	if a.mode != ModeWrite {
		return fmt.Errorf("%w: cannot add files", zerrors.ErrReadOnlyArchive)
	}

	cfg := addConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var comment []byte
	if cfg.hasMeta {
		enc, err := metadata.Encode(cfg.metadata)
		if err != nil {
			return err
		}
		comment = enc
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("adding %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("adding %s: %w", path, err)
	}

	compressed, err := deflate(content, a.level)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", path, err)
	}

	name := cfg.name
	if name == "" {
		name = filepath.Base(path)
	}

	e := &staged{
		name:       name,
		size:       uint64(len(content)),
		crc:        crc32.ChecksumIEEE(content),
		compressed: compressed,
		comment:    comment,
		modified:   info.ModTime(),
	}

	if _, exists := a.entries[name]; !exists {
		a.order = append(a.order, name)
	}
	a.entries[name] = e
	return nil
}

// SetMetadata stages meta as the archive-level comment, replacing any
// previous value. Only the last call is retained.
func (a *Archive) SetMetadata(meta any) error {
	if a.closed {
		return zerrors.ErrArchiveClosed
	}
	if a.mode != ModeWrite {
		return fmt.Errorf("%w: cannot set archive metadata", zerrors.ErrReadOnlyArchive)
	}

	enc, err := metadata.Encode(meta)
	if err != nil {
		return err
	}
	a.comment = enc
	return nil
}

// Metadata returns the archive-level metadata, or an empty mapping if
// none was ever set. Valid in both modes; in write mode it reflects the
// staged comment of the current session.
func (a *Archive) Metadata() (any, error) {
	if a.closed {
		return nil, zerrors.ErrArchiveClosed
	}
	if a.mode == ModeWrite {
		return metadata.Decode(a.comment), nil
	}
	return metadata.Decode([]byte(a.reader.Comment)), nil
}

// FileMetadata returns the metadata of the named entry, or an empty
// mapping if the entry carries no comment. The name is normalized to its
// base name first, matching how AddFile stores entries. Unknown names
// fail with ErrFileNotInArchive.
func (a *Archive) FileMetadata(name string) (any, error) {
	if a.closed {
		return nil, zerrors.ErrArchiveClosed
	}

	base := filepath.Base(name)

	if a.mode == ModeWrite {
		e, ok := a.entries[base]
		if !ok {
			return nil, fmt.Errorf("%w: %q", zerrors.ErrFileNotInArchive, base)
		}
		return metadata.Decode(e.comment), nil
	}

	// Foreign archives may hold duplicate names; standard ZIP semantics
	// give readers the entry written last, so keep the final match.
	var found *zip.File
	for _, f := range a.reader.File {
		if f.Name == base {
			found = f
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", zerrors.ErrFileNotInArchive, base)
	}
	return metadata.Decode([]byte(found.Comment)), nil
}

// List reports every entry in container order: the order entries were
// written, whether staged in this session or read from an existing
// central directory.
func (a *Archive) List() ([]Entry, error) {
	if a.closed {
		return nil, zerrors.ErrArchiveClosed
	}

	if a.mode == ModeWrite {
		entries := make([]Entry, 0, len(a.order))
		for _, name := range a.order {
			e := a.entries[name]
			entries = append(entries, Entry{
				Name:           e.name,
				Size:           e.size,
				CompressedSize: uint64(len(e.compressed)),
				Metadata:       metadata.Decode(e.comment),
			})
		}
		return entries, nil
	}

	entries := make([]Entry, 0, len(a.reader.File))
	for _, f := range a.reader.File {
		entries = append(entries, Entry{
			Name:           f.Name,
			Size:           f.UncompressedSize64,
			CompressedSize: f.CompressedSize64,
			Metadata:       metadata.Decode([]byte(f.Comment)),
		})
	}
	return entries, nil
}

// deflate compresses content at the given level and returns the raw
// deflate stream as stored inside the container.
func deflate(content []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(content); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
