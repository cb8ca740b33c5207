package errors

import "errors"

// Handle errors indicate misuse of an archive handle's lifecycle or mode.
var (
	// ErrInvalidMode indicates an unsupported archive mode string.
	ErrInvalidMode = errors.New("mode must be 'w' for write or 'r' for read")

	// ErrArchiveClosed indicates an operation on a handle after Close.
	ErrArchiveClosed = errors.New("archive is closed")

	// ErrReadOnlyArchive indicates a mutation attempted on a read-mode handle.
	ErrReadOnlyArchive = errors.New("archive must be opened in write mode")
)

// Archive errors indicate issues with the container or its entries.
var (
	// ErrCorruptArchive indicates the file is not a valid ZIP container.
	ErrCorruptArchive = errors.New("not a valid zip archive")

	// ErrFileNotInArchive indicates the named entry does not exist in the archive.
	ErrFileNotInArchive = errors.New("file not found in archive")
)

// Metadata errors indicate values that cannot be stored in a comment field.
var (
	// ErrNotSerializable indicates the metadata value has no JSON representation.
	ErrNotSerializable = errors.New("metadata is not JSON-serializable")

	// ErrInvalidJSON indicates user-supplied metadata text is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON metadata")
)

// CLI errors indicate fast user-facing validation failures.
var (
	// ErrInvalidExtension indicates an archive path without a .zip extension.
	ErrInvalidExtension = errors.New("archive file must have .zip extension")
)
