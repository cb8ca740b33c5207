// Package errors provides typed error values for the zipper application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Handle errors: Archive handle misuse (ErrInvalidMode, ErrArchiveClosed)
//   - Archive errors: Problems with the container or its entries
//     (ErrCorruptArchive, ErrFileNotInArchive)
//   - Metadata errors: Values that cannot ride in a comment field
//     (ErrNotSerializable, ErrInvalidJSON)
//   - CLI errors: Fast user-facing validation (ErrInvalidExtension)
//
// # Usage
//
// Return errors from internal packages:
//
//	if a.mode != ModeWrite {
//	    return errors.ErrReadOnlyArchive
//	}
//
// Handle errors in the CLI layer:
//
//	meta, err := arch.FileMetadata(name)
//	if errors.Is(err, zerrors.ErrFileNotInArchive) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %q", errors.ErrFileNotInArchive, name)
package errors
