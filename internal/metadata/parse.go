package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	zerrors "github.com/Yobazuk/zipper/internal/errors"
)

// ParseArgument parses a metadata argument as the CLI accepts it: either
// inline JSON text, or a path to a .json file. File contents may be JSONC
// (// comments, /* block comments */, trailing commas), which is stripped
// before strict parsing.
//
// Inline text is trimmed of stray quoting that shells sometimes leave
// behind; if the first parse fails, single quotes are retried as double
// quotes (PowerShell-style input). Malformed input fails with
// ErrInvalidJSON before any archive is touched.
func ParseArgument(s string) (any, error) {
	if strings.HasSuffix(s, ".json") {
		if _, err := os.Stat(s); err == nil {
			return parseFile(s)
		}
	}

	cleaned := strings.Trim(s, "`\"' ")

	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err == nil {
		return v, nil
	}

	// Retry with shell-mangled quoting normalized.
	retry := strings.ReplaceAll(cleaned, "`\"", "\"")
	retry = strings.ReplaceAll(retry, "'", "\"")
	if err := json.Unmarshal([]byte(retry), &v); err != nil {
		return nil, fmt.Errorf("%w: %q", zerrors.ErrInvalidJSON, s)
	}
	return v, nil
}

func parseFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file %s: %w", path, err)
	}

	var v any
	if err := json.Unmarshal(jsonc.ToJSON(data), &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", zerrors.ErrInvalidJSON, path, err)
	}
	return v, nil
}
