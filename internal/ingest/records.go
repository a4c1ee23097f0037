// Package ingest loads raw record files from disk. An input file is a single
// JSON document whose root is an array of objects; no schema beyond that is
// enforced on read.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rshade/jsonscrub/internal/logging"
)

// Record is one JSON object from an input file, keyed by field name.
type Record map[string]any

// FailureKind classifies why a file yielded no records.
type FailureKind string

const (
	// KindRead covers I/O failures: missing file, permission denied,
	// unreadable media.
	KindRead FailureKind = "read"
	// KindParse covers malformed JSON or a root value that is not an
	// array of objects.
	KindParse FailureKind = "parse"
)

// LoadError reports a failed load with the failure classified, so callers
// can distinguish an unreadable file from malformed JSON. Callers that only
// want the historical "no records from this file" behavior may discard it.
type LoadError struct {
	Path string
	Kind FailureKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading records from %s: %s failure: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and parses one record file. On success it returns the parsed
// records unchanged. On failure it returns a *LoadError and reports the
// failure through the logger attached to ctx; there are no retries and no
// partial-document recovery. The file handle is held only for the duration
// of the read.
func Load(ctx context.Context, path string) ([]Record, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().
			Str("component", "ingest").
			Str("path", path).
			Err(err).
			Msg("could not read record file")
		return nil, &LoadError{Path: path, Kind: KindRead, Err: err}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().
			Str("component", "ingest").
			Str("path", path).
			Err(err).
			Msg("could not parse record file")
		return nil, &LoadError{Path: path, Kind: KindParse, Err: err}
	}

	log.Debug().
		Str("component", "ingest").
		Str("path", path).
		Int("record_count", len(records)).
		Msg("record file loaded")

	return records, nil
}
