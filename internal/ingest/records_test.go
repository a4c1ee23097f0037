package ingest_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/jsonscrub/internal/ingest"
)

func TestLoad_ParsesArrayOfObjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"bob","age":41},{}]`), 0600))

	records, err := ingest.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Records come back unchanged: no trimming, no added fields.
	assert.Equal(t, "bob", records[0]["name"])
	assert.Equal(t, float64(41), records[0]["age"])
	assert.Empty(t, records[1])
}

func TestLoad_MissingFileIsReadFailure(t *testing.T) {
	records, err := ingest.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Nil(t, records)

	var loadErr *ingest.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ingest.KindRead, loadErr.Kind)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_MalformedJSONIsParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`"not json`), 0600))

	records, err := ingest.Load(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, records)

	var loadErr *ingest.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ingest.KindParse, loadErr.Kind)
}

func TestLoad_NonArrayRootIsParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "object.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"bob"}`), 0600))

	_, err := ingest.Load(context.Background(), path)

	var loadErr *ingest.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ingest.KindParse, loadErr.Kind)
	assert.Contains(t, loadErr.Error(), "object.json")
}
