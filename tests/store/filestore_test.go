package store_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/partnerdesk/partner-api/internal/domain"
	"github.com/partnerdesk/partner-api/internal/store/filestore"
	"github.com/partnerdesk/partner-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStore_AbsentDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.json")
	store := filestore.New(path, zap.NewNop())
	require.NoError(t, store.Connect(context.Background()))

	partners, err := store.ListPartners(context.Background())
	require.NoError(t, err)
	assert.Empty(t, partners)
}

func TestFileStore_CorruptDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := filestore.New(path, zap.NewNop())
	require.NoError(t, store.Connect(context.Background()))

	partners, err := store.ListPartners(context.Background())
	require.NoError(t, err)
	assert.Empty(t, partners)

	// a write replaces the corrupt document with a valid one
	require.NoError(t, store.InsertPartner(context.Background(), testutil.ValidPartner("Acme Relief")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestFileStore_DocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.json")
	store := filestore.New(path, zap.NewNop())
	require.NoError(t, store.Connect(context.Background()))

	p := testutil.ValidPartner("Acme Relief")
	p.ID = "partner-1"
	require.NoError(t, store.InsertPartner(context.Background(), p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	// the partner array keeps its historical document key
	assert.Contains(t, doc, "masterRegister")
	assert.Contains(t, doc, "personnel")
	assert.Contains(t, doc, "deliverables")

	// no temp file left behind after a successful save
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_ReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.json")
	ctx := context.Background()

	store := filestore.New(path, zap.NewNop())
	require.NoError(t, store.Connect(ctx))

	p := testutil.ValidPartner("Acme Relief")
	p.ID = "partner-1"
	require.NoError(t, store.InsertPartner(ctx, p))

	reopened := filestore.New(path, zap.NewNop())
	require.NoError(t, reopened.Connect(ctx))

	stored, err := reopened.GetPartner(ctx, "partner-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Acme Relief", stored.PartnerName)
}

func TestFileStore_DeleteAbsent(t *testing.T) {
	store := testutil.NewFileStore(t)

	removed, err := store.DeletePartner(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFileStore_SaveAbsentReturnsNotFound(t *testing.T) {
	store := testutil.NewFileStore(t)

	p := testutil.ValidPartner("Acme Relief")
	p.ID = "never-inserted"
	err := store.SavePartner(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileStore_ListPreservesInsertionOrder(t *testing.T) {
	store := testutil.NewFileStore(t)
	ctx := context.Background()

	for i, name := range []string{"First", "Second", "Third"} {
		p := testutil.ValidPartner(name)
		p.ID = string(rune('a' + i))
		require.NoError(t, store.InsertPartner(ctx, p))
	}

	partners, err := store.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 3)
	assert.Equal(t, "First", partners[0].PartnerName)
	assert.Equal(t, "Second", partners[1].PartnerName)
	assert.Equal(t, "Third", partners[2].PartnerName)
}

func TestFileStore_Snapshot(t *testing.T) {
	store := testutil.NewFileStore(t)
	ctx := context.Background()

	p := testutil.ValidPartner("Acme Relief")
	p.ID = "partner-1"
	require.NoError(t, store.InsertPartner(ctx, p))

	data, err := store.Snapshot(ctx)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "masterRegister")
}
