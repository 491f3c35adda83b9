package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/registry"
	"github.com/zeusync/contentdb/pkg/encoding"
)

type shop struct {
	models.Base `yaml:",inline"`
	Stock       []string `json:"Stock" yaml:"Stock"`
}

func (*shop) Kind() models.Kind { return models.KindShop }

func newShop(name string, stock ...string) *shop {
	s := &shop{Base: models.NewBase(), Stock: stock}
	s.Name = name
	return s
}

func TestPath(t *testing.T) {
	s := New("/content", encoding.YAML, nil)
	assert.Equal(t, filepath.Join("/content", "Shops.yaml"), s.Path(models.KindShop))
	assert.Equal(t, "/content", s.Dir())
}

func TestSaveAllAndPopulate(t *testing.T) {
	for _, codec := range []encoding.Codec{encoding.JSON, encoding.YAML} {
		t.Run(codec.Name(), func(t *testing.T) {
			reg := registry.New()
			shops := registry.For[shop](reg)
			a, b := newShop("General", "bread", "rope"), newShop("Armory", "shield")
			require.NoError(t, shops.Insert(a))
			require.NoError(t, shops.Insert(b))
			shops.Lookup().Set(uuid.New(), nil)
			// an empty table produces no document
			registry.For[emptyKind](reg).Count()

			store := New(t.TempDir(), codec, nil)
			require.NoError(t, store.SaveAll(context.Background(), reg))

			entries, err := os.ReadDir(store.Dir())
			require.NoError(t, err)
			require.Len(t, entries, 1, "no temp files or empty tables")

			docs, err := store.ReadAll(context.Background(), models.KindShop, models.KindQuest)
			require.NoError(t, err)
			require.Contains(t, docs, models.KindShop)
			assert.NotContains(t, docs, models.KindQuest)

			loaded := registry.For[shop](registry.New())
			n, err := Populate(codec, docs[models.KindShop], loaded, nil)
			require.NoError(t, err)
			assert.Equal(t, 2, n)
			assert.Equal(t, []string{"General", "Armory"}, loaded.NameList())
			assert.Equal(t, a, loaded.Get(a.ID))
			assert.Equal(t, b, loaded.Get(b.ID))
		})
	}
}

type emptyKind struct {
	models.Base
}

func (*emptyKind) Kind() models.Kind { return models.KindTileset }

func TestPopulateDecodeError(t *testing.T) {
	tbl := registry.For[shop](registry.New())
	_, err := Populate(encoding.JSON, []byte("{"), tbl, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, tbl.Count())
}

func TestPopulateStopsAtFirstInvalid(t *testing.T) {
	tbl := registry.For[shop](registry.New())
	data, err := encoding.JSON.Marshal([]*shop{newShop("ok"), newShop("bad"), newShop("later")})
	require.NoError(t, err)

	reject := errors.New("rejected")
	n, err := Populate(encoding.JSON, data, tbl, func(o models.Object) error {
		if o.Entity().Name == "bad" {
			return reject
		}
		return nil
	})
	assert.ErrorIs(t, err, reject)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, tbl.Count())
}

func TestPopulateDuplicateIDs(t *testing.T) {
	s := newShop("twin")
	data, err := encoding.JSON.Marshal([]*shop{s, s})
	require.NoError(t, err)

	_, err = Populate(encoding.JSON, data, registry.For[shop](registry.New()), nil)
	assert.ErrorIs(t, err, registry.ErrDuplicateID)
}

func TestReadAllHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(t.TempDir(), encoding.JSON, nil).ReadAll(ctx, models.KindShop)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveOverwrites(t *testing.T) {
	store := New(t.TempDir(), encoding.JSON, nil)
	require.NoError(t, store.Save(models.KindShop, []models.Object{newShop("one")}))
	require.NoError(t, store.Save(models.KindShop, []models.Object{newShop("two")}))

	docs, err := store.ReadAll(context.Background(), models.KindShop)
	require.NoError(t, err)
	tbl := registry.For[shop](registry.New())
	_, err = Populate(encoding.JSON, docs[models.KindShop], tbl, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, tbl.Names())
}

func TestSaveAllRemovesEmptiedTable(t *testing.T) {
	reg := registry.New()
	shops := registry.For[shop](reg)
	general := newShop("General")
	require.NoError(t, shops.Insert(general))

	store := New(t.TempDir(), encoding.JSON, nil)
	require.NoError(t, store.SaveAll(context.Background(), reg))
	require.FileExists(t, store.Path(models.KindShop))

	require.True(t, shops.Delete(general))
	require.NoError(t, store.SaveAll(context.Background(), reg))
	assert.NoFileExists(t, store.Path(models.KindShop))

	docs, err := store.ReadAll(context.Background(), models.KindShop)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestRemoveMissingDocument(t *testing.T) {
	assert.NoError(t, New(t.TempDir(), encoding.JSON, nil).Remove(models.KindShop))
}
