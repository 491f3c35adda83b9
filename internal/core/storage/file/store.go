package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/observability/log"
	"github.com/zeusync/contentdb/internal/core/registry"
	"github.com/zeusync/contentdb/pkg/encoding"
	"golang.org/x/sync/errgroup"
)

// Store keeps one document per table in a directory, e.g. Items.json.
type Store struct {
	dir    string
	codec  encoding.Codec
	logger log.Log
}

func New(dir string, codec encoding.Codec, logger log.Log) *Store {
	if logger == nil {
		logger = log.Nop()
	}
	return &Store{dir: dir, codec: codec, logger: logger}
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Codec() encoding.Codec { return s.codec }

// Path is the document path of kind.
func (s *Store) Path(kind models.Kind) string {
	return filepath.Join(s.dir, kind.Table()+s.codec.Extension())
}

// ReadAll reads the documents of kinds in parallel. Kinds without a document
// are absent from the result.
func (s *Store) ReadAll(ctx context.Context, kinds ...models.Kind) (map[models.Kind][]byte, error) {
	docs := make([][]byte, len(kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(s.Path(kind))
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", kind, err)
			}
			docs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[models.Kind][]byte, len(kinds))
	for i, kind := range kinds {
		if docs[i] != nil {
			out[kind] = docs[i]
		}
	}
	return out, nil
}

// Save writes objs as the document of kind, replacing it atomically.
func (s *Store) Save(kind models.Kind, objs []models.Object) error {
	data, err := s.codec.Marshal(objs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+kind.Table()+"-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), s.Path(kind)); err != nil {
		return err
	}

	s.logger.Info("table saved",
		log.Stringer("kind", kind),
		log.String("path", s.Path(kind)),
		log.Int("objects", len(objs)),
	)
	return nil
}

// Remove deletes the document of kind. A missing document is not an error.
func (s *Store) Remove(kind models.Kind) error {
	err := os.Remove(s.Path(kind))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w", kind, err)
	}

	s.logger.Info("table removed",
		log.Stringer("kind", kind),
		log.String("path", s.Path(kind)),
	)
	return nil
}

// SaveAll writes every table of reg in parallel. Empty slots are not
// persisted and a table without live objects loses its document. The registry
// must not be mutated while SaveAll runs.
func (s *Store) SaveAll(ctx context.Context, reg *registry.Registry) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range reg.Kinds() {
		objs := live(reg.Lookup(kind).Values())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(objs) == 0 {
				return s.Remove(kind)
			}
			return s.Save(kind, objs)
		})
	}
	return g.Wait()
}

func live(values []models.Object) []models.Object {
	out := make([]models.Object, 0, len(values))
	for _, v := range values {
		if !models.IsNil(v) {
			out = append(out, v)
		}
	}
	return out
}

// Populate decodes a document and inserts every object into t, in document
// order. validate may be nil. It returns how many objects were inserted
// before the first failure.
func Populate[E any, P models.Pointer[E]](codec encoding.Codec, data []byte, t *registry.Table[E, P], validate func(models.Object) error) (int, error) {
	var objs []E
	if err := codec.Unmarshal(data, &objs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", t.Kind(), err)
	}

	for i := range objs {
		obj := P(&objs[i])
		if validate != nil {
			if err := validate(obj); err != nil {
				return i, fmt.Errorf("%s %s: %w", t.Kind(), obj.Entity().ID, err)
			}
		}
		if err := t.Insert(obj); err != nil {
			return i, err
		}
	}
	return len(objs), nil
}
