// Package memory is an in-process document store. Documents are kept as their
// JSON form, so anything that round-trips through encoding/json can be stored.
// It backs local development and tests.
package memory

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/infra/persistence/docstore"
)

type document = map[string]any

// Store is a set of in-memory collections, safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collection
}

// New creates an empty store.
func New() *Store {
	return &Store{collections: make(map[string]*collection)}
}

func (s *Store) Collection(name string) docstore.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &collection{}
		s.collections[name] = c
	}

	return c
}

func (s *Store) Ping(context.Context) error { return nil }

type collection struct {
	mu   sync.RWMutex
	docs []document
}

func (c *collection) Insert(_ context.Context, doc any) error {
	encoded, err := toDocument(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, encoded)

	return nil
}

func (c *collection) FindOne(_ context.Context, filter repository.Filter, out any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decode(doc, out)
		}
	}

	return docstore.ErrNotFound
}

func (c *collection) Find(_ context.Context, filter repository.Filter, opts docstore.FindOptions, out any) error {
	c.mu.RLock()
	found := make([]document, 0, len(c.docs))
	for _, doc := range c.docs {
		if matches(doc, filter) {
			found = append(found, doc)
		}
	}
	c.mu.RUnlock()

	if opts.Sort.Field != "" {
		slices.SortStableFunc(found, func(a, b document) int {
			result := compareField(a[opts.Sort.Field], b[opts.Sort.Field], opts.Sort.Kind)
			if opts.Sort.Descending {
				return -result
			}

			return result
		})
	}

	return decode(found, out)
}

func (c *collection) Set(_ context.Context, filter repository.Filter, fields map[string]any) (int64, error) {
	patch, err := toDocument(fields)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var matched int64
	for i, doc := range c.docs {
		if !matches(doc, filter) {
			continue
		}
		// Copy on write so documents handed to readers never change underneath them.
		updated := make(document, len(doc)+len(patch))
		for k, v := range doc {
			updated[k] = v
		}
		for k, v := range patch {
			updated[k] = v
		}
		c.docs[i] = updated
		matched++
	}

	return matched, nil
}

func (c *collection) Delete(_ context.Context, filter repository.Filter) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.docs)
	c.docs = slices.DeleteFunc(c.docs, func(doc document) bool {
		return matches(doc, filter)
	})

	return int64(before - len(c.docs)), nil
}

func (c *collection) Count(_ context.Context, filter repository.Filter) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int64
	for _, doc := range c.docs {
		if matches(doc, filter) {
			n++
		}
	}

	return n, nil
}

func toDocument(v any) (document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}

	return doc, nil
}

func decode(v any, out any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}

	return errors.Wrap(json.Unmarshal(raw, out), "decode document")
}

// matches compares the textual form of values so typed filter values such as
// string enums or ints match their decoded JSON counterparts.
func matches(doc document, filter repository.Filter) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || fmt.Sprint(got) != fmt.Sprint(want) {
			return false
		}
	}

	return true
}

// compareField orders missing values first.
func compareField(a, b any, kind repository.SortKind) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch kind {
	case repository.SortNumber:
		af, aok := a.(float64)
		bf, bok := b.(float64)
		if aok && bok {
			return cmp.Compare(af, bf)
		}
	case repository.SortTime:
		at, aerr := parseTime(a)
		bt, berr := parseTime(b)
		if aerr == nil && berr == nil {
			return at.Compare(bt)
		}
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func parseTime(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, errors.Errorf("not a time: %v", v)
	}

	return time.Parse(time.RFC3339Nano, s)
}
