package shop

import (
	"encoding/json"
	"errors"
)

// memStore is an in-memory localstore.Store for tests.
type memStore struct {
	entries map[string]json.RawMessage
	failing bool
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]json.RawMessage)}
}

func (m *memStore) Load(key string, out any) bool {
	raw, ok := m.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (m *memStore) Save(key string, v any) error {
	if m.failing {
		return errors.New("store unavailable")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memStore) Delete(key string) error {
	if m.failing {
		return errors.New("store unavailable")
	}
	delete(m.entries, key)
	return nil
}

func testProduct(id int64, name string, price float64) Product {
	return Product{ID: id, Name: name, Price: price, Category: "Electronics"}
}
