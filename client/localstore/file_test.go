package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	fs, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	type item struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}

	saved := []item{{ID: 7, Name: "Coffee", Quantity: 2}}
	if err := fs.Save("emall_cart", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A fresh open must rehydrate from disk
	fs2, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	var loaded []item
	if !fs2.Load("emall_cart", &loaded) {
		t.Fatal("expected emall_cart to load after reopen")
	}
	if len(loaded) != 1 || loaded[0] != saved[0] {
		t.Fatalf("loaded %+v, want %+v", loaded, saved)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	fs, err := OpenFile(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	var out []string
	if fs.Load("nope", &out) {
		t.Fatal("Load of a missing key must report false")
	}
}

func TestFileStoreCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Corrupt state falls back to empty instead of failing
	fs, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile on corrupt document: %v", err)
	}

	var out map[string]string
	if fs.Load("anything", &out) {
		t.Fatal("corrupt document must load as empty")
	}

	// And the store must still accept writes
	if err := fs.Save("k", "v"); err != nil {
		t.Fatalf("Save after corrupt open: %v", err)
	}
}

func TestFileStoreCorruptValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte(`{"emall_cart": "not-an-array"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	var out []string
	if fs.Load("emall_cart", &out) {
		t.Fatal("a value of the wrong shape must report false")
	}
}

func TestFileStoreDelete(t *testing.T) {
	fs, err := OpenFile(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	if err := fs.Save("emall_user", map[string]string{"user_id": "u1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := fs.Delete("emall_user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var out map[string]string
	if fs.Load("emall_user", &out) {
		t.Fatal("deleted key must not load")
	}

	// Deleting an absent key is fine
	if err := fs.Delete("emall_user"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}
}
