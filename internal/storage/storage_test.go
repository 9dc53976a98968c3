package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

// newTestStorage opens a store in a temp dir that is closed with the test.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "db"), 0)
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}

	t.Cleanup(func() { s.Close() })

	return s
}

// collect returns the keys visited under prefix.
func collect(t *testing.T, r Reader, prefix string) []string {
	t.Helper()

	var keys []string
	err := r.IteratePrefix([]byte(prefix), func(key, _ []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	if err != nil {
		t.Fatalf("IteratePrefix failed: %v", err)
	}

	return keys
}

func TestSetAndGet(t *testing.T) {
	s := newTestStorage(t)

	if err := s.Set([]byte("c:1"), []byte("content")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := s.Get([]byte("c:1"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if !bytes.Equal(got, []byte("content")) {
		t.Errorf("Get returned %q, want %q", got, "content")
	}

	missing, err := s.Get([]byte("c:2"))
	if err != nil || missing != nil {
		t.Errorf("missing key: got %q, %v, want nil", missing, err)
	}
}

func TestWrite(t *testing.T) {
	s := newTestStorage(t)

	if err := s.Set([]byte("v:old"), []byte("x")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	ops := []Op{
		{Key: []byte("v:a"), Value: []byte("1")},
		{Key: []byte("v:b"), Value: []byte("2")},
		{Key: []byte("v:old"), Delete: true},
	}

	if err := s.Write(ops); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got := collect(t, s, "v:")
	if len(got) != 2 || got[0] != "v:a" || got[1] != "v:b" {
		t.Errorf("keys after Write: got %v, want [v:a v:b]", got)
	}
}

func TestIteratePrefix(t *testing.T) {
	s := newTestStorage(t)

	for _, k := range []string{"c:2", "v:1", "c:1", "f:post", "c:\xff"} {
		if err := s.Set([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	got := collect(t, s, "c:")
	want := []string{"c:1", "c:2", "c:\xff"}

	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: got %q, want %q", i, got[i], want[i])
		}
	}

	if all := collect(t, s, ""); len(all) != 5 {
		t.Errorf("empty prefix: got %d keys, want 5", len(all))
	}
}

func TestIteratePrefixStops(t *testing.T) {
	s := newTestStorage(t)

	for _, k := range []string{"c:1", "c:2", "c:3"} {
		if err := s.Set([]byte(k), nil); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	stop := errors.New("stop")
	visited := 0

	err := s.IteratePrefix([]byte("c:"), func(_, _ []byte) error {
		visited++
		return stop
	})

	if !errors.Is(err, stop) || visited != 1 {
		t.Errorf("got err %v after %d keys, want stop after 1", err, visited)
	}
}

func TestViewIsolation(t *testing.T) {
	s := newTestStorage(t)

	if err := s.Set([]byte("c:1"), []byte("before")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	view := s.View()
	defer view.Close()

	if err := s.Set([]byte("c:1"), []byte("after")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set([]byte("c:2"), []byte("new")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := view.Get([]byte("c:1"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if !bytes.Equal(got, []byte("before")) {
		t.Errorf("view Get: got %q, want %q", got, "before")
	}

	if keys := collect(t, view, "c:"); len(keys) != 1 {
		t.Errorf("view keys: got %v, want [c:1]", keys)
	}
}

func TestPrefixUpperBound(t *testing.T) {
	tests := []struct {
		prefix []byte
		want   []byte
	}{
		{[]byte("c:"), []byte("c;")},
		{[]byte{0x01, 0xff}, []byte{0x02}},
		{[]byte{0xff, 0xff}, nil},
	}

	for _, tt := range tests {
		if got := prefixUpperBound(tt.prefix); !bytes.Equal(got, tt.want) {
			t.Errorf("prefixUpperBound(%x): got %x, want %x", tt.prefix, got, tt.want)
		}
	}
}
