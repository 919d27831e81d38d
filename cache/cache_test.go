package cache

import (
	"errors"
	"testing"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
)

func TestMemory_SetGet(t *testing.T) {
	store := Memory()

	if _, ok := store.Get("raw_data"); ok {
		t.Error("Get() hit on an empty store")
	}

	if err := store.Set("raw_data", []byte("<html>")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	data, ok := store.Get("raw_data")
	if !ok {
		t.Fatal("Get() missed after Set()")
	}
	if string(data) != "<html>" {
		t.Errorf("Get() = %q, want %q", data, "<html>")
	}
}

func TestMemory_SetRejectsEmptyKey(t *testing.T) {
	err := Memory().Set("", []byte("data"))
	if !errkind.Is(err, errkind.Value) {
		t.Errorf("Set() error = %v, want value error", err)
	}
}

func TestMemory_SetRejectsEmptyData(t *testing.T) {
	err := Memory().Set("key", nil)
	if !errkind.Is(err, errkind.Value) {
		t.Errorf("Set() error = %v, want value error", err)
	}
}

func TestGetOrFill_FillsOnce(t *testing.T) {
	store := Memory()
	calls := 0
	fill := func() ([]byte, error) {
		calls++
		return []byte("payload"), nil
	}

	for i := 0; i < 3; i++ {
		data, err := GetOrFill(store, "doc", fill)
		if err != nil {
			t.Fatalf("GetOrFill() failed on call %d: %v", i+1, err)
		}
		if string(data) != "payload" {
			t.Errorf("GetOrFill() = %q, want %q", data, "payload")
		}
	}

	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestGetOrFill_NilStore(t *testing.T) {
	calls := 0
	fill := func() ([]byte, error) {
		calls++
		return []byte("x"), nil
	}

	for i := 0; i < 2; i++ {
		if _, err := GetOrFill(nil, "doc", fill); err != nil {
			t.Fatalf("GetOrFill() failed: %v", err)
		}
	}

	if calls != 2 {
		t.Errorf("fill called %d times without a store, want 2", calls)
	}
}

func TestGetOrFill_FillError(t *testing.T) {
	store := Memory()
	wantErr := errors.New("network down")

	_, err := GetOrFill(store, "doc", func() ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrFill() error = %v, want fill error passed through", err)
	}

	if _, ok := store.Get("doc"); ok {
		t.Error("store populated despite fill failure")
	}
}
