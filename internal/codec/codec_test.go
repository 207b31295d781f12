package codec_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"credstore/internal/codec"
)

func TestBytes_MarkerRoundTrip(t *testing.T) {
	payload := codec.Bytes{0, 1, 127, 128, 255}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"Buffer","data":[0,1,127,128,255]}`
	if string(out) != want {
		t.Fatalf("marker shape mismatch: got %s", out)
	}

	var back codec.Bytes
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !bytes.Equal(back, payload) {
		t.Fatalf("round trip mismatch: got %v want %v", back, payload)
	}
}

func TestBytes_AcceptsArrayAndBase64(t *testing.T) {
	var fromArray codec.Bytes
	if err := json.Unmarshal([]byte(`[1,2,3]`), &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}
	if !bytes.Equal(fromArray, codec.Bytes{1, 2, 3}) {
		t.Fatalf("array decode mismatch: %v", fromArray)
	}

	var fromB64 codec.Bytes
	if err := json.Unmarshal([]byte(`"AQID"`), &fromB64); err != nil {
		t.Fatalf("base64 form: %v", err)
	}
	if !bytes.Equal(fromB64, codec.Bytes{1, 2, 3}) {
		t.Fatalf("base64 decode mismatch: %v", fromB64)
	}
}

func TestBytes_RejectsWrongMarker(t *testing.T) {
	var b codec.Bytes
	if err := json.Unmarshal([]byte(`{"type":"NotBuffer","data":[1]}`), &b); err == nil {
		t.Fatal("expected error for wrong marker type")
	}
}

func TestBytes_NullIsNil(t *testing.T) {
	var b codec.Bytes
	if err := json.Unmarshal([]byte(`null`), &b); err != nil {
		t.Fatalf("null: %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil, got %v", b)
	}
}

func TestWriteFile_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "record.json")

	if err := codec.WriteFile(path, []byte(`{"v":1}`), 0o600); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := codec.WriteFile(path, []byte(`{"v":2}`), 0o600); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Fatalf("unexpected content: %s", got)
	}

	// No temp files may survive a successful write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the record file, found %d entries", len(entries))
	}
}

func TestReadFile_MissingIsNil(t *testing.T) {
	b, err := codec.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil content, got %v", b)
	}
}
