// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package osaccess

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestMapFileReadsFullContent(t *testing.T) {
	data := bytes.Repeat([]byte("dwarfs ordering test content\n"), 1000)
	path := writeTempFile(t, data)

	mapped, err := NewDefault().MapFile(path, int64(len(data)))
	if err != nil {
		t.Fatalf("MapFile: %v", err)
	}
	defer mapped.Close()

	got := mapped.Bytes(0)
	if !bytes.Equal(got, data) {
		t.Fatalf("mapped content mismatch: got %d bytes, want %d bytes", len(got), len(data))
	}
}

func TestMapFileWindowedRead(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 5000)
	path := writeTempFile(t, data)

	mapped, err := NewDefault().MapFile(path, int64(len(data)))
	if err != nil {
		t.Fatalf("MapFile: %v", err)
	}
	defer mapped.Close()

	const window = 4096
	var reassembled []byte
	for offset := 0; offset < len(data); offset += window {
		chunk := mapped.Bytes(int64(offset))
		end := window
		if end > len(chunk) {
			end = len(chunk)
		}
		reassembled = append(reassembled, chunk[:end]...)
		mapped.ReleaseUntil(int64(offset))
	}

	if !bytes.Equal(reassembled, data) {
		t.Fatalf("windowed reassembly mismatch: got %d bytes, want %d bytes", len(reassembled), len(data))
	}
}

func TestMapFileEmptySize(t *testing.T) {
	path := writeTempFile(t, nil)

	mapped, err := NewDefault().MapFile(path, 0)
	if err != nil {
		t.Fatalf("MapFile on empty file: %v", err)
	}
	defer mapped.Close()

	if got := mapped.Bytes(0); got != nil {
		t.Errorf("Bytes(0) on empty mapping = %v, want nil", got)
	}
}

func TestMapFileCloseIsIdempotent(t *testing.T) {
	data := []byte("small content")
	path := writeTempFile(t, data)

	mapped, err := NewDefault().MapFile(path, int64(len(data)))
	if err != nil {
		t.Fatalf("MapFile: %v", err)
	}

	if err := mapped.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := mapped.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
