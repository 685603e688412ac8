// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package order

import (
	"errors"
	"path"
	"testing"

	"github.com/mohnkhan/dwarfs/lib/inode"
)

type fakeFile struct {
	path string
	size int64
}

func (f fakeFile) Path() string { return f.path }
func (f fakeFile) Name() string { return path.Base(f.path) }
func (f fakeFile) Size() int64  { return f.size }

func newFile(p string, size int64) inode.File {
	return fakeFile{path: p, size: size}
}

// sinkRecorder implements SinkFunc plumbing while recording call order.
func sinkRecorder(emitted *[]*inode.Inode) SinkFunc {
	return func(n *inode.Inode) int {
		*emitted = append(*emitted, n)
		return 0
	}
}

func mustSetFiles(t *testing.T, n *inode.Inode, f inode.File) {
	t.Helper()
	if err := n.SetFiles([]inode.File{f}); err != nil {
		t.Fatalf("SetFiles: %v", err)
	}
}

func TestOrderNoneTotalityAndOrder(t *testing.T) {
	r := New(nil)
	var created []*inode.Inode
	for i, p := range []string{"c", "a", "b"} {
		n := r.CreateInode()
		mustSetFiles(t, n, newFile(p, int64(i)))
		created = append(created, n)
	}

	var emitted []*inode.Inode
	opts := inode.FileOrderOptions{Mode: inode.OrderNone}
	if err := r.Order(NoScript{}, opts, 10, sinkRecorder(&emitted)); err != nil {
		t.Fatalf("Order: %v", err)
	}

	if len(emitted) != 3 {
		t.Fatalf("emitted %d inodes, want 3", len(emitted))
	}
	for i, n := range created {
		if emitted[i] != n {
			t.Errorf("emission order changed under NONE mode at index %d", i)
		}
		if n.Num() != uint32(10+i) {
			t.Errorf("inode %d has Num %d, want %d", i, n.Num(), 10+i)
		}
	}
}

func TestOrderPathScenarioS3(t *testing.T) {
	r := New(nil)
	for _, p := range []string{"b", "a", "c"} {
		n := r.CreateInode()
		mustSetFiles(t, n, newFile(p, 1))
	}

	var emitted []*inode.Inode
	opts := inode.FileOrderOptions{Mode: inode.OrderPath}
	if err := r.Order(NoScript{}, opts, 0, sinkRecorder(&emitted)); err != nil {
		t.Fatalf("Order: %v", err)
	}

	wantPaths := []string{"a", "b", "c"}
	for i, n := range emitted {
		f, _ := n.Any()
		if f.Path() != wantPaths[i] {
			t.Errorf("emitted[%d].Path() = %q, want %q", i, f.Path(), wantPaths[i])
		}
		if n.Num() != uint32(i) {
			t.Errorf("emitted[%d].Num() = %d, want %d", i, n.Num(), i)
		}
	}
}

func TestOrderSimilarityScenarioS4(t *testing.T) {
	r := New(nil)
	type spec struct {
		path string
		fp   uint32
		size int64
	}
	specs := []spec{
		{path: "x", fp: 7, size: 100},
		{path: "y", fp: 7, size: 200},
		{path: "z", fp: 3, size: 50},
	}
	for _, s := range specs {
		n := r.CreateInode()
		mustSetFiles(t, n, newFile(s.path, s.size))
		n.SetSimilarityHash(s.fp)
	}

	var emitted []*inode.Inode
	opts := inode.FileOrderOptions{Mode: inode.OrderSimilarity}
	if err := r.Order(NoScript{}, opts, 0, sinkRecorder(&emitted)); err != nil {
		t.Fatalf("Order: %v", err)
	}

	wantPaths := []string{"z", "y", "x"}
	for i, n := range emitted {
		f, _ := n.Any()
		if f.Path() != wantPaths[i] {
			t.Errorf("emitted[%d].Path() = %q, want %q", i, f.Path(), wantPaths[i])
		}
	}
}

type reverseScript struct{ ok bool }

func (s reverseScript) HasOrder() bool { return s.ok }

func (s reverseScript) Order(inodes []*inode.Inode) error {
	for i, j := 0, len(inodes)-1; i < j; i, j = i+1, j-1 {
		inodes[i], inodes[j] = inodes[j], inodes[i]
	}
	return nil
}

func TestOrderScriptDelegates(t *testing.T) {
	r := New(nil)
	var created []*inode.Inode
	for _, p := range []string{"a", "b", "c"} {
		n := r.CreateInode()
		mustSetFiles(t, n, newFile(p, 1))
		created = append(created, n)
	}

	var emitted []*inode.Inode
	opts := inode.FileOrderOptions{Mode: inode.OrderScript}
	if err := r.Order(reverseScript{ok: true}, opts, 0, sinkRecorder(&emitted)); err != nil {
		t.Fatalf("Order: %v", err)
	}

	for i, n := range emitted {
		if n != created[len(created)-1-i] {
			t.Errorf("script permutation not honored at index %d", i)
		}
	}
}

func TestOrderScriptDeclinesFails(t *testing.T) {
	r := New(nil)
	n := r.CreateInode()
	mustSetFiles(t, n, newFile("a", 1))

	opts := inode.FileOrderOptions{Mode: inode.OrderScript}
	err := r.Order(reverseScript{ok: false}, opts, 0, func(*inode.Inode) int { return 0 })
	if !errors.Is(err, inode.ErrInvalidRequest) {
		t.Fatalf("Order with declining script: got %v, want ErrInvalidRequest", err)
	}
}

func TestOrderEmptySetS1(t *testing.T) {
	r := New(nil)
	called := false
	opts := inode.FileOrderOptions{Mode: inode.OrderNone}
	if err := r.Order(NoScript{}, opts, 0, func(*inode.Inode) int { called = true; return 0 }); err != nil {
		t.Fatalf("Order on empty registry: %v", err)
	}
	if called {
		t.Errorf("sink invoked on empty registry")
	}
}

func TestOrderDeterministic(t *testing.T) {
	build := func() *Registry {
		r := New(nil)
		for _, p := range []string{"m", "a", "z", "b"} {
			n := r.CreateInode()
			mustSetFiles(t, n, newFile(p, 1))
		}
		return r
	}

	opts := inode.FileOrderOptions{Mode: inode.OrderPath}

	r1 := build()
	var e1 []*inode.Inode
	if err := r1.Order(NoScript{}, opts, 0, sinkRecorder(&e1)); err != nil {
		t.Fatalf("Order: %v", err)
	}

	r2 := build()
	var e2 []*inode.Inode
	if err := r2.Order(NoScript{}, opts, 0, sinkRecorder(&e2)); err != nil {
		t.Fatalf("Order: %v", err)
	}

	for i := range e1 {
		f1, _ := e1[i].Any()
		f2, _ := e2[i].Any()
		if f1.Path() != f2.Path() {
			t.Fatalf("non-deterministic ordering at index %d: %q vs %q", i, f1.Path(), f2.Path())
		}
	}
}
