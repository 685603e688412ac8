// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package inode

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadFileOrderOptions parses FileOrderOptions from r, formatted as the
// same kind of YAML document bureau-foundation-bureau/lib/config.LoadFile
// reads (yaml.Unmarshal into a struct carrying yaml tags). The caller
// owns opening and closing the underlying file; this subsystem performs
// no file I/O of its own, per SPEC_FULL.md §1's scope.
func LoadFileOrderOptions(r io.Reader) (FileOrderOptions, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return FileOrderOptions{}, fmt.Errorf("inode: reading file order options: %w", err)
	}

	var opts FileOrderOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return FileOrderOptions{}, fmt.Errorf("inode: parsing file order options: %w", err)
	}
	return opts, nil
}
