// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fgdesc loads frame descriptions from YAML and turns them into
// framegraph graphs backed by virtual resources, for inspection without a GPU.
//
// A description lists passes in declaration order:
//
//	name: deferred
//	passes:
//	  - name: gbuffer
//	    create: [albedo, depth]
//	    write: [albedo, depth]
//	  - name: lighting
//	    import: [backbuffer]
//	    read: [albedo, depth]
//	    write: [backbuffer]
//
// Resource references name the latest version of a resource, or a specific
// version with the name@version form (for example "albedo@0").
package fgdesc

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for descriptions that cannot form a graph.
var ErrInvalid = errors.New("fgdesc: invalid frame description")

// PassSpec describes one pass.
type PassSpec struct {
	Name       string   `yaml:"name"`
	SideEffect bool     `yaml:"side_effect"`
	Import     []string `yaml:"import"`
	Create     []string `yaml:"create"`
	Read       []string `yaml:"read"`
	Write      []string `yaml:"write"`
	// Fail makes the pass callback return an error with this message.
	Fail string `yaml:"fail"`
}

// Document is a frame description file.
type Document struct {
	Name   string     `yaml:"name"`
	Passes []PassSpec `yaml:"passes"`
}

// Parse decodes a YAML frame description and validates it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse frame description: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads and parses the frame description at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame description: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the parts of a description that do not depend on
// declaration order: pass names and reference syntax.
func (d *Document) Validate() error {
	if len(d.Passes) == 0 {
		return fmt.Errorf("%w: no passes", ErrInvalid)
	}
	for i, p := range d.Passes {
		if p.Name == "" {
			return fmt.Errorf("%w: pass %d has no name", ErrInvalid, i)
		}
		for _, name := range append(append([]string(nil), p.Import...), p.Create...) {
			if name == "" || strings.Contains(name, "@") {
				return fmt.Errorf("%w: pass %q declares resource %q; names must be non-empty and unversioned", ErrInvalid, p.Name, name)
			}
		}
		for _, ref := range append(append([]string(nil), p.Read...), p.Write...) {
			if _, _, err := ParseRef(ref); err != nil {
				return fmt.Errorf("%w: pass %q: %w", ErrInvalid, p.Name, err)
			}
		}
	}
	return nil
}

// ParseRef splits a resource reference into its name and version.
// Version is -1 when the reference names the latest version.
func ParseRef(ref string) (name string, version int, err error) {
	name, v, found := strings.Cut(ref, "@")
	if name == "" {
		return "", 0, fmt.Errorf("empty resource reference %q", ref)
	}
	if !found {
		return name, -1, nil
	}
	version, err = strconv.Atoi(v)
	if err != nil || version < 0 {
		return "", 0, fmt.Errorf("bad version in resource reference %q", ref)
	}
	return name, version, nil
}
