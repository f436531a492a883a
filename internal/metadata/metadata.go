// Copyright 2026 The swaggerguard Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package metadata describes the types that referenced assemblies contribute to a compilation.
//
// A [Catalog] lists types by metadata name, nested types separated by '+' and
// generic types suffixed with their arity, e.g. "System.Threading.Tasks.Task`1".
// Catalogs are stored as YAML or MessagePack.
package metadata

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Kind is the kind of a referenced type.
type Kind string

// Type kinds.
const (
	Class     Kind = "class"
	Struct    Kind = "struct"
	Interface Kind = "interface"
	Enum      Kind = "enum"
)

// TypeInfo describes one referenced type.
type TypeInfo struct {
	Name string `yaml:"name"           msgpack:"name"`
	Kind Kind   `yaml:"kind"           msgpack:"kind"`
	Base string `yaml:"base,omitempty" msgpack:"base,omitempty"`
}

// Arity returns the number of generic type parameters encoded in the name.
func (t TypeInfo) Arity() int {
	i := strings.LastIndexByte(t.Name, '`')
	if i < 0 {
		return 0
	}

	n, err := strconv.Atoi(t.Name[i+1:])
	if err != nil {
		return 0
	}

	return n
}

// Catalog is a set of referenced types.
type Catalog struct {
	Types []TypeInfo `yaml:"types" msgpack:"types"`
}

// Format is a catalog serialization format.
type Format uint8

const (
	// YAML is the human-editable format.
	YAML Format = iota

	// MessagePack is the compact binary format.
	MessagePack
)

var (
	// ErrUnknownFormat is returned for catalog files with an unrecognized extension.
	ErrUnknownFormat = errors.New("unknown catalog format")

	// ErrInvalidType is returned for catalog entries that are incomplete.
	ErrInvalidType = errors.New("invalid catalog type")
)

// FormatOf determines the catalog format from a file name.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil

	case ".msgpack", ".mp":
		return MessagePack, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

//go:embed default.yaml
var defaultCatalog string

// Default returns the built-in catalog of base class library and ASP.NET Core types.
var Default = sync.OnceValues(func() (*Catalog, error) {
	return Decode(strings.NewReader(defaultCatalog), YAML)
})

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return c, nil
}

// Decode reads a catalog in the given format and validates it.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	var c Catalog

	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

	case MessagePack:
		if err := msgpack.NewDecoder(r).Decode(&c); err != nil {
			return nil, err
		}

	default:
		return nil, ErrUnknownFormat
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Encode writes the catalog in the given format.
func (c *Catalog) Encode(w io.Writer, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(c); err != nil {
			return err
		}

		return enc.Close()

	case MessagePack:
		return msgpack.NewEncoder(w).Encode(c)

	default:
		return ErrUnknownFormat
	}
}

// Validate checks that every entry has a name and a known kind.
func (c *Catalog) Validate() error {
	for i, t := range c.Types {
		if t.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidType, i)
		}

		switch t.Kind {
		case Class, Struct, Interface, Enum:
		default:
			return fmt.Errorf("%w: %s has kind %q", ErrInvalidType, t.Name, t.Kind)
		}
	}

	return nil
}

// Merge combines catalogs. Later entries replace earlier ones with the same name.
func Merge(catalogs ...*Catalog) *Catalog {
	index := make(map[string]int)

	var merged Catalog

	for _, c := range catalogs {
		if c == nil {
			continue
		}

		for _, t := range c.Types {
			if i, ok := index[t.Name]; ok {
				merged.Types[i] = t

				continue
			}

			index[t.Name] = len(merged.Types)
			merged.Types = append(merged.Types, t)
		}
	}

	return &merged
}
