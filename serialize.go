// Copyright (c) 2026 Macmillan Learning.
// SPDX-License-Identifier: MIT

package dlr

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v2"
)

// ReadBytes is the default ReadFunc: the artifact is the file's raw bytes.
func ReadBytes(targetPath string) (any, error) {
	return os.ReadFile(targetPath)
}

// WriteBytes is the default WriteFunc. The artifact must be []byte or
// string; anything richer needs an explicit writer.
func WriteBytes(artifact any, targetPath string) error {
	var data []byte
	switch v := artifact.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("default writer handles []byte or string, got %T (supply WithWriter)", artifact)
	}
	return os.WriteFile(targetPath, data, 0o644) //nolint:mnd
}

// GobReader returns a ReadFunc that decodes a gob-encoded T. Pair it with
// GobWriter of the same T; gob cannot decode into an untyped interface, so
// the concrete type has to be named at both ends.
func GobReader[T any]() ReadFunc {
	return func(targetPath string) (any, error) {
		f, err := os.Open(targetPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		var v T
		if err := gob.NewDecoder(f).Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", targetPath, err)
		}
		return v, nil
	}
}

// GobWriter returns a WriteFunc that gob-encodes a T artifact.
func GobWriter[T any]() WriteFunc {
	return func(artifact any, targetPath string) error {
		v, ok := artifact.(T)
		if !ok {
			return fmt.Errorf("gob writer for %T got %T", v, artifact)
		}

		f, err := os.Create(targetPath)
		if err != nil {
			return err
		}
		if err := gob.NewEncoder(f).Encode(v); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode %s: %w", targetPath, err)
		}
		return f.Close()
	}
}

// JSONReader returns a ReadFunc that unmarshals a JSON document into T.
func JSONReader[T any]() ReadFunc {
	return func(targetPath string) (any, error) {
		data, err := os.ReadFile(targetPath)
		if err != nil {
			return nil, err
		}

		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", targetPath, err)
		}
		return v, nil
	}
}

// JSONWriter returns a WriteFunc that marshals a T artifact as JSON.
func JSONWriter[T any]() WriteFunc {
	return func(artifact any, targetPath string) error {
		v, ok := artifact.(T)
		if !ok {
			return fmt.Errorf("json writer for %T got %T", v, artifact)
		}

		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", targetPath, err)
		}
		return os.WriteFile(targetPath, data, 0o644) //nolint:mnd
	}
}

// YAMLReader returns a ReadFunc that unmarshals a YAML document into T.
func YAMLReader[T any]() ReadFunc {
	return func(targetPath string) (any, error) {
		data, err := os.ReadFile(targetPath)
		if err != nil {
			return nil, err
		}

		var v T
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", targetPath, err)
		}
		return v, nil
	}
}

// YAMLWriter returns a WriteFunc that marshals a T artifact as YAML.
func YAMLWriter[T any]() WriteFunc {
	return func(artifact any, targetPath string) error {
		v, ok := artifact.(T)
		if !ok {
			return fmt.Errorf("yaml writer for %T got %T", v, artifact)
		}

		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", targetPath, err)
		}
		return os.WriteFile(targetPath, data, 0o644) //nolint:mnd
	}
}

// JSONPath returns a ProcessFunc that extracts the value at a gjson path
// ("config.region", "items.#.name", ...) from a JSON source document. The
// extracted value is the artifact, as whatever Go type the document holds
// there.
func JSONPath(jsonPath string) ProcessFunc {
	return func(sourcePath string) (any, error) {
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%s is not valid JSON", sourcePath)
		}

		result := gjson.GetBytes(data, jsonPath)
		if !result.Exists() {
			return nil, fmt.Errorf("path %q not found in %s", jsonPath, sourcePath)
		}
		return result.Value(), nil
	}
}
