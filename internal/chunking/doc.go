// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chunking holds the semantic chunking parameters sent with a
// semantic re-embed request.
//
// Chunking itself runs in the backend. This package only models the form:
// defaults, named presets, field bounds and parsing of edited values.
//
// # Key Types
//
//   - Config: The five tunables, serialized with the backend's camelCase keys
//   - Preset: A named Config for a class of documents
//   - Field: One editable tunable with its bounds
//
// # Usage
//
//	cfg := chunking.Default()
//	if err := cfg.Set(chunking.FieldMaxChunkSize, "1200"); err != nil {
//	    return err
//	}
//	cfg = chunking.MustPreset("technical").Config
package chunking
