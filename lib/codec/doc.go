// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by
// argspec packages.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical value always produces the same bytes, which is what
// lets lib/definition fingerprint a registry by hashing its encoded
// snapshot.
//
// Types carrying `json` struct tags encode identically through this
// package and encoding/json: fxamacker/cbor reads `json` tags when no
// `cbor` tag is present. Types implementing encoding.TextMarshaler
// (the argument and option modes) encode as CBOR text strings.
//
//	data, err := codec.Marshal(registry.Snapshot())
//	err = codec.Unmarshal(data, &snapshot)
//	text, err := codec.Diagnose(data)
package codec
