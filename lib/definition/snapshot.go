// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/argspec/lib/codec"
)

// Snapshot is the serializable form of a registry. It uses json tags
// and therefore encodes as both JSON and CBOR.
type Snapshot struct {
	Description string     `json:"description,omitempty"`
	Example     string     `json:"example,omitempty"`
	Arguments   []Argument `json:"arguments"`
	Options     []Option   `json:"options"`
}

// Snapshot captures the registry's declarations after normalization
// (explicit modes, stripped names, "|"-joined shortcuts, filled
// defaults).
func (r *Registry) Snapshot() Snapshot {
	arguments := r.Arguments()
	if arguments == nil {
		arguments = []Argument{}
	}
	options := r.Options()
	if options == nil {
		options = []Option{}
	}
	return Snapshot{
		Description: r.description,
		Example:     r.example,
		Arguments:   arguments,
		Options:     options,
	}
}

// FromSnapshot rebuilds a registry by replaying the snapshot's
// declarations, so every declaration rule is checked again.
func FromSnapshot(snapshot Snapshot) (*Registry, error) {
	registry, err := New(snapshot.Arguments, snapshot.Options)
	if err != nil {
		return nil, err
	}
	registry.SetDescription(snapshot.Description)
	registry.SetExample(snapshot.Example)
	return registry, nil
}

// Fingerprint is a BLAKE3 digest of a registry's snapshot.
type Fingerprint [32]byte

// String returns the lowercase hex encoding.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// fingerprintDomainKey separates registry fingerprints from any other
// keyed BLAKE3 use of the same bytes.
var fingerprintDomainKey = [32]byte{
	'a', 'r', 'g', 's', 'p', 'e', 'c', '.', 'd', 'e', 'f', 'i', 'n', 'i', 't', 'i',
	'o', 'n', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint hashes the deterministic CBOR encoding of the snapshot.
// Registries with the same declarations, description and example have
// the same fingerprint. Fails only when a default value cannot be
// encoded.
func (r *Registry) Fingerprint() (Fingerprint, error) {
	data, err := codec.Marshal(r.Snapshot())
	if err != nil {
		return Fingerprint{}, fmt.Errorf("encoding definition snapshot: %w", err)
	}

	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("definition: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)

	var result Fingerprint
	copy(result[:], hasher.Sum(nil))
	return result, nil
}
