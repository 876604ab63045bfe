// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

type sampleDeclaration struct {
	Name     string         `json:"name"`
	Mode     string         `json:"mode,omitempty"`
	Default  any            `json:"default,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleDeclaration{Name: "source", Mode: "required"}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleDeclaration
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != original.Name || decoded.Mode != original.Mode {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	declaration := sampleDeclaration{
		Name: "targets",
		Metadata: map[string]any{
			"zeta":  1,
			"alpha": 2,
			"mid":   3,
		},
	}

	first, err := Marshal(declaration)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for range 20 {
		again, err := Marshal(declaration)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Marshal produced different bytes for the same value")
		}
	}
}

func TestUnmarshalAnyMapType(t *testing.T) {
	data, err := Marshal(sampleDeclaration{
		Name:    "config",
		Default: map[string]any{"key": "value"},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleDeclaration
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := decoded.Default.(map[string]any); !ok {
		t.Errorf("Default decoded as %T, want map[string]any", decoded.Default)
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(sampleDeclaration{Name: "force"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	text, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(text, `"force"`) {
		t.Errorf("Diagnose() = %q, want it to contain \"force\"", text)
	}
}

func TestNewEncoderMatchesMarshal(t *testing.T) {
	value := sampleDeclaration{Name: "verbose", Mode: "boolean"}

	var buffer bytes.Buffer
	if err := NewEncoder(&buffer).Encode(value); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(buffer.Bytes(), data) {
		t.Error("stream encoding differs from Marshal")
	}
}
