// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package cborwire

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/nada-devrapid/devrapid/lib/schema"
)

// Hash is a 32-byte BLAKE3 event digest.
type Hash [32]byte

// String returns the lowercase hex form of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing event digest: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("event digest is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// eventDomainKey is the BLAKE3 key for event digests: the ASCII domain
// name zero-padded to 32 bytes. Changing it changes every digest.
var eventDomainKey = [32]byte{
	'd', 'e', 'v', 'r', 'a', 'p', 'i', 'd', '.', 'e', 'v', 'e', 'n', 't',
}

// Digest returns the keyed BLAKE3 hash of event's canonical CBOR
// encoding. Events that are Equal have equal digests; metadata is part
// of the hashed content, so a re-stamped event hashes differently.
func Digest(event schema.Event) (Hash, error) {
	data, err := Codec{}.Encode(event)
	if err != nil {
		return Hash{}, err
	}
	return keyedHash(data), nil
}

func keyedHash(data []byte) Hash {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(eventDomainKey[:])
	if err != nil {
		panic("cborwire: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
