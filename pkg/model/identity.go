package model

import (
	"encoding/binary"
	"hash/fnv"
)

// Identity keys UI session state for a field. It is derived from the static
// type/field path, never from an instance, so two values of the same shape
// share collapse state.
type Identity uint64

// RootIdentity seeds a top-level pass.
const RootIdentity Identity = 0

// DeriveIdentity combines a parent identity with the declaring type and field
// name of a child.
func DeriveIdentity(parent Identity, typeName, fieldName string) Identity {
	h := fnv.New64a()
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(parent))
	h.Write(seed[:])
	h.Write([]byte(typeName))
	h.Write([]byte{0})
	h.Write([]byte(fieldName))
	return Identity(h.Sum64())
}

// Child derives the identity of a field below id.
func (id Identity) Child(typeName, fieldName string) Identity {
	return DeriveIdentity(id, typeName, fieldName)
}
