// Copyright (c) Aaron Klotz & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package xcom

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUID is a 128-bit globally unique identifier laid out in registry
// format: one 32-bit group, two 16-bit groups, and an 8-byte group.
// Interface identity declarations are composite literals of this layout.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GUIDFromString parses s, a GUID in registry string format with or
// without enclosing braces.
func GUIDFromString(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, err
	}
	return guidFromUUID(u), nil
}

func guidFromUUID(u uuid.UUID) GUID {
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(u[0:4])
	g.Data2 = binary.BigEndian.Uint16(u[4:6])
	g.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(g.Data4[:], u[8:16])
	return g
}

// MustGUID is like GUIDFromString but panics on malformed input. It is
// intended for static identity declarations.
func MustGUID(s string) GUID {
	g, err := GUIDFromString(s)
	if err != nil {
		panic(`xcom: MustGUID(` + s + `): ` + err.Error())
	}
	return g
}

// NewGUID generates a new random GUID.
func NewGUID() (GUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return GUID{}, err
	}
	return guidFromUUID(u), nil
}

func (g GUID) String() string {
	return guidToString(g)
}

func guidToString(guid GUID) string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		guid.Data1, guid.Data2, guid.Data3,
		guid.Data4[0], guid.Data4[1], guid.Data4[2], guid.Data4[3],
		guid.Data4[4], guid.Data4[5], guid.Data4[6], guid.Data4[7])
}
