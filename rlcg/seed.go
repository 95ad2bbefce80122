package rlcg

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
)

// SeedFromBytes derives a 64-bit seed from arbitrary bytes using a blake2b
// XOF. Deterministic: equal inputs always derive equal seeds.
//
// Panics when blake2b initialization fails.
func SeedFromBytes(seed []byte) uint64 {
	xof, err := blake2b.NewXOF(8, nil)
	if err != nil {
		panic(err)
	}
	if _, err := xof.Write(seed); err != nil {
		panic(err)
	}

	var buf [8]byte
	if _, err := io.ReadFull(xof, buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// RandomSeed samples a seed from the system entropy source.
//
// Panics when read from crypto/rand fails.
func RandomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}
