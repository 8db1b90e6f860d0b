package bytecode

import (
	"hash/crc32"
	"testing"
)

func TestChecksum(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("MNML"),
		[]byte("the quick brown fox jumps over the lazy dog"),
	}
	for _, data := range cases {
		if got, want := Checksum(data), crc32.ChecksumIEEE(data); got != want {
			t.Errorf("Checksum(%q) = %#x, want %#x", data, got, want)
		}
	}
}

func TestChecksumDetectsMutation(t *testing.T) {
	data := []byte("MNML payload of some interesting length")
	sum := Checksum(data)

	mutated := append([]byte{}, data...)
	mutated[3] ^= 0xFF
	if Checksum(mutated) == sum {
		t.Fatal("checksum did not change after mutating a byte")
	}
}
