// Package loader reads LC-3 object files from disk.
//
// An object file is a sequence of big-endian 16-bit words: the first word
// is the load address, and every remaining word is program content to be
// placed starting at that address. Byte-swapping the big-endian stream
// into host order happens entirely in this package; the core accepts only
// native-order words (spec.md §4.6, §9).
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Program is a single loaded object file: a start address and the
// native-order words that follow it.
type Program struct {
	// StartAddr is the address the program should be placed at, and the
	// address execution should begin at if this is the last file loaded.
	StartAddr uint16
	// Words holds the program content, in load order.
	Words []uint16
}

// Load reads the object file at path and returns its start address and
// word stream in host byte order.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open object file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads an object-file stream from r. File length minus the
// 2-byte header must be even; a trailing odd byte is ignored.
func Decode(r io.Reader) (*Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read object file: %w", err)
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("object file too short: need at least a 2-byte start address")
	}

	startAddr := binary.BigEndian.Uint16(data[0:2])

	body := data[2:]
	count := len(body) / 2 // trailing odd byte ignored

	words := make([]uint16, count)
	for i := 0; i < count; i++ {
		words[i] = binary.BigEndian.Uint16(body[i*2 : i*2+2])
	}

	return &Program{StartAddr: startAddr, Words: words}, nil
}
