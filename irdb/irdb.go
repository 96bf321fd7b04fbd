// Package irdb reads and writes impulse-response database files.
//
// An IRDB file is a small little-endian binary library of named impulse
// responses, typically repacked from a room-acoustics measurement set:
//
//	header:    magic "IRDB", uint16 version, uint32 entry count
//	per entry: uint16 name length, name bytes (UTF-8),
//	           float64 sample rate, uint32 sample count,
//	           float64 samples
//
// The echo noise generator looks entries up by name and convolves them
// with the clean input to simulate reverberation.
package irdb

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Errors returned when reading a database.
var (
	ErrInvalidMagic       = errors.New("irdb: invalid magic")
	ErrUnsupportedVersion = errors.New("irdb: unsupported version")
	ErrEntryNotFound      = errors.New("irdb: entry not found")
)

var magic = [4]byte{'I', 'R', 'D', 'B'}

const currentVersion = 1

// Entry is one named impulse response.
type Entry struct {
	Name       string
	SampleRate float64
	Samples    []float64
}

// Read parses an IRDB file and returns all entries in file order.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}

	return entries, nil
}

// Load reads the database at path and returns the entry with the given
// name. A missing name fails with ErrEntryNotFound.
func Load(path, name string) (Entry, error) {
	entries, err := Read(path)
	if err != nil {
		return Entry{}, err
	}

	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%w: %q in %s", ErrEntryNotFound, name, path)
}

// Decode parses an IRDB stream.
func Decode(r io.Reader) ([]Entry, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, fmt.Errorf("irdb: reading magic: %w", err)
	}
	if m != magic {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, m)
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("irdb: reading version: %w", err)
	}
	if version != currentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("irdb: reading entry count: %w", err)
	}

	entries := make([]Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		entry, err := decodeEntry(r)
		if err != nil {
			return nil, fmt.Errorf("irdb: entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func decodeEntry(r io.Reader) (Entry, error) {
	name, err := readString(r)
	if err != nil {
		return Entry{}, fmt.Errorf("reading name: %w", err)
	}

	var sampleRate float64
	if err := binary.Read(r, binary.LittleEndian, &sampleRate); err != nil {
		return Entry{}, fmt.Errorf("reading sample rate: %w", err)
	}

	var sampleCount uint32
	if err := binary.Read(r, binary.LittleEndian, &sampleCount); err != nil {
		return Entry{}, fmt.Errorf("reading sample count: %w", err)
	}

	samples := make([]float64, sampleCount)
	if err := binary.Read(r, binary.LittleEndian, samples); err != nil {
		return Entry{}, fmt.Errorf("reading samples: %w", err)
	}

	return Entry{Name: name, SampleRate: sampleRate, Samples: samples}, nil
}

// readString reads a uint16-length-prefixed UTF-8 string.
func readString(r io.Reader) (string, error) {
	var length uint16
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// Write saves entries as an IRDB file.
func Write(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	err = Encode(w, entries)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("irdb: writing %s: %w", path, err)
	}

	return nil
}

// Encode writes entries as an IRDB stream.
func Encode(w io.Writer, entries []Entry) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(currentVersion)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(entries))); err != nil {
		return err
	}

	for _, e := range entries {
		if err := writeString(w, e.Name); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.SampleRate); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(e.Samples))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.Samples); err != nil {
			return err
		}
	}

	return nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}

	_, err := w.Write([]byte(s))

	return err
}
