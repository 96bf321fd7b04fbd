// Package wav reads and writes 16-bit PCM RIFF/WAVE files.
//
// Reading averages multi-channel files down to mono, since the fixture
// pipeline operates on mono buffers throughout. Writing always produces
// mono 16-bit PCM with samples clipped to [-1, 1].
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-noisegen/signal"
)

// Errors returned by the codec.
var (
	ErrNotRIFF           = errors.New("wav: not a RIFF/WAVE file")
	ErrUnsupportedFormat = errors.New("wav: unsupported sample format")
	ErrMissingChunk      = errors.New("wav: missing required chunk")
)

const (
	formatPCM      = 1
	bytesPerSample = 2
)

// Read loads a WAV file as a mono signal. A missing file is reported via
// fs.ErrNotExist so callers can use Read as a cache-existence probe.
func Read(path string) (signal.Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return signal.Signal{}, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("%w: %s", err, path)
	}

	return s, nil
}

// Write saves a mono signal as a 16-bit PCM WAV file.
func Write(path string, s signal.Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(f, s)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("wav: writing %s: %w", path, err)
	}

	return nil
}

// Decode parses a RIFF/WAVE stream into a mono signal.
func Decode(r io.Reader) (signal.Signal, error) {
	var riff [4]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return signal.Signal{}, fmt.Errorf("wav: reading RIFF magic: %w", err)
	}
	if riff != [4]byte{'R', 'I', 'F', 'F'} {
		return signal.Signal{}, ErrNotRIFF
	}

	var riffSize uint32
	if err := binary.Read(r, binary.LittleEndian, &riffSize); err != nil {
		return signal.Signal{}, fmt.Errorf("wav: reading RIFF size: %w", err)
	}

	var wave [4]byte
	if _, err := io.ReadFull(r, wave[:]); err != nil {
		return signal.Signal{}, fmt.Errorf("wav: reading WAVE magic: %w", err)
	}
	if wave != [4]byte{'W', 'A', 'V', 'E'} {
		return signal.Signal{}, ErrNotRIFF
	}

	var (
		channels   int
		sampleRate int
		haveFormat bool
	)

	// Walk chunks until the data chunk; fmt must precede data.
	for {
		var chunkID [4]byte
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return signal.Signal{}, fmt.Errorf("%w: data", ErrMissingChunk)
			}
			return signal.Signal{}, fmt.Errorf("wav: reading chunk id: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return signal.Signal{}, fmt.Errorf("wav: reading chunk size: %w", err)
		}

		switch chunkID {
		case [4]byte{'f', 'm', 't', ' '}:
			var err error
			channels, sampleRate, err = decodeFormatChunk(r, chunkSize)
			if err != nil {
				return signal.Signal{}, err
			}
			haveFormat = true

		case [4]byte{'d', 'a', 't', 'a'}:
			if !haveFormat {
				return signal.Signal{}, fmt.Errorf("%w: fmt", ErrMissingChunk)
			}
			return decodeDataChunk(r, chunkSize, channels, sampleRate)

		default:
			// Skip unknown chunks (LIST, fact, ...). Chunks are word-aligned.
			skip := int64(chunkSize)
			if chunkSize%2 == 1 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return signal.Signal{}, fmt.Errorf("wav: skipping chunk %q: %w", chunkID, err)
			}
		}
	}
}

func decodeFormatChunk(r io.Reader, size uint32) (channels, sampleRate int, err error) {
	if size < 16 {
		return 0, 0, fmt.Errorf("%w: fmt chunk too short (%d bytes)", ErrUnsupportedFormat, size)
	}

	var hdr struct {
		AudioFormat   uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return 0, 0, fmt.Errorf("wav: reading fmt chunk: %w", err)
	}

	// Skip any fmt extension bytes.
	if size > 16 {
		if _, err := io.CopyN(io.Discard, r, int64(size-16)); err != nil {
			return 0, 0, fmt.Errorf("wav: skipping fmt extension: %w", err)
		}
	}

	if hdr.AudioFormat != formatPCM || hdr.BitsPerSample != 16 {
		return 0, 0, fmt.Errorf("%w: format %d, %d bits",
			ErrUnsupportedFormat, hdr.AudioFormat, hdr.BitsPerSample)
	}
	if hdr.Channels == 0 || hdr.SampleRate == 0 {
		return 0, 0, fmt.Errorf("%w: %d channels at %d Hz",
			ErrUnsupportedFormat, hdr.Channels, hdr.SampleRate)
	}

	return int(hdr.Channels), int(hdr.SampleRate), nil
}

func decodeDataChunk(r io.Reader, size uint32, channels, sampleRate int) (signal.Signal, error) {
	frameSize := channels * bytesPerSample
	frames := int(size) / frameSize

	raw := make([]int16, frames*channels)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return signal.Signal{}, fmt.Errorf("wav: reading sample data: %w", err)
	}

	// Average interleaved channels down to mono.
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(raw[i*channels+ch]) / 32768.0
		}
		out[i] = sum / float64(channels)
	}

	return signal.New(out, sampleRate), nil
}

// Encode writes a mono signal as a 16-bit PCM WAV stream.
func Encode(w io.Writer, s signal.Signal) error {
	if s.Len() == 0 {
		return signal.ErrEmptySignal
	}
	if s.SampleRate <= 0 {
		return signal.ErrInvalidSampleRate
	}

	dataSize := uint32(s.Len() * bytesPerSample)

	if _, err := w.Write([]byte("RIFF")); err != nil {
		return err
	}
	// RIFF size: 4 (WAVE) + 24 (fmt chunk) + 8 (data header) + data.
	if err := binary.Write(w, binary.LittleEndian, uint32(36)+dataSize); err != nil {
		return err
	}
	if _, err := w.Write([]byte("WAVE")); err != nil {
		return err
	}

	if _, err := w.Write([]byte("fmt ")); err != nil {
		return err
	}
	fmtChunk := struct {
		Size          uint32
		AudioFormat   uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}{
		Size:          16,
		AudioFormat:   formatPCM,
		Channels:      1,
		SampleRate:    uint32(s.SampleRate),
		ByteRate:      uint32(s.SampleRate * bytesPerSample),
		BlockAlign:    bytesPerSample,
		BitsPerSample: 16,
	}
	if err := binary.Write(w, binary.LittleEndian, fmtChunk); err != nil {
		return err
	}

	if _, err := w.Write([]byte("data")); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, dataSize); err != nil {
		return err
	}

	pcm := make([]int16, s.Len())
	for i, v := range s.Samples {
		pcm[i] = quantize(v)
	}

	return binary.Write(w, binary.LittleEndian, pcm)
}

// quantize clips v to [-1, 1] and converts it to a 16-bit sample.
func quantize(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}

	q := math.Round(v * 32767)

	return int16(q)
}
