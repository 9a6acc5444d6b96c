// Package audio prepares uploaded recordings for speech recognition.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// RequiredSampleRate is the sample rate speech recognition is configured for.
const RequiredSampleRate = 16000

// PCM is little-endian signed 16-bit linear PCM audio.
type PCM struct {
	Data       []byte
	SampleRate int
	Channels   int
}

// ErrUnsupportedFormat is returned for WAV files that are not 16-bit PCM at RequiredSampleRate.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

const (
	wavFormatPCM  = 1
	bitsPerSample = 16
)

// Decode converts an uploaded recording to raw PCM. RIFF/WAVE input is
// unwrapped and checked; anything else is taken to already be raw 16 kHz mono PCM.
func Decode(raw []byte) (*PCM, error) {
	if !isWAV(raw) {
		return &PCM{Data: raw, SampleRate: RequiredSampleRate, Channels: 1}, nil
	}
	return decodeWAV(raw)
}

func isWAV(raw []byte) bool {
	return len(raw) >= 12 && string(raw[0:4]) == "RIFF" && string(raw[8:12]) == "WAVE"
}

func decodeWAV(raw []byte) (*PCM, error) {
	var (
		pcm     PCM
		haveFmt bool
	)

	offset := 12
	for offset+8 <= len(raw) {
		id := string(raw[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(raw[offset+4 : offset+8]))
		body := offset + 8
		if body+size > len(raw) || (id == "data" && size == 0) {
			// streaming recorders leave a zero or oversized data length
			size = len(raw) - body
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: fmt chunk too short", ErrUnsupportedFormat)
			}
			format := binary.LittleEndian.Uint16(raw[body : body+2])
			channels := binary.LittleEndian.Uint16(raw[body+2 : body+4])
			rate := binary.LittleEndian.Uint32(raw[body+4 : body+8])
			bits := binary.LittleEndian.Uint16(raw[body+14 : body+16])
			if format != wavFormatPCM || bits != bitsPerSample {
				return nil, fmt.Errorf("%w: want 16-bit linear PCM, got format %d with %d bits", ErrUnsupportedFormat, format, bits)
			}
			if rate != RequiredSampleRate {
				return nil, fmt.Errorf("%w: want %d Hz, got %d Hz", ErrUnsupportedFormat, RequiredSampleRate, rate)
			}
			pcm.SampleRate = int(rate)
			pcm.Channels = int(channels)
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, fmt.Errorf("%w: data chunk before fmt chunk", ErrUnsupportedFormat)
			}
			pcm.Data = raw[body : body+size]
			return &pcm, nil
		}

		// chunks are word aligned
		offset = body + size + size%2
	}

	return nil, fmt.Errorf("%w: no data chunk", ErrUnsupportedFormat)
}

// EncodeWAV wraps PCM samples in a canonical 44-byte RIFF/WAVE header.
func EncodeWAV(pcm *PCM) []byte {
	channels := pcm.Channels
	if channels <= 0 {
		channels = 1
	}
	blockAlign := channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm.Data))
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm.Data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(wavFormatPCM))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(pcm.SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(pcm.SampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm.Data)))
	buf.Write(pcm.Data)
	return buf.Bytes()
}
