package audio

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecode_WAVRoundTrip(t *testing.T) {
	samples := []byte{0x01, 0x00, 0xff, 0x7f, 0x00, 0x80}
	wav := EncodeWAV(&PCM{Data: samples, SampleRate: RequiredSampleRate, Channels: 1})

	pcm, err := Decode(wav)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if pcm.SampleRate != RequiredSampleRate || pcm.Channels != 1 {
		t.Errorf("format = %d Hz / %d ch", pcm.SampleRate, pcm.Channels)
	}
	if string(pcm.Data) != string(samples) {
		t.Errorf("Data = %v, want %v", pcm.Data, samples)
	}
}

func TestDecode_RawPassThrough(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	pcm, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if pcm.SampleRate != RequiredSampleRate || pcm.Channels != 1 || len(pcm.Data) != 4 {
		t.Errorf("raw input should pass through as 16 kHz mono, got %+v", pcm)
	}
}

func TestDecode_WrongSampleRate(t *testing.T) {
	wav := EncodeWAV(&PCM{Data: []byte{0, 0}, SampleRate: 44100, Channels: 2})
	if _, err := Decode(wav); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_NonPCMFormat(t *testing.T) {
	wav := EncodeWAV(&PCM{Data: []byte{0, 0}, SampleRate: RequiredSampleRate, Channels: 1})
	// audio format field sits right after "fmt " and its size
	binary.LittleEndian.PutUint16(wav[20:22], 3)
	if _, err := Decode(wav); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_SkipsUnknownChunks(t *testing.T) {
	wav := EncodeWAV(&PCM{Data: []byte{9, 9}, SampleRate: RequiredSampleRate, Channels: 1})

	// splice a LIST chunk with an odd length (padded) between fmt and data
	list := []byte{'L', 'I', 'S', 'T', 3, 0, 0, 0, 'a', 'b', 'c', 0}
	spliced := append([]byte{}, wav[:36]...)
	spliced = append(spliced, list...)
	spliced = append(spliced, wav[36:]...)

	pcm, err := Decode(spliced)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if string(pcm.Data) != string([]byte{9, 9}) {
		t.Errorf("Data = %v, want [9 9]", pcm.Data)
	}
}

func TestDecode_TruncatedDataChunk(t *testing.T) {
	wav := EncodeWAV(&PCM{Data: []byte{1, 2, 3, 4}, SampleRate: RequiredSampleRate, Channels: 1})
	pcm, err := Decode(wav[:len(wav)-2])
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(pcm.Data) != 2 {
		t.Errorf("len(Data) = %d, want 2", len(pcm.Data))
	}
}

func TestDecode_ZeroLengthDataChunk(t *testing.T) {
	samples := make([]byte, 3200)
	for i := range samples {
		samples[i] = byte(i)
	}
	wav := EncodeWAV(&PCM{Data: samples, SampleRate: RequiredSampleRate, Channels: 1})
	binary.LittleEndian.PutUint32(wav[40:44], 0)

	pcm, err := Decode(wav)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(pcm.Data) != len(samples) {
		t.Errorf("len(Data) = %d, want %d", len(pcm.Data), len(samples))
	}
}
