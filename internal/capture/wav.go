package capture

import (
	"bytes"
	"encoding/binary"
)

// Recording parameters for the captured clip. The analysis services accept
// 16-bit PCM WAV; 44.1kHz mono keeps uploads small without starving the
// prosody detector.
const (
	SampleRate    = 44100
	BitsPerSample = 16
	Channels      = 1
)

// EncodeWAV frames raw little-endian 16-bit PCM data as a complete
// RIFF/WAVE file.
func EncodeWAV(pcm []byte) []byte {
	var buf bytes.Buffer

	byteRate := SampleRate * Channels * BitsPerSample / 8
	blockAlign := Channels * BitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(Channels))
	binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
