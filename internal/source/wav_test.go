package source

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeWAV(t *testing.T, rate, depth, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	enc := wav.NewEncoder(f, rate, depth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: depth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("encoder Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file Close() error = %v", err)
	}
	return path
}

func readAll(t *testing.T, src Source, chunk int) []complex128 {
	t.Helper()
	var out []complex128
	buf := make([]complex128, chunk)
	for {
		n, err := src.Read(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}
}

func TestWAVMono16(t *testing.T) {
	path := writeWAV(t, 8000, 16, 1, []int{0, 16384, -16384, -32768, 32767})

	w, err := OpenWAV(path)
	if err != nil {
		t.Fatalf("OpenWAV() error = %v", err)
	}
	defer w.Close()

	if w.SampleRate() != 8000 || w.Channels() != 1 || w.BitDepth() != 16 {
		t.Fatalf("format = %d Hz %d ch %d bit", w.SampleRate(), w.Channels(), w.BitDepth())
	}

	got := readAll(t, w, 2)
	want := []complex128{0, 0.5, -0.5, -1, complex(32767.0/32768, 0)}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWAVStereoIQ(t *testing.T) {
	path := writeWAV(t, 48000, 16, 2, []int{16384, -16384, 0, 8192})

	w, err := OpenWAV(path)
	if err != nil {
		t.Fatalf("OpenWAV() error = %v", err)
	}
	defer w.Close()

	got := readAll(t, w, 16)
	want := []complex128{complex(0.5, -0.5), complex(0, 0.25)}
	if len(got) != len(want) {
		t.Fatalf("read %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWAVReadAfterEOF(t *testing.T) {
	path := writeWAV(t, 8000, 16, 1, []int{1, 2, 3})
	w, err := OpenWAV(path)
	if err != nil {
		t.Fatalf("OpenWAV() error = %v", err)
	}
	defer w.Close()

	buf := make([]complex128, 8)
	if n, err := w.Read(buf); n != 3 || err != nil {
		t.Fatalf("first Read() = %d, %v", n, err)
	}
	if n, err := w.Read(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("second Read() = %d, %v, want 0, EOF", n, err)
	}
	if n, err := w.Read(nil); n != 0 || err != nil {
		t.Fatalf("Read(nil) = %d, %v", n, err)
	}
}

func TestNewWAVRejectsGarbage(t *testing.T) {
	_, err := NewWAV(strings.NewReader("definitely not a riff file"))
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("NewWAV() error = %v, want ErrInvalidFormat", err)
	}
}

func TestOpenWAVMissing(t *testing.T) {
	if _, err := OpenWAV(filepath.Join(t.TempDir(), "nope.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSamples(t *testing.T) {
	data := []complex128{1, 2, 3, 4, 5}
	s := FromSamples(1000, data)
	if s.SampleRate() != 1000 || s.Len() != 5 {
		t.Fatalf("Samples = %d Hz len %d", s.SampleRate(), s.Len())
	}
	got := readAll(t, s, 2)
	if len(got) != 5 || got[4] != 5 {
		t.Fatalf("readAll() = %v", got)
	}
	if _, err := s.Read(make([]complex128, 1)); !errors.Is(err, io.EOF) {
		t.Fatalf("Read after end error = %v, want EOF", err)
	}
}
