package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-chanscan/dsp/chandetect"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chanscan.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	cfg := chandetect.DefaultConfig()
	cfg.Decimation = 4
	id, err := s.CreateSession(ctx, "capture.wav", cfg)
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	sess, err := s.Session(ctx, id)
	if err != nil {
		t.Fatalf("Session() error = %v", err)
	}
	if sess.ID != id || sess.Source != "capture.wav" {
		t.Fatalf("Session() = %+v", sess)
	}
	if sess.Config != cfg {
		t.Fatalf("Session().Config = %+v, want %+v", sess.Config, cfg)
	}
	if sess.StartTime.IsZero() {
		t.Fatal("StartTime not set")
	}

	if _, err := s.Session(ctx, id+100); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestRecordCycle(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	id, err := s.CreateSession(ctx, "demo", chandetect.DefaultConfig())
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	cycles := [][]chandetect.Channel{
		{{Frequency: 1007.8125, Bandwidth: 15.625}},
		{},
		{{Frequency: 507.8125, Bandwidth: 15.625}, {Frequency: 2007.8125, Bandwidth: 31.25}},
	}
	for i, chs := range cycles {
		if err := s.RecordCycle(ctx, id, uint64(i+1), chs); err != nil {
			t.Fatalf("RecordCycle(%d) error = %v", i+1, err)
		}
	}

	got, err := s.Channels(ctx, id)
	if err != nil {
		t.Fatalf("Channels() error = %v", err)
	}
	want := []Record{
		{Cycle: 1, Channel: chandetect.Channel{Frequency: 1007.8125, Bandwidth: 15.625}},
		{Cycle: 3, Channel: chandetect.Channel{Frequency: 507.8125, Bandwidth: 15.625}},
		{Cycle: 3, Channel: chandetect.Channel{Frequency: 2007.8125, Bandwidth: 31.25}},
	}
	if len(got) != len(want) {
		t.Fatalf("Channels() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	n, err := s.Cycles(ctx, id)
	if err != nil {
		t.Fatalf("Cycles() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("Cycles() = %d, want 2", n)
	}

	other, err := s.Channels(ctx, id+1)
	if err != nil {
		t.Fatalf("Channels(other) error = %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("Channels(other) = %+v, want none", other)
	}
}

func TestClose(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if _, err := s.CreateSession(context.Background(), "x", chandetect.DefaultConfig()); !errors.Is(err, ErrClosed) {
		t.Fatalf("CreateSession after Close error = %v, want ErrClosed", err)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "x.db")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
