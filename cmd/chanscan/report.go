package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-chanscan/dsp/chandetect"
)

// report is the machine-readable form of a result.
type report struct {
	Source     string               `json:"source" yaml:"source"`
	Mode       string               `json:"mode" yaml:"mode"`
	SampleRate int                  `json:"sample_rate" yaml:"sample_rate"`
	WindowSize int                  `json:"window_size" yaml:"window_size"`
	Alpha      float64              `json:"alpha" yaml:"alpha"`
	Decimation int                  `json:"decimation" yaml:"decimation"`
	BinWidth   float64              `json:"bin_width" yaml:"bin_width"`
	Samples    uint64               `json:"samples" yaml:"samples"`
	Windows    uint64               `json:"windows" yaml:"windows"`
	Cycles     uint64               `json:"cycles" yaml:"cycles"`
	SessionID  int64                `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Channels   []chandetect.Channel `json:"channels" yaml:"channels"`
	Spectrum   spectrumReport       `json:"spectrum" yaml:"spectrum"`
}

type spectrumReport struct {
	PeakFrequency float64 `json:"peak_frequency" yaml:"peak_frequency"`
	Floor         float64 `json:"floor" yaml:"floor"`
	Peak          float64 `json:"peak" yaml:"peak"`
	DynamicRange  float64 `json:"dynamic_range_db" yaml:"dynamic_range_db"`
	Centroid      float64 `json:"centroid" yaml:"centroid"`
	Flatness      float64 `json:"flatness" yaml:"flatness"`
}

func newReport(r *result) report {
	channels := r.Channels
	if channels == nil {
		channels = []chandetect.Channel{}
	}
	dr := r.Spectrum.DynamicRange
	if math.IsInf(dr, 0) {
		dr = 0
	}
	return report{
		Source:     r.Source,
		Mode:       r.Config.Mode.String(),
		SampleRate: r.Config.SampleRate,
		WindowSize: r.Config.WindowSize,
		Alpha:      r.Config.Alpha,
		Decimation: r.Config.Decimation,
		BinWidth:   r.BinWidth,
		Samples:    r.Samples,
		Windows:    r.Windows,
		Cycles:     r.Cycles,
		SessionID:  r.SessionID,
		Channels:   channels,
		Spectrum: spectrumReport{
			PeakFrequency: r.Spectrum.PeakFrequency,
			Floor:         r.Spectrum.Floor,
			Peak:          r.Spectrum.Peak,
			DynamicRange:  dr,
			Centroid:      r.Spectrum.Centroid,
			Flatness:      r.Spectrum.Flatness,
		},
	}
}

// writeReport renders r in the given output format.
func writeReport(w io.Writer, format string, r *result) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(r))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(r)); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		return writeTable(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeTable(w io.Writer, r *result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Source:\t%s\n", r.Source)
	fmt.Fprintf(tw, "Mode:\t%s\n", r.Config.Mode)
	fmt.Fprintf(tw, "Sample rate:\t%s\n", formatHz(float64(r.Config.SampleRate)))
	fmt.Fprintf(tw, "Window:\t%d bins, %s per bin\n", r.Config.WindowSize, formatHz(r.BinWidth))
	if r.Config.Decimation > 1 {
		fmt.Fprintf(tw, "Decimation:\t%d (antialias cutoff %s)\n", r.Config.Decimation, formatHz(r.Cutoff))
	}
	fmt.Fprintf(tw, "Processed:\t%s samples, %d windows, %d cycles\n", humanize.Comma(int64(r.Samples)), r.Windows, r.Cycles)
	if r.SessionID != 0 {
		fmt.Fprintf(tw, "Session:\t%d\n", r.SessionID)
	}
	fmt.Fprintln(tw)

	if len(r.Channels) == 0 {
		fmt.Fprintln(tw, "No channels detected.")
	} else {
		fmt.Fprintln(tw, "#\tCENTER\tBANDWIDTH\tLOW\tHIGH")
		for i, ch := range r.Channels {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1,
				formatHz(ch.Frequency), formatHz(ch.Bandwidth), formatHz(ch.Low()), formatHz(ch.High()))
		}
	}
	fmt.Fprintln(tw)

	s := r.Spectrum
	fmt.Fprintf(tw, "Spectrum peak:\t%s (%.3g)\n", formatHz(s.PeakFrequency), s.Peak)
	fmt.Fprintf(tw, "Spectrum floor:\t%.3g\n", s.Floor)
	fmt.Fprintf(tw, "Dynamic range:\t%.1f dB\n", s.DynamicRange)
	fmt.Fprintf(tw, "Centroid:\t%s\n", formatHz(s.Centroid))
	fmt.Fprintf(tw, "Flatness:\t%.3f\n", s.Flatness)

	return tw.Flush()
}

// formatHz renders a frequency with an SI prefix, e.g. "1.008 kHz".
func formatHz(hz float64) string {
	v, prefix := humanize.ComputeSI(hz)
	return fmt.Sprintf("%.3f %sHz", v, prefix)
}
