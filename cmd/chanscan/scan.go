package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-chanscan/internal/source"
	"github.com/cwbudde/algo-chanscan/internal/store"
)

func (a *app) newScanCmd() *cobra.Command {
	var printConfig bool

	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Detect channels in a WAV recording",
		Args: func(cmd *cobra.Command, args []string) error {
			if printConfig {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if printConfig {
				out, err := a.cfg.YAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			src, err := source.OpenWAV(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			a.logger.Debug("opened source",
				zap.String("path", args[0]),
				zap.Int("sample_rate", src.SampleRate()),
				zap.Int("channels", src.Channels()),
				zap.Int("bit_depth", src.BitDepth()),
			)

			return a.runAndReport(cmd, args[0], src)
		},
	}

	fs := cmd.Flags()
	addDetectorFlags(fs)
	fs.Int("sample-rate", 0, "expected input sample rate in Hz (0 accepts the file's rate)")
	fs.String("db", "", "record every detection cycle in this SQLite database")
	fs.BoolVar(&printConfig, "print-config", false, "print the effective configuration and exit")

	return cmd
}

// runAndReport runs the detector over src and writes the report.
func (a *app) runAndReport(cmd *cobra.Command, name string, src source.Source) (err error) {
	detCfg, err := a.cfg.Detector()
	if err != nil {
		return err
	}

	var rec *store.Store
	if a.cfg.Database != "" {
		rec, err = store.Open(a.cfg.Database)
		if err != nil {
			return fmt.Errorf("opening recorder: %w", err)
		}
		defer func() {
			if cErr := rec.Close(); cErr != nil && err == nil {
				err = cErr
			}
		}()
	}

	res, err := run(cmd.Context(), name, src, detCfg, a.logger, rec)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), a.cfg.Output, res)
}
