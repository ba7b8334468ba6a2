package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/christopherburke/radecparse/coords"
	"github.com/christopherburke/radecparse/targets"
)

func main() {
	cfg := loadConfig()

	if err := newRootCmd(cfg, os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(cfg Config, out io.Writer) *cobra.Command {
	var (
		file     string
		output   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "radecparse [flags] COORDINATE...",
		Short: "Convert right ascension and declination between notations",
		Long: `Reads a right ascension and declination pair in any of the usual notations
(12:30:00 +45:00:00, 12h30m00s +45d00m00s, 12 30 00 45 00 00, 187.5+45.0,
25.0d 36.0d, ...) and prints it in decimal degrees followed by every
supported notation. With --file, every row of a name,coordinates CSV is
converted instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 0 {
				return errors.New("requires at least one coordinate token or --file")
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			format, err := targets.ParseFormat(output)
			if err != nil {
				return err
			}

			var list []*targets.Target
			if file != "" {
				if list, err = targets.Parse(file); err != nil {
					return err
				}
			} else {
				list = []*targets.Target{{Slug: "input", Coordinates: strings.Join(args, " ")}}
			}

			return run(cmd.OutOrStdout(), format, list, file != "")
		},
	}

	// Declinations such as -45:00:00 must not be read as flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV target list with name,coordinates columns")
	cmd.Flags().StringVarP(&output, "output", "o", cfg.Output, "output format: text, yaml or csv")
	cmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level")
	cmd.SetOut(out)

	return cmd
}

func run(out io.Writer, format targets.Format, list []*targets.Target, batch bool) error {
	for _, t := range list {
		log.WithFields(log.Fields{"slug": t.Slug}).Debugf("Parsing |%s|", t.Coordinates)
	}

	counter := &targets.Counter{}
	results := targets.ResolveAll(list, counter)
	for _, r := range results {
		if !r.Accepted {
			logRejection(r)
		}
	}

	if err := targets.Write(out, format, results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if batch {
		log.WithFields(log.Fields{
			"accepted": counter.AcceptedCount,
			"rejected": counter.RejectedCount,
		}).Infof("Done")
	}
	return nil
}

// logRejection reports each diagnostic behind a rejected result.
func logRejection(r *targets.Result) {
	entry := log.WithFields(log.Fields{
		"slug":  r.Slug,
		"input": r.Input,
		"shape": r.Shape,
	})

	for _, err := range multierr.Errors(r.Err) {
		var e *coords.Error
		if !errors.As(err, &e) {
			entry.WithError(err).Warn("Rejected coordinate")
			continue
		}

		fields := log.Fields{
			"kind":  e.Kind.String(),
			"field": string(e.Field),
		}
		if e.Kind == coords.RangeViolation {
			fields["value"] = e.Value
			fields["min"] = e.Min
			fields["max"] = e.Max
		}
		entry.WithFields(fields).Warn(e.Error())
	}
}
