package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bulktext/config"
	"bulktext/message"
	"bulktext/recipients"
	"bulktext/send"
)

var cfg config.AppConfig

var rootCmd = &cobra.Command{
	Use:   "bulktext",
	Short: "Send bulk texts via Apple Messages on macOS",
	Long: `Send bulk texts via Apple Messages on macOS, with optional personalization.
A .csv path containing recipients and a .txt path containing the message text
are required. Optionally, the service (e.g., iMessage or SMS) and a
placeholder for recipient names (replaced with a name every time it appears
in the message) can also be provided.

The CSV file of recipients should have no header and either one or two
columns. If --placeholder (or -p) is provided, the first should contain
recipient names and the second should contain phone numbers. For example:

    Baron von Murderpillow,+1 (234) 567-8910
    Rt. Hon. John A. Stymers,314159265

If --placeholder (or -p) is not provided, the CSV should have only a single
column containing phone numbers, like so:

    +1 (234) 567-8910
    314159265`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cfg)
	},
}

func init() {
	defaults := config.FromEnv()

	rootCmd.Flags().StringVarP(&cfg.RecipientsPath, "recipients", "r", "",
		"Path to .csv file with recipients' numbers and (if applicable) names")
	rootCmd.Flags().StringVarP(&cfg.MessagePath, "message", "m", "",
		"Path to .txt file with the message to send")
	rootCmd.Flags().StringVarP(&cfg.Service, "service", "s", defaults.Service,
		"Service to use to send messages (e.g., iMessage or SMS)")
	rootCmd.Flags().StringVarP(&cfg.Placeholder, "placeholder", "p", defaults.Placeholder,
		"(Optional) placeholder to be replaced with recipient name (e.g., {name})")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"Enable debug logging")

	_ = rootCmd.MarkFlagRequired("recipients")
	_ = rootCmd.MarkFlagRequired("message")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log := newLogger(false)
		log.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.AppConfig) error {
	log := newLogger(cfg.Verbose)

	if err := config.ValidateFilePath(cfg.RecipientsPath, "csv"); err != nil {
		return err
	}
	if err := config.ValidateFilePath(cfg.MessagePath, "txt"); err != nil {
		return err
	}

	hasNames := cfg.Placeholder != ""

	recs, err := recipients.Read(cfg.RecipientsPath, hasNames)
	if err != nil {
		return err
	}

	valid := make([]recipients.Recipient, 0, len(recs))
	for _, rec := range recs {
		number, err := recipients.NormalizeNumber(rec.Number)
		if err != nil {
			log.Warn().Str("recipient", rec.Label()).Err(err).
				Msg("Skipping recipient due to invalid number")
			continue
		}
		rec.Number = number
		valid = append(valid, rec)
	}
	log.Debug().Int("total", len(recs)).Int("valid", len(valid)).Msg("Recipients loaded")

	tmpl, err := message.Load(cfg.MessagePath, cfg.Placeholder)
	if err != nil {
		return err
	}

	dispatcher := send.NewDispatcher(send.NewMessagesSender(), cfg.Service, log)
	return dispatcher.Run(ctx, valid, tmpl)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
