// Command mailscrub strips and rewrites identifying fields in email headers.
// It reads a message (or a bare header block) from a file or standard input,
// sanitizes the header, and writes the result to a file or standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mailscrub/mailscrub/header/field"
	"github.com/mailscrub/mailscrub/message"
	"github.com/mailscrub/mailscrub/scrub"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the mailscrub command.
func NewRootCmd() *cobra.Command {
	var (
		cfg      scrub.Config
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "mailscrub [input [output]]",
		Short: "Strip identifying fields from email headers",
		Long: `Sanitize an email message by removing or rewriting header fields that
identify the sender's software and network location.

Received, X-Mailer, User-Agent and X-Originating-IP fields are removed by
default. Message-ID, Date, From, To and Reply-To are rewritten with
deterministic placeholders. Everything else passes through byte-for-byte.

Reads from standard input and writes to standard output when no file
arguments are given.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd, args, cfg, log)
		},
	}

	cmd.Flags().BoolVar(&cfg.KeepXMailer, "keep-x-mailer", false,
		"keep the X-Mailer field instead of removing it")
	cmd.Flags().BoolVar(&cfg.ObfuscateReceived, "obfuscate-received", false,
		"redact Received fields instead of removing them")
	cmd.Flags().StringVar(&logLevel, "log-level", "info",
		"logging verbosity (debug, info, warning, error)")

	return cmd
}

// buildLogger constructs a console logger on stderr at the requested level.
func buildLogger(level string) (*zap.Logger, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}

	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.ErrorOutputPaths = []string{"stderr"}
	return logCfg.Build()
}

// run executes one scrub pass: read, sanitize, write.
func run(cmd *cobra.Command, args []string, cfg scrub.Config, log *zap.Logger) error {
	in := cmd.InOrStdin()
	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot read input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	msg, err := message.Parse(in)
	if err != nil {
		var badStartErr *field.BadStartError
		if !errors.As(err, &badStartErr) {
			return fmt.Errorf("cannot parse message: %w", err)
		}
		log.Warn("message starts with text that is not a header field, preserving it",
			zap.Int("bytes", len(badStartErr.BadStart)))
	}

	res := scrub.New(cfg, log).Scrub(msg.Header)
	log.Info("header sanitized",
		zap.Int("kept", res.Kept),
		zap.Int("removed", res.Removed),
		zap.Int("obfuscated", res.Obfuscated))

	var out io.Writer = cmd.OutOrStdout()
	if len(args) == 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("cannot write output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if _, err := msg.WriteTo(out); err != nil {
		return fmt.Errorf("cannot write message: %w", err)
	}
	return nil
}
