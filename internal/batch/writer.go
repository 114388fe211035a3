package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"example.poc/lin-input-generator/internal/message"
	"example.poc/lin-input-generator/internal/util"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidConfig = fmt.Errorf("invalid batch config")
)

type Config struct {
	OutputFile  string `json:"output_file"`
	NumMessages int    `json:"num_messages"`
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("batch config cannot be nil")
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.OutputFile, validation.Required.Error("output file cannot be empty")),
		validation.Field(&c.NumMessages, validation.Min(0).Error("number of messages must be greater than or equal to 0")),
	)
}

type Result struct {
	RunID string `json:"run_id"`
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// Write creates or truncates cfg.OutputFile and writes cfg.NumMessages generated lines to it.
// An error leaves whatever was written so far in the file.
func Write(ctx context.Context, cfg Config, src message.Source) (res Result, err error) {
	if err = cfg.Validate(); err != nil {
		return res, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if src == nil {
		return res, fmt.Errorf("%w: random source cannot be nil", ErrInvalidConfig)
	}

	res = Result{
		RunID: uuid.NewString(),
		Path:  cfg.OutputFile,
	}
	logger := zerolog.Ctx(ctx).With().
		Str("run_id", res.RunID).
		Str("output_file", cfg.OutputFile).
		Logger()
	ctx = logger.WithContext(ctx)

	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return res, fmt.Errorf("failed to open output file %s: %w", cfg.OutputFile, err)
	}
	defer util.CloseWithErr(f, &err)

	res.Lines, err = WriteLines(ctx, f, cfg.NumMessages, src)
	if err != nil {
		return res, fmt.Errorf("failed to write messages to %s: %w", cfg.OutputFile, err)
	}

	logger.Info().Int("lines", res.Lines).Msg("wrote LIN input messages")
	return res, nil
}

// WriteLines writes n generated lines, each terminated by '\n', to w and returns how many were written.
// The context is checked before every line.
func WriteLines(ctx context.Context, w io.Writer, n int, src message.Source) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative message count %d", ErrInvalidConfig, n)
	}

	logger := zerolog.Ctx(ctx)
	bw := bufio.NewWriter(w)
	written := 0
	for i := range n {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		line := message.Line(src)
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return written, err
		}
		logger.Debug().Int("line", i+1).Str("packet", line).Msg("generated message")
		written++
	}

	if err := bw.Flush(); err != nil {
		return 0, err
	}

	return written, nil
}
