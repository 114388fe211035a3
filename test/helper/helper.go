package helper

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"example.poc/lin-input-generator/test/mocks"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var HexTokenPattern = regexp.MustCompile(`^[0-9A-F]{2}$`)

type TestLogger struct {
	buf *bytes.Buffer
}

func NewTestLogger() *TestLogger {
	return &TestLogger{
		buf: new(bytes.Buffer),
	}
}

func (tl *TestLogger) ZeroLogger() *zerolog.Logger {
	lg := log.Logger.Output(tl.buf)
	return &lg
}

func (tl *TestLogger) GetLogLines() (lines []string) {
	scanner := bufio.NewScanner(tl.buf)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return
}

func (tl *TestLogger) Flush() {
	_, _ = io.ReadAll(tl.buf)
}

type Helper struct {
	t *testing.T
}

func NewHelper(t *testing.T) *Helper {
	return &Helper{t: t}
}

// TempOutputFile returns a path inside a per-test temporary directory. The file is not created.
func (h *Helper) TempOutputFile(name string) string {
	return filepath.Join(h.t.TempDir(), name)
}

func (h *Helper) MustReadFile(path string) string {
	bs, err := os.ReadFile(path)
	if err != nil {
		h.t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(bs)
}

// MustReadLines splits a newline terminated file into its lines, without the terminators.
func (h *Helper) MustReadLines(path string) []string {
	content := h.MustReadFile(path)
	if content == "" {
		return nil
	}
	if !strings.HasSuffix(content, "\n") {
		h.t.Fatalf("file %s does not end with a newline", path)
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// ScriptRecord makes src yield identifier, then len(payload) and then the payload bytes.
func (h *Helper) ScriptRecord(src *mocks.MockSource, identifier int, payload ...int) {
	if len(payload) < 1 || len(payload) > 8 {
		h.t.Fatalf("payload must hold between 1 and 8 bytes, got %d", len(payload))
	}
	src.EXPECT().IntN(256).Return(identifier).Once()
	src.EXPECT().IntN(8).Return(len(payload) - 1).Once()
	for _, b := range payload {
		src.EXPECT().IntN(256).Return(b).Once()
	}
}
