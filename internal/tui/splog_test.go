package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogConsole(t *testing.T) {
	t.Parallel()

	t.Run("writes bare messages", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf, false)

		splog.Info("Executing %d commands", 2)
		splog.Warn("skipping %s", "a.json")
		splog.Error("boom")
		splog.Tip("run ldot load")

		require.Equal(t, "Executing 2 commands\n⚠️  skipping a.json\n❌ boom\n💡 run ldot load\n", buf.String())
	})

	t.Run("debug is gated", func(t *testing.T) {
		t.Parallel()
		var quietBuf, loudBuf bytes.Buffer
		NewSplogWithWriter(&quietBuf, false).Debug("hidden")
		NewSplogWithWriter(&loudBuf, true).Debug("shown")

		require.Empty(t, quietBuf.String())
		require.Equal(t, "shown\n", loudBuf.String())
	})

	t.Run("percent signs survive without args", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		NewSplogWithWriter(&buf, false).Info("100% done")
		require.Equal(t, "100% done\n", buf.String())
	})

	t.Run("quiet suppresses output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf, false)
		splog.SetQuiet(true)

		splog.Info("hidden")
		splog.Newline()
		require.True(t, splog.IsQuiet())
		require.Empty(t, buf.String())

		splog.SetQuiet(false)
		splog.Info("shown")
		require.Equal(t, "shown\n", buf.String())
	})
}

func TestSplogFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "ldot.log")
	var console bytes.Buffer

	splog, err := NewSplogWithOptions(LogOptions{
		Writer:     &console,
		FilePath:   logPath,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)

	scoped := splog.With("run_id", "abc-123")
	scoped.Info("Executing 1 commands")
	scoped.Debug("tokenized")
	require.NoError(t, splog.Close())

	require.Equal(t, "Executing 1 commands\n", console.String())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "Executing 1 commands")
	require.Contains(t, string(content), "run_id=abc-123")
	// the file always records debug messages
	require.Contains(t, string(content), "tokenized")
}
