package logger

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
)

// ColorizeLevel colors the level of a record by its severity.
func ColorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	paint := color.WhiteString
	switch {
	case lvl >= slog.LevelError:
		paint = color.RedString
	case lvl >= slog.LevelWarn:
		paint = color.YellowString
	case lvl >= slog.LevelInfo:
		paint = color.BlueString
	}

	return slog.String(a.Key, paint("%s", lvl.String()))
}

// DeleteLevelAttr drops the level of a record.
func DeleteLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		return slog.Attr{}
	}
	return a
}

// DeleteMessageAttr drops the message of a record.
func DeleteMessageAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.MessageKey {
		return slog.Attr{}
	}
	return a
}

// TruncSourceAttr shortens the source of a record to its file's directory, file name and line.
func TruncSourceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.SourceKey {
		return a
	}

	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}

	dir, file := filepath.Split(src.File)
	file = filepath.Join(filepath.Base(dir), file)
	return slog.String(a.Key, fmt.Sprintf("%s:%d", file, src.Line))
}
