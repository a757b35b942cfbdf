package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogging installs the default logger: coloured tint output with source
// locations at debug level, JSON on stderr otherwise.
func setupLogging(level string) error {
	logLevel := slog.LevelInfo
	if level != "" {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid log level: %s", level)
		}
	}

	if logLevel == slog.LevelDebug {
		modulePrefix := getModulePrefix()
		replacer := func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = cleanSourcePath(source.File, modulePrefix)
				}
			}
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		}

		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:       slog.LevelDebug,
			TimeFormat:  time.TimeOnly,
			ReplaceAttr: replacer,
			AddSource:   true,
		})))
		slog.Debug("debug logging enabled")
		return nil
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	return nil
}

// getModulePrefix returns "/<last module path element>/" for trimming source paths
func getModulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		if wd, err := os.Getwd(); err == nil {
			return "/" + filepath.Base(wd) + "/"
		}
		return "/hunt-kitchen-sub000/"
	}

	parts := strings.Split(info.Main.Path, "/")
	return "/" + parts[len(parts)-1] + "/"
}

// cleanSourcePath keeps only the module-relative part of a source file path
func cleanSourcePath(filePath, modulePrefix string) string {
	if _, rel, ok := strings.Cut(filePath, modulePrefix); ok {
		return rel
	}

	if idx := strings.LastIndex(filePath, "/go/src/"); idx != -1 {
		return filePath[idx+len("/go/src/"):]
	}
	if idx := strings.LastIndex(filePath, "/src/"); idx != -1 {
		return filePath[idx+len("/src/"):]
	}
	return filePath
}
