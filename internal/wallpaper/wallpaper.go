// Package wallpaper sets the rendered now-playing backdrop as the desktop background.
package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

// pathPlaceholder is replaced by the image path in command arguments
const pathPlaceholder = "{path}"

// ErrNoSetter is returned when no supported background setter is installed
var ErrNoSetter = errors.New("no supported wallpaper command found")

// command is a desktop background setter invoked as an external program
type command struct {
	name   string
	binary string
	args   []string
	// preferred reports whether the session looks like this setter's desktop
	preferred func(getenv func(string) string) bool
}

// Setter runs the background command detected for the current session
type Setter struct {
	logger *zap.Logger
	cmd    command
	run    func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// New creates a setter. It is disabled unless the configuration asks for it
// and a supported command is installed.
func New(logger *zap.Logger, cfg domain.Config) *Setter {
	s := &Setter{logger: logger, run: runCommand}
	if !cfg.WallpaperEnabled() {
		return s
	}

	cmd, err := detect(logger, platformCommands, os.Getenv, exec.LookPath)
	if err != nil {
		logger.Warn("Wallpaper updates disabled", zap.Error(err))
		return s
	}

	logger.Info("Wallpaper setter detected",
		zap.String("name", cmd.name),
		zap.String("binary", cmd.binary))
	s.cmd = cmd
	return s
}

// Enabled reports whether SetWallpaper will run a command
func (s *Setter) Enabled() bool {
	return s.cmd.binary != ""
}

// SetWallpaper sets the desktop background to imagePath
func (s *Setter) SetWallpaper(ctx context.Context, imagePath string) error {
	if !s.Enabled() {
		return ErrNoSetter
	}

	args := make([]string, len(s.cmd.args))
	for i, arg := range s.cmd.args {
		args[i] = strings.ReplaceAll(arg, pathPlaceholder, imagePath)
	}

	s.logger.Debug("Setting wallpaper",
		zap.String("command", s.cmd.binary),
		zap.Strings("args", args))

	if output, err := s.run(ctx, s.cmd.binary, args...); err != nil {
		return fmt.Errorf("failed to set wallpaper with %s: %w (output: %s)",
			s.cmd.name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// detect picks the first installed command preferred by the session,
// falling back to the first installed command in list order
func detect(logger *zap.Logger, cmds []command, getenv func(string) string, lookPath func(string) (string, error)) (command, error) {
	installed := func(c command) bool {
		_, err := lookPath(c.binary)
		return err == nil
	}

	for _, c := range cmds {
		if c.preferred != nil && c.preferred(getenv) && installed(c) {
			return c, nil
		}
	}
	for _, c := range cmds {
		if installed(c) {
			logger.Debug("Using fallback wallpaper command", zap.String("name", c.name))
			return c, nil
		}
	}
	return command{}, ErrNoSetter
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
