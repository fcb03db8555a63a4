package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/genricoloni/vudia/internal/library"
	"go.uber.org/zap"
)

// Run shows the terminal UI until the user quits or ctx is cancelled.
// All playback goes through player; the UI only renders its snapshots.
func Run(ctx context.Context, logger *zap.Logger, player domain.Player, store *catalog.Store, lib *library.Library) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newModel(logger, player, store, lib, player.Watch(watchCtx, 1))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}
