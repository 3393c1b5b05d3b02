package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"habitcore/internal/engine"
)

// RunBoard runs the interactive board until the user quits. The level-up
// notifier's timers are cancelled when the board exits.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer, logger *zap.Logger) error {
	var p *tea.Program
	notifier := engine.NewNotifier(engine.WithOnChange(func(n engine.Notification) {
		if p != nil {
			p.Send(notificationMsg(n))
		}
	}))
	defer notifier.Close()

	m := newBoardModel(ctx, svc, notifier, logger)
	p = tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
