package widget

import (
	"bytes"

	tea "github.com/charmbracelet/bubbletea"

	"kbchat/logger"
)

// Run starts the full-screen widget and blocks until it exits. Logger
// output is routed into the log panel for the duration.
func Run(opts Options) error {
	app := NewApp(opts)
	program := tea.NewProgram(app, tea.WithAltScreen())

	logger.Intercept(&logWriter{program: program})
	defer logger.Restore()

	_, err := program.Run()
	return err
}

// logWriter implements io.Writer and forwards each line as a LogLineMsg.
type logWriter struct {
	program *tea.Program
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		w.program.Send(LogLineMsg{Line: string(line)})
	}
	return len(p), nil
}
