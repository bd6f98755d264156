package main

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// fileChangedMsg reports that the watched file was written.
type fileChangedMsg struct{}

// rowsLoadedMsg carries freshly loaded file content.
type rowsLoadedMsg struct {
	rows []string
	raw  string
	err  error
}

// loadFile reads the file and splits it into display rows.
func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return rowsLoadedMsg{err: err}
		}
		raw := string(data)
		var rows []string
		for _, line := range strings.Split(raw, "\n") {
			if strings.TrimSpace(line) != "" {
				rows = append(rows, line)
			}
		}
		return rowsLoadedMsg{rows: rows, raw: raw}
	}
}

// watchFile starts an fsnotify watcher on the file's directory and returns
// the watcher plus a command that blocks for the next relevant event.
// Watching the directory instead of the file survives editors that replace
// the file on save.
func watchFile(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// nextFileEvent waits for the next write or create event on the path.
func nextFileEvent(w *fsnotify.Watcher, path string) tea.Cmd {
	abs, _ := filepath.Abs(path)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				evAbs, _ := filepath.Abs(ev.Name)
				if evAbs != abs {
					continue
				}
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					return fileChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}
