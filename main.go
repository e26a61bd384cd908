package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SamirAliWebDev/zenith/internal/model"
	"github.com/SamirAliWebDev/zenith/internal/reminder"
	"github.com/SamirAliWebDev/zenith/internal/storage"
	"github.com/SamirAliWebDev/zenith/internal/store"
	"github.com/SamirAliWebDev/zenith/internal/ui"
)

func main() {
	local, err := storage.Open("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer local.Close()

	tasks := store.NewTaskStore(local)

	p := tea.NewProgram(ui.NewModel(tasks, local), tea.WithAltScreen())

	// Reminders fire through the program loop so the UI stays
	// single-threaded. The store itself knows nothing about scheduling:
	// every mutation triggers a full cancel-and-rearm from the snapshot.
	scheduler := reminder.New(func(t model.Task) {
		p.Send(ui.ReminderMsg{Task: t})
	})
	defer scheduler.Stop()
	tasks.Subscribe(func() {
		scheduler.Reschedule(tasks.All())
	})
	scheduler.Reschedule(tasks.All())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
