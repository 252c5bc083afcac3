// Package cli wires configuration, storage and the API client into the
// cobra command tree. The bare command starts the terminal UI; subcommands
// cover the same operations for scripting.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Abhishek2312Singh/complain-management-system/internal/api"
	"github.com/Abhishek2312Singh/complain-management-system/internal/config"
	"github.com/Abhishek2312Singh/complain-management-system/internal/session"
	"github.com/Abhishek2312Singh/complain-management-system/internal/store"
	"github.com/Abhishek2312Singh/complain-management-system/internal/tui"
)

// app carries the wired dependencies shared by every command.
type app struct {
	cfg    *config.Config
	store  *store.Store
	sess   *session.Session
	client *api.Client
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.StateDir)
	if err != nil {
		return nil, err
	}
	sess := session.New(st)
	client := api.New(cfg.BaseURL, sess)
	return &app{cfg: cfg, store: st, sess: sess, client: client}, nil
}

// Execute runs the command tree.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "complaindesk",
		Short: "Complaint management client",
		Long: "complaindesk is a terminal client for the complaint management backend:\n" +
			"register and track complaints, and administer them once signed in.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			// While the UI owns the terminal only errors may reach stderr.
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelError,
			})))
			model := tui.New(a.client, a.store, a.sess, a.cfg.DetailPolicy)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")

	root.AddCommand(
		newLoginCmd(&configPath),
		newLogoutCmd(&configPath),
		newSubmitCmd(&configPath),
		newLookupCmd(&configPath),
		newListCmd(&configPath),
		newAssignCmd(&configPath),
		newExportCmd(&configPath),
	)
	return root
}
