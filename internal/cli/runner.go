package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/state"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// -------------- argument checks ----------------

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: todomvc %s", usage)
		}
		return nil
	}
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: todomvc %s", usage)
		}
		return nil
	}
}

// entryIndex turns a 1-based user index into a position in st.Entries.
func entryIndex(st *state.State, verb, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usagef("%s: not a number: %s", verb, arg)
	}
	if n < 1 || n > len(st.Entries) {
		return 0, usagef("index out of range: have %d, got %d (run `todomvc ls` to see valid indexes)", len(st.Entries), n)
	}
	return n - 1, nil
}

// -------------- subcommands ----------------

func newAddCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description...>",
		Short: "Add a new todo (description can be multiple words)",
		Args:  minArgs(1, "add <description...>"),
		RunE: f.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			a.mgr.Dispatch(state.Update{Value: strings.Join(args, " ")})
			if strings.TrimSpace(a.mgr.State().Value) == "" {
				return usagef("add: empty description")
			}
			a.mgr.Dispatch(state.Add{})
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d", len(a.mgr.State().Entries)))
			return nil
		}),
	}
}

func newListCmd(f *flags) *cobra.Command {
	var (
		filter string
		group  bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    exactArgs(0, "ls [--filter all|active|completed] [--group]"),
		RunE: f.withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			flt, err := model.ParseFilter(filter)
			if err != nil {
				return usagef("ls: %v", err)
			}
			a.mgr.Dispatch(state.SetFilter{Filter: flt})
			lines := ui.ListLines(a.mgr.State(), group)
			lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: add with `todomvc add \"Buy milk\"`"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "all, active or completed")
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group output by active/completed")
	return cmd
}

func newToggleCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <index>",
		Aliases: []string{"done"},
		Short:   "Toggle completion of the todo at a 1-based index",
		Args:    exactArgs(1, "toggle <index>"),
		RunE: f.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			idx, err := entryIndex(a.mgr.State(), "toggle", args[0])
			if err != nil {
				return err
			}
			a.mgr.Dispatch(state.Toggle{Index: idx})
			ui.OK(cmd.OutOrStdout(), "toggled")
			return nil
		}),
	}
}

func newToggleAllCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-all",
		Short: "Complete every todo, or reopen them all if all are complete",
		Args:  exactArgs(0, "toggle-all"),
		RunE: f.withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			if len(a.mgr.State().Entries) == 0 {
				ui.Hint(cmd.OutOrStdout(), "nothing to toggle")
				return nil
			}
			a.mgr.Dispatch(state.ToggleAll{})
			if a.mgr.State().IsAllCompleted() {
				ui.OK(cmd.OutOrStdout(), "all completed")
			} else {
				ui.OK(cmd.OutOrStdout(), "all active")
			}
			return nil
		}),
	}
}

func newEditCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <description...>",
		Short: "Change a todo's description; a blank description removes it",
		Args:  minArgs(1, "edit <index> <description...>"),
		RunE: f.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			idx, err := entryIndex(a.mgr.State(), "edit", args[0])
			if err != nil {
				return err
			}
			a.mgr.Dispatch(state.ToggleEdit{Index: idx})
			a.mgr.Dispatch(state.UpdateEdit{Value: strings.Join(args[1:], " ")})
			removed := strings.TrimSpace(a.mgr.State().EditValue) == ""
			a.mgr.Dispatch(state.Edit{Index: idx})
			if removed {
				ui.OK(cmd.OutOrStdout(), "removed")
			} else {
				ui.OK(cmd.OutOrStdout(), "edited")
			}
			return nil
		}),
	}
}

func newRemoveCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove the todo at a 1-based index",
		Args:  exactArgs(1, "rm <index>"),
		RunE: f.withApp(func(cmd *cobra.Command, args []string, a *app) error {
			idx, err := entryIndex(a.mgr.State(), "rm", args[0])
			if err != nil {
				return err
			}
			a.mgr.Dispatch(state.Remove{Index: idx})
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		}),
	}
}

func newClearCompletedCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove every completed todo",
		Args:  exactArgs(0, "clear-completed"),
		RunE: f.withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			n := a.mgr.State().TotalCompleted()
			a.mgr.Dispatch(state.ClearCompleted{})
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("cleared %d", n))
			return nil
		}),
	}
}

func newExportCmd(f *flags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the todo list as JSON or YAML",
		Args:  exactArgs(0, "export [--format json|yaml]"),
		RunE: f.withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			entries := a.mgr.State().Entries
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(entries); err != nil {
					return fmt.Errorf("json encode: %w", err)
				}
			case "yaml", "yml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(entries); err != nil {
					return fmt.Errorf("yaml encode: %w", err)
				}
				if err := enc.Close(); err != nil {
					return fmt.Errorf("yaml encode: %w", err)
				}
			default:
				return usagef("export: unknown format %q", format)
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&format, "format", "json", "json or yaml")
	return cmd
}
