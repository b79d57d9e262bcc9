package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eleven-am/tick/pkg/client"
	"github.com/eleven-am/tick/pkg/view"
)

// apiList builds a view over the configured server.
func apiList() *view.List {
	return view.NewList(client.New(cfg.Client.BaseURL))
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos from the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		todos := apiList()
		if err := todos.Load(cmd.Context()); err != nil {
			return err
		}

		if todos.Len() == 0 {
			cmd.Println("no todos")
			return nil
		}
		for _, t := range todos.Todos() {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			cmd.Printf("[%s] %d  %s\n", mark, t.ID, t.Text)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		todos := apiList()
		created, err := todos.Add(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		cmd.Printf("added %d  %s\n", created.ID, created.Text)
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a todo's completed state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		todos := apiList()
		if err := todos.Load(cmd.Context()); err != nil {
			return err
		}

		updated, err := todos.Toggle(cmd.Context(), id)
		if err != nil {
			return err
		}

		state := "open"
		if updated.Completed {
			state = "done"
		}
		cmd.Printf("%d is now %s\n", updated.ID, state)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		todos := apiList()
		if err := todos.Remove(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("deleted %d\n", id)
		return nil
	},
}
