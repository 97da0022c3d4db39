package cli

import (
	"fmt"
	"strconv"
	"strings"

	"todo-cli/internal/model"
	"todo-cli/internal/mutate"
	"todo-cli/internal/store"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <file-path>",
		Short: "Print both lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.Open(args[0])
			lists, _, err := loadLists(cmd.Context(), st)
			if err != nil {
				return writeErr(cmd, err)
			}
			todos, dones := []model.Item{}, []model.Item{}
			for _, it := range lists.Items() {
				if it.Status == model.StatusDone {
					dones = append(dones, it)
				} else {
					todos = append(todos, it)
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"todos": todos, "dones": dones},
				"meta": map[string]any{"path": st.Path()},
			})
		},
	}
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file-path> <title...>",
		Short: "Append a TODO item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args[1:], " ")
			if strings.TrimSpace(title) == "" || strings.ContainsAny(title, "\r\n") {
				return writeErr(cmd, fmt.Errorf("invalid title: %q (expected one non-empty line)", title))
			}

			ctx := cmd.Context()
			st := store.Open(args[0])
			lists, _, err := loadLists(ctx, st)
			if err != nil {
				return writeErr(cmd, err)
			}
			cur := len(lists.Todos)
			mutate.Insert(&lists.Todos, &cur, title)
			if err := st.Save(ctx, lists); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": model.Item{Status: model.StatusTodo, Index: cur, Title: title},
			})
		},
	}
}

// newTransferCmd builds "done" (TODO to DONE) or "undo" (DONE to TODO).
func newTransferCmd(app *App, name string) *cobra.Command {
	from, short := model.StatusTodo, "Mark a TODO item as done"
	if name == "undo" {
		from, short = model.StatusDone, "Move a DONE item back to TODO"
	}
	to := from.Toggle()

	return &cobra.Command{
		Use:   name + " <file-path> <index>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid index: %q", args[1]))
			}

			ctx := cmd.Context()
			st := store.Open(args[0])
			lists, _, err := loadLists(ctx, st)
			if err != nil {
				return writeErr(cmd, err)
			}
			src := lists.Of(from)
			if idx < 0 || idx >= len(*src) {
				return writeErr(cmd, errNotFound(from.String()+" item", args[1]))
			}
			title := (*src)[idx]
			dst := lists.Of(to)
			mutate.Transfer(dst, src, &idx)
			if err := st.Save(ctx, lists); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": model.Item{Status: to, Index: len(*dst) - 1, Title: title},
			})
		},
	}
}
