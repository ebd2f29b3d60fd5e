package cli

import (
	"strings"

	"github.com/studiowebux/termfolio/internal/keybinds"
)

// keyContexts is the order the keys table lists contexts in
var keyContexts = []keybinds.Context{
	keybinds.ContextNavigation,
	keybinds.ContextGlobal,
	keybinds.ContextHelp,
}

// KeyRow is one action with every key bound to it in a context
type KeyRow struct {
	Context keybinds.Context
	Action  keybinds.Action
	Keys    []string
}

// KeyRows groups the registry by context and action, in display order
func KeyRows(r *keybinds.Registry) []KeyRow {
	var rows []KeyRow
	for _, ctx := range keyContexts {
		for _, g := range r.Grouped(ctx) {
			rows = append(rows, KeyRow{Context: ctx, Action: g.Action, Keys: g.Keys})
		}
	}
	return rows
}

// PrintKeys writes the key binding table
func (u *UI) PrintKeys(r *keybinds.Registry) error {
	keyRows := KeyRows(r)
	rows := make([][]string, 0, len(keyRows))
	for _, row := range keyRows {
		rows = append(rows, []string{
			string(row.Context),
			strings.Join(row.Keys, " "),
			string(row.Action),
			row.Action.Description(),
		})
	}
	return u.renderTable([]string{"Context", "Keys", "Action", "Description"}, rows)
}
