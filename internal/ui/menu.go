package ui

import (
	"strings"
)

// menuItem is one selectable row. ID is a stable tag; Label is rendered;
// Detail is an optional muted suffix.
type menuItem struct {
	ID     string
	Label  string
	Detail string
}

// menu is a single-select cursor list.
type menu struct {
	items  []menuItem
	cursor int
}

func newMenu(items []menuItem) menu {
	return menu{items: items}
}

func (m *menu) setItems(items []menuItem) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = 0
	}
}

func (m *menu) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = len(m.items) - 1
	}
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

func (m *menu) selected() (menuItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return menuItem{}, false
	}
	return m.items[m.cursor], true
}

func (m menu) render(styles Styles) string {
	var b strings.Builder
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(styles.Selected.Render("> " + item.Label))
			if item.Detail != "" {
				b.WriteString("  " + styles.MutedText.Render(item.Detail))
			}
		} else {
			b.WriteString("  " + styles.Text.Render(item.Label))
			if item.Detail != "" {
				b.WriteString("  " + styles.FaintText.Render(item.Detail))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// checklist is a multi-select cursor list toggled with space.
type checklist struct {
	items   []menuItem
	checked map[string]bool
	cursor  int
}

func newChecklist(items []menuItem) checklist {
	return checklist{items: items, checked: make(map[string]bool)}
}

func (c *checklist) reset(checkedIDs []string) {
	c.checked = make(map[string]bool)
	c.cursor = 0
	for _, id := range checkedIDs {
		c.checked[id] = true
	}
}

func (c *checklist) move(delta int) {
	if len(c.items) == 0 {
		return
	}
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = len(c.items) - 1
	}
	if c.cursor >= len(c.items) {
		c.cursor = 0
	}
}

func (c *checklist) toggle() {
	if c.cursor < 0 || c.cursor >= len(c.items) {
		return
	}
	id := c.items[c.cursor].ID
	c.checked[id] = !c.checked[id]
}

// selectedIDs returns the checked ids in list order.
func (c *checklist) selectedIDs() []string {
	out := make([]string, 0, len(c.checked))
	for _, item := range c.items {
		if c.checked[item.ID] {
			out = append(out, item.ID)
		}
	}
	return out
}

func (c checklist) render(styles Styles) string {
	var b strings.Builder
	for i, item := range c.items {
		mark := "[ ]"
		if c.checked[item.ID] {
			mark = "[x]"
		}
		line := mark + " " + item.Label
		if i == c.cursor {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
