// Package tui provides the interactive bag browser: the catalog by
// slot, the player's unlock state, and equip/unlock actions without
// leaving the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MolochDaGod/DudeGolf/internal/engine"
	"github.com/MolochDaGod/DudeGolf/internal/ui"
)

// row is one selectable line: either a slot header or an item.
type row struct {
	header string
	item   engine.EquipmentItem
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	rows     []row
	selected int
	width    int
	height   int

	lastLog string
	err     error
}

type actionMsg struct {
	log string
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	m := boardModel{ctx: ctx, svc: svc, lastLog: "e: equip · u: unlock · q: quit"}
	for slot := engine.SlotDriver; slot < engine.SlotCount; slot++ {
		m.rows = append(m.rows, row{header: slot.String()})
		for _, item := range svc.Catalog().BySlot(slot) {
			m.rows = append(m.rows, row{item: item})
		}
	}
	m.selected = 1 // first item under the first header
	return m
}

func (m boardModel) Init() tea.Cmd { return nil }

func (m boardModel) equipCmd(item engine.EquipmentItem) tea.Cmd {
	return func() tea.Msg {
		ok, err := m.svc.EquipItem(m.ctx, item.Slot, item.ID)
		if err != nil {
			return actionMsg{err: err}
		}
		if !ok {
			return actionMsg{log: fmt.Sprintf("%s is locked — unlock it first", item.Name)}
		}
		return actionMsg{log: "equipped " + item.Name}
	}
}

func (m boardModel) unlockCmd(item engine.EquipmentItem) tea.Cmd {
	return func() tea.Msg {
		ok, err := m.svc.UnlockEquipment(m.ctx, item.ID)
		if err != nil {
			return actionMsg{err: err}
		}
		if !ok {
			if reason := m.svc.LockReason(item.ID); reason != nil {
				return actionMsg{log: reason.Error()}
			}
			return actionMsg{log: item.Name + " is already unlocked"}
		}
		return actionMsg{log: "unlocked " + item.Name}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.lastLog = msg.log
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.selected = m.prevItem(m.selected)
			return m, nil
		case "down", "j":
			m.selected = m.nextItem(m.selected)
			return m, nil
		case "e", "enter":
			if r := m.rows[m.selected]; r.header == "" {
				return m, m.equipCmd(r.item)
			}
			return m, nil
		case "u":
			if r := m.rows[m.selected]; r.header == "" {
				return m, m.unlockCmd(r.item)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) prevItem(from int) int {
	for i := from - 1; i >= 0; i-- {
		if m.rows[i].header == "" {
			return i
		}
	}
	return from
}

func (m boardModel) nextItem(from int) int {
	for i := from + 1; i < len(m.rows); i++ {
		if m.rows[i].header == "" {
			return i
		}
	}
	return from
}

func (m boardModel) View() string {
	l := m.svc.Ledger()
	var b strings.Builder

	next := engine.ExperienceForLevel(l.Level + 1)
	b.WriteString(ui.Heading(ui.IconGolf, fmt.Sprintf("%s — level %d", l.PlayerUID, l.Level)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d/%d  %s  skill points: %d\n\n",
		ui.Key.Render("XP:"), l.Experience, next, ui.XPBar(l.Experience, next, 24), l.SkillPoints))

	for i, r := range m.rows {
		if r.header != "" {
			b.WriteString(ui.PanelTitle.Render(r.header) + "\n")
			continue
		}
		line := fmt.Sprintf("[%2d] %-18s %s", r.item.ID, r.item.Name,
			ui.LockText(l.IsUnlocked(r.item.ID), l.Equipped[r.item.Slot] == r.item.ID))
		if !l.IsUnlocked(r.item.ID) {
			line += ui.Warn.Render(fmt.Sprintf(" lv%d", r.item.RequiredLevel))
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	return ui.Panel.Render(b.String())
}

// Run starts the board over an already-loaded service and blocks
// until the user quits.
func Run(ctx context.Context, svc *engine.Service) error {
	m := newBoardModel(ctx, svc)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if fm, ok := final.(boardModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
