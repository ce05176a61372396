package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	warningPage = "warning"
	helpPage    = "help"
)

// overlay is the dialog drawn above the screens. At most one is open.
type overlay struct {
	name        string
	view        *tview.TextView
	returnFocus tview.Primitive
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(p, width, 0, true).
			AddItem(nil, 0, 1, false), height, 0, true).
		AddItem(nil, 0, 1, false)
}

func (ui *tviewUI) overlayOpen() bool {
	return ui.overlay.view != nil
}

func (ui *tviewUI) showOverlay(name string, view *tview.TextView, width, height int, returnFocus tview.Primitive) bool {
	if ui.overlayOpen() {
		return false
	}
	ui.overlay = overlay{name: name, view: view, returnFocus: returnFocus}
	ui.pages.AddPage(name, centered(view, width, height), true, true)
	ui.app.SetFocus(view)
	return true
}

func (ui *tviewUI) hideOverlay() {
	if !ui.overlayOpen() {
		return
	}
	ui.pages.RemovePage(ui.overlay.name)
	focus := ui.overlay.returnFocus
	ui.overlay = overlay{}
	if focus != nil {
		ui.app.SetFocus(focus)
	}
}

// handleMouse drops clicks outside an open overlay so the screen behind it
// stays untouched.
func (ui *tviewUI) handleMouse(ev *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if !ui.overlayOpen() || ev == nil {
		return ev, action
	}
	if ui.overlay.view.InRect(ev.Position()) {
		return ev, action
	}
	return nil, action
}

// openWarning shows the page's missing-data message over the current screen.
// The form keeps its text so the user can correct it.
func (ui *tviewUI) openWarning(p *recordPage) {
	text := tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetTextAlign(tview.AlignCenter)
	text.SetBorder(true).SetTitle(" " + ui.layout.WarningTitle + " ")
	text.SetText("\n" + tview.Escape(p.def.Warning) + "\n\n[yellow]Enter/Esc[-] OK")
	text.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyEscape {
			ui.hideOverlay()
			return nil
		}
		return ev
	})

	if !ui.showOverlay(warningPage, text, 44, 7, p.formView) {
		return
	}
	ui.message = p.def.Warning
	ui.refreshStatus()
}

func (ui *tviewUI) openHelpOverlay(focus tview.Primitive) {
	text := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	text.SetBorder(true).SetTitle(" Help ")
	text.SetText(ui.buildHelpContent())
	ui.showOverlay(helpPage, text, 64, 20, focus)
}

func (ui *tviewUI) buildHelpContent() string {
	var b strings.Builder
	b.WriteString(ui.layout.Title + " - shortcuts\n\n")

	if p := ui.currentRecordPage(); p != nil {
		b.WriteString("[yellow]" + tview.Escape(p.def.Title) + "[-]\n")
		b.WriteString("- Add / Delete Selected / Clear / Back to Home: form buttons\n")
		b.WriteString("- ctrl+t / ctrl+f: focus table / form\n")
		b.WriteString("- enter / space (table): mark or unmark row\n")
		b.WriteString("- d / del (table): delete marked rows\n")
		b.WriteString("- c (table): clear marks\n")
		b.WriteString("- tab (table): back to form\n")
	} else {
		b.WriteString("[yellow]Home[-]\n")
		b.WriteString("- t: " + ui.layout.Teacher.Menu + "\n")
		b.WriteString("- s: " + ui.layout.Student.Menu + "\n")
	}

	b.WriteString("\n[yellow]Global[-]\n")
	b.WriteString("- q / ctrl+c: quit\n")
	b.WriteString("- ?: open/close help\n")
	b.WriteString("- esc: back to home\n")
	b.WriteString("\nEsc/?/q to close")
	return b.String()
}
