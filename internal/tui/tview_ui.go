// Package tui is the terminal front end: a home menu plus one form-and-table
// screen per record page, switched by a pages.Navigator.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vcrini/schoolrecords/internal/config"
	"github.com/vcrini/schoolrecords/internal/observability"
	"github.com/vcrini/schoolrecords/internal/pages"
	"github.com/vcrini/schoolrecords/internal/records"
)

const helpText = " [black:gold]q[-:-] quit  [black:gold]?[-:-] help  [black:gold]esc[-:-] home  [black:gold]ctrl+t/ctrl+f[-:-] table/form  [black:gold]enter/space[-:-] mark row  [black:gold]d[-:-] delete marked "

type tviewUI struct {
	app     *tview.Application
	pages   *tview.Pages
	screens *tview.Pages
	status  *tview.TextView

	layout config.Layout
	log    observability.Logger
	nav    *pages.Navigator

	homeMenu *tview.List
	teacher  *recordPage
	student  *recordPage

	message string
	overlay overlay
}

// palette is the gold-on-black scheme shared by the theme and the record screens.
var palette = struct {
	accent, background, text, muted tcell.Color
}{
	accent:     tcell.ColorGold,
	background: tcell.ColorBlack,
	text:       tcell.ColorWhite,
	muted:      tcell.ColorLightGray,
}

// Run builds the UI from cfg and blocks until the user quits.
func Run(cfg config.Config, log observability.Logger) error {
	setTheme()

	ui, err := newTViewUI(cfg.Layout, log)
	if err != nil {
		return err
	}
	log.Infof("starting with %d teacher fields and %d student fields", len(cfg.Layout.Teacher.Fields), len(cfg.Layout.Student.Fields))
	return ui.app.SetRoot(ui.pages, true).EnableMouse(cfg.Mouse).Run()
}

func setTheme() {
	s := &tview.Styles
	s.PrimitiveBackgroundColor, s.ContrastBackgroundColor, s.MoreContrastBackgroundColor = palette.background, palette.background, palette.background
	s.BorderColor, s.TitleColor, s.GraphicsColor = palette.accent, palette.accent, palette.accent
	s.PrimaryTextColor = palette.text
	s.SecondaryTextColor = palette.muted
	s.InverseTextColor, s.ContrastSecondaryTextColor = palette.background, palette.background
}

func newTViewUI(layout config.Layout, log observability.Logger) (*tviewUI, error) {
	teacherForm, err := records.NewForm(layout.Teacher.Labels()...)
	if err != nil {
		return nil, fmt.Errorf("teacher page: %w", err)
	}
	studentForm, err := records.NewForm(layout.Student.Labels()...)
	if err != nil {
		return nil, fmt.Errorf("student page: %w", err)
	}

	ui := &tviewUI{
		app:     tview.NewApplication(),
		layout:  layout,
		log:     log,
		nav:     pages.NewNavigator(teacherForm, studentForm),
		message: "Ready.",
	}
	ui.build(teacherForm, studentForm)
	ui.nav.OnShow(ui.onShow)
	return ui, nil
}

func (ui *tviewUI) build(teacherForm, studentForm *records.Form) {
	title := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true)
	title.SetText("\n[gold::b]" + tview.Escape(ui.layout.Title) + "[-:-:-]")

	ui.homeMenu = tview.NewList().ShowSecondaryText(false)
	ui.homeMenu.SetBorder(true)
	ui.homeMenu.AddItem(ui.layout.Teacher.Menu, "", 't', func() { ui.nav.Show(pages.Teacher) })
	ui.homeMenu.AddItem(ui.layout.Student.Menu, "", 's', func() { ui.nav.Show(pages.Student) })
	ui.homeMenu.AddItem("Quit", "", 'q', ui.app.Stop)

	home := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 4, 0, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(ui.homeMenu, 36, 0, true).
			AddItem(nil, 0, 1, false), 7, 0, true).
		AddItem(nil, 0, 1, false)

	ui.teacher = ui.newRecordPage(pages.Teacher, ui.layout.Teacher, teacherForm)
	ui.student = ui.newRecordPage(pages.Student, ui.layout.Student, studentForm)

	ui.screens = tview.NewPages().
		AddPage(pages.Home.String(), home, true, true).
		AddPage(pages.Teacher.String(), ui.teacher.root, true, false).
		AddPage(pages.Student.String(), ui.student.root, true, false)

	ui.status = tview.NewTextView().SetDynamicColors(true).SetText(helpText)
	ui.status.SetBackgroundColor(palette.background)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.screens, 0, 1, true).
		AddItem(ui.status, 1, 0, false)

	ui.pages = tview.NewPages().AddPage("main", root, true, true)
	ui.app.SetFocus(ui.homeMenu)
	ui.app.SetInputCapture(ui.handleGlobalKeys)
	ui.app.SetMouseCapture(ui.handleMouse)
	ui.refreshStatus()
}

func (ui *tviewUI) onShow(from, to pages.PageID) {
	ui.screens.SwitchToPage(to.String())
	if p := ui.recordPage(to); p != nil {
		ui.refreshTable(p)
		ui.app.SetFocus(p.formView)
		ui.message = p.def.Title
	} else {
		ui.app.SetFocus(ui.homeMenu)
		ui.message = ui.layout.Title
	}
	ui.log.Debugf("page %s -> %s", from, to)
	ui.refreshStatus()
}

func (ui *tviewUI) recordPage(id pages.PageID) *recordPage {
	switch id {
	case pages.Teacher:
		return ui.teacher
	case pages.Student:
		return ui.student
	default:
		return nil
	}
}

func (ui *tviewUI) currentRecordPage() *recordPage {
	return ui.recordPage(ui.nav.Current())
}

func (ui *tviewUI) handleGlobalKeys(ev *tcell.EventKey) *tcell.EventKey {
	switch ui.overlay.name {
	case helpPage:
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == '?' || ev.Rune() == 'q')) {
			ui.hideOverlay()
			return nil
		}
		return ev
	case warningPage:
		if ev.Key() == tcell.KeyEscape {
			ui.hideOverlay()
			return nil
		}
		return ev
	}

	focus := ui.app.GetFocus()
	_, focusIsInput := focus.(*tview.InputField)

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ui.app.Stop()
		return nil
	case tcell.KeyEscape:
		if ui.nav.Current() != pages.Home {
			ui.nav.Show(pages.Home)
			return nil
		}
	case tcell.KeyCtrlT:
		if p := ui.currentRecordPage(); p != nil {
			ui.app.SetFocus(p.table)
			return nil
		}
	case tcell.KeyCtrlF:
		if p := ui.currentRecordPage(); p != nil {
			ui.app.SetFocus(p.formView)
			return nil
		}
	}

	if focusIsInput || ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case 'q':
		ui.app.Stop()
		return nil
	case '?':
		ui.openHelpOverlay(focus)
		return nil
	}
	return ev
}

func (ui *tviewUI) refreshStatus() {
	page := ui.layout.Title
	if p := ui.currentRecordPage(); p != nil {
		page = p.def.Title
	}
	msg := ui.message
	if msg == "" {
		msg = "Ready."
	}
	ui.status.SetText(fmt.Sprintf("page:[black:gold] %s [-:-] | %s [black:gold]msg[-:-] %s", tview.Escape(page), helpText, tview.Escape(msg)))
}
