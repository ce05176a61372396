package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vcrini/schoolrecords/internal/config"
	"github.com/vcrini/schoolrecords/internal/observability"
	"github.com/vcrini/schoolrecords/internal/pages"
	"github.com/vcrini/schoolrecords/internal/records"
)

// recordPage is the screen of one record kind. The table widget is redrawn
// from form.Table() and selection after every change.
type recordPage struct {
	id        pages.PageID
	def       config.PageDef
	form      *records.Form
	selection records.Selection
	log       observability.Logger

	inputs   []*tview.InputField
	formView *tview.Form
	table    *tview.Table
	root     *tview.Flex
}

func (ui *tviewUI) newRecordPage(id pages.PageID, def config.PageDef, form *records.Form) *recordPage {
	p := &recordPage{
		id:        id,
		def:       def,
		form:      form,
		selection: records.NewSelection(),
		log:       ui.log.With("page", id.String()),
	}

	p.formView = tview.NewForm()
	p.formView.SetBorder(true).SetTitle(" " + def.Title + " ")
	p.formView.SetFieldBackgroundColor(palette.text)
	p.formView.SetFieldTextColor(palette.background)
	p.formView.SetLabelColor(palette.accent)
	p.formView.SetButtonBackgroundColor(palette.accent)
	p.formView.SetButtonTextColor(palette.background)

	for _, label := range form.Fields().Labels() {
		input := tview.NewInputField().SetLabel(label).SetFieldWidth(40)
		p.inputs = append(p.inputs, input)
		p.formView.AddFormItem(input)
	}
	p.formView.AddButton("Add", func() { ui.addRecord(p) })
	p.formView.AddButton("Delete Selected", func() { ui.deleteSelected(p) })
	p.formView.AddButton("Clear", func() { ui.clearForm(p) })
	p.formView.AddButton("Back to Home", func() { ui.nav.Show(pages.Home) })

	p.table = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	p.table.SetBorder(true)
	p.table.SetSelectedFunc(func(row, _ int) {
		ui.toggleRow(p, row)
	})
	p.table.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			ui.app.SetFocus(p.formView)
			return nil
		case tcell.KeyDelete:
			ui.deleteSelected(p)
			return nil
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				row, _ := p.table.GetSelection()
				ui.toggleRow(p, row)
				return nil
			case 'd':
				ui.deleteSelected(p)
				return nil
			case 'c':
				ui.clearMarks(p)
				return nil
			}
		}
		return ev
	})

	// border + padding + one row and one gap per field + buttons
	formHeight := 2*len(p.inputs) + 5
	p.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.formView, formHeight, 0, true).
		AddItem(p.table, 0, 1, false)

	ui.refreshTable(p)
	return p
}

func (ui *tviewUI) addRecord(p *recordPage) {
	ui.readInputs(p)
	rec, err := p.form.Add()
	if err != nil {
		var verr *records.ValidationError
		if errors.As(err, &verr) {
			p.log.Warnf("add rejected, missing %s", strings.Join(verr.Missing, ", "))
			ui.openWarning(p)
			return
		}
		p.log.Errorf("add failed: %v", err)
		ui.message = err.Error()
		ui.refreshStatus()
		return
	}
	p.log.Infof("added record %s (%d total)", rec.ID, p.form.Table().Len())
	ui.syncInputs(p)
	ui.refreshTable(p)
	p.formView.SetFocus(0)
	ui.app.SetFocus(p.formView)
	ui.message = fmt.Sprintf("Added %s.", rec.Value(0))
	ui.refreshStatus()
}

func (ui *tviewUI) deleteSelected(p *recordPage) {
	if p.selection.Len() == 0 {
		ui.message = "No rows marked."
		ui.refreshStatus()
		return
	}
	n := p.form.DeleteSelected(p.selection)
	p.log.Infof("deleted %d record(s), %d left", n, p.form.Table().Len())
	ui.refreshTable(p)
	ui.message = fmt.Sprintf("Deleted %d record(s).", n)
	ui.refreshStatus()
}

func (ui *tviewUI) clearForm(p *recordPage) {
	p.form.Clear()
	ui.syncInputs(p)
	p.log.Debugf("fields cleared")
	ui.message = "Fields cleared."
	ui.refreshStatus()
}

// toggleRow flips the mark of the record shown at table row (row 0 is the header).
func (ui *tviewUI) toggleRow(p *recordPage, row int) {
	rec, ok := p.form.Table().At(row - 1)
	if !ok {
		return
	}
	if p.selection.Toggle(rec.ID) {
		ui.message = fmt.Sprintf("Marked %s.", rec.Value(0))
	} else {
		ui.message = fmt.Sprintf("Unmarked %s.", rec.Value(0))
	}
	ui.refreshTable(p)
	ui.refreshStatus()
}

func (ui *tviewUI) clearMarks(p *recordPage) {
	p.selection.Clear()
	ui.message = "Marks cleared."
	ui.refreshTable(p)
	ui.refreshStatus()
}

// readInputs copies the widget text into the form's field set.
func (ui *tviewUI) readInputs(p *recordPage) {
	for i, label := range p.form.Fields().Labels() {
		if err := p.form.Fields().Set(label, p.inputs[i].GetText()); err != nil {
			p.log.Errorf("read input: %v", err)
		}
	}
}

func (ui *tviewUI) syncInputs(p *recordPage) {
	for i, label := range p.form.Fields().Labels() {
		p.inputs[i].SetText(p.form.Fields().Get(label))
	}
}

func (ui *tviewUI) refreshTable(p *recordPage) {
	p.selection.Prune(p.form.Table())
	row, _ := p.table.GetSelection()

	p.table.Clear()
	for c, col := range p.def.Columns() {
		p.table.SetCell(0, c, tview.NewTableCell(tview.Escape(col)).
			SetTextColor(palette.accent).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false).
			SetExpansion(1))
	}
	rows := p.form.Table().Rows()
	for i, rec := range rows {
		marked := p.selection.Has(rec.ID)
		for c := 0; c < rec.Len(); c++ {
			cell := tview.NewTableCell(tview.Escape(rec.Value(c))).SetExpansion(1)
			if marked {
				cell.SetTextColor(palette.background).SetBackgroundColor(palette.accent)
			}
			p.table.SetCell(i+1, c, cell)
		}
	}
	p.table.SetTitle(fmt.Sprintf(" %s: %d records, %d marked ", p.def.Title, len(rows), p.selection.Len()))

	if len(rows) == 0 {
		return
	}
	if row < 1 {
		row = 1
	}
	if row > len(rows) {
		row = len(rows)
	}
	p.table.Select(row, 0)
}
