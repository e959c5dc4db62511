package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fixturelint/internal/config"
	"fixturelint/internal/domain"
	"fixturelint/internal/storage"
)

// Viewer displays a saved lint report
type Viewer interface {
	View(output *domain.ReportOutput) error
}

// ReportViewer displays fixture violations in an interactive TUI
type ReportViewer struct {
	config    *config.Config
	storage   storage.Storage
	formatter *Formatter
}

// NewReportViewer creates a new ReportViewer
func NewReportViewer(cfg *config.Config, st storage.Storage, formatter *Formatter) *ReportViewer {
	return &ReportViewer{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// View displays violations in an interactive TUI
func (rv *ReportViewer) View(output *domain.ReportOutput) error {
	if len(output.Details) == 0 {
		rv.formatter.PrintClean()
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range output.Details {
		list.AddItem(listItemText(output.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(" Fixture violations (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			len(output.Details), countUnresolved(output.Details)))
	}
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(output.Details) {
			detailsView.SetText(rv.formatFailureDetails(output, output.Details[index]))
		}
	}

	var saveErr error
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(output.Details) {
					output.Details[index].Resolved = !output.Details[index].Resolved
					list.SetItemText(index, listItemText(output.Details[index], index), "")
					updateHeader()
					updateDetails()
					if err := rv.storage.SaveOutput(output); err != nil {
						saveErr = err
						app.Stop()
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save resolved status: %w", saveErr)
	}
	return nil
}

func countUnresolved(details []domain.Failure) int {
	count := 0
	for _, f := range details {
		if !f.Resolved {
			count++
		}
	}
	return count
}

// listItemText returns the list entry for a violation using tview color tags
func listItemText(failure domain.Failure, index int) string {
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, failure.Path)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.Path)
}

// formatFailureDetails describes a violation and the fix that clears it
func (rv *ReportViewer) formatFailureDetails(output *domain.ReportOutput, failure domain.Failure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", rv.formatter.Header(failure.Category))
	fmt.Fprintf(&b, "[cyan]Fixture: %s[white]\n", failure.Path)

	inputPath := filepath.Join(output.Meta.InputDir, filepath.FromSlash(failure.Path))
	expectedPath := filepath.Join(output.Meta.ExpectedDir, filepath.FromSlash(failure.Path))

	switch failure.Category {
	case domain.OrphanedOutput:
		fmt.Fprintf(&b, "[yellow]Missing:[white] %s\n\n", inputPath)
		fmt.Fprintf(&b, "Add the input fixture or delete %s.\n", expectedPath)
	case domain.MissingFailSuffix:
		fmt.Fprintf(&b, "[yellow]Missing:[white] %s\n\n", expectedPath)
		fmt.Fprintf(&b, "Add the expected output, or rename the input so its name ends with %s.\n", rv.config.FailSuffix)
	case domain.MissingTrailingNewline:
		fmt.Fprintf(&b, "[yellow]File:[white] %s\n\n", expectedPath)
		b.WriteString("Append a trailing newline to the expected output.\n")
	}

	if failure.Resolved {
		b.WriteString("\n[gray](marked resolved)[white]\n")
	}
	return b.String()
}
