// Package dialogs provides application dialogs.
package dialogs

import (
	"errors"
	"fmt"
	"strings"

	"graph-plotter/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

const warningTitle = "Warning"

// WarningText maps an operation error to the message shown to the user.
func WarningText(err error) string {
	switch {
	case errors.Is(err, app.ErrNoColumns):
		return "No columns selected"
	case errors.Is(err, app.ErrTooFewSelected):
		return "You need to select at least 2 plots!"
	case errors.Is(err, app.ErrInvalidSize):
		return "Invalid input for width or height."
	default:
		return err.Error()
	}
}

// ReadFailureText is the message for a file that could not be read.
func ReadFailureText(err error) string {
	return fmt.Sprintf("Failed to read file: %v", err)
}

// DeleteConfirmText lists the plots about to be deleted.
func DeleteConfirmText(labels []string) string {
	return "You are about to delete the following plots:\n\n" +
		strings.Join(labels, "\n") +
		"\n\nDo you want to proceed?"
}

// ShowWarning displays a modal warning.
func ShowWarning(message string, window fyne.Window) {
	dialog.ShowInformation(warningTitle, message, window)
}

// ShowErrorWarning displays the warning text for err.
func ShowErrorWarning(err error, window fyne.Window) {
	ShowWarning(WarningText(err), window)
}

// ConfirmWarning displays a warning with OK and Cancel; onConfirm runs only on OK.
func ConfirmWarning(message string, window fyne.Window, onConfirm func()) {
	dlg := dialog.NewConfirm(warningTitle, message, func(ok bool) {
		if ok && onConfirm != nil {
			onConfirm()
		}
	}, window)
	dlg.SetConfirmText("OK")
	dlg.SetDismissText("Cancel")
	dlg.Show()
}
