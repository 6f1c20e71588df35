package cli

import (
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/liser/internal/client"
	"github.com/Makepad-fr/liser/internal/confirm"
	"github.com/Makepad-fr/liser/internal/editor"
	"github.com/Makepad-fr/liser/internal/ui"
)

var doneMessages = map[client.Op]string{
	client.OpUpdateSectionTitle:       "section title updated",
	client.OpUpdateSectionDescription: "section description updated",
	client.OpUpdateSectionPosition:    "section position updated",
	client.OpRemoveItemFromSection:    "item removed from section",
	client.OpDeleteSection:            "section deleted",
	client.OpAssociateItem:            "item added to section",
}

// mutate sends req. Requests with a confirmation message are asked on stdin
// first unless yes is set; declining sends nothing and is not an error.
func (app *App) mutate(cmd *cobra.Command, req editor.Request, yes bool) error {
	req, err := req.Normalize()
	if err != nil {
		return err
	}
	ed, err := app.editor()
	if err != nil {
		return err
	}

	send := func() error {
		out := ed.Do(cmd.Context(), req)
		if !out.OK() {
			return out.Err
		}
		ui.OK(cmd.OutOrStdout(), doneMessages[req.Op])
		return nil
	}

	msg := req.ConfirmMessage()
	if msg == "" || yes {
		return send()
	}
	m := &confirm.Modal[error]{}
	err, ok := confirm.Ask(m, cmd.InOrStdin(), cmd.OutOrStdout(), msg, send)
	if !ok {
		ui.Warn(cmd.OutOrStdout(), "cancelled")
		return nil
	}
	return err
}
