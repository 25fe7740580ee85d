package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Confirmation seams - replaced in tests.
var (
	confirmPrompt   = promptConfirmation
	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// confirmApply gates the destructive pass. Only the literal answer "yes"
// proceeds. Without a terminal on stdin the prompt cannot be answered, so
// non-interactive runs must pass --assume-yes explicitly.
func confirmApply(ctx context.Context, assumeYes bool, total int) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, errors.New("stdin is not a terminal: pass --assume-yes to delete without confirmation")
	}
	return confirmPrompt(ctx, total)
}

func promptConfirmation(ctx context.Context, total int) (bool, error) {
	var answer string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Delete these %d resources?", total)).
				Description(`Only the literal answer "yes" proceeds. Anything else cancels.`).
				Placeholder("no").
				Value(&answer),
		),
	).RunWithContext(ctx)
	if err != nil {
		// Aborting the prompt is a cancellation, not a failure.
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return answer == "yes", nil
}
