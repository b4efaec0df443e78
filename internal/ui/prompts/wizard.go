package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptInitIdentity asks for the caller address to use when --from is
// omitted, and whether to remember it in the config file.
func PromptInitIdentity() (string, bool, error) {
	addr, err := PromptAddress(
		"No caller identity configured. Which address are you acting as?",
		"The address is used as the sender of deposits and the caller of withdrawals.",
	)
	if err != nil {
		return "", false, err
	}

	save := true
	err = huh.NewConfirm().
		Title("Save this address as the default identity?").
		Affirmative("Yes").
		Negative("No").
		Value(&save).
		Run()
	if err != nil {
		return "", false, err
	}

	return addr, save, nil
}
