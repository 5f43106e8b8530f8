package cli

import "github.com/chzyer/readline"

// Prompt is shown before every invite is read
const Prompt = "Invite-Link: "

// LineReader reads one line of operator input at a time
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// NewPrompt opens an interactive line editor on the terminal
func NewPrompt() (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return rl, nil
}
