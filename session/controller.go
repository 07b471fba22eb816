// Package session drives qq's conversation with a provider: explain
// mode's single streamed exchange and generate mode's interactive
// exec/edit/retry/quit loop.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"qq/config"
	"qq/model"
	"qq/storage"
)

// Command delimiters the generate prompt instructs the model to emit.
const (
	commandOpen  = "<command>"
	commandClose = "</command>"
)

// Action is the user's choice at the command confirmation prompt.
type Action int

const (
	ActionQuit Action = iota
	ActionExec
	ActionEdit
	ActionRetry
)

// state tracks the generate-mode loop.
type state int

const (
	stateAwaitModel state = iota
	stateAwaitChoice
	stateDone
)

// Controller runs one qq invocation against a provider. Single
// goroutine, blocking I/O, at most one in-flight provider call.
type Controller struct {
	provider model.Provider
	opts     model.Options
	history  *storage.History // nil disables history records

	in  *bufio.Reader
	out io.Writer

	// replaced in tests; execFn does not return on success outside them
	execFn func(command string) error
	editFn func(content string) (string, error)
}

// New creates a controller reading choices from stdin and rendering to
// stdout. history may be nil to disable invocation records.
func New(p model.Provider, opts model.Options, history *storage.History) *Controller {
	return &Controller{
		provider: p,
		opts:     opts,
		history:  history,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		execFn:   replaceProcess,
		editFn:   editQuery,
	}
}

// Explain sends a single exchange and streams the answer, ending with
// one trailing newline. Provider failure propagates to the caller.
func (c *Controller) Explain(ctx context.Context, systemPrompt, query string) error {
	conv := model.NewConversation(systemPrompt)
	conv.AddUser(query)

	_, err := c.streamTurn(ctx, conv)
	return err
}

// Generate runs the interactive loop: stream a response, extract the
// candidate command, and act on the user's choice until exec replaces
// the process or the user quits.
func (c *Controller) Generate(ctx context.Context, systemPrompt, query string) error {
	conv := model.NewConversation(systemPrompt)
	record := &storage.Record{Model: c.provider.GetModel()}

	var response, command string

	st := stateAwaitModel
	for st != stateDone {
		switch st {
		case stateAwaitModel:
			conv.AddUser(query)

			accumulated, err := c.streamTurn(ctx, conv)
			if err != nil {
				return err
			}
			conv.AddAssistant(accumulated)

			response = accumulated
			command = ExtractCommand(accumulated)
			c.saveRecord(record, conv, command)
			st = stateAwaitChoice

		case stateAwaitChoice:
			next, err := c.promptChoice(command, response, &query)
			if err != nil {
				return err
			}
			st = next
		}
	}

	return nil
}

// streamTurn sends the conversation, printing each fragment as it
// arrives, and returns the accumulated response text. A trailing
// newline is printed on stream completion.
func (c *Controller) streamTurn(ctx context.Context, conv model.Conversation) (string, error) {
	var sb strings.Builder
	err := c.provider.Chat(ctx, conv, c.opts, func(chunk string) error {
		fmt.Fprint(c.out, chunk)
		sb.WriteString(chunk)
		return nil
	})
	if err != nil {
		return "", err
	}
	fmt.Fprintln(c.out)
	return sb.String(), nil
}

// promptChoice shows the extracted command (possibly empty when no
// markers were found) and acts on the user's single-character choice.
// A failed edit stays at the choice prompt; everything unrecognized,
// including EOF and the empty string, quits.
func (c *Controller) promptChoice(command, response string, query *string) (state, error) {
	fmt.Fprintf(c.out, "Command to execute: %s\n", color.CyanString("%s", command))
	fmt.Fprint(c.out, "e(x)ec / (e)dit / (r)etry / (q)uit: ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return stateDone, nil
	}

	switch ParseChoice(line) {
	case ActionExec:
		if err := c.execFn(command); err != nil {
			return stateDone, fmt.Errorf("exec failed: %w", err)
		}
		// only reachable when execFn is stubbed out
		return stateDone, nil

	case ActionEdit:
		next, err := c.editFn(StripMarkers(response))
		if err != nil {
			fmt.Fprintf(c.out, "edit failed: %v\n", err)
			return stateAwaitChoice, nil
		}
		*query = next
		return stateAwaitModel, nil

	case ActionRetry:
		fmt.Fprint(c.out, "Enter your reprompt: ")
		reprompt, err := c.in.ReadString('\n')
		if err != nil && reprompt == "" {
			return stateDone, nil
		}
		*query = strings.TrimSpace(reprompt)
		return stateAwaitModel, nil

	default:
		return stateDone, nil
	}
}

func (c *Controller) saveRecord(record *storage.Record, conv model.Conversation, command string) {
	if c.history == nil {
		return
	}
	record.Messages = conv
	record.Command = command
	if err := c.history.Save(record); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("failed to save history record: %v", err)
	}
}

// ParseChoice maps raw prompt input to an action: the first token,
// whitespace-trimmed and case-insensitive. Anything unrecognized quits.
func ParseChoice(input string) Action {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ActionQuit
	}
	switch strings.ToLower(fields[0]) {
	case "x":
		return ActionExec
	case "e":
		return ActionEdit
	case "r":
		return ActionRetry
	default:
		return ActionQuit
	}
}

// ExtractCommand returns the text between the first opening marker and
// the first closing marker after it, trimmed. Missing markers yield the
// empty string; that is surfaced to the user, not an error.
func ExtractCommand(text string) string {
	start := strings.Index(text, commandOpen)
	if start == -1 {
		return ""
	}
	rest := text[start+len(commandOpen):]
	end := strings.Index(rest, commandClose)
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// StripMarkers removes the command delimiters from the response text
// handed to the editor.
func StripMarkers(text string) string {
	text = strings.ReplaceAll(text, commandOpen, "")
	return strings.ReplaceAll(text, commandClose, "")
}
