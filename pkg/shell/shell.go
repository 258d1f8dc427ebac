// Package shell provides the interactive REPL for skein.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/skeinchat/skein/pkg/client"
	"github.com/skeinchat/skein/pkg/help"
	"github.com/skeinchat/skein/pkg/session"
)

// Config holds shell configuration.
type Config struct {
	// HistoryFile stores readline input history across runs.
	HistoryFile string
	// TranscriptFile is the default path for /save.
	TranscriptFile string
	// Prompt overrides the default prompt when non-empty.
	Prompt string
}

// Shell is the interactive command-line interface.
type Shell struct {
	client     *client.Client
	log        *session.Log
	rl         *readline.Instance
	transcript string
}

// New creates a new interactive shell. The completer draws live nick
// completions from the client's roster.
func New(cl *client.Client, log *session.Log, cfg Config) (*Shell, error) {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = "\033[32mskein>\033[0m "
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    NewCompleter(cl.Roster()),
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		client:     cl,
		log:        log,
		rl:         rl,
		transcript: cfg.TranscriptFile,
	}, nil
}

// Stdout returns a writer that cooperates with the prompt. Chat output
// must go through this writer or it will clobber the input line.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive loop. It returns nil on /quit or EOF.
func (s *Shell) Run(ctx context.Context) error {
	defer s.rl.Close()

	fmt.Fprintln(s.Stdout(), "Type a message to chat. Commands: /help, /users, /history, /save, /quit")
	fmt.Fprintln(s.Stdout())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if err := s.handleCommand(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(s.Stdout(), "Error: %v\n", err)
			}
			continue
		}

		if err := s.client.Say(line); err != nil {
			fmt.Fprintf(s.Stdout(), "Error: %v\n", err)
		}
	}
}

var errQuit = errors.New("quit")

func (s *Shell) handleCommand(line string) error {
	parts := strings.Fields(line)
	cmd := parts[0]

	switch cmd {
	case "/quit", "/exit", "/q":
		return errQuit

	case "/help", "/h":
		fmt.Fprint(s.Stdout(), help.Commands())

	case "/users":
		s.printUsers()

	case "/history":
		n := 20
		if len(parts) > 1 {
			v, err := strconv.Atoi(parts[1])
			if err != nil || v < 1 {
				return fmt.Errorf("history count must be a positive number, got %q", parts[1])
			}
			n = v
		}
		s.printHistory(n)

	case "/save":
		path := s.transcript
		if len(parts) > 1 {
			path = parts[1]
		}
		if path == "" {
			return errors.New("no transcript path; use /save <path>")
		}
		if err := s.log.SaveTranscript(path); err != nil {
			return err
		}
		fmt.Fprintf(s.Stdout(), "Saved %d messages to %s\n", s.log.Len(), path)

	default:
		fmt.Fprintf(s.Stdout(), "Unknown command: %s\n", cmd)
	}

	return nil
}

func (s *Shell) printUsers() {
	nicks := s.client.Roster().OnlineNicks()
	if len(nicks) == 0 {
		fmt.Fprintln(s.Stdout(), "Nobody is online.")
		return
	}
	fmt.Fprintf(s.Stdout(), "Online (%d):\n", len(nicks))
	for _, nick := range nicks {
		fmt.Fprintf(s.Stdout(), "  %s\n", nick)
	}
}

func (s *Shell) printHistory(n int) {
	messages := s.log.History(n)
	if len(messages) == 0 {
		fmt.Fprintln(s.Stdout(), "No messages yet.")
		return
	}
	for _, m := range messages {
		stamp := m.Time.Format("15:04:05")
		switch m.Kind {
		case session.KindUser:
			fmt.Fprintf(s.Stdout(), "[%s] <%s> %s\n", stamp, m.From, m.Body)
		case session.KindEmote:
			fmt.Fprintf(s.Stdout(), "[%s] * %s\n", stamp, m.Body)
		case session.KindServerWarn:
			fmt.Fprintf(s.Stdout(), "[%s] ! %s\n", stamp, m.Body)
		default:
			fmt.Fprintf(s.Stdout(), "[%s] -- %s\n", stamp, m.Body)
		}
	}
}
