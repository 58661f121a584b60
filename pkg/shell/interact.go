package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/keyplexex/itmoscript/pkg/eval"
	"github.com/keyplexex/itmoscript/pkg/parse"
	"github.com/keyplexex/itmoscript/pkg/rc"
	"github.com/keyplexex/itmoscript/pkg/store"
	"github.com/keyplexex/itmoscript/pkg/store/storedefs"
	"github.com/peterh/liner"
)

// Runs an interactive session on a terminal.
func interactive(fds [3]*os.File, cfg *rc.Config, dbPath string) error {
	hist, closeHist := openHistory(fds[2], cfg, dbPath)
	defer closeHist()
	var recent []string
	if hist != nil {
		cmds, err := hist.RecentCmds(cfg.History.Max)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot load history:", err)
		}
		for _, cmd := range cmds {
			recent = append(recent, cmd.Text)
		}
	}

	ip := newInterpreter(fds, fds[0], cfg, true)
	ed := newLineEditor(ip.Global(), recent)
	defer ed.Close()

	// Restore the terminal when killed.
	stopSignals := relaySignals(func(sig os.Signal) {
		logger.Println("got signal", sig)
		ed.Close()
		os.Exit(130)
	})
	defer stopSignals()

	interact(fds, ip, ed, &interactCfg{RC: cfg, History: hist})
	return nil
}

// Calls f for every SIGHUP or SIGTERM received until the returned function is
// called. The returned function waits for the relaying goroutine to exit.
func relaySignals(f func(os.Signal)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range sigCh {
			f(sig)
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(sigCh)
		<-done
	}
}

// Configuration for an interactive session.
type interactCfg struct {
	RC *rc.Config
	// Where commands are saved. May be nil.
	History storedefs.Store
}

// Reads code from ed and evaluates it with ip until the end of input or a
// call to exit().
func interact(fds [3]*os.File, ip *eval.Interpreter, ed editor, cfg *interactCfg) {
	logger.Println("entering interactive mode")
	defer logger.Println("leaving interactive mode")
	lastCmd := ""
	if cfg.History != nil {
		lastCmd = lastSavedCmd(cfg.History)
	}
	for cmdNum := 1; ; cmdNum++ {
		code, err := readCode(ed, cfg.RC.Prompt, cfg.RC.ContinuationPrompt)
		if err == io.EOF {
			fmt.Fprintln(fds[1])
			return
		} else if err == liner.ErrPromptAborted {
			continue
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			return
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		ed.AppendHistory(code)
		if cfg.History != nil && code != lastCmd {
			if _, err := cfg.History.AddCmd(code); err != nil {
				fmt.Fprintln(fds[2], "Warning: cannot save history:", err)
			}
		}
		lastCmd = code

		prog, err := parse.Parse(parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: code})
		if err != nil {
			showError(fds[2], err)
			continue
		}
		err = ip.Eval(prog)
		if err == eval.ErrExit {
			fmt.Fprintln(fds[1], "Exiting interactive mode (exit).")
			return
		} else if err != nil {
			showError(fds[2], err)
		}
	}
}

// Returns the most recently saved command, or "" if there is none.
func lastSavedCmd(hist storedefs.Store) string {
	seq, err := hist.NextCmdSeq()
	if err != nil || seq <= 1 {
		return ""
	}
	cmd, err := hist.Cmd(seq - 1)
	if err != nil {
		logger.Println("cannot read last command:", err)
		return ""
	}
	return cmd
}

// Reads one piece of code. Lines are read with the continuation prompt for as
// long as the code parses with a partial error, which means the code is
// incomplete.
func readCode(ed editor, prompt, contPrompt string) (string, error) {
	var sb strings.Builder
	for {
		p := prompt
		if sb.Len() > 0 {
			p = contPrompt
		}
		line, err := ed.Prompt(p)
		if err == io.EOF && sb.Len() > 0 {
			// Evaluate what has been read, so that its error is shown.
			return sb.String(), nil
		} else if err != nil {
			return "", err
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		_, err = parse.Parse(parse.Source{Name: "[interactive]", Code: sb.String()})
		if e := parse.GetError(err); e == nil || !e.Partial {
			return sb.String(), nil
		}
	}
}

// Opens the history database. It returns nil if history is disabled or the
// database cannot be opened.
func openHistory(stderr io.Writer, cfg *rc.Config, dbPath string) (store.DBStore, func()) {
	if !cfg.History.Enabled {
		return nil, func() {}
	}
	if dbPath == "" {
		dbPath = cfg.History.DB
	}
	if dbPath == "" {
		var err error
		dbPath, err = rc.DBPath()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return nil, func() {}
		}
	}
	st, err := store.NewStore(dbPath)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open history database:", err)
		fmt.Fprintln(stderr, "History will not be saved.")
		return nil, func() {}
	}
	return st, func() {
		if err := st.Close(); err != nil {
			fmt.Fprintln(stderr, "Warning: failed to close history database:", err)
		}
	}
}
