package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Moises-Pirela/calculator-task"
)

const invalidInput = "Please input a valid expression using digits and operators only (+ - * / ^ %)"

// shell reads expressions line by line and prints their results.
type shell struct {
	ctx    *calculator.Context
	out    io.Writer
	log    zerolog.Logger
	verb   string
	prompt string
	echo   bool
}

// run reads lines from in until EOF or an exit command. Besides expressions,
// it understands "clear" to forget the last result and "exit" or "quit".
func (s *shell) run(in io.Reader) error {
	fmt.Fprintln(s.out, "Input an expression")
	scan := bufio.NewScanner(in)
	for {
		if last, ok := s.ctx.LastResult(); ok {
			fmt.Fprintf(s.out, "Last result: "+s.verb+"\n", last)
		}
		fmt.Fprint(s.out, s.prompt)
		if !scan.Scan() {
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "":
			continue
		case "clear":
			s.ctx.Clear()
			continue
		case "exit", "quit":
			s.log.Debug().Msg("exit requested")
			return nil
		}
		s.eval(line)
	}
}

// eval evaluates one expression and prints the result or the error. It
// returns whether evaluation succeeded.
func (s *shell) eval(expr string) bool {
	if s.echo {
		fmt.Fprintln(s.out, calculator.Tokenize(expr))
	}
	r, err := s.ctx.Eval(expr)
	if err != nil {
		s.log.Info().Str("expr", expr).Err(err).Msg("evaluation failed")
		var lerr *calculator.LexError
		if errors.As(err, &lerr) {
			fmt.Fprintln(s.out, invalidInput)
			return false
		}
		fmt.Fprintln(s.out, "error:", err)
		return false
	}
	fmt.Fprintf(s.out, "%s = "+s.verb+"\n", expr, r)
	return true
}
