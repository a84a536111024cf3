// Package repl implements an interactive read-print loop over the reader.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ninjudd/clojure/reader"
)

// RunRepl reads forms interactively and prints each completed form back.
// Input ending in the middle of a form is buffered and reading resumes on the
// next line under a continuation prompt.
func RunRepl(prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) == 0 {
			continue
		}
		forms, err := reader.ReadAll("repl", strings.NewReader(string(line)))
		if reader.IsCondition(err, reader.UnexpectedEOF) {
			// An incomplete form; keep reading lines.
			buf = line
			rl.SetPrompt(contPrompt)
			continue
		}
		if err != nil {
			errln(err)
			continue
		}
		for _, form := range forms {
			fmt.Println(form)
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
