package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ninjudd/clojure/lisp"
	"github.com/ninjudd/clojure/reader"
)

var readExpression bool

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read lisp source",
	Long:  `Read lisp source from files or the command line and print each parsed form.`,
	Run: func(cmd *cobra.Command, args []string) {
		forms, err := readForms(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, form := range forms {
			fmt.Println(form)
		}
	},
}

func readForms(args []string) ([]*lisp.LVal, error) {
	if readExpression {
		var forms []*lisp.LVal
		for _, arg := range args {
			vs, err := reader.ReadAll("argument", strings.NewReader(arg))
			if err != nil {
				return nil, err
			}
			forms = append(forms, vs...)
		}
		return forms, nil
	}
	var forms []*lisp.LVal
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		vs, err := reader.ReadAll(path, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		forms = append(forms, vs...)
	}
	return forms, nil
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().BoolVarP(&readExpression, "expression", "e", false,
		"Interpret arguments as lisp source text")
}
