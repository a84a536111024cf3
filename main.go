package main

import "github.com/ninjudd/clojure/cmd"

func main() {
	cmd.Execute()
}
