package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mimevisitor/test/rewrite/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
