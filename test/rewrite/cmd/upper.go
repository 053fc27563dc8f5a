package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimevisitor/message"
	"github.com/zostay/go-mimevisitor/message/rewrite"
)

var upperCmd = &cobra.Command{
	Use:   "upper message",
	Short: "Uppercase every text part of a message and show the diffs",
	Args:  cobra.ExactArgs(1),
	Run:   RunUpper,
}

func init() {
	rootCmd.AddCommand(upperCmd)
}

func RunUpper(cmd *cobra.Command, args []string) {
	msg := parseFile(args[0])
	originals := rememberTextBodies(msg)

	err := rewrite.AllContent(msg, func(_ message.Part, text string) (string, error) {
		return strings.ToUpper(text), nil
	})
	if err != nil {
		panic(err)
	}

	showTextDiffs(msg, originals)
}
