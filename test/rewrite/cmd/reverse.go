package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimevisitor/message"
	"github.com/zostay/go-mimevisitor/message/rewrite"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse-lines message",
	Short: "Reverse each line of every text part of a message and show the diffs",
	Args:  cobra.ExactArgs(1),
	Run:   RunReverse,
}

func init() {
	rootCmd.AddCommand(reverseCmd)
}

func RunReverse(cmd *cobra.Command, args []string) {
	msg := parseFile(args[0])
	originals := rememberTextBodies(msg)

	err := rewrite.AllLines(msg, func(_ message.Part, line string) (string, error) {
		return reverseLine(line), nil
	})
	if err != nil {
		panic(err)
	}

	showTextDiffs(msg, originals)
}

// reverseLine reverses the runes of a line while keeping its terminator at
// the end.
func reverseLine(line string) string {
	text := strings.TrimRight(line, "\r\n")
	nl := line[len(text):]

	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes) + nl
}
