package cmd

import (
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zostay/go-mimevisitor/internal/eml"
	"github.com/zostay/go-mimevisitor/message"
	"github.com/zostay/go-mimevisitor/message/walker"
)

func parseFile(path string) message.Part {
	msgFile, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer func() { _ = msgFile.Close() }()

	msg, err := eml.Parse(msgFile)
	if err != nil {
		panic(err)
	}

	return msg
}

// rememberTextBodies records the current body of every text leaf so the
// rewritten bodies can be diffed against them afterward.
func rememberTextBodies(msg message.Part) map[message.Part]string {
	originals := map[message.Part]string{}
	var w walker.PartWalker = func(part message.Part) error {
		originals[part] = string(part.GetBody())
		return nil
	}
	if err := w.WalkTextLeaves(msg); err != nil {
		panic(err)
	}
	return originals
}

func showTextDiffs(msg message.Part, originals map[message.Part]string) {
	dmp := diffmatchpatch.New()
	var w walker.PartWalker = func(part message.Part) error {
		fmt.Printf("part = %s\n", part.GetMediaType())
		diffs := dmp.DiffMain(originals[part], string(part.GetBody()), false)
		fmt.Println(dmp.DiffPrettyText(diffs))
		return nil
	}
	if err := w.WalkTextLeaves(msg); err != nil {
		panic(err)
	}
}
