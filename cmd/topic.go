package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the fin manual" }
func (*topicCmd) Usage() string {
	usage := `fin topic [<topic>...]

  Prints the manual pages about accounts, transactions, the ledger file and
  its configuration. "*" prints every page, no topic prints the overview.

Topics:
`
	topics, _ := docs.GetAllTopics()
	for _, t := range topics {
		usage += "  " + t + "\n"
	}
	return usage
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'fin help topic' for the list of topics.\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
