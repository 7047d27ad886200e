package main

import (
	"flag"

	"github.com/etnz/finance/cmd"
	"github.com/etnz/finance/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// accounts predicts the account names of the ledger in use.
//
// Completion runs before the command line is parsed, so the ledger file is
// resolved from the environment and the configuration file only.
var accounts = complete.PredictFunc(func(prefix string) []string {
	if err := cmd.LoadConfig(flag.NewFlagSet("completion", flag.ContinueOnError)); err != nil {
		return nil
	}
	ledger, err := cmd.OpenLedger()
	if err != nil {
		return nil
	}
	return ledger.Accounts()
})

// completion describes the command line for shell completion.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}

	for _, name := range []string{"balance", "summary"} {
		sub[name].Args = accounts
	}
	for _, name := range []string{"income", "expense", "post"} {
		sub[name].Flags = map[string]complete.Predictor{
			"a": accounts,
			"d": predict.Something,
		}
	}
	sub["post"].Flags["t"] = predict.Set{"income", "expense"}
	sub["fmt"].Flags = map[string]complete.Predictor{"n": predict.Nothing}
	sub["topic"].Args = complete.PredictFunc(func(prefix string) []string {
		topics, _ := docs.GetAllTopics()
		return topics
	})
	sub["help"] = &complete.Command{Args: predict.Set(commandNames())}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
			"config":      predict.Files("*.yaml"),
			"currency":    predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"plain":       predict.Nothing,
			"v":           predict.Nothing,
		},
	}
}

func commandNames() []string {
	var names []string
	for _, c := range cmd.Commands {
		names = append(names, c.Name())
	}
	return names
}
