// Package renderer renders ledger reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/finance"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the templates folder.
var templates, _ = fs.Sub(templatesFS, "templates")

// Balance renders the balance of a single account.
func Balance(name string, balance decimal.Decimal, currency string) string {
	data := struct {
		Name    string
		Balance Amount
	}{name, NewAmount(balance, currency)}
	return renderTemplate("balance", "balance.md", nil, data)
}

// TotalBalance renders the total balance across count accounts.
func TotalBalance(total decimal.Decimal, count int, currency string) string {
	data := struct {
		Total Amount
		Count int
	}{NewAmount(total, currency), count}
	return renderTemplate("total", "total.md", nil, data)
}

// Accounts renders the list of account names.
func Accounts(names []string) string {
	return renderTemplate("accounts", "accounts.md", nil, names)
}

// Summary renders the balance and transactions of an account.
func Summary(s finance.Summary, currency string) string {
	return renderTemplate("account_summary", "account_summary.md", nil, NewAccountSummary(s, currency))
}

// Summaries renders the summary of every account followed by the total balance.
func Summaries(summaries []finance.Summary, total decimal.Decimal, currency string) string {
	v := LedgerSummary{Total: NewAmount(total, currency)}
	for _, s := range summaries {
		v.Accounts = append(v.Accounts, NewAccountSummary(s, currency))
	}
	partials := map[string]string{
		"account_summary": "account_summary.md",
	}
	return renderTemplate("summaries", "summaries.md", partials, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
