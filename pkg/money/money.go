package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with the locale's thousands grouping.
// The facility currency has no subunit in normal display, so amounts
// are whole int64 units end to end.
type Formatter struct {
	p *message.Printer
}

func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Vietnamese
	}
	return &Formatter{p: message.NewPrinter(tag)}
}

func (f *Formatter) Format(amount int64) string {
	return f.p.Sprintf("%d", amount)
}
