package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/phishguard/internal/services"
	"github.com/dmitrijs2005/phishguard/internal/session"
)

var prompts = map[services.Kind]string{
	services.KindURL:     "Enter URL",
	services.KindEmail:   "Paste email text",
	services.KindWebsite: "Paste website HTML",
}

// Detect classifies input of the given kind. Arguments typed after the
// command are used as the input; otherwise the user is prompted, on one line
// for URLs and on several for email and website content.
func (a *App) Detect(ctx context.Context, kind services.Kind, args []string) error {
	input := strings.Join(args, " ")

	if input == "" && a.isLoggedIn() {
		var err error
		if kind == services.KindURL {
			input, err = GetSimpleText(a.reader, prompts[kind], a.out)
		} else {
			input, err = GetMultiline(a.reader, prompts[kind], a.out)
		}
		if err != nil {
			return err
		}
	}

	v, err := a.gate.Detect(ctx, kind, input)
	if err != nil {
		fmt.Fprintln(a.out, session.MessageFor(err))
		return err
	}

	fmt.Fprintf(a.out, "Result: %s\n", v)
	return nil
}
