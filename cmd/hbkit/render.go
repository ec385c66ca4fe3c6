package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hbkit"
	"github.com/dmitrymomot/hbkit/pkg/dom"
)

// renderFlags are shared by render and watch.
type renderFlags struct {
	layout         string
	locale         string
	acceptLanguage string
	data           string
	into           string
	selector       string
	manipulator    string
	out            string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.layout, "layout", "", "layout to wrap the page in")
	flags.StringVar(&f.locale, "locale", "", "locale to render for (default is the default locale)")
	flags.StringVar(&f.acceptLanguage, "accept-language", "", "negotiate the locale from an Accept-Language value")
	flags.StringVar(&f.data, "data", "", "template context file (JSON5, JSON or YAML)")
	flags.StringVar(&f.into, "into", "", "HTML document to insert the rendered markup into")
	flags.StringVar(&f.selector, "selector", "", "target element in --into (default body)")
	flags.StringVar(&f.manipulator, "manipulator", "html", "insertion mode: html, append, prepend, before, after, replaceWith")
	flags.StringVarP(&f.out, "out", "o", "", "output file (default stdout)")
}

// resolveLocale picks the locale from --accept-language, then --locale.
func (f *renderFlags) resolveLocale(kit *hbkit.Kit) string {
	if f.acceptLanguage != "" {
		locale, _ := kit.MessagesForHeader(f.acceptLanguage)
		return locale
	}
	if f.locale != "" {
		return f.locale
	}
	return kit.DefaultLocale()
}

// render produces the final output for page.
func (f *renderFlags) render(kit *hbkit.Kit, page string) (string, error) {
	m, err := dom.ParseManipulator(f.manipulator)
	if err != nil {
		return "", err
	}
	data, err := loadData(f.data)
	if err != nil {
		return "", err
	}

	locale := f.resolveLocale(kit)
	var html string
	if f.layout != "" {
		html, err = kit.RenderWithLayout(locale, f.layout, page, data)
	} else {
		html, err = kit.Render(locale, page, data)
	}
	if err != nil {
		return "", err
	}

	if f.into == "" {
		return html, nil
	}

	file, err := os.Open(f.into)
	if err != nil {
		return "", fmt.Errorf("opening document: %w", err)
	}
	defer file.Close()

	doc, err := dom.Parse(file)
	if err != nil {
		return "", err
	}
	if err := doc.Apply(f.selector, html, m); err != nil {
		return "", err
	}
	return doc.HTML()
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page",
		Example: `  hbkit render index -t ./views -m ./messages --layout main --locale de_de
  hbkit render card --data card.json5 --into page.html --selector .cards --manipulator append`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := a.newKit(cmd)
			if err != nil {
				return err
			}
			out, err := f.render(kit, args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), f.out, out)
		},
	}
	f.register(cmd)
	return cmd
}
