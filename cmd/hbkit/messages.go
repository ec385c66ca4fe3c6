package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hbkit/pkg/i18n"
)

func newMessagesCmd(a *app) *cobra.Command {
	var locale, acceptLanguage string
	var all bool

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Print the messages derived for a locale as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kit, err := a.newKit(cmd)
			if err != nil {
				return err
			}
			if all {
				return writeJSON(cmd.OutOrStdout(), kit.Bundles())
			}

			var msgs i18n.Messages
			switch {
			case acceptLanguage != "":
				locale, msgs = kit.MessagesForHeader(acceptLanguage)
			case locale != "":
				msgs = kit.Messages(locale)
			default:
				locale = kit.DefaultLocale()
				msgs = kit.Messages(locale)
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"locale":   i18n.NormalizeLocale(locale),
				"messages": msgs,
			})
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "locale to derive messages for")
	cmd.Flags().StringVar(&acceptLanguage, "accept-language", "", "negotiate the locale from an Accept-Language value")
	cmd.Flags().BoolVar(&all, "all", false, "print every loaded bundle instead")
	return cmd
}
