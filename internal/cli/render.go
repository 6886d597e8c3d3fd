/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"dirpx.dev/eid"
	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/builder"
	"dirpx.dev/eid/config"
	"dirpx.dev/eid/utils/msgfmt"
)

// newRenderCommand constructs the `render` subcommand.
func newRenderCommand(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render ID [REF]",
		Short: "Render an id, optionally with a reference and a message",
		Long: "Render an id the way it appears in logs. Arguments of --arg are " +
			"typed: integers, decimals and RFC 3339 timestamps are passed as such, " +
			"anything else as text.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, _ := cmd.Flags().GetString("manifest")
			locale, _ := cmd.Flags().GetString("locale")
			zone, _ := cmd.Flags().GetString("tz")
			generator, _ := cmd.Flags().GetString("generator")
			message, _ := cmd.Flags().GetString("message")
			rawArgs, _ := cmd.Flags().GetStringArray("arg")
			verbose, _ := cmd.Flags().GetBool("verbose")

			log := logger
			if !verbose {
				log = slog.New(slog.DiscardHandler)
			}

			configurators, err := renderConfigurators(manifest, locale, zone, generator)
			if err != nil {
				return err
			}
			f := eid.With(builder.New(
				builder.WithoutDiscovery(),
				builder.WithLogger(log),
				builder.WithConfigurators(configurators...),
			))

			e, err := f.New(args[0], args[1:]...)
			if err != nil {
				return err
			}
			if message == "" {
				fmt.Fprintln(cmd.OutOrStdout(), e.String())
				return nil
			}

			text, err := e.Message(message, parseArgs(rawArgs)...).Get()
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().String("manifest", "", "YAML manifest applied before the other flags")
	cmd.Flags().String("locale", "", "locale of the message, e.g. en-US or pl_PL.UTF-8")
	cmd.Flags().String("tz", "", "time zone of date and time arguments, e.g. UTC or Europe/Warsaw")
	cmd.Flags().String("generator", "", "unique token generator: default, base36, uuid, ulid or xid")
	cmd.Flags().StringP("message", "m", "", "message template, e.g. 'Files: {0}'")
	cmd.Flags().StringArrayP("arg", "a", nil, "message argument; repeat for {1}, {2}, ...")
	return cmd
}

// renderConfigurators turns the render flags into configurators. The
// manifest comes first so the flags override it.
func renderConfigurators(manifest, locale, zone, generator string) ([]apis.Configurator, error) {
	var out []apis.Configurator
	if manifest != "" {
		m, err := config.ReadManifestFile(manifest)
		if err != nil {
			return nil, err
		}
		c, err := m.Configurator()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	flags := config.Manifest{Locale: locale, TimeZone: zone, Generator: generator}
	if locale != "" {
		// Accept POSIX names as well as BCP 47 tags.
		flags.Locale = msgfmt.ParseLocale(locale).String()
	}
	if err := flags.Validate(); err != nil {
		return nil, err
	}
	c, err := flags.Configurator()
	if err != nil {
		return nil, err
	}
	return append(out, c), nil
}

// parseArgs types raw message arguments.
func parseArgs(raw []string) []any {
	out := make([]any, len(raw))
	for i, s := range raw {
		switch {
		case isInt(s):
			n, _ := strconv.ParseInt(s, 10, 64)
			out[i] = n
		case isFloat(s):
			f, _ := strconv.ParseFloat(s, 64)
			out[i] = f
		default:
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				out[i] = t
			} else {
				out[i] = s
			}
		}
	}
	return out
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
