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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/eid/apis"
	"dirpx.dev/eid/strategy"
)

// ErrInvalidIDs is returned by `eid validate` when any id is rejected.
var ErrInvalidIDs = errors.New("eid(cli): some ids are invalid")

// newValidateCommand constructs the `validate` subcommand.
func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate ID...",
		Short: "Check ids against a pattern or validation tag",
		Long: "Check ids against a regular expression (--pattern) or a go-playground " +
			"validation tag (--tag). Without either, ids must look like " + strategy.TimestampPattern + ".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, _ := cmd.Flags().GetString("pattern")
			tag, _ := cmd.Flags().GetString("tag")

			v, err := selectValidator(pattern, tag)
			if err != nil {
				return err
			}

			invalid := 0
			for _, id := range args {
				verdict := "valid"
				if !v.IsValid(id) {
					verdict = "invalid"
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, verdict)
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidIDs, invalid, len(args))
			}
			return nil
		},
	}
	cmd.Flags().String("pattern", "", "regular expression ids must match")
	cmd.Flags().String("tag", "", "go-playground validation tag, e.g. 'required,len=15'")
	cmd.MarkFlagsMutuallyExclusive("pattern", "tag")
	return cmd
}

func selectValidator(pattern, tag string) (apis.Validator, error) {
	switch {
	case pattern != "":
		return strategy.PatternValidator(pattern)
	case tag != "":
		return strategy.TagValidator(tag)
	default:
		return strategy.TimestampValidator(), nil
	}
}
