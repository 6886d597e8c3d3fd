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
	"time"

	"github.com/spf13/cobra"
)

// IDLayout is the time layout of ids minted by `eid new`.
const IDLayout = "20060102:150405"

// now is replaced in tests.
var now = time.Now

// newNewCommand constructs the `new` subcommand.
func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print a fresh id made of the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			utc, _ := cmd.Flags().GetBool("utc")
			count, _ := cmd.Flags().GetInt("count")
			if count < 1 {
				return fmt.Errorf("invalid --count %d; must be at least 1", count)
			}

			t := now()
			if utc {
				t = t.UTC()
			}
			// Consecutive ids are one second apart so they stay distinct.
			for i := range count {
				fmt.Fprintln(cmd.OutOrStdout(), t.Add(time.Duration(i)*time.Second).Format(IDLayout))
			}
			return nil
		},
	}
	cmd.Flags().Bool("utc", false, "use UTC instead of the local time zone")
	cmd.Flags().IntP("count", "n", 1, "number of ids to print")
	return cmd
}
