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

// Package cli contains the Cobra commands of the eid tool.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCommand constructs the root command of the eid tool and registers
// its subcommands. Output goes to the command's configured writers, so
// callers may redirect it with SetOut and SetErr.
func NewRootCommand(logger *slog.Logger) *cobra.Command {
	if logger == nil {
		logger = slog.Default()
	}
	root := &cobra.Command{
		Use:           "eid",
		Short:         "Exception identifier tool",
		Long:          "eid mints new exception ids, renders ids with messages and checks ids against validation rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log configuration events to stderr")

	root.AddCommand(
		newNewCommand(),
		newRenderCommand(logger),
		newValidateCommand(),
	)
	return root
}
