// Copyright 2026 The swaggerguard Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thammet/swaggerguard/internal/metadata"
)

func (app *app) catalogCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "catalog [flags]",
		Short: "Write the metadata catalog used to resolve referenced types",
		Long: `Write the built-in metadata catalog merged with all references. The output can be
edited and passed back with --reference; MessagePack output loads faster.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := catalogFormat(format, output)
			if err != nil {
				return err
			}

			c, err := app.a.Catalog()
			if err != nil {
				return err
			}

			if output == "" {
				return c.Encode(cmd.OutOrStdout(), f)
			}

			return writeCatalog(output, c, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "catalog format (yaml|msgpack, default: from --output, else yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of standard output")

	return cmd
}

func writeCatalog(path string, c *metadata.Catalog, f metadata.Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, file.Close()) }()

	return c.Encode(file, f)
}

func catalogFormat(format, output string) (metadata.Format, error) {
	switch format {
	case "yaml":
		return metadata.YAML, nil

	case "msgpack":
		return metadata.MessagePack, nil

	case "":
		if output == "" {
			return metadata.YAML, nil
		}

		return metadata.FormatOf(output)

	default:
		return 0, fmt.Errorf("unsupported format %q (must be yaml or msgpack)", format)
	}
}
