// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// readfile prints stored outcome tables as JSON. Arguments are pitcher ids or
// paths of table files relative to the data directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ttbt-io/strikezone/backend"
)

var (
	dataDir = flag.String("data-dir", "data", "Directory for outcome tables")
)

func main() {
	flag.Parse()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	store, err := backend.OpenStorage(*dataDir, os.Getenv("STRIKEZONE_MASTER_KEY"), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, arg := range flag.Args() {
		name := strings.TrimPrefix(strings.TrimPrefix(arg, *dataDir), "/")
		if !strings.HasSuffix(name, ".json") {
			name = path.Join(backend.TablesDir, url.PathEscape(name)+".json")
		}
		var rec backend.TableRecord
		if err := store.ReadDataFile(name, &rec); err != nil {
			logger.Error().Err(err).Str("file", name).Msg("Failed to read table")
			continue
		}
		fmt.Printf("=========== %s ===========\n", name)
		if err := enc.Encode(rec); err != nil {
			logger.Error().Err(err).Str("file", name).Msg("JSON")
		}
	}
}
