// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: mediasearch <command>")
		fmt.Println("Commands:")
		fmt.Println("  build <corpus.json> <index.gob> - Build a BM25 index gob from a JSON corpus")
		fmt.Println("  query <index.gob> <query string> - Run a query against a built index")
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "build":
		if len(os.Args) < 4 {
			log.Fatal("usage: mediasearch build <corpus.json> <index.gob>")
		}
		if err := BuildIndex(os.Args[2], os.Args[3]); err != nil {
			log.Fatal(err)
		}
	case "query":
		if len(os.Args) < 4 {
			log.Fatal("usage: mediasearch query <index.gob> <query string>")
		}
		if err := RunQuery(os.Args[2], strings.Join(os.Args[3:], " ")); err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
