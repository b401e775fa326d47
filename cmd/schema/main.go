// Command schema regenerates the JSON schema embedded in pkg/config.
// Run via go:generate from the config package.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/umputun/newspulse/pkg/config"
)

func main() {
	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	schema := jsonschema.Reflect(&config.Config{})
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	if err := os.WriteFile(out, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write %s: %v", out, err)
	}
	log.Printf("schema written to %s", out)
}
