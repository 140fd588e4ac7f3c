//go:build ignore

// Regenerates scan/known.go from the IANA service registry.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const registry = "https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv"

func main() {

	resp, err := http.Get(registry)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "package scan\n\n// data from %s\n// regenerate the full table with tools/update-ports.go\nvar knownPorts = map[int]string{\n", registry)

	seen := map[int]bool{}
	reader := csv.NewReader(resp.Body)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		if len(record) < 3 || record[2] != "tcp" || record[0] == "" {
			continue
		}
		port, err := strconv.Atoi(record[1])
		if err != nil || seen[port] {
			continue
		}
		seen[port] = true

		fmt.Fprintf(buf, "\t%d: %q,\n", port, record[0])
	}

	buf.WriteString("}\n")

	source, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("./scan/known.go", source, 0644); err != nil {
		log.Fatal(err)
	}
	log.Infof("Wrote %d services", len(seen))
}
