// Package main provides the CLI entrypoint for tpom.
//
// tpom generates a Maven descriptor for each declared publication and embeds
// it into a jar at META-INF/maven/<groupId>/<artifactId>/pom.xml:
//   - jar: resolve bindings and write jars
//   - check: report problems without writing anything
//   - pom: print one publication's descriptor
//   - inspect: list the descriptors embedded in a jar
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
