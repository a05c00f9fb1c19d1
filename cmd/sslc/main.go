// Command sslc is the SSL compiler front end.
package main

import (
	"os"

	"github.com/sslang/sslc/cmd/sslc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
