// spantext CLI - renders OpenTelemetry trace spans as plain text
package main

import "github.com/getmockd/spantext/pkg/cli"

func main() {
	cli.Execute()
}
