// sherlock CLI - command-line client for the Ansys Sherlock gRPC service.
package main

import "github.com/gosherlock/sherlock/pkg/cli"

func main() {
	cli.Execute()
}
