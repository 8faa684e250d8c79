package main

import "github.com/yorozuya-cybersecurity/oracis-agent/pkg/cli"

func main() {
	cli.Execute()
}
