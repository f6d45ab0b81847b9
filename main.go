package main

import "github.com/nutdoc/nutfilter/cmd"

var version = "v2.0.1"

func main() {
	cmd.Execute(version)
}
