package main

import "github.com/thirdweb-dev/etl/cmd"

func main() {
	cmd.Execute()
}
