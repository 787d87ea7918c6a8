package main

import (
	"parcel-ledger/internal/cli"
)

func main() {
	cli.Execute()
}
