// cmd/spycipdb-cs/main.go
package main

import (
	"github.com/menoliu/SPyCi-PDB/internal/appshell"
	"github.com/menoliu/SPyCi-PDB/internal/csapp"
)

func main() {
	appshell.Main(csapp.RunContext)
}
