// cmd/spycipdb-jc/main.go
package main

import (
	"github.com/menoliu/SPyCi-PDB/internal/appshell"
	"github.com/menoliu/SPyCi-PDB/internal/jcapp"
)

func main() {
	appshell.Main(jcapp.RunContext)
}
