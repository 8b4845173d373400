// cmd/spycipdb-noe/main.go
package main

import (
	"github.com/menoliu/SPyCi-PDB/internal/app"
	"github.com/menoliu/SPyCi-PDB/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
