package main

import (
	"os"

	"github.com/lionetto/portfolio-server/portfolioservice"
)

func main() {
	if err := portfolioservice.Run(); err != nil {
		os.Exit(1)
	}
}
