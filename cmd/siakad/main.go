package main

import (
	"flag"
	"os"

	"github.com/sekolahku/siakad/internal/bootstrap"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

func main() {
	runSeed := flag.Bool("seed", true, "create default data after migrating")
	flag.Parse()

	deps, err := bootstrap.Setup(*runSeed)
	if err != nil {
		logger.Error().Err(err).Msg("Startup failed")
		os.Exit(1)
	}
	defer deps.DB.Close()

	logger.Info().
		Str("database", deps.Config.Database.DBName).
		Bool("seeded", *runSeed).
		Msg("Schema ready")
}
