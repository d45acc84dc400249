// main.go
//
// Manufacturing quality management service: complaints, 8D reports and corrective actions
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of qms.
// qms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// qms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with qms.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/qms/internal/config"
	"github.com/localnerve/qms/internal/database"
	"github.com/localnerve/qms/internal/services"
	"github.com/localnerve/qms/internal/utils"
)

// Container HEALTHCHECK entry point. Prints the readiness report and exits 1 when not ready.
func main() {
	envFile := flag.String("f", "", "optional .env file")
	timeout := flag.Duration("timeout", 5*time.Second, "overall check deadline")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("Failed to load %s: %v", *envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !run(cfg, *timeout) {
		os.Exit(1)
	}
}

// stdout carries the report, so only warnings and worse are logged
func run(cfg *config.Config, timeout time.Duration) bool {
	logger, err := utils.NewLogger("warn")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg, logger)
	if err != nil {
		report(services.HealthCheckResult{
			Status:       "unhealthy",
			Database:     "error",
			ErrorMessage: err.Error(),
		})
		return false
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := services.HealthCheck(ctx, cfg, db, logger)
	report(result)
	return result.Healthy()
}

func report(result services.HealthCheckResult) {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}
	fmt.Println(string(output))
}
