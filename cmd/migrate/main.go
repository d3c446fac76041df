// Command migrate applies the .sql files under MIGRATIONS_DIR (default
// "migrations") to the configured database, in lexical order.
package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/Navya-Das/HotelReservation/internal/adapters/observability"
	"github.com/Navya-Das/HotelReservation/internal/shared"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = "migrations"
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("read migrations dir failed")
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		log.Fatal().Str("dir", dir).Msg("no .sql files found")
	}
	sort.Strings(files)

	dsn := cfg.MySQLDSN
	if strings.Contains(dsn, "?") {
		dsn += "&multiStatements=true"
	} else {
		dsn += "?multiStatements=true"
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	for _, f := range files {
		stmts, err := os.ReadFile(f)
		if err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("read migration failed")
		}
		if _, err := db.Exec(string(stmts)); err != nil {
			log.Fatal().Err(err).Str("file", f).Msg("apply migration failed")
		}
		log.Info().Str("file", f).Msg("migration applied")
	}
	log.Info().Int("count", len(files)).Msg("migrations complete")
}
