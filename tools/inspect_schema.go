// inspect_schema.go
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
	"flag"
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/qms/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Prints the schema AutoMigrate produces on SQLite: columns per table, then index DDL.
func main() {
	dsn := flag.String("dsn", "file::memory:?_pragma=foreign_keys(1)", "SQLite DSN to migrate and inspect")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		log.Fatal(err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	tables, err := db.Migrator().GetTables()
	if err != nil {
		log.Fatal(err)
	}

	for _, table := range tables {
		fmt.Printf("\n=== %s ===\n", table)

		columns, err := db.Migrator().ColumnTypes(table)
		if err != nil {
			log.Fatalf("columns of %s: %v", table, err)
		}
		for _, col := range columns {
			nullable, _ := col.Nullable()
			pk, _ := col.PrimaryKey()
			fmt.Printf("  %-28s %-12s null=%-5t pk=%t\n", col.Name(), col.DatabaseTypeName(), nullable, pk)
		}

		var indexes []string
		if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'index' AND tbl_name = ? AND sql IS NOT NULL", table).
			Scan(&indexes).Error; err != nil {
			log.Fatalf("indexes of %s: %v", table, err)
		}
		for _, idx := range indexes {
			fmt.Println("  " + idx)
		}
	}
}
