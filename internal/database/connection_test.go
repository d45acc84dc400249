// connection_test.go
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

package database

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/localnerve/qms/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	base := config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBDatabase: "qms",
		DBUser:     "qms",
		DBPassword: "secret",
	}

	for _, dbType := range []string{"postgres", "postgresql", "mysql", "mariadb", "sqlite", "sqlserver", "mssql"} {
		cfg := base
		cfg.DBType = dbType
		d, err := Dialector(&cfg)
		require.NoError(t, err, dbType)
		assert.NotNil(t, d, dbType)
	}

	cfg := base
	cfg.DBType = "oracle"
	_, err := Dialector(&cfg)
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "3306",
		DBDatabase: "qms",
		DBUser:     "qms",
		DBPassword: "p@ss:w/rd",
		DBSSL:      true,
	}

	parsed, err := mysqldriver.ParseDSN(MySQLDSN(cfg))
	require.NoError(t, err)
	assert.Equal(t, "qms", parsed.User)
	assert.Equal(t, "p@ss:w/rd", parsed.Passwd)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "qms", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, time.UTC, parsed.Loc)
	assert.Equal(t, "true", parsed.TLSConfig)
	assert.Equal(t, "utf8mb4_unicode_ci", parsed.Collation)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, LogLevel("debug"))
	assert.Equal(t, logger.Warn, LogLevel("info"))
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Error, LogLevel("error"))
}
