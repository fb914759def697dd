package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"todolist/internal/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.StorageDriver {
	case DriverMySQL:
		return sqlx.Connect(DriverMySQL, MySQLDSN(conf))
	case DriverPostgres:
		return sqlx.Connect(DriverPostgres, conf.PostgresDSN)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", conf.StorageDriver)
	}
}

func MySQLDSN(conf *config.Config) string {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}
