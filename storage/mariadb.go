package veritrans_integration_storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rotisserie/eris"
	viConfig "github.com/voxtmault/veritrans-integration/config"
)

var dbCon *sql.DB

func validateMariaConfig(cfg *viConfig.MariaConfig) error {
	if cfg.DBHost == "" {
		return eris.New("database host is empty")
	}
	if cfg.DBUser == "" {
		return eris.New("database user is empty")
	}
	if cfg.DBName == "" {
		return eris.New("database name is empty")
	}

	return nil
}

// mariaDSN builds the driver connection string. Times are scanned into time.Time.
func mariaDSN(cfg *viConfig.MariaConfig) string {
	dsn := mysql.NewConfig()
	dsn.User = cfg.DBUser
	dsn.Passwd = cfg.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%s", cfg.DBHost, cfg.DBPort)
	dsn.DBName = cfg.DBName
	dsn.TLSConfig = cfg.TSLConfig
	dsn.AllowNativePasswords = cfg.AllowNativePasswords
	dsn.MultiStatements = cfg.MultiStatements
	dsn.ParseTime = true

	return dsn.FormatDSN()
}

func InitMariaDB(cfg *viConfig.MariaConfig) (*sql.DB, error) {

	slog.Debug("Validating MariaDB Config")
	if err := validateMariaConfig(cfg); err != nil {
		return nil, eris.Wrap(err, "invalid mariadb configuration")
	}

	db, err := sql.Open(cfg.DBDriver, mariaDSN(cfg))
	if err != nil {
		return nil, eris.Wrap(err, "opening database connection")
	}

	db.SetMaxOpenConns(int(cfg.MaxOpenConns))
	db.SetMaxIdleConns(int(cfg.MaxIdleConns))
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "pinging database")
	}

	slog.Debug("Successfully opened database connection")
	dbCon = db

	return dbCon, nil
}

func CloseMariaDB() error {
	if dbCon == nil {
		slog.Info("Database connection is already closed or is not opened in the first place")
		return nil
	}

	if err := dbCon.Close(); err != nil {
		return eris.Wrap(err, "closing database connection")
	}
	dbCon = nil

	return nil
}
