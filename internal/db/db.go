package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"floodwatch/internal/model"
)

// Open returns a connected GORM DB instance for the named driver ("mysql" or "sqlite").
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if db.Dialector.Name() == "mysql" {
		for _, stmt := range binaryCollationDDL() {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("set binary collation: %w", err)
			}
		}
	}
	return nil
}

// binaryColumns are compared byte for byte. MySQL's default _ci collation
// would fold case in lookups and unique indexes.
var binaryColumns = []struct {
	table, column string
	size          int
}{
	{"users", "email", 255},
	{"users", "username", 100},
	{"posts", "organization", 255},
}

func binaryCollationDDL() []string {
	stmts := make([]string, 0, len(binaryColumns))
	for _, c := range binaryColumns {
		stmts = append(stmts, fmt.Sprintf(
			"ALTER TABLE `%s` MODIFY `%s` varchar(%d) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
			c.table, c.column, c.size))
	}
	return stmts
}

// Reset drops every table. Used when RESET_DB=true.
func Reset(db *gorm.DB) error {
	tables := model.All()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
