package models

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the database and configures the connection pool.
//
// dsn is the path to the SQLite database file. When DB_HOST is set, a
// PostgreSQL connection is used instead and dsn is ignored.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	var db *gorm.DB
	var err error

	if host, ok := os.LookupEnv("DB_HOST"); ok {
		log.Debug().Msg("DB_HOST is set, using postgresql")

		pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.Open(pgDSN), config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	} else {
		// Cascading deletes need the foreign_keys pragma, sqlite does not
		// enforce foreign keys by default
		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database object: %w", err)
		}

		// Get new connections after one hour
		sqlDB.SetConnMaxLifetime(time.Hour)

		// This is done to prevent SQLITE_BUSY errors.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("tripfolio:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("tripfolio:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("tripfolio:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("tripfolio:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("tripfolio:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// createUpdateCallback inspects errors on create and update operations and
// replaces known constraint violations with their sentinel errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// The activity-member pairing is keyed by the (activity, member) pair
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: activity_members.activity_id, activity_members.member_id") {
		db.Error = ErrActivityMemberExists
		return
	}

	// Each member can rate an activity once
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: activity_ratings.activity_id, activity_ratings.member_id") {
		db.Error = ErrActivityRatingExists
		return
	}

	// PostgreSQL reports a duplicate key as SQLSTATE 23505 with the name
	// of the violated constraint
	var pgErr *pgconn.PgError
	if errors.As(db.Error, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "activity_members_pkey":
			db.Error = ErrActivityMemberExists
		case "activity_rating_activity_member":
			db.Error = ErrActivityRatingExists
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Destination{}, Activity{}, Member{}, ActivityMember{}, Expense{}, ExpenseSplit{}, ActivityRating{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
