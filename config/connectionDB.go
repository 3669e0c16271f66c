package config

import (
	"log"
	"os"

	"getexposure/internal/entity"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectionDb() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disable prepared statements completely
	}), &gorm.Config{
		PrepareStmt: false,
	})
	if err != nil {
		log.Fatalf("error connect to database %s", err)
	}
	return db
}

// Migrate keeps the content tables in step with the entity structs. Ordering
// matters only for the solution FK cascade.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Admin{},
		&entity.HomeContent{},
		&entity.Position{},
		&entity.CaseStudy{},
		&entity.SolutionType{},
		&entity.SolutionStep{},
		&entity.ContactContent{},
		&entity.ContactInfo{},
		&entity.StatsContent{},
		&entity.StatItem{},
		&entity.LogoImage{},
		&entity.GeneralImage{},
		&entity.Settings{},
		&entity.AuditLog{},
	)
}
