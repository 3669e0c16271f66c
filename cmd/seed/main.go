// Seed populates an empty database with the admin account and the default
// site content. Running it twice is safe: existing rows are left alone.
package main

import (
	"os"

	"getexposure/config"
	"getexposure/internal/entity"
	"getexposure/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	db := config.ConnectionDb()
	if err := config.Migrate(db); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	seedAdmin(db, logger)
	seedSingletons(db, logger)
	seedCollections(db, logger)

	logger.Info("seed complete")
}

func seedAdmin(db *gorm.DB, logger *logrus.Logger) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		logger.Fatal("ADMIN_PASSWORD is required")
	}

	var count int64
	if err := db.Model(&entity.Admin{}).Where("username = ?", username).Count(&count).Error; err != nil {
		logger.WithError(err).Fatal("admin lookup failed")
	}
	if count > 0 {
		logger.WithField("username", username).Info("admin already present")
		return
	}

	hash, err := service.BcryptPasswordHasher{}.Hash(password)
	if err != nil {
		logger.WithError(err).Fatal("password hash failed")
	}
	if err := db.Create(&entity.Admin{Username: username, PasswordHash: hash}).Error; err != nil {
		logger.WithError(err).Fatal("admin create failed")
	}
	logger.WithField("username", username).Info("admin created")
}

func seedSingletons(db *gorm.DB, logger *logrus.Logger) {
	createIfEmpty(db, logger, "home content", &entity.HomeContent{}, &entity.HomeContent{
		HeroTitle1:    "Grow your",
		HeroTitle2:    "exposure",
		TypedWords:    "traffic,leads,revenue",
		SubHeadline:   "Marketing that compounds",
		Description:   "We build campaigns that turn attention into customers.",
		CTAText:       "Book a call",
		CTALink:       "https://calendly.com/getexposure/intro",
		BigStat:       "250+",
		StatsText1:    "campaigns shipped",
		StatsText2:    "industries served",
		StatsText3:    "markets reached",
		JourneyTitle1: "Your journey",
		JourneyTitle2: "starts here",
		JourneyDesc:   "From first audit to full-funnel growth.",
	})

	createIfEmpty(db, logger, "contact content", &entity.ContactContent{}, &entity.ContactContent{
		MainTitle1:      "Let's talk",
		MainTitle2:      "growth",
		MainDescription: "Tell us where you are and where you want to be.",
		BenefitsTitle:   "What you get",
		ContactTitle:    "Reach us",
		TrustBadge:      "Trusted by 250+ brands",
	})

	createIfEmpty(db, logger, "stats content", &entity.StatsContent{}, &entity.StatsContent{
		Title:       "Results that speak",
		Description: "Numbers from real engagements.",
	})

	createIfEmpty(db, logger, "settings", &entity.Settings{}, &entity.Settings{
		SiteName:            "GetExposure",
		SiteDescription:     "Growth marketing for ambitious brands.",
		DefaultCalendlyLink: "https://calendly.com/getexposure/intro",
		Email:               "hello@getexposure.example",
		Phone:               "+1 555 0100",
		Location:            "Remote, worldwide",
		BusinessHours:       "Mon-Fri 9:00-18:00",
	})
}

func seedCollections(db *gorm.DB, logger *logrus.Logger) {
	createIfEmpty(db, logger, "positions", &entity.Position{}, &entity.Position{
		Slug:         "performance-marketer",
		Title:        "Performance Marketer",
		Subtitle:     "Paid acquisition, full remote",
		Description:  "Own paid channels end to end for a portfolio of clients.",
		CalendlyLink: "https://calendly.com/getexposure/apply",
		DisplayOrder: 1,
		IsActive:     true,
	})

	createIfEmpty(db, logger, "solutions", &entity.SolutionType{}, &entity.SolutionType{
		Slug:         "paid-social",
		Title:        "Paid Social",
		Description:  "Creative-led campaigns across the major platforms.",
		VideoURL:     "https://videos.getexposure.example/paid-social.mp4",
		CalendlyLink: "https://calendly.com/getexposure/paid-social",
		Steps: []entity.SolutionStep{
			{Title: "Audit", Description: "We map your current funnel.", StepOrder: 1},
			{Title: "Launch", Description: "Creatives and campaigns go live.", StepOrder: 2},
			{Title: "Scale", Description: "Winners get budget, losers get cut.", StepOrder: 3},
		},
	})

	createIfEmpty(db, logger, "stat items", &entity.StatItem{}, &entity.StatItem{
		Value:    "250",
		Suffix:   "+",
		Label:    "Campaigns shipped",
		Icon:     "rocket",
		Order:    1,
		IsActive: true,
	})

	createIfEmpty(db, logger, "contact items", &entity.ContactInfo{}, &entity.ContactInfo{
		Type:     entity.ContactInfoItem,
		Icon:     "mail",
		Title:    "Email",
		Details:  "hello@getexposure.example",
		Order:    1,
		IsActive: true,
	})
}

func createIfEmpty(db *gorm.DB, logger *logrus.Logger, name string, model any, row any) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		logger.WithError(err).WithField("table", name).Fatal("count failed")
	}
	if count > 0 {
		logger.WithField("table", name).Info("already seeded")
		return
	}
	if err := db.Create(row).Error; err != nil {
		logger.WithError(err).WithField("table", name).Fatal("seed failed")
	}
	logger.WithField("table", name).Info("seeded")
}
