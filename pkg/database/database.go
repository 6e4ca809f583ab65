package database

import (
	"fmt"
	"kidquest_backend/internal/config"
	"kidquest_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection. Schema migration and seeding run in
// debug mode or when forced from the command line.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.ChildProfile{},
		&model.AgeGroup{},
		&model.LearningModule{},
		&model.Game{},
		&model.GameLevel{},
		&model.Task{},
		&model.TaskVersion{},
		&model.Attempt{},
		&model.TaskAnswer{},
		&model.Badge{},
		&model.ChildBadge{},
		&model.ChildLevelProgress{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default age groups so a fresh install is browsable.
	var agCount int64
	db.Model(&model.AgeGroup{}).Count(&agCount)
	if agCount == 0 {
		defaultGroups := []model.AgeGroup{
			{Code: "toddlers", Title: "Малюки", MinAge: 3, MaxAge: 5},
			{Code: "preschool", Title: "Дошкільнята", MinAge: 5, MaxAge: 7},
			{Code: "school", Title: "Школярі", MinAge: 7, MaxAge: 10},
		}
		for _, g := range defaultGroups {
			db.Create(&g)
		}
	}

	// Default badge set; codes encode metric + threshold.
	var badgeCount int64
	db.Model(&model.Badge{}).Count(&badgeCount)
	if badgeCount == 0 {
		defaultBadges := []model.Badge{
			{Code: "FINISHED_1", Title: "Перша гра", Description: "Заверши свою першу гру", IsActive: true},
			{Code: "FINISHED_5", Title: "Досвідчений гравець", Description: "Заверши 5 ігор", IsActive: true},
			{Code: "STARS_50", Title: "Зіркове небо", Description: "Збери 50 зірок", IsActive: true},
			{Code: "LOGIN_DAYS_7", Title: "Тиждень разом", Description: "Грай 7 різних днів", IsActive: true},
			{Code: "PERFECT_GAMES_3", Title: "Без помилок", Description: "Пройди 3 ігри без жодної помилки", IsActive: true},
		}
		for _, b := range defaultBadges {
			db.Create(&b)
		}
	}

	return db, nil
}
