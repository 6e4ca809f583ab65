// Demo content seeder.
//
// Fills an empty database with one learning module, a matching game with
// three levels and a handful of tasks, so the play flow can be exercised
// right after the first boot.
//
// Usage: go run scripts/seed_content.go
package main

import (
	"encoding/json"
	"log"

	"kidquest_backend/internal/config"
	"kidquest_backend/internal/model"
	"kidquest_backend/pkg/database"
	"kidquest_backend/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var count int64
	db.Model(&model.Game{}).Count(&count)
	if count > 0 {
		log.Println("Games already present, nothing to seed")
		return
	}

	var group model.AgeGroup
	if err := db.Where("code = ?", "preschool").First(&group).Error; err != nil {
		log.Fatalf("Default age groups missing, run migration first: %v", err)
	}

	module := model.LearningModule{
		Code:        "animals",
		Title:       "Тварини",
		Description: "Знайомство зі світом тварин",
		AgeGroupID:  group.ID,
		Position:    1,
		IsActive:    true,
	}
	if err := db.Create(&module).Error; err != nil {
		log.Fatalf("Failed to create module: %v", err)
	}

	game := model.Game{
		ModuleID:    module.ID,
		Title:       "Хто це?",
		Description: "Знайди пару: тварина та її назва",
		IsActive:    true,
	}
	if err := db.Create(&game).Error; err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	levelTitles := []string{"Свійські тварини", "Дикі тварини", "Морські мешканці"}
	for i, title := range levelTitles {
		level := model.GameLevel{
			GameID:      game.ID,
			Difficulty:  1,
			LevelNumber: i + 1,
			Title:       title,
			IsActive:    true,
		}
		if err := db.Create(&level).Error; err != nil {
			log.Fatalf("Failed to create level: %v", err)
		}
		seedLevelTasks(db, game.ID, level.ID, i)
	}

	log.Println("Demo content seeded")
}

type taskSeed struct {
	prompt  string
	data    string
	correct string
}

var levelTasks = [][]taskSeed{
	{
		{
			prompt:  "З'єднай тварину з її назвою",
			data:    `{"left":["🐶","🐱"],"right":["Собака","Кіт"]}`,
			correct: `{"pairs":[{"left":"🐶","right":"Собака"},{"left":"🐱","right":"Кіт"}]}`,
		},
		{
			prompt:  "Хто каже «му»?",
			data:    `{"options":["Корова","Коза","Кінь"]}`,
			correct: `{"answer":"Корова"}`,
		},
	},
	{
		{
			prompt:  "Знайди царя звірів",
			data:    `{"options":["Лев","Вовк","Лисиця"]}`,
			correct: `{"answer":"Лев"}`,
		},
		{
			prompt:  "З'єднай тварину з її домівкою",
			data:    `{"left":["🐻","🐺"],"right":["Барліг","Ліс"]}`,
			correct: `{"pairs":[{"left":"🐻","right":"Барліг"},{"left":"🐺","right":"Ліс"}]}`,
		},
	},
	{
		{
			prompt:  "Хто живе у морі?",
			data:    `{"options":["Дельфін","Їжак","Сова"]}`,
			correct: `{"answer":"Дельфін"}`,
		},
	},
}

func seedLevelTasks(db *gorm.DB, gameID, levelID uint, levelIdx int) {
	for pos, seed := range levelTasks[levelIdx] {
		lid := levelID
		task := model.Task{
			GameID:   gameID,
			LevelID:  &lid,
			Position: pos + 1,
			IsActive: true,
		}
		if err := db.Create(&task).Error; err != nil {
			log.Fatalf("Failed to create task: %v", err)
		}

		version := model.TaskVersion{
			TaskID:        task.ID,
			Version:       1,
			Difficulty:    1,
			Prompt:        seed.prompt,
			Data:          json.RawMessage(seed.data),
			CorrectAnswer: json.RawMessage(seed.correct),
			IsCurrent:     true,
		}
		if err := db.Create(&version).Error; err != nil {
			log.Fatalf("Failed to create task version: %v", err)
		}
	}
}
