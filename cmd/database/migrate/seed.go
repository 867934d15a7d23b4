package migration

import (
	"errors"
	"food-order-api/entities"
	"io/fs"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Seed runs the ';'-separated statements in path, all in one transaction, but
// only while both the users and recipes tables are empty. A missing file is
// skipped. It reports whether any statement was executed.
func Seed(db *gorm.DB, path string) (bool, error) {
	var users, recipes int64
	if err := db.Model(&entities.User{}).Count(&users).Error; err != nil {
		return false, err
	}
	if err := db.Model(&entities.Recipe{}).Count(&recipes).Error; err != nil {
		return false, err
	}
	if users != 0 || recipes != 0 {
		return false, nil
	}

	script, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Infof("seed file %s not found, skipping", path)
			return false, nil
		}
		return false, err
	}

	log.Info("Database is empty. Seeding initial data...")
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, statement := range strings.Split(string(script), ";") {
			if strings.TrimSpace(statement) == "" {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error seeding data: %v", err)
		return false, err
	}

	log.Info("Data seeding successful.")
	return true, nil
}
