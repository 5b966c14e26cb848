// Package kitchentag issues the daily-resetting 4-digit prep tags that
// identify order items to kitchen and butchery staff.
package kitchentag

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"gorm.io/gorm"
)

// maxTagNumber is the last tag of the day; the counter wraps back to 1 after it.
// A wrapped tag can collide with a still-open ticket from earlier the same day.
const maxTagNumber = 9999

const dateLayout = "2006-01-02"

// Next atomically increments and returns the prep-tag counter for the given
// day, formatted as a zero-padded 4-digit string ("0001".."9999"). The first
// call for a new date starts at 1. Counters for distinct dates are independent.
//
// The per-date row is taken with a row-level lock so two concurrent calls for
// the same date never receive the same number. When two callers race to insert
// the very first row for a date, the unique index on the date column rejects
// one of them and the call is retried against the now-existing row.
func Next(db *gorm.DB, day time.Time) (string, error) {
	date := day.Format(dateLayout)

	tag, err := next(db, date)
	if err != nil && isDuplicateKey(err) {
		tag, err = next(db, date)
	}
	return tag, err
}

func next(db *gorm.DB, date string) (string, error) {
	var number int
	err := db.Transaction(func(tx *gorm.DB) error {
		var counter models.KitchenTagCounter
		err := config.LockForUpdate(tx).
			Where("date = ?", date).
			First(&counter).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			counter = models.KitchenTagCounter{Date: date, LastNumber: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
			number = counter.LastNumber
			return nil
		}
		if err != nil {
			return err
		}

		counter.LastNumber++
		if counter.LastNumber > maxTagNumber {
			counter.LastNumber = 1 // daily sequence wraps after 9999
		}
		if err := tx.Model(&counter).Update("last_number", counter.LastNumber).Error; err != nil {
			return err
		}
		number = counter.LastNumber
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", number), nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite and Postgres surface constraint violations with different
	// error types; fall back to the message for drivers gorm doesn't map.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
