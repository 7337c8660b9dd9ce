package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"cab/config"
	"cab/database"
	"cab/models/course"
)

// logCleanup logs scheduler events with timestamp
func logCleanup(message string) {
	log.Printf("[CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeSoftDeleted hard-deletes rows that were soft-deleted longer ago
// than the retention window. Deletes cascade through the store at delete
// time, so purging each table independently is safe.
func purgeSoftDeleted() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.RetentionDays)

	targets := []struct {
		name  string
		model interface{}
	}{
		{"contents", &course.Content{}},
		{"text_items", &course.TextItem{}},
		{"video_items", &course.VideoItem{}},
		{"image_items", &course.ImageItem{}},
		{"file_items", &course.FileItem{}},
		{"modules", &course.Module{}},
		{"enrollments", &course.Enrollment{}},
		{"courses", &course.Course{}},
	}

	for _, t := range targets {
		res := db.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(t.model)
		if res.Error != nil {
			logCleanup("Error purging " + t.name + ": " + res.Error.Error())
			continue
		}
		if res.RowsAffected > 0 {
			logCleanup(fmt.Sprintf("Purged %d rows from %s", res.RowsAffected, t.name))
		}
	}

	purgeOrphanItems(cutoff)
}

// purgeOrphanItems sweeps item rows no content row references. Items are
// normally deleted together with their content row, so an orphan can only
// come from an interrupted write; the age check keeps the sweep clear of
// anything still in flight.
func purgeOrphanItems(cutoff time.Time) {
	db := database.Database.Db

	items := []struct {
		name  string
		model interface{}
		kind  string
	}{
		{"text_items", &course.TextItem{}, course.KindText},
		{"video_items", &course.VideoItem{}, course.KindVideo},
		{"image_items", &course.ImageItem{}, course.KindImage},
		{"file_items", &course.FileItem{}, course.KindFile},
	}

	for _, t := range items {
		referenced := db.Unscoped().Model(&course.Content{}).
			Select("item_id").Where("item_kind = ?", t.kind)
		res := db.Unscoped().
			Where("created_at < ? AND id NOT IN (?)", cutoff, referenced).
			Delete(t.model)
		if res.Error != nil {
			logCleanup("Error purging orphaned " + t.name + ": " + res.Error.Error())
			continue
		}
		if res.RowsAffected > 0 {
			logCleanup(fmt.Sprintf("Purged %d orphaned rows from %s", res.RowsAffected, t.name))
		}
	}
}

// StartCleanupScheduler runs the retention purge every night
func StartCleanupScheduler() {
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", purgeSoftDeleted); err != nil {
		logCleanup("Error scheduling purge: " + err.Error())
		return
	}
	c.Start()
	logCleanup("Cleanup scheduler started")
}
