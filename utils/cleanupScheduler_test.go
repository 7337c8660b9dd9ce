package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cab/config"
	"cab/database"
	"cab/models/course"
)

func newCleanupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&course.Subject{},
		&course.Course{},
		&course.Module{},
		&course.Content{},
		&course.TextItem{},
		&course.VideoItem{},
		&course.ImageItem{},
		&course.FileItem{},
		&course.Enrollment{},
	))

	database.Database.Db = db
	config.AppConfig = &config.Config{RetentionDays: 30}
	return db
}

func seedCleanupModule(t *testing.T, db *gorm.DB) course.Module {
	t.Helper()

	subj := course.Subject{Title: "Go", Slug: "go-cleanup"}
	require.NoError(t, db.Create(&subj).Error)
	crs := course.Course{OwnerID: 1, SubjectID: subj.ID, Title: "Practical Go", Slug: "practical-go", Overview: "o"}
	require.NoError(t, db.Create(&crs).Error)
	mod := course.Module{CourseID: crs.ID, Title: "Module"}
	require.NoError(t, db.Create(&mod).Error)
	return mod
}

func TestPurgeRemovesExpiredSoftDeletes(t *testing.T) {
	db := newCleanupTestDB(t)
	mod := seedCleanupModule(t, db)

	item := course.TextItem{ItemBase: course.ItemBase{OwnerID: 1, Title: "Old"}, Body: "gone"}
	require.NoError(t, db.Create(&item).Error)
	cnt := course.Content{ModuleID: mod.ID, ItemKind: course.KindText, ItemID: item.ID}
	require.NoError(t, db.Create(&cnt).Error)

	require.NoError(t, db.Delete(&cnt).Error)
	require.NoError(t, db.Delete(&item).Error)

	past := time.Now().AddDate(0, 0, -40)
	require.NoError(t, db.Exec("UPDATE contents SET deleted_at = ?", past).Error)
	require.NoError(t, db.Exec("UPDATE text_items SET deleted_at = ?", past).Error)

	purgeSoftDeleted()

	var cnts, items int64
	require.NoError(t, db.Unscoped().Model(&course.Content{}).Count(&cnts).Error)
	require.NoError(t, db.Unscoped().Model(&course.TextItem{}).Count(&items).Error)
	assert.Zero(t, cnts)
	assert.Zero(t, items)
}

func TestPurgeKeepsRecentSoftDeletes(t *testing.T) {
	db := newCleanupTestDB(t)
	mod := seedCleanupModule(t, db)

	item := course.TextItem{ItemBase: course.ItemBase{OwnerID: 1, Title: "Recent"}, Body: "stays"}
	require.NoError(t, db.Create(&item).Error)
	cnt := course.Content{ModuleID: mod.ID, ItemKind: course.KindText, ItemID: item.ID}
	require.NoError(t, db.Create(&cnt).Error)
	require.NoError(t, db.Delete(&cnt).Error)
	require.NoError(t, db.Delete(&item).Error)

	purgeSoftDeleted()

	var cnts, items int64
	require.NoError(t, db.Unscoped().Model(&course.Content{}).Count(&cnts).Error)
	require.NoError(t, db.Unscoped().Model(&course.TextItem{}).Count(&items).Error)
	assert.EqualValues(t, 1, cnts)
	assert.EqualValues(t, 1, items)
}

func TestPurgeSweepsOrphanedItems(t *testing.T) {
	db := newCleanupTestDB(t)
	mod := seedCleanupModule(t, db)

	orphan := course.TextItem{ItemBase: course.ItemBase{OwnerID: 1, Title: "Orphan"}, Body: "x"}
	require.NoError(t, db.Create(&orphan).Error)
	fresh := course.TextItem{ItemBase: course.ItemBase{OwnerID: 1, Title: "Fresh orphan"}, Body: "x"}
	require.NoError(t, db.Create(&fresh).Error)
	kept := course.TextItem{ItemBase: course.ItemBase{OwnerID: 1, Title: "Referenced"}, Body: "x"}
	require.NoError(t, db.Create(&kept).Error)
	cnt := course.Content{ModuleID: mod.ID, ItemKind: course.KindText, ItemID: kept.ID}
	require.NoError(t, db.Create(&cnt).Error)

	past := time.Now().AddDate(0, 0, -40)
	require.NoError(t, db.Exec(
		"UPDATE text_items SET created_at = ? WHERE id IN (?, ?)",
		past, orphan.ID, kept.ID).Error)

	purgeSoftDeleted()

	err := db.Unscoped().First(&course.TextItem{}, orphan.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "old unreferenced item must be swept")

	assert.NoError(t, db.First(&course.TextItem{}, fresh.ID).Error, "young orphan is left for the next run")
	assert.NoError(t, db.First(&course.TextItem{}, kept.ID).Error, "referenced item stays regardless of age")
}
