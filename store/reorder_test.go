package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cab/models/course"
)

func seedModules(t *testing.T, s *Store, courseID uint, n int) []course.Module {
	t.Helper()
	mods := make([]course.Module, n)
	for i := 0; i < n; i++ {
		mods[i] = course.Module{CourseID: courseID, Title: "m"}
		require.NoError(t, s.CreateModule(&mods[i], nil))
	}
	return mods
}

func positions(t *testing.T, s *Store, courseID uint) []int {
	t.Helper()
	mods, err := s.ModulesByCourse(courseID)
	require.NoError(t, err)
	out := make([]int, len(mods))
	for i, m := range mods {
		out[i] = m.Position
	}
	return out
}

func TestReorderMovesMiddleModule(t *testing.T) {
	db := newTestDB(t)
	s := New(db)
	crs := seedCourse(t, db, 1)
	mods := seedModules(t, s, crs.ID, 3) // positions 0, 1, 2

	applied, err := s.ReorderModules(1, map[uint]int{mods[1].ID: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	assert.Equal(t, []int{0, 2, 5}, positions(t, s, crs.ID))
}

func TestReorderDropsForeignModules(t *testing.T) {
	db := newTestDB(t)
	s := New(db)
	crs := seedCourse(t, db, 1)
	mods := seedModules(t, s, crs.ID, 3)

	// Principal 2 owns nothing here; every entry drops silently.
	applied, err := s.ReorderModules(2, map[uint]int{mods[0].ID: 9})
	require.NoError(t, err)
	assert.Equal(t, 0, applied)
	assert.Equal(t, []int{0, 1, 2}, positions(t, s, crs.ID))
}

func TestReorderAppliesOwnedSubsetOnly(t *testing.T) {
	db := newTestDB(t)
	s := New(db)
	mine := seedCourse(t, db, 1)
	theirs := seedCourse(t, db, 2)
	myMods := seedModules(t, s, mine.ID, 2)
	theirMods := seedModules(t, s, theirs.ID, 1)

	applied, err := s.ReorderModules(1, map[uint]int{
		myMods[0].ID:    10,
		myMods[1].ID:    11,
		theirMods[0].ID: 12,
		4242:            13,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	assert.Equal(t, []int{10, 11}, positions(t, s, mine.ID))
	assert.Equal(t, []int{0}, positions(t, s, theirs.ID))
}

func TestReorderEmptyBatch(t *testing.T) {
	db := newTestDB(t)
	s := New(db)

	applied, err := s.ReorderModules(1, map[uint]int{})
	require.NoError(t, err)
	assert.Zero(t, applied)
}

func TestReorderRollsBackOnMidBatchFailure(t *testing.T) {
	db := newTestDB(t)
	s := New(db)
	crs := seedCourse(t, db, 1)
	mods := seedModules(t, s, crs.ID, 3)

	injected := errors.New("injected failure")
	updates := 0
	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("inject_fail", func(tx *gorm.DB) {
			if tx.Statement.Table != "modules" {
				return
			}
			updates++
			if updates > 1 {
				tx.AddError(injected)
			}
		}))
	defer db.Callback().Update().Remove("inject_fail")

	_, err := s.ReorderModules(1, map[uint]int{
		mods[0].ID: 7,
		mods[1].ID: 8,
		mods[2].ID: 9,
	})
	require.Error(t, err)
	assert.GreaterOrEqual(t, updates, 2, "failure must hit after at least one applied update")

	// All-or-nothing: the pre-call positions survive the partial batch.
	assert.Equal(t, []int{0, 1, 2}, positions(t, s, crs.ID))
}

func TestReorderContentsScopedThroughCourse(t *testing.T) {
	db := newTestDB(t)
	s := New(db)
	mine := seedCourse(t, db, 1)
	theirs := seedCourse(t, db, 2)
	myMod := seedModule(t, db, s, mine.ID)
	theirMod := seedModule(t, db, s, theirs.ID)

	newContent := func(moduleID uint) course.Content {
		item, err := s.CreateOrUpdateItem(course.KindText, 1, ItemAttrs{Title: "t", Body: "b"}, nil)
		require.NoError(t, err)
		cnt := course.Content{ModuleID: moduleID, ItemKind: course.KindText, ItemID: item.ItemID()}
		require.NoError(t, s.CreateContent(&cnt, nil))
		return cnt
	}

	a := newContent(myMod.ID)
	b := newContent(myMod.ID)
	foreign := newContent(theirMod.ID)

	applied, err := s.ReorderContents(1, map[uint]int{a.ID: 2, b.ID: 1, foreign.ID: 9})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	cnts, err := s.ContentsByModule(myMod.ID)
	require.NoError(t, err)
	require.Len(t, cnts, 2)
	assert.Equal(t, b.ID, cnts[0].ID)
	assert.Equal(t, a.ID, cnts[1].ID)

	var got course.Content
	require.NoError(t, db.First(&got, foreign.ID).Error)
	assert.Equal(t, 0, got.Position)
}
