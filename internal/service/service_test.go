package service

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"Tripweave/internal/model"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/snowflake"
	"Tripweave/storage/database"
	"Tripweave/storage/redis"
)

var (
	testInitOnce sync.Once
	testDBSeq    atomic.Int64
)

// setupTest 给每个测试一套独立的内存 sqlite 和 miniredis。
// MQ 不起，发布失败走各服务的 warn 分支
func setupTest(t *testing.T) {
	t.Helper()

	testInitOnce.Do(func() {
		logger.Init()
		if err := snowflake.Init(1, 1); err != nil {
			panic(err)
		}
	})

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserProfile{},
		&model.Trip{},
		&model.TripCollaborator{},
		&model.TripImage{},
		&model.TripLove{},
		&model.Proposal{},
		&model.Suggestion{},
		&model.TravelHistoryEntry{},
		&model.SocialLink{},
		&model.PaymentLink{},
		&model.ActivityEvent{},
	))
	database.SetDB(db)

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
}

func seedProfile(t *testing.T, publicID int64, guideMode bool) *model.UserProfile {
	t.Helper()
	profile := &model.UserProfile{
		PublicID:    publicID,
		AuthSubject: fmt.Sprintf("sub-%d", publicID),
		DisplayName: fmt.Sprintf("user-%d", publicID),
		Visibility:  model.ProfilePublic,
		GuideMode:   guideMode,
	}
	require.NoError(t, database.DB().Create(profile).Error)
	return profile
}

func seedTrip(t *testing.T, ownerID int64, visibility model.TripVisibility, days int) *model.Trip {
	t.Helper()
	id, err := snowflake.NextID(snowflake.GeneratorTypeTrip)
	require.NoError(t, err)

	content := model.GeneratedContent{
		Travelers: []model.Traveler{{ID: "t1", DisplayName: "Traveler 1"}},
		Itinerary: make([]model.ItineraryDay, 0, days),
	}
	for n := 1; n <= days; n++ {
		content.Itinerary = append(content.Itinerary, model.ItineraryDay{
			Day:        n,
			Title:      fmt.Sprintf("Day %d", n),
			Activities: []model.Activity{},
		})
	}

	trip := &model.Trip{
		PublicID:    id,
		UserID:      ownerID,
		Title:       "Kyoto long weekend",
		Destination: "Kyoto",
		Visibility:  visibility,
		ShareCode:   uuid.NewString(),
		Content:     content,
	}
	require.NoError(t, database.DB().Create(trip).Error)
	return trip
}

func seedActivity(t *testing.T, trip *model.Trip, day int, title string) model.Activity {
	t.Helper()
	id, err := snowflake.NextID(snowflake.GeneratorTypeItem)
	require.NoError(t, err)

	act := model.Activity{
		ID:       fmt.Sprintf("%d", id),
		Title:    title,
		Category: model.CategoryActivity,
	}
	for i := range trip.Content.Itinerary {
		if trip.Content.Itinerary[i].Day == day {
			act.OrderIndex = len(trip.Content.Itinerary[i].Activities)
			trip.Content.Itinerary[i].Activities = append(trip.Content.Itinerary[i].Activities, act)
			break
		}
	}
	require.NoError(t, database.DB().Model(&model.Trip{}).
		Where("public_id = ?", trip.PublicID).
		Updates(&model.Trip{Content: trip.Content}).Error)
	return act
}

func mustParseID(t *testing.T, id string) int64 {
	t.Helper()
	v, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)
	return v
}

func seedCollaborator(t *testing.T, tripID, userID int64, role model.CollaboratorRole) {
	t.Helper()
	require.NoError(t, database.DB().Create(&model.TripCollaborator{
		TripID: tripID,
		UserID: userID,
		Role:   role,
	}).Error)
}
