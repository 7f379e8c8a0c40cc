package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"Tripweave/internal/model"
	"Tripweave/pkg/errors"
	"Tripweave/storage/database"
)

// ========== UserProfile 相关查询接口 ==========

// UserProfileQuerier 用户档案查询接口
type UserProfileQuerier interface {
	// GetByPublicID 根据 PublicID 查询用户（最常用，API 中 userID 是 public_id）
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// GetByAuthSubject 根据认证提供方 subject 查询用户（登录流程）
	//
	// SELECT * FROM @@table WHERE auth_subject = @subject LIMIT 1
	GetByAuthSubject(subject string) (*gen.T, error)

	// ListGuides 查询开启向导模式的用户
	//
	// SELECT * FROM @@table
	// WHERE guide_mode = true
	// ORDER BY created_at DESC
	// LIMIT @limit OFFSET @offset
	ListGuides(limit, offset int) ([]*gen.T, error)
}

// ========== Trip 相关查询接口 ==========

// TripQuerier 行程查询接口
type TripQuerier interface {
	// GetByPublicID 根据 PublicID 查询行程
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// GetByShareCode 根据分享码查询行程
	//
	// SELECT * FROM @@table WHERE share_code = @shareCode LIMIT 1
	GetByShareCode(shareCode string) (*gen.T, error)

	// ListByOwner 按所有者查询行程（游标分页）
	//
	// SELECT * FROM @@table
	// WHERE user_id = @ownerID
	//   {{if cursorID > 0}}
	//   AND public_id < @cursorID
	//   {{end}}
	// ORDER BY public_id DESC
	// LIMIT @limit
	ListByOwner(ownerID int64, cursorID int64, limit int) ([]*gen.T, error)

	// ListMarketplace 查询市场可见的行程（游标分页）
	//
	// SELECT * FROM @@table
	// WHERE visibility IN ('marketplace', 'curated')
	//   {{if cursorID > 0}}
	//   AND public_id < @cursorID
	//   {{end}}
	// ORDER BY public_id DESC
	// LIMIT @limit
	ListMarketplace(cursorID int64, limit int) ([]*gen.T, error)

	// ListStartingBetween 查询出发日期落在区间内的行程（用于定时任务）
	//
	// SELECT * FROM @@table
	// WHERE start_date >= @from::date
	//   AND start_date < @to::date
	ListStartingBetween(from, to string) ([]*gen.T, error)

	// CountByOwner 统计用户的行程数量（用于徽章计算）
	//
	// SELECT COUNT(*) as count
	// FROM @@table
	// WHERE user_id = @ownerID
	CountByOwner(ownerID int64) (int64, error)

	// SumCloneCountByOwner 统计用户行程被克隆的总次数
	//
	// SELECT COALESCE(SUM(clone_count), 0) as total
	// FROM @@table
	// WHERE user_id = @ownerID
	SumCloneCountByOwner(ownerID int64) (int64, error)

	// CountCuratedByOwner 统计用户被加精的行程数量（用于徽章计算）
	//
	// SELECT COUNT(*) as count
	// FROM @@table
	// WHERE user_id = @ownerID AND visibility = 'curated'
	CountCuratedByOwner(ownerID int64) (int64, error)
}

// ========== Proposal 相关查询接口 ==========

// ProposalQuerier 商家提案查询接口
type ProposalQuerier interface {
	// GetByPublicID 根据 PublicID 查询提案
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListByTrip 按行程查询提案（游标分页，可选状态筛选）
	//
	// SELECT * FROM @@table
	// WHERE trip_id = @tripID
	//   {{if status != ""}}
	//   AND status = @status
	//   {{end}}
	//   {{if cursorID > 0}}
	//   AND public_id < @cursorID
	//   {{end}}
	// ORDER BY public_id DESC
	// LIMIT @limit
	ListByTrip(tripID int64, status string, cursorID int64, limit int) ([]*gen.T, error)

	// ListExpiredPending 查询已过期仍为 pending 的提案（用于定时任务兜底）
	//
	// SELECT * FROM @@table
	// WHERE status = 'pending'
	//   AND expires_at <= NOW()
	ListExpiredPending() ([]*gen.T, error)
}

// ========== ActivityEvent 相关查询接口 ==========

// ActivityEventQuerier 活动事件查询接口
type ActivityEventQuerier interface {
	// ListByUser 按用户查询活动事件（游标分页）
	//
	// SELECT * FROM @@table
	// WHERE user_id = @userID
	//   {{if cursorID > 0}}
	//   AND id < @cursorID
	//   {{end}}
	// ORDER BY id DESC
	// LIMIT @limit
	ListByUser(userID int64, cursorID int64, limit int) ([]*gen.T, error)
}

// ========== TravelHistoryEntry 相关查询接口 ==========

// TravelHistoryQuerier 旅行足迹查询接口
type TravelHistoryQuerier interface {
	// ListByUserAndKind 按用户和类型查询足迹
	//
	// SELECT * FROM @@table
	// WHERE user_id = @userID
	//   {{if kind != ""}}
	//   AND kind = @kind
	//   {{end}}
	// ORDER BY id DESC
	ListByUserAndKind(userID int64, kind string) ([]*gen.T, error)

	// CountDistinctCountries 统计访问过的国家数（用于徽章计算）
	//
	// SELECT COUNT(DISTINCT country_code) as count
	// FROM @@table
	// WHERE user_id = @userID AND kind = 'visited' AND country_code <> ''
	CountDistinctCountries(userID int64) (int64, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// 运行数据库迁移（确保表存在）
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migration: %w", err)
	}

	db := database.DB()
	if db == nil {
		return errors.ErrDatabaseConnectionNil
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query", // 生成代码的输出路径
		ModelPkgPath:      "Tripweave/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true, // 字段可以为 null
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	// 注册现有的 model，GORM Gen 会使用这些 model 而不是生成新的
	g.ApplyBasic(
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
	)

	// 直接应用接口，GORM Gen 会根据接口中的类型自动匹配已注册的 model
	g.ApplyInterface(func(UserProfileQuerier) {}, &model.UserProfile{})
	g.ApplyInterface(func(TripQuerier) {}, &model.Trip{})
	g.ApplyInterface(func(ProposalQuerier) {}, &model.Proposal{})
	g.ApplyInterface(func(ActivityEventQuerier) {}, &model.ActivityEvent{})
	g.ApplyInterface(func(TravelHistoryQuerier) {}, &model.TravelHistoryEntry{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
