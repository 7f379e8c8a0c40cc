// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.

package query

import (
	"Tripweave/internal/model"
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"gorm.io/gen"
	"gorm.io/gen/field"

	"gorm.io/plugin/dbresolver"
)

func newUserProfile(db *gorm.DB, opts ...gen.DOOption) userProfile {
	_userProfile := userProfile{}

	_userProfile.userProfileDo.UseDB(db, opts...)
	_userProfile.userProfileDo.UseModel(&model.UserProfile{})

	tableName := _userProfile.userProfileDo.TableName()
	_userProfile.ALL = field.NewAsterisk(tableName)
	_userProfile.CreatedAt = field.NewTime(tableName, "created_at")
	_userProfile.UpdatedAt = field.NewTime(tableName, "updated_at")
	_userProfile.DeletedAt = field.NewField(tableName, "deleted_at")
	_userProfile.ID = field.NewInt64(tableName, "id")
	_userProfile.PublicID = field.NewInt64(tableName, "public_id")
	_userProfile.AuthSubject = field.NewString(tableName, "auth_subject")
	_userProfile.DisplayName = field.NewString(tableName, "display_name")
	_userProfile.Bio = field.NewString(tableName, "bio")
	_userProfile.AvatarURL = field.NewString(tableName, "avatar_url")
	_userProfile.Location = field.NewString(tableName, "location")
	_userProfile.Visibility = field.NewString(tableName, "visibility")
	_userProfile.GuideMode = field.NewBool(tableName, "guide_mode")
	_userProfile.TipLink = field.NewString(tableName, "tip_link")

	_userProfile.fillFieldMap()

	return _userProfile
}

type userProfile struct {
	userProfileDo

	ALL         field.Asterisk
	CreatedAt   field.Time
	UpdatedAt   field.Time
	DeletedAt   field.Field
	ID          field.Int64
	PublicID    field.Int64
	AuthSubject field.String
	DisplayName field.String
	Bio         field.String
	AvatarURL   field.String
	Location    field.String
	Visibility  field.String
	GuideMode   field.Bool
	TipLink     field.String

	fieldMap map[string]field.Expr
}

func (u userProfile) Table(newTableName string) *userProfile {
	u.userProfileDo.UseTable(newTableName)
	return u.updateTableName(newTableName)
}

func (u userProfile) As(alias string) *userProfile {
	u.userProfileDo.DO = *(u.userProfileDo.As(alias).(*gen.DO))
	return u.updateTableName(alias)
}

func (u *userProfile) updateTableName(table string) *userProfile {
	u.ALL = field.NewAsterisk(table)
	u.CreatedAt = field.NewTime(table, "created_at")
	u.UpdatedAt = field.NewTime(table, "updated_at")
	u.DeletedAt = field.NewField(table, "deleted_at")
	u.ID = field.NewInt64(table, "id")
	u.PublicID = field.NewInt64(table, "public_id")
	u.AuthSubject = field.NewString(table, "auth_subject")
	u.DisplayName = field.NewString(table, "display_name")
	u.Bio = field.NewString(table, "bio")
	u.AvatarURL = field.NewString(table, "avatar_url")
	u.Location = field.NewString(table, "location")
	u.Visibility = field.NewString(table, "visibility")
	u.GuideMode = field.NewBool(table, "guide_mode")
	u.TipLink = field.NewString(table, "tip_link")

	u.fillFieldMap()

	return u
}

func (u *userProfile) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := u.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (u *userProfile) fillFieldMap() {
	u.fieldMap = make(map[string]field.Expr, 13)
	u.fieldMap["created_at"] = u.CreatedAt
	u.fieldMap["updated_at"] = u.UpdatedAt
	u.fieldMap["deleted_at"] = u.DeletedAt
	u.fieldMap["id"] = u.ID
	u.fieldMap["public_id"] = u.PublicID
	u.fieldMap["auth_subject"] = u.AuthSubject
	u.fieldMap["display_name"] = u.DisplayName
	u.fieldMap["bio"] = u.Bio
	u.fieldMap["avatar_url"] = u.AvatarURL
	u.fieldMap["location"] = u.Location
	u.fieldMap["visibility"] = u.Visibility
	u.fieldMap["guide_mode"] = u.GuideMode
	u.fieldMap["tip_link"] = u.TipLink
}

func (u userProfile) clone(db *gorm.DB) userProfile {
	u.userProfileDo.ReplaceConnPool(db.Statement.ConnPool)
	return u
}

func (u userProfile) replaceDB(db *gorm.DB) userProfile {
	u.userProfileDo.ReplaceDB(db)
	return u
}

type userProfileDo struct{ gen.DO }

type IUserProfileDo interface {
	gen.SubQuery
	Debug() IUserProfileDo
	WithContext(ctx context.Context) IUserProfileDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() IUserProfileDo
	WriteDB() IUserProfileDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) IUserProfileDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) IUserProfileDo
	Not(conds ...gen.Condition) IUserProfileDo
	Or(conds ...gen.Condition) IUserProfileDo
	Select(conds ...field.Expr) IUserProfileDo
	Where(conds ...gen.Condition) IUserProfileDo
	Order(conds ...field.Expr) IUserProfileDo
	Distinct(cols ...field.Expr) IUserProfileDo
	Omit(cols ...field.Expr) IUserProfileDo
	Join(table schema.Tabler, on ...field.Expr) IUserProfileDo
	LeftJoin(table schema.Tabler, on ...field.Expr) IUserProfileDo
	RightJoin(table schema.Tabler, on ...field.Expr) IUserProfileDo
	Group(cols ...field.Expr) IUserProfileDo
	Having(conds ...gen.Condition) IUserProfileDo
	Limit(limit int) IUserProfileDo
	Offset(offset int) IUserProfileDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) IUserProfileDo
	Unscoped() IUserProfileDo
	Create(values ...*model.UserProfile) error
	CreateInBatches(values []*model.UserProfile, batchSize int) error
	Save(values ...*model.UserProfile) error
	First() (*model.UserProfile, error)
	Take() (*model.UserProfile, error)
	Last() (*model.UserProfile, error)
	Find() ([]*model.UserProfile, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.UserProfile, err error)
	FindInBatches(result *[]*model.UserProfile, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.UserProfile) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) IUserProfileDo
	Assign(attrs ...field.AssignExpr) IUserProfileDo
	Joins(fields ...field.RelationField) IUserProfileDo
	Preload(fields ...field.RelationField) IUserProfileDo
	FirstOrInit() (*model.UserProfile, error)
	FirstOrCreate() (*model.UserProfile, error)
	FindByPage(offset int, limit int) (result []*model.UserProfile, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) IUserProfileDo
	UnderlyingDB() *gorm.DB
	schema.Tabler

	GetByPublicID(publicID int64) (result *model.UserProfile, err error)
	GetByAuthSubject(subject string) (result *model.UserProfile, err error)
	ListGuides(limit int, offset int) (result []*model.UserProfile, err error)
}

// GetByPublicID 根据 PublicID 查询用户（最常用，API 中 userID 是 public_id）
//
// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
func (u userProfileDo) GetByPublicID(publicID int64) (result *model.UserProfile, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, publicID)
	generateSQL.WriteString("SELECT * FROM user_profiles WHERE public_id = ? LIMIT 1 ")

	var executeSQL *gorm.DB
	executeSQL = u.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// GetByAuthSubject 根据认证提供方 subject 查询用户（登录流程）
//
// SELECT * FROM @@table WHERE auth_subject = @subject LIMIT 1
func (u userProfileDo) GetByAuthSubject(subject string) (result *model.UserProfile, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, subject)
	generateSQL.WriteString("SELECT * FROM user_profiles WHERE auth_subject = ? LIMIT 1 ")

	var executeSQL *gorm.DB
	executeSQL = u.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// ListGuides 查询开启向导模式的用户
//
// SELECT * FROM @@table
// WHERE guide_mode = true
// ORDER BY created_at DESC
// LIMIT @limit OFFSET @offset
func (u userProfileDo) ListGuides(limit int, offset int) (result []*model.UserProfile, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, limit)
	params = append(params, offset)
	generateSQL.WriteString("SELECT * FROM user_profiles WHERE guide_mode = true ORDER BY created_at DESC LIMIT ? OFFSET ? ")

	var executeSQL *gorm.DB
	executeSQL = u.UnderlyingDB().Raw(generateSQL.String(), params...).Find(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

func (u userProfileDo) Debug() IUserProfileDo {
	return u.withDO(u.DO.Debug())
}

func (u userProfileDo) WithContext(ctx context.Context) IUserProfileDo {
	return u.withDO(u.DO.WithContext(ctx))
}

func (u userProfileDo) ReadDB() IUserProfileDo {
	return u.Clauses(dbresolver.Read)
}

func (u userProfileDo) WriteDB() IUserProfileDo {
	return u.Clauses(dbresolver.Write)
}

func (u userProfileDo) Session(config *gorm.Session) IUserProfileDo {
	return u.withDO(u.DO.Session(config))
}

func (u userProfileDo) Clauses(conds ...clause.Expression) IUserProfileDo {
	return u.withDO(u.DO.Clauses(conds...))
}

func (u userProfileDo) Returning(value interface{}, columns ...string) IUserProfileDo {
	return u.withDO(u.DO.Returning(value, columns...))
}

func (u userProfileDo) Not(conds ...gen.Condition) IUserProfileDo {
	return u.withDO(u.DO.Not(conds...))
}

func (u userProfileDo) Or(conds ...gen.Condition) IUserProfileDo {
	return u.withDO(u.DO.Or(conds...))
}

func (u userProfileDo) Select(conds ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.Select(conds...))
}

func (u userProfileDo) Where(conds ...gen.Condition) IUserProfileDo {
	return u.withDO(u.DO.Where(conds...))
}

func (u userProfileDo) Order(conds ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.Order(conds...))
}

func (u userProfileDo) Distinct(cols ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.Distinct(cols...))
}

func (u userProfileDo) Omit(cols ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.Omit(cols...))
}

func (u userProfileDo) Join(table schema.Tabler, on ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.Join(table, on...))
}

func (u userProfileDo) LeftJoin(table schema.Tabler, on ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.LeftJoin(table, on...))
}

func (u userProfileDo) RightJoin(table schema.Tabler, on ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.RightJoin(table, on...))
}

func (u userProfileDo) Group(cols ...field.Expr) IUserProfileDo {
	return u.withDO(u.DO.Group(cols...))
}

func (u userProfileDo) Having(conds ...gen.Condition) IUserProfileDo {
	return u.withDO(u.DO.Having(conds...))
}

func (u userProfileDo) Limit(limit int) IUserProfileDo {
	return u.withDO(u.DO.Limit(limit))
}

func (u userProfileDo) Offset(offset int) IUserProfileDo {
	return u.withDO(u.DO.Offset(offset))
}

func (u userProfileDo) Scopes(funcs ...func(gen.Dao) gen.Dao) IUserProfileDo {
	return u.withDO(u.DO.Scopes(funcs...))
}

func (u userProfileDo) Unscoped() IUserProfileDo {
	return u.withDO(u.DO.Unscoped())
}

func (u userProfileDo) Create(values ...*model.UserProfile) error {
	if len(values) == 0 {
		return nil
	}
	return u.DO.Create(values)
}

func (u userProfileDo) CreateInBatches(values []*model.UserProfile, batchSize int) error {
	return u.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (u userProfileDo) Save(values ...*model.UserProfile) error {
	if len(values) == 0 {
		return nil
	}
	return u.DO.Save(values)
}

func (u userProfileDo) First() (*model.UserProfile, error) {
	if result, err := u.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.UserProfile), nil
	}
}

func (u userProfileDo) Take() (*model.UserProfile, error) {
	if result, err := u.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.UserProfile), nil
	}
}

func (u userProfileDo) Last() (*model.UserProfile, error) {
	if result, err := u.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.UserProfile), nil
	}
}

func (u userProfileDo) Find() ([]*model.UserProfile, error) {
	result, err := u.DO.Find()
	return result.([]*model.UserProfile), err
}

func (u userProfileDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.UserProfile, err error) {
	buf := make([]*model.UserProfile, 0, batchSize)
	err = u.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (u userProfileDo) FindInBatches(result *[]*model.UserProfile, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return u.DO.FindInBatches(result, batchSize, fc)
}

func (u userProfileDo) Attrs(attrs ...field.AssignExpr) IUserProfileDo {
	return u.withDO(u.DO.Attrs(attrs...))
}

func (u userProfileDo) Assign(attrs ...field.AssignExpr) IUserProfileDo {
	return u.withDO(u.DO.Assign(attrs...))
}

func (u userProfileDo) Joins(fields ...field.RelationField) IUserProfileDo {
	for _, _f := range fields {
		u = *u.withDO(u.DO.Joins(_f))
	}
	return &u
}

func (u userProfileDo) Preload(fields ...field.RelationField) IUserProfileDo {
	for _, _f := range fields {
		u = *u.withDO(u.DO.Preload(_f))
	}
	return &u
}

func (u userProfileDo) FirstOrInit() (*model.UserProfile, error) {
	if result, err := u.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.UserProfile), nil
	}
}

func (u userProfileDo) FirstOrCreate() (*model.UserProfile, error) {
	if result, err := u.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.UserProfile), nil
	}
}

func (u userProfileDo) FindByPage(offset int, limit int) (result []*model.UserProfile, count int64, err error) {
	result, err = u.Offset(offset).Limit(limit).Find()
	if err != nil {
		return
	}

	if size := len(result); 0 < limit && 0 < size && size < limit {
		count = int64(size + offset)
		return
	}

	count, err = u.Offset(-1).Limit(-1).Count()
	return
}

func (u userProfileDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = u.Count()
	if err != nil {
		return
	}

	err = u.Offset(offset).Limit(limit).Scan(result)
	return
}

func (u userProfileDo) Scan(result interface{}) (err error) {
	return u.DO.Scan(result)
}

func (u userProfileDo) Delete(models ...*model.UserProfile) (result gen.ResultInfo, err error) {
	return u.DO.Delete(models)
}

func (u *userProfileDo) withDO(do gen.Dao) *userProfileDo {
	u.DO = *do.(*gen.DO)
	return u
}
