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

func newTrip(db *gorm.DB, opts ...gen.DOOption) trip {
	_trip := trip{}

	_trip.tripDo.UseDB(db, opts...)
	_trip.tripDo.UseModel(&model.Trip{})

	tableName := _trip.tripDo.TableName()
	_trip.ALL = field.NewAsterisk(tableName)
	_trip.CreatedAt = field.NewTime(tableName, "created_at")
	_trip.UpdatedAt = field.NewTime(tableName, "updated_at")
	_trip.DeletedAt = field.NewField(tableName, "deleted_at")
	_trip.ID = field.NewInt64(tableName, "id")
	_trip.PublicID = field.NewInt64(tableName, "public_id")
	_trip.UserID = field.NewInt64(tableName, "user_id")
	_trip.Title = field.NewString(tableName, "title")
	_trip.Destination = field.NewString(tableName, "destination")
	_trip.Visibility = field.NewString(tableName, "visibility")
	_trip.ShareCode = field.NewString(tableName, "share_code")
	_trip.StartDate = field.NewTime(tableName, "start_date")
	_trip.LoveCount = field.NewInt(tableName, "love_count")
	_trip.CloneCount = field.NewInt(tableName, "clone_count")
	_trip.ItemCount = field.NewInt(tableName, "item_count")
	_trip.Content = field.NewField(tableName, "content")

	_trip.fillFieldMap()

	return _trip
}

type trip struct {
	tripDo

	ALL         field.Asterisk
	CreatedAt   field.Time
	UpdatedAt   field.Time
	DeletedAt   field.Field
	ID          field.Int64
	PublicID    field.Int64
	UserID      field.Int64
	Title       field.String
	Destination field.String
	Visibility  field.String
	ShareCode   field.String
	StartDate   field.Time
	LoveCount   field.Int
	CloneCount  field.Int
	ItemCount   field.Int
	Content     field.Field

	fieldMap map[string]field.Expr
}

func (t trip) Table(newTableName string) *trip {
	t.tripDo.UseTable(newTableName)
	return t.updateTableName(newTableName)
}

func (t trip) As(alias string) *trip {
	t.tripDo.DO = *(t.tripDo.As(alias).(*gen.DO))
	return t.updateTableName(alias)
}

func (t *trip) updateTableName(table string) *trip {
	t.ALL = field.NewAsterisk(table)
	t.CreatedAt = field.NewTime(table, "created_at")
	t.UpdatedAt = field.NewTime(table, "updated_at")
	t.DeletedAt = field.NewField(table, "deleted_at")
	t.ID = field.NewInt64(table, "id")
	t.PublicID = field.NewInt64(table, "public_id")
	t.UserID = field.NewInt64(table, "user_id")
	t.Title = field.NewString(table, "title")
	t.Destination = field.NewString(table, "destination")
	t.Visibility = field.NewString(table, "visibility")
	t.ShareCode = field.NewString(table, "share_code")
	t.StartDate = field.NewTime(table, "start_date")
	t.LoveCount = field.NewInt(table, "love_count")
	t.CloneCount = field.NewInt(table, "clone_count")
	t.ItemCount = field.NewInt(table, "item_count")
	t.Content = field.NewField(table, "content")

	t.fillFieldMap()

	return t
}

func (t *trip) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := t.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (t *trip) fillFieldMap() {
	t.fieldMap = make(map[string]field.Expr, 15)
	t.fieldMap["created_at"] = t.CreatedAt
	t.fieldMap["updated_at"] = t.UpdatedAt
	t.fieldMap["deleted_at"] = t.DeletedAt
	t.fieldMap["id"] = t.ID
	t.fieldMap["public_id"] = t.PublicID
	t.fieldMap["user_id"] = t.UserID
	t.fieldMap["title"] = t.Title
	t.fieldMap["destination"] = t.Destination
	t.fieldMap["visibility"] = t.Visibility
	t.fieldMap["share_code"] = t.ShareCode
	t.fieldMap["start_date"] = t.StartDate
	t.fieldMap["love_count"] = t.LoveCount
	t.fieldMap["clone_count"] = t.CloneCount
	t.fieldMap["item_count"] = t.ItemCount
	t.fieldMap["content"] = t.Content
}

func (t trip) clone(db *gorm.DB) trip {
	t.tripDo.ReplaceConnPool(db.Statement.ConnPool)
	return t
}

func (t trip) replaceDB(db *gorm.DB) trip {
	t.tripDo.ReplaceDB(db)
	return t
}

type tripDo struct{ gen.DO }

type ITripDo interface {
	gen.SubQuery
	Debug() ITripDo
	WithContext(ctx context.Context) ITripDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() ITripDo
	WriteDB() ITripDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) ITripDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) ITripDo
	Not(conds ...gen.Condition) ITripDo
	Or(conds ...gen.Condition) ITripDo
	Select(conds ...field.Expr) ITripDo
	Where(conds ...gen.Condition) ITripDo
	Order(conds ...field.Expr) ITripDo
	Distinct(cols ...field.Expr) ITripDo
	Omit(cols ...field.Expr) ITripDo
	Join(table schema.Tabler, on ...field.Expr) ITripDo
	LeftJoin(table schema.Tabler, on ...field.Expr) ITripDo
	RightJoin(table schema.Tabler, on ...field.Expr) ITripDo
	Group(cols ...field.Expr) ITripDo
	Having(conds ...gen.Condition) ITripDo
	Limit(limit int) ITripDo
	Offset(offset int) ITripDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) ITripDo
	Unscoped() ITripDo
	Create(values ...*model.Trip) error
	CreateInBatches(values []*model.Trip, batchSize int) error
	Save(values ...*model.Trip) error
	First() (*model.Trip, error)
	Take() (*model.Trip, error)
	Last() (*model.Trip, error)
	Find() ([]*model.Trip, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.Trip, err error)
	FindInBatches(result *[]*model.Trip, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.Trip) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) ITripDo
	Assign(attrs ...field.AssignExpr) ITripDo
	Joins(fields ...field.RelationField) ITripDo
	Preload(fields ...field.RelationField) ITripDo
	FirstOrInit() (*model.Trip, error)
	FirstOrCreate() (*model.Trip, error)
	FindByPage(offset int, limit int) (result []*model.Trip, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) ITripDo
	UnderlyingDB() *gorm.DB
	schema.Tabler

	GetByPublicID(publicID int64) (result *model.Trip, err error)
	GetByShareCode(shareCode string) (result *model.Trip, err error)
	ListByOwner(ownerID int64, cursorID int64, limit int) (result []*model.Trip, err error)
	ListMarketplace(cursorID int64, limit int) (result []*model.Trip, err error)
	ListStartingBetween(from string, to string) (result []*model.Trip, err error)
	CountByOwner(ownerID int64) (result int64, err error)
	SumCloneCountByOwner(ownerID int64) (result int64, err error)
	CountCuratedByOwner(ownerID int64) (result int64, err error)
}

// GetByPublicID 根据 PublicID 查询行程
//
// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
func (t tripDo) GetByPublicID(publicID int64) (result *model.Trip, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, publicID)
	generateSQL.WriteString("SELECT * FROM trips WHERE public_id = ? LIMIT 1 ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// GetByShareCode 根据分享码查询行程
//
// SELECT * FROM @@table WHERE share_code = @shareCode LIMIT 1
func (t tripDo) GetByShareCode(shareCode string) (result *model.Trip, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, shareCode)
	generateSQL.WriteString("SELECT * FROM trips WHERE share_code = ? LIMIT 1 ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// ListByOwner 按所有者查询行程（游标分页）
//
// SELECT * FROM @@table
// WHERE user_id = @ownerID
//
//	{{if cursorID > 0}}
//	AND public_id < @cursorID
//	{{end}}
//
// ORDER BY public_id DESC
// LIMIT @limit
func (t tripDo) ListByOwner(ownerID int64, cursorID int64, limit int) (result []*model.Trip, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, ownerID)
	generateSQL.WriteString("SELECT * FROM trips WHERE user_id = ? ")
	if cursorID > 0 {
		params = append(params, cursorID)
		generateSQL.WriteString("AND public_id < ? ")
	}
	params = append(params, limit)
	generateSQL.WriteString("ORDER BY public_id DESC LIMIT ? ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Find(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// ListMarketplace 查询市场可见的行程（游标分页）
//
// SELECT * FROM @@table
// WHERE visibility IN ('marketplace', 'curated')
//
//	{{if cursorID > 0}}
//	AND public_id < @cursorID
//	{{end}}
//
// ORDER BY public_id DESC
// LIMIT @limit
func (t tripDo) ListMarketplace(cursorID int64, limit int) (result []*model.Trip, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	generateSQL.WriteString("SELECT * FROM trips WHERE visibility IN ('marketplace', 'curated') ")
	if cursorID > 0 {
		params = append(params, cursorID)
		generateSQL.WriteString("AND public_id < ? ")
	}
	params = append(params, limit)
	generateSQL.WriteString("ORDER BY public_id DESC LIMIT ? ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Find(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// ListStartingBetween 查询出发日期落在区间内的行程（用于定时任务）
//
// SELECT * FROM @@table
// WHERE start_date >= @from::date
//
//	AND start_date < @to::date
func (t tripDo) ListStartingBetween(from string, to string) (result []*model.Trip, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, from)
	params = append(params, to)
	generateSQL.WriteString("SELECT * FROM trips WHERE start_date >= ?::date AND start_date < ?::date ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Find(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// CountByOwner 统计用户的行程数量（用于徽章计算）
//
// SELECT COUNT(*) as count
// FROM @@table
// WHERE user_id = @ownerID
func (t tripDo) CountByOwner(ownerID int64) (result int64, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, ownerID)
	generateSQL.WriteString("SELECT COUNT(*) as count FROM trips WHERE user_id = ? ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// SumCloneCountByOwner 统计用户行程被克隆的总次数
//
// SELECT COALESCE(SUM(clone_count), 0) as total
// FROM @@table
// WHERE user_id = @ownerID
func (t tripDo) SumCloneCountByOwner(ownerID int64) (result int64, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, ownerID)
	generateSQL.WriteString("SELECT COALESCE(SUM(clone_count), 0) as total FROM trips WHERE user_id = ? ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// CountCuratedByOwner 统计用户被加精的行程数量（用于徽章计算）
//
// SELECT COUNT(*) as count
// FROM @@table
// WHERE user_id = @ownerID AND visibility = 'curated'
func (t tripDo) CountCuratedByOwner(ownerID int64) (result int64, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, ownerID)
	generateSQL.WriteString("SELECT COUNT(*) as count FROM trips WHERE user_id = ? AND visibility = 'curated' ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

func (t tripDo) Debug() ITripDo {
	return t.withDO(t.DO.Debug())
}

func (t tripDo) WithContext(ctx context.Context) ITripDo {
	return t.withDO(t.DO.WithContext(ctx))
}

func (t tripDo) ReadDB() ITripDo {
	return t.Clauses(dbresolver.Read)
}

func (t tripDo) WriteDB() ITripDo {
	return t.Clauses(dbresolver.Write)
}

func (t tripDo) Session(config *gorm.Session) ITripDo {
	return t.withDO(t.DO.Session(config))
}

func (t tripDo) Clauses(conds ...clause.Expression) ITripDo {
	return t.withDO(t.DO.Clauses(conds...))
}

func (t tripDo) Returning(value interface{}, columns ...string) ITripDo {
	return t.withDO(t.DO.Returning(value, columns...))
}

func (t tripDo) Not(conds ...gen.Condition) ITripDo {
	return t.withDO(t.DO.Not(conds...))
}

func (t tripDo) Or(conds ...gen.Condition) ITripDo {
	return t.withDO(t.DO.Or(conds...))
}

func (t tripDo) Select(conds ...field.Expr) ITripDo {
	return t.withDO(t.DO.Select(conds...))
}

func (t tripDo) Where(conds ...gen.Condition) ITripDo {
	return t.withDO(t.DO.Where(conds...))
}

func (t tripDo) Order(conds ...field.Expr) ITripDo {
	return t.withDO(t.DO.Order(conds...))
}

func (t tripDo) Distinct(cols ...field.Expr) ITripDo {
	return t.withDO(t.DO.Distinct(cols...))
}

func (t tripDo) Omit(cols ...field.Expr) ITripDo {
	return t.withDO(t.DO.Omit(cols...))
}

func (t tripDo) Join(table schema.Tabler, on ...field.Expr) ITripDo {
	return t.withDO(t.DO.Join(table, on...))
}

func (t tripDo) LeftJoin(table schema.Tabler, on ...field.Expr) ITripDo {
	return t.withDO(t.DO.LeftJoin(table, on...))
}

func (t tripDo) RightJoin(table schema.Tabler, on ...field.Expr) ITripDo {
	return t.withDO(t.DO.RightJoin(table, on...))
}

func (t tripDo) Group(cols ...field.Expr) ITripDo {
	return t.withDO(t.DO.Group(cols...))
}

func (t tripDo) Having(conds ...gen.Condition) ITripDo {
	return t.withDO(t.DO.Having(conds...))
}

func (t tripDo) Limit(limit int) ITripDo {
	return t.withDO(t.DO.Limit(limit))
}

func (t tripDo) Offset(offset int) ITripDo {
	return t.withDO(t.DO.Offset(offset))
}

func (t tripDo) Scopes(funcs ...func(gen.Dao) gen.Dao) ITripDo {
	return t.withDO(t.DO.Scopes(funcs...))
}

func (t tripDo) Unscoped() ITripDo {
	return t.withDO(t.DO.Unscoped())
}

func (t tripDo) Create(values ...*model.Trip) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Create(values)
}

func (t tripDo) CreateInBatches(values []*model.Trip, batchSize int) error {
	return t.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (t tripDo) Save(values ...*model.Trip) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Save(values)
}

func (t tripDo) First() (*model.Trip, error) {
	if result, err := t.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.Trip), nil
	}
}

func (t tripDo) Take() (*model.Trip, error) {
	if result, err := t.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.Trip), nil
	}
}

func (t tripDo) Last() (*model.Trip, error) {
	if result, err := t.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.Trip), nil
	}
}

func (t tripDo) Find() ([]*model.Trip, error) {
	result, err := t.DO.Find()
	return result.([]*model.Trip), err
}

func (t tripDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.Trip, err error) {
	buf := make([]*model.Trip, 0, batchSize)
	err = t.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (t tripDo) FindInBatches(result *[]*model.Trip, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return t.DO.FindInBatches(result, batchSize, fc)
}

func (t tripDo) Attrs(attrs ...field.AssignExpr) ITripDo {
	return t.withDO(t.DO.Attrs(attrs...))
}

func (t tripDo) Assign(attrs ...field.AssignExpr) ITripDo {
	return t.withDO(t.DO.Assign(attrs...))
}

func (t tripDo) Joins(fields ...field.RelationField) ITripDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Joins(_f))
	}
	return &t
}

func (t tripDo) Preload(fields ...field.RelationField) ITripDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Preload(_f))
	}
	return &t
}

func (t tripDo) FirstOrInit() (*model.Trip, error) {
	if result, err := t.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.Trip), nil
	}
}

func (t tripDo) FirstOrCreate() (*model.Trip, error) {
	if result, err := t.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.Trip), nil
	}
}

func (t tripDo) FindByPage(offset int, limit int) (result []*model.Trip, count int64, err error) {
	result, err = t.Offset(offset).Limit(limit).Find()
	if err != nil {
		return
	}

	if size := len(result); 0 < limit && 0 < size && size < limit {
		count = int64(size + offset)
		return
	}

	count, err = t.Offset(-1).Limit(-1).Count()
	return
}

func (t tripDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = t.Count()
	if err != nil {
		return
	}

	err = t.Offset(offset).Limit(limit).Scan(result)
	return
}

func (t tripDo) Scan(result interface{}) (err error) {
	return t.DO.Scan(result)
}

func (t tripDo) Delete(models ...*model.Trip) (result gen.ResultInfo, err error) {
	return t.DO.Delete(models)
}

func (t *tripDo) withDO(do gen.Dao) *tripDo {
	t.DO = *do.(*gen.DO)
	return t
}
