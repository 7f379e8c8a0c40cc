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

func newTravelHistoryEntry(db *gorm.DB, opts ...gen.DOOption) travelHistoryEntry {
	_travelHistoryEntry := travelHistoryEntry{}

	_travelHistoryEntry.travelHistoryEntryDo.UseDB(db, opts...)
	_travelHistoryEntry.travelHistoryEntryDo.UseModel(&model.TravelHistoryEntry{})

	tableName := _travelHistoryEntry.travelHistoryEntryDo.TableName()
	_travelHistoryEntry.ALL = field.NewAsterisk(tableName)
	_travelHistoryEntry.CreatedAt = field.NewTime(tableName, "created_at")
	_travelHistoryEntry.UpdatedAt = field.NewTime(tableName, "updated_at")
	_travelHistoryEntry.DeletedAt = field.NewField(tableName, "deleted_at")
	_travelHistoryEntry.ID = field.NewInt64(tableName, "id")
	_travelHistoryEntry.UserID = field.NewInt64(tableName, "user_id")
	_travelHistoryEntry.Kind = field.NewString(tableName, "kind")
	_travelHistoryEntry.Place = field.NewString(tableName, "place")
	_travelHistoryEntry.CountryCode = field.NewString(tableName, "country_code")
	_travelHistoryEntry.Year = field.NewInt(tableName, "year")
	_travelHistoryEntry.Month = field.NewInt(tableName, "month")
	_travelHistoryEntry.Notes = field.NewString(tableName, "notes")
	_travelHistoryEntry.Lat = field.NewFloat64(tableName, "lat")
	_travelHistoryEntry.Lng = field.NewFloat64(tableName, "lng")

	_travelHistoryEntry.fillFieldMap()

	return _travelHistoryEntry
}

type travelHistoryEntry struct {
	travelHistoryEntryDo

	ALL         field.Asterisk
	CreatedAt   field.Time
	UpdatedAt   field.Time
	DeletedAt   field.Field
	ID          field.Int64
	UserID      field.Int64
	Kind        field.String
	Place       field.String
	CountryCode field.String
	Year        field.Int
	Month       field.Int
	Notes       field.String
	Lat         field.Float64
	Lng         field.Float64

	fieldMap map[string]field.Expr
}

func (t travelHistoryEntry) Table(newTableName string) *travelHistoryEntry {
	t.travelHistoryEntryDo.UseTable(newTableName)
	return t.updateTableName(newTableName)
}

func (t travelHistoryEntry) As(alias string) *travelHistoryEntry {
	t.travelHistoryEntryDo.DO = *(t.travelHistoryEntryDo.As(alias).(*gen.DO))
	return t.updateTableName(alias)
}

func (t *travelHistoryEntry) updateTableName(table string) *travelHistoryEntry {
	t.ALL = field.NewAsterisk(table)
	t.CreatedAt = field.NewTime(table, "created_at")
	t.UpdatedAt = field.NewTime(table, "updated_at")
	t.DeletedAt = field.NewField(table, "deleted_at")
	t.ID = field.NewInt64(table, "id")
	t.UserID = field.NewInt64(table, "user_id")
	t.Kind = field.NewString(table, "kind")
	t.Place = field.NewString(table, "place")
	t.CountryCode = field.NewString(table, "country_code")
	t.Year = field.NewInt(table, "year")
	t.Month = field.NewInt(table, "month")
	t.Notes = field.NewString(table, "notes")
	t.Lat = field.NewFloat64(table, "lat")
	t.Lng = field.NewFloat64(table, "lng")

	t.fillFieldMap()

	return t
}

func (t *travelHistoryEntry) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := t.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (t *travelHistoryEntry) fillFieldMap() {
	t.fieldMap = make(map[string]field.Expr, 13)
	t.fieldMap["created_at"] = t.CreatedAt
	t.fieldMap["updated_at"] = t.UpdatedAt
	t.fieldMap["deleted_at"] = t.DeletedAt
	t.fieldMap["id"] = t.ID
	t.fieldMap["user_id"] = t.UserID
	t.fieldMap["kind"] = t.Kind
	t.fieldMap["place"] = t.Place
	t.fieldMap["country_code"] = t.CountryCode
	t.fieldMap["year"] = t.Year
	t.fieldMap["month"] = t.Month
	t.fieldMap["notes"] = t.Notes
	t.fieldMap["lat"] = t.Lat
	t.fieldMap["lng"] = t.Lng
}

func (t travelHistoryEntry) clone(db *gorm.DB) travelHistoryEntry {
	t.travelHistoryEntryDo.ReplaceConnPool(db.Statement.ConnPool)
	return t
}

func (t travelHistoryEntry) replaceDB(db *gorm.DB) travelHistoryEntry {
	t.travelHistoryEntryDo.ReplaceDB(db)
	return t
}

type travelHistoryEntryDo struct{ gen.DO }

type ITravelHistoryEntryDo interface {
	gen.SubQuery
	Debug() ITravelHistoryEntryDo
	WithContext(ctx context.Context) ITravelHistoryEntryDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() ITravelHistoryEntryDo
	WriteDB() ITravelHistoryEntryDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) ITravelHistoryEntryDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) ITravelHistoryEntryDo
	Not(conds ...gen.Condition) ITravelHistoryEntryDo
	Or(conds ...gen.Condition) ITravelHistoryEntryDo
	Select(conds ...field.Expr) ITravelHistoryEntryDo
	Where(conds ...gen.Condition) ITravelHistoryEntryDo
	Order(conds ...field.Expr) ITravelHistoryEntryDo
	Distinct(cols ...field.Expr) ITravelHistoryEntryDo
	Omit(cols ...field.Expr) ITravelHistoryEntryDo
	Join(table schema.Tabler, on ...field.Expr) ITravelHistoryEntryDo
	LeftJoin(table schema.Tabler, on ...field.Expr) ITravelHistoryEntryDo
	RightJoin(table schema.Tabler, on ...field.Expr) ITravelHistoryEntryDo
	Group(cols ...field.Expr) ITravelHistoryEntryDo
	Having(conds ...gen.Condition) ITravelHistoryEntryDo
	Limit(limit int) ITravelHistoryEntryDo
	Offset(offset int) ITravelHistoryEntryDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) ITravelHistoryEntryDo
	Unscoped() ITravelHistoryEntryDo
	Create(values ...*model.TravelHistoryEntry) error
	CreateInBatches(values []*model.TravelHistoryEntry, batchSize int) error
	Save(values ...*model.TravelHistoryEntry) error
	First() (*model.TravelHistoryEntry, error)
	Take() (*model.TravelHistoryEntry, error)
	Last() (*model.TravelHistoryEntry, error)
	Find() ([]*model.TravelHistoryEntry, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TravelHistoryEntry, err error)
	FindInBatches(result *[]*model.TravelHistoryEntry, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.TravelHistoryEntry) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) ITravelHistoryEntryDo
	Assign(attrs ...field.AssignExpr) ITravelHistoryEntryDo
	Joins(fields ...field.RelationField) ITravelHistoryEntryDo
	Preload(fields ...field.RelationField) ITravelHistoryEntryDo
	FirstOrInit() (*model.TravelHistoryEntry, error)
	FirstOrCreate() (*model.TravelHistoryEntry, error)
	FindByPage(offset int, limit int) (result []*model.TravelHistoryEntry, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) ITravelHistoryEntryDo
	UnderlyingDB() *gorm.DB
	schema.Tabler

	ListByUserAndKind(userID int64, kind string) (result []*model.TravelHistoryEntry, err error)
	CountDistinctCountries(userID int64) (result int64, err error)
}

// ListByUserAndKind 按用户和类型查询足迹
//
// SELECT * FROM @@table
// WHERE user_id = @userID
//
//	{{if kind != ""}}
//	AND kind = @kind
//	{{end}}
//
// ORDER BY id DESC
func (t travelHistoryEntryDo) ListByUserAndKind(userID int64, kind string) (result []*model.TravelHistoryEntry, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, userID)
	generateSQL.WriteString("SELECT * FROM travel_history_entries WHERE user_id = ? ")
	if kind != "" {
		params = append(params, kind)
		generateSQL.WriteString("AND kind = ? ")
	}
	generateSQL.WriteString("ORDER BY id DESC ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Find(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

// CountDistinctCountries 统计访问过的国家数（用于徽章计算）
//
// SELECT COUNT(DISTINCT country_code) as count
// FROM @@table
// WHERE user_id = @userID AND kind = 'visited' AND country_code <> ”
func (t travelHistoryEntryDo) CountDistinctCountries(userID int64) (result int64, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, userID)
	generateSQL.WriteString("SELECT COUNT(DISTINCT country_code) as count FROM travel_history_entries WHERE user_id = ? AND kind = 'visited' AND country_code <> '' ")

	var executeSQL *gorm.DB
	executeSQL = t.UnderlyingDB().Raw(generateSQL.String(), params...).Take(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

func (t travelHistoryEntryDo) Debug() ITravelHistoryEntryDo {
	return t.withDO(t.DO.Debug())
}

func (t travelHistoryEntryDo) WithContext(ctx context.Context) ITravelHistoryEntryDo {
	return t.withDO(t.DO.WithContext(ctx))
}

func (t travelHistoryEntryDo) ReadDB() ITravelHistoryEntryDo {
	return t.Clauses(dbresolver.Read)
}

func (t travelHistoryEntryDo) WriteDB() ITravelHistoryEntryDo {
	return t.Clauses(dbresolver.Write)
}

func (t travelHistoryEntryDo) Session(config *gorm.Session) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Session(config))
}

func (t travelHistoryEntryDo) Clauses(conds ...clause.Expression) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Clauses(conds...))
}

func (t travelHistoryEntryDo) Returning(value interface{}, columns ...string) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Returning(value, columns...))
}

func (t travelHistoryEntryDo) Not(conds ...gen.Condition) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Not(conds...))
}

func (t travelHistoryEntryDo) Or(conds ...gen.Condition) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Or(conds...))
}

func (t travelHistoryEntryDo) Select(conds ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Select(conds...))
}

func (t travelHistoryEntryDo) Where(conds ...gen.Condition) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Where(conds...))
}

func (t travelHistoryEntryDo) Order(conds ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Order(conds...))
}

func (t travelHistoryEntryDo) Distinct(cols ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Distinct(cols...))
}

func (t travelHistoryEntryDo) Omit(cols ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Omit(cols...))
}

func (t travelHistoryEntryDo) Join(table schema.Tabler, on ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Join(table, on...))
}

func (t travelHistoryEntryDo) LeftJoin(table schema.Tabler, on ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.LeftJoin(table, on...))
}

func (t travelHistoryEntryDo) RightJoin(table schema.Tabler, on ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.RightJoin(table, on...))
}

func (t travelHistoryEntryDo) Group(cols ...field.Expr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Group(cols...))
}

func (t travelHistoryEntryDo) Having(conds ...gen.Condition) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Having(conds...))
}

func (t travelHistoryEntryDo) Limit(limit int) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Limit(limit))
}

func (t travelHistoryEntryDo) Offset(offset int) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Offset(offset))
}

func (t travelHistoryEntryDo) Scopes(funcs ...func(gen.Dao) gen.Dao) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Scopes(funcs...))
}

func (t travelHistoryEntryDo) Unscoped() ITravelHistoryEntryDo {
	return t.withDO(t.DO.Unscoped())
}

func (t travelHistoryEntryDo) Create(values ...*model.TravelHistoryEntry) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Create(values)
}

func (t travelHistoryEntryDo) CreateInBatches(values []*model.TravelHistoryEntry, batchSize int) error {
	return t.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (t travelHistoryEntryDo) Save(values ...*model.TravelHistoryEntry) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Save(values)
}

func (t travelHistoryEntryDo) First() (*model.TravelHistoryEntry, error) {
	if result, err := t.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.TravelHistoryEntry), nil
	}
}

func (t travelHistoryEntryDo) Take() (*model.TravelHistoryEntry, error) {
	if result, err := t.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.TravelHistoryEntry), nil
	}
}

func (t travelHistoryEntryDo) Last() (*model.TravelHistoryEntry, error) {
	if result, err := t.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.TravelHistoryEntry), nil
	}
}

func (t travelHistoryEntryDo) Find() ([]*model.TravelHistoryEntry, error) {
	result, err := t.DO.Find()
	return result.([]*model.TravelHistoryEntry), err
}

func (t travelHistoryEntryDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TravelHistoryEntry, err error) {
	buf := make([]*model.TravelHistoryEntry, 0, batchSize)
	err = t.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (t travelHistoryEntryDo) FindInBatches(result *[]*model.TravelHistoryEntry, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return t.DO.FindInBatches(result, batchSize, fc)
}

func (t travelHistoryEntryDo) Attrs(attrs ...field.AssignExpr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Attrs(attrs...))
}

func (t travelHistoryEntryDo) Assign(attrs ...field.AssignExpr) ITravelHistoryEntryDo {
	return t.withDO(t.DO.Assign(attrs...))
}

func (t travelHistoryEntryDo) Joins(fields ...field.RelationField) ITravelHistoryEntryDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Joins(_f))
	}
	return &t
}

func (t travelHistoryEntryDo) Preload(fields ...field.RelationField) ITravelHistoryEntryDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Preload(_f))
	}
	return &t
}

func (t travelHistoryEntryDo) FirstOrInit() (*model.TravelHistoryEntry, error) {
	if result, err := t.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.TravelHistoryEntry), nil
	}
}

func (t travelHistoryEntryDo) FirstOrCreate() (*model.TravelHistoryEntry, error) {
	if result, err := t.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.TravelHistoryEntry), nil
	}
}

func (t travelHistoryEntryDo) FindByPage(offset int, limit int) (result []*model.TravelHistoryEntry, count int64, err error) {
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

func (t travelHistoryEntryDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = t.Count()
	if err != nil {
		return
	}

	err = t.Offset(offset).Limit(limit).Scan(result)
	return
}

func (t travelHistoryEntryDo) Scan(result interface{}) (err error) {
	return t.DO.Scan(result)
}

func (t travelHistoryEntryDo) Delete(models ...*model.TravelHistoryEntry) (result gen.ResultInfo, err error) {
	return t.DO.Delete(models)
}

func (t *travelHistoryEntryDo) withDO(do gen.Dao) *travelHistoryEntryDo {
	t.DO = *do.(*gen.DO)
	return t
}
