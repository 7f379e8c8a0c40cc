// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.
// Code generated by gorm.io/gen. DO NOT EDIT.

package query

import (
	"Tripweave/internal/model"
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"gorm.io/gen"
	"gorm.io/gen/field"

	"gorm.io/plugin/dbresolver"
)

func newTripLove(db *gorm.DB, opts ...gen.DOOption) tripLove {
	_tripLove := tripLove{}

	_tripLove.tripLoveDo.UseDB(db, opts...)
	_tripLove.tripLoveDo.UseModel(&model.TripLove{})

	tableName := _tripLove.tripLoveDo.TableName()
	_tripLove.ALL = field.NewAsterisk(tableName)
	_tripLove.CreatedAt = field.NewTime(tableName, "created_at")
	_tripLove.UpdatedAt = field.NewTime(tableName, "updated_at")
	_tripLove.DeletedAt = field.NewField(tableName, "deleted_at")
	_tripLove.ID = field.NewInt64(tableName, "id")
	_tripLove.TripID = field.NewInt64(tableName, "trip_id")
	_tripLove.UserID = field.NewInt64(tableName, "user_id")

	_tripLove.fillFieldMap()

	return _tripLove
}

type tripLove struct {
	tripLoveDo

	ALL       field.Asterisk
	CreatedAt field.Time
	UpdatedAt field.Time
	DeletedAt field.Field
	ID        field.Int64
	TripID    field.Int64
	UserID    field.Int64

	fieldMap map[string]field.Expr
}

func (t tripLove) Table(newTableName string) *tripLove {
	t.tripLoveDo.UseTable(newTableName)
	return t.updateTableName(newTableName)
}

func (t tripLove) As(alias string) *tripLove {
	t.tripLoveDo.DO = *(t.tripLoveDo.As(alias).(*gen.DO))
	return t.updateTableName(alias)
}

func (t *tripLove) updateTableName(table string) *tripLove {
	t.ALL = field.NewAsterisk(table)
	t.CreatedAt = field.NewTime(table, "created_at")
	t.UpdatedAt = field.NewTime(table, "updated_at")
	t.DeletedAt = field.NewField(table, "deleted_at")
	t.ID = field.NewInt64(table, "id")
	t.TripID = field.NewInt64(table, "trip_id")
	t.UserID = field.NewInt64(table, "user_id")

	t.fillFieldMap()

	return t
}

func (t *tripLove) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := t.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (t *tripLove) fillFieldMap() {
	t.fieldMap = make(map[string]field.Expr, 6)
	t.fieldMap["created_at"] = t.CreatedAt
	t.fieldMap["updated_at"] = t.UpdatedAt
	t.fieldMap["deleted_at"] = t.DeletedAt
	t.fieldMap["id"] = t.ID
	t.fieldMap["trip_id"] = t.TripID
	t.fieldMap["user_id"] = t.UserID
}

func (t tripLove) clone(db *gorm.DB) tripLove {
	t.tripLoveDo.ReplaceConnPool(db.Statement.ConnPool)
	return t
}

func (t tripLove) replaceDB(db *gorm.DB) tripLove {
	t.tripLoveDo.ReplaceDB(db)
	return t
}

type tripLoveDo struct{ gen.DO }

type ITripLoveDo interface {
	gen.SubQuery
	Debug() ITripLoveDo
	WithContext(ctx context.Context) ITripLoveDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() ITripLoveDo
	WriteDB() ITripLoveDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) ITripLoveDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) ITripLoveDo
	Not(conds ...gen.Condition) ITripLoveDo
	Or(conds ...gen.Condition) ITripLoveDo
	Select(conds ...field.Expr) ITripLoveDo
	Where(conds ...gen.Condition) ITripLoveDo
	Order(conds ...field.Expr) ITripLoveDo
	Distinct(cols ...field.Expr) ITripLoveDo
	Omit(cols ...field.Expr) ITripLoveDo
	Join(table schema.Tabler, on ...field.Expr) ITripLoveDo
	LeftJoin(table schema.Tabler, on ...field.Expr) ITripLoveDo
	RightJoin(table schema.Tabler, on ...field.Expr) ITripLoveDo
	Group(cols ...field.Expr) ITripLoveDo
	Having(conds ...gen.Condition) ITripLoveDo
	Limit(limit int) ITripLoveDo
	Offset(offset int) ITripLoveDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) ITripLoveDo
	Unscoped() ITripLoveDo
	Create(values ...*model.TripLove) error
	CreateInBatches(values []*model.TripLove, batchSize int) error
	Save(values ...*model.TripLove) error
	First() (*model.TripLove, error)
	Take() (*model.TripLove, error)
	Last() (*model.TripLove, error)
	Find() ([]*model.TripLove, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TripLove, err error)
	FindInBatches(result *[]*model.TripLove, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.TripLove) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) ITripLoveDo
	Assign(attrs ...field.AssignExpr) ITripLoveDo
	Joins(fields ...field.RelationField) ITripLoveDo
	Preload(fields ...field.RelationField) ITripLoveDo
	FirstOrInit() (*model.TripLove, error)
	FirstOrCreate() (*model.TripLove, error)
	FindByPage(offset int, limit int) (result []*model.TripLove, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) ITripLoveDo
	UnderlyingDB() *gorm.DB
	schema.Tabler
}

func (t tripLoveDo) Debug() ITripLoveDo {
	return t.withDO(t.DO.Debug())
}

func (t tripLoveDo) WithContext(ctx context.Context) ITripLoveDo {
	return t.withDO(t.DO.WithContext(ctx))
}

func (t tripLoveDo) ReadDB() ITripLoveDo {
	return t.Clauses(dbresolver.Read)
}

func (t tripLoveDo) WriteDB() ITripLoveDo {
	return t.Clauses(dbresolver.Write)
}

func (t tripLoveDo) Session(config *gorm.Session) ITripLoveDo {
	return t.withDO(t.DO.Session(config))
}

func (t tripLoveDo) Clauses(conds ...clause.Expression) ITripLoveDo {
	return t.withDO(t.DO.Clauses(conds...))
}

func (t tripLoveDo) Returning(value interface{}, columns ...string) ITripLoveDo {
	return t.withDO(t.DO.Returning(value, columns...))
}

func (t tripLoveDo) Not(conds ...gen.Condition) ITripLoveDo {
	return t.withDO(t.DO.Not(conds...))
}

func (t tripLoveDo) Or(conds ...gen.Condition) ITripLoveDo {
	return t.withDO(t.DO.Or(conds...))
}

func (t tripLoveDo) Select(conds ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.Select(conds...))
}

func (t tripLoveDo) Where(conds ...gen.Condition) ITripLoveDo {
	return t.withDO(t.DO.Where(conds...))
}

func (t tripLoveDo) Order(conds ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.Order(conds...))
}

func (t tripLoveDo) Distinct(cols ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.Distinct(cols...))
}

func (t tripLoveDo) Omit(cols ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.Omit(cols...))
}

func (t tripLoveDo) Join(table schema.Tabler, on ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.Join(table, on...))
}

func (t tripLoveDo) LeftJoin(table schema.Tabler, on ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.LeftJoin(table, on...))
}

func (t tripLoveDo) RightJoin(table schema.Tabler, on ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.RightJoin(table, on...))
}

func (t tripLoveDo) Group(cols ...field.Expr) ITripLoveDo {
	return t.withDO(t.DO.Group(cols...))
}

func (t tripLoveDo) Having(conds ...gen.Condition) ITripLoveDo {
	return t.withDO(t.DO.Having(conds...))
}

func (t tripLoveDo) Limit(limit int) ITripLoveDo {
	return t.withDO(t.DO.Limit(limit))
}

func (t tripLoveDo) Offset(offset int) ITripLoveDo {
	return t.withDO(t.DO.Offset(offset))
}

func (t tripLoveDo) Scopes(funcs ...func(gen.Dao) gen.Dao) ITripLoveDo {
	return t.withDO(t.DO.Scopes(funcs...))
}

func (t tripLoveDo) Unscoped() ITripLoveDo {
	return t.withDO(t.DO.Unscoped())
}

func (t tripLoveDo) Create(values ...*model.TripLove) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Create(values)
}

func (t tripLoveDo) CreateInBatches(values []*model.TripLove, batchSize int) error {
	return t.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (t tripLoveDo) Save(values ...*model.TripLove) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Save(values)
}

func (t tripLoveDo) First() (*model.TripLove, error) {
	if result, err := t.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripLove), nil
	}
}

func (t tripLoveDo) Take() (*model.TripLove, error) {
	if result, err := t.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripLove), nil
	}
}

func (t tripLoveDo) Last() (*model.TripLove, error) {
	if result, err := t.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripLove), nil
	}
}

func (t tripLoveDo) Find() ([]*model.TripLove, error) {
	result, err := t.DO.Find()
	return result.([]*model.TripLove), err
}

func (t tripLoveDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TripLove, err error) {
	buf := make([]*model.TripLove, 0, batchSize)
	err = t.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (t tripLoveDo) FindInBatches(result *[]*model.TripLove, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return t.DO.FindInBatches(result, batchSize, fc)
}

func (t tripLoveDo) Attrs(attrs ...field.AssignExpr) ITripLoveDo {
	return t.withDO(t.DO.Attrs(attrs...))
}

func (t tripLoveDo) Assign(attrs ...field.AssignExpr) ITripLoveDo {
	return t.withDO(t.DO.Assign(attrs...))
}

func (t tripLoveDo) Joins(fields ...field.RelationField) ITripLoveDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Joins(_f))
	}
	return &t
}

func (t tripLoveDo) Preload(fields ...field.RelationField) ITripLoveDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Preload(_f))
	}
	return &t
}

func (t tripLoveDo) FirstOrInit() (*model.TripLove, error) {
	if result, err := t.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripLove), nil
	}
}

func (t tripLoveDo) FirstOrCreate() (*model.TripLove, error) {
	if result, err := t.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripLove), nil
	}
}

func (t tripLoveDo) FindByPage(offset int, limit int) (result []*model.TripLove, count int64, err error) {
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

func (t tripLoveDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = t.Count()
	if err != nil {
		return
	}

	err = t.Offset(offset).Limit(limit).Scan(result)
	return
}

func (t tripLoveDo) Scan(result interface{}) (err error) {
	return t.DO.Scan(result)
}

func (t tripLoveDo) Delete(models ...*model.TripLove) (result gen.ResultInfo, err error) {
	return t.DO.Delete(models)
}

func (t *tripLoveDo) withDO(do gen.Dao) *tripLoveDo {
	t.DO = *do.(*gen.DO)
	return t
}
