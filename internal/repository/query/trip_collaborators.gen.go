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

func newTripCollaborator(db *gorm.DB, opts ...gen.DOOption) tripCollaborator {
	_tripCollaborator := tripCollaborator{}

	_tripCollaborator.tripCollaboratorDo.UseDB(db, opts...)
	_tripCollaborator.tripCollaboratorDo.UseModel(&model.TripCollaborator{})

	tableName := _tripCollaborator.tripCollaboratorDo.TableName()
	_tripCollaborator.ALL = field.NewAsterisk(tableName)
	_tripCollaborator.CreatedAt = field.NewTime(tableName, "created_at")
	_tripCollaborator.UpdatedAt = field.NewTime(tableName, "updated_at")
	_tripCollaborator.DeletedAt = field.NewField(tableName, "deleted_at")
	_tripCollaborator.ID = field.NewInt64(tableName, "id")
	_tripCollaborator.TripID = field.NewInt64(tableName, "trip_id")
	_tripCollaborator.UserID = field.NewInt64(tableName, "user_id")
	_tripCollaborator.Role = field.NewString(tableName, "role")

	_tripCollaborator.fillFieldMap()

	return _tripCollaborator
}

type tripCollaborator struct {
	tripCollaboratorDo

	ALL       field.Asterisk
	CreatedAt field.Time
	UpdatedAt field.Time
	DeletedAt field.Field
	ID        field.Int64
	TripID    field.Int64
	UserID    field.Int64
	Role      field.String

	fieldMap map[string]field.Expr
}

func (t tripCollaborator) Table(newTableName string) *tripCollaborator {
	t.tripCollaboratorDo.UseTable(newTableName)
	return t.updateTableName(newTableName)
}

func (t tripCollaborator) As(alias string) *tripCollaborator {
	t.tripCollaboratorDo.DO = *(t.tripCollaboratorDo.As(alias).(*gen.DO))
	return t.updateTableName(alias)
}

func (t *tripCollaborator) updateTableName(table string) *tripCollaborator {
	t.ALL = field.NewAsterisk(table)
	t.CreatedAt = field.NewTime(table, "created_at")
	t.UpdatedAt = field.NewTime(table, "updated_at")
	t.DeletedAt = field.NewField(table, "deleted_at")
	t.ID = field.NewInt64(table, "id")
	t.TripID = field.NewInt64(table, "trip_id")
	t.UserID = field.NewInt64(table, "user_id")
	t.Role = field.NewString(table, "role")

	t.fillFieldMap()

	return t
}

func (t *tripCollaborator) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := t.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (t *tripCollaborator) fillFieldMap() {
	t.fieldMap = make(map[string]field.Expr, 7)
	t.fieldMap["created_at"] = t.CreatedAt
	t.fieldMap["updated_at"] = t.UpdatedAt
	t.fieldMap["deleted_at"] = t.DeletedAt
	t.fieldMap["id"] = t.ID
	t.fieldMap["trip_id"] = t.TripID
	t.fieldMap["user_id"] = t.UserID
	t.fieldMap["role"] = t.Role
}

func (t tripCollaborator) clone(db *gorm.DB) tripCollaborator {
	t.tripCollaboratorDo.ReplaceConnPool(db.Statement.ConnPool)
	return t
}

func (t tripCollaborator) replaceDB(db *gorm.DB) tripCollaborator {
	t.tripCollaboratorDo.ReplaceDB(db)
	return t
}

type tripCollaboratorDo struct{ gen.DO }

type ITripCollaboratorDo interface {
	gen.SubQuery
	Debug() ITripCollaboratorDo
	WithContext(ctx context.Context) ITripCollaboratorDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() ITripCollaboratorDo
	WriteDB() ITripCollaboratorDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) ITripCollaboratorDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) ITripCollaboratorDo
	Not(conds ...gen.Condition) ITripCollaboratorDo
	Or(conds ...gen.Condition) ITripCollaboratorDo
	Select(conds ...field.Expr) ITripCollaboratorDo
	Where(conds ...gen.Condition) ITripCollaboratorDo
	Order(conds ...field.Expr) ITripCollaboratorDo
	Distinct(cols ...field.Expr) ITripCollaboratorDo
	Omit(cols ...field.Expr) ITripCollaboratorDo
	Join(table schema.Tabler, on ...field.Expr) ITripCollaboratorDo
	LeftJoin(table schema.Tabler, on ...field.Expr) ITripCollaboratorDo
	RightJoin(table schema.Tabler, on ...field.Expr) ITripCollaboratorDo
	Group(cols ...field.Expr) ITripCollaboratorDo
	Having(conds ...gen.Condition) ITripCollaboratorDo
	Limit(limit int) ITripCollaboratorDo
	Offset(offset int) ITripCollaboratorDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) ITripCollaboratorDo
	Unscoped() ITripCollaboratorDo
	Create(values ...*model.TripCollaborator) error
	CreateInBatches(values []*model.TripCollaborator, batchSize int) error
	Save(values ...*model.TripCollaborator) error
	First() (*model.TripCollaborator, error)
	Take() (*model.TripCollaborator, error)
	Last() (*model.TripCollaborator, error)
	Find() ([]*model.TripCollaborator, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TripCollaborator, err error)
	FindInBatches(result *[]*model.TripCollaborator, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.TripCollaborator) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) ITripCollaboratorDo
	Assign(attrs ...field.AssignExpr) ITripCollaboratorDo
	Joins(fields ...field.RelationField) ITripCollaboratorDo
	Preload(fields ...field.RelationField) ITripCollaboratorDo
	FirstOrInit() (*model.TripCollaborator, error)
	FirstOrCreate() (*model.TripCollaborator, error)
	FindByPage(offset int, limit int) (result []*model.TripCollaborator, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) ITripCollaboratorDo
	UnderlyingDB() *gorm.DB
	schema.Tabler
}

func (t tripCollaboratorDo) Debug() ITripCollaboratorDo {
	return t.withDO(t.DO.Debug())
}

func (t tripCollaboratorDo) WithContext(ctx context.Context) ITripCollaboratorDo {
	return t.withDO(t.DO.WithContext(ctx))
}

func (t tripCollaboratorDo) ReadDB() ITripCollaboratorDo {
	return t.Clauses(dbresolver.Read)
}

func (t tripCollaboratorDo) WriteDB() ITripCollaboratorDo {
	return t.Clauses(dbresolver.Write)
}

func (t tripCollaboratorDo) Session(config *gorm.Session) ITripCollaboratorDo {
	return t.withDO(t.DO.Session(config))
}

func (t tripCollaboratorDo) Clauses(conds ...clause.Expression) ITripCollaboratorDo {
	return t.withDO(t.DO.Clauses(conds...))
}

func (t tripCollaboratorDo) Returning(value interface{}, columns ...string) ITripCollaboratorDo {
	return t.withDO(t.DO.Returning(value, columns...))
}

func (t tripCollaboratorDo) Not(conds ...gen.Condition) ITripCollaboratorDo {
	return t.withDO(t.DO.Not(conds...))
}

func (t tripCollaboratorDo) Or(conds ...gen.Condition) ITripCollaboratorDo {
	return t.withDO(t.DO.Or(conds...))
}

func (t tripCollaboratorDo) Select(conds ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.Select(conds...))
}

func (t tripCollaboratorDo) Where(conds ...gen.Condition) ITripCollaboratorDo {
	return t.withDO(t.DO.Where(conds...))
}

func (t tripCollaboratorDo) Order(conds ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.Order(conds...))
}

func (t tripCollaboratorDo) Distinct(cols ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.Distinct(cols...))
}

func (t tripCollaboratorDo) Omit(cols ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.Omit(cols...))
}

func (t tripCollaboratorDo) Join(table schema.Tabler, on ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.Join(table, on...))
}

func (t tripCollaboratorDo) LeftJoin(table schema.Tabler, on ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.LeftJoin(table, on...))
}

func (t tripCollaboratorDo) RightJoin(table schema.Tabler, on ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.RightJoin(table, on...))
}

func (t tripCollaboratorDo) Group(cols ...field.Expr) ITripCollaboratorDo {
	return t.withDO(t.DO.Group(cols...))
}

func (t tripCollaboratorDo) Having(conds ...gen.Condition) ITripCollaboratorDo {
	return t.withDO(t.DO.Having(conds...))
}

func (t tripCollaboratorDo) Limit(limit int) ITripCollaboratorDo {
	return t.withDO(t.DO.Limit(limit))
}

func (t tripCollaboratorDo) Offset(offset int) ITripCollaboratorDo {
	return t.withDO(t.DO.Offset(offset))
}

func (t tripCollaboratorDo) Scopes(funcs ...func(gen.Dao) gen.Dao) ITripCollaboratorDo {
	return t.withDO(t.DO.Scopes(funcs...))
}

func (t tripCollaboratorDo) Unscoped() ITripCollaboratorDo {
	return t.withDO(t.DO.Unscoped())
}

func (t tripCollaboratorDo) Create(values ...*model.TripCollaborator) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Create(values)
}

func (t tripCollaboratorDo) CreateInBatches(values []*model.TripCollaborator, batchSize int) error {
	return t.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (t tripCollaboratorDo) Save(values ...*model.TripCollaborator) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Save(values)
}

func (t tripCollaboratorDo) First() (*model.TripCollaborator, error) {
	if result, err := t.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripCollaborator), nil
	}
}

func (t tripCollaboratorDo) Take() (*model.TripCollaborator, error) {
	if result, err := t.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripCollaborator), nil
	}
}

func (t tripCollaboratorDo) Last() (*model.TripCollaborator, error) {
	if result, err := t.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripCollaborator), nil
	}
}

func (t tripCollaboratorDo) Find() ([]*model.TripCollaborator, error) {
	result, err := t.DO.Find()
	return result.([]*model.TripCollaborator), err
}

func (t tripCollaboratorDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TripCollaborator, err error) {
	buf := make([]*model.TripCollaborator, 0, batchSize)
	err = t.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (t tripCollaboratorDo) FindInBatches(result *[]*model.TripCollaborator, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return t.DO.FindInBatches(result, batchSize, fc)
}

func (t tripCollaboratorDo) Attrs(attrs ...field.AssignExpr) ITripCollaboratorDo {
	return t.withDO(t.DO.Attrs(attrs...))
}

func (t tripCollaboratorDo) Assign(attrs ...field.AssignExpr) ITripCollaboratorDo {
	return t.withDO(t.DO.Assign(attrs...))
}

func (t tripCollaboratorDo) Joins(fields ...field.RelationField) ITripCollaboratorDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Joins(_f))
	}
	return &t
}

func (t tripCollaboratorDo) Preload(fields ...field.RelationField) ITripCollaboratorDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Preload(_f))
	}
	return &t
}

func (t tripCollaboratorDo) FirstOrInit() (*model.TripCollaborator, error) {
	if result, err := t.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripCollaborator), nil
	}
}

func (t tripCollaboratorDo) FirstOrCreate() (*model.TripCollaborator, error) {
	if result, err := t.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripCollaborator), nil
	}
}

func (t tripCollaboratorDo) FindByPage(offset int, limit int) (result []*model.TripCollaborator, count int64, err error) {
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

func (t tripCollaboratorDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = t.Count()
	if err != nil {
		return
	}

	err = t.Offset(offset).Limit(limit).Scan(result)
	return
}

func (t tripCollaboratorDo) Scan(result interface{}) (err error) {
	return t.DO.Scan(result)
}

func (t tripCollaboratorDo) Delete(models ...*model.TripCollaborator) (result gen.ResultInfo, err error) {
	return t.DO.Delete(models)
}

func (t *tripCollaboratorDo) withDO(do gen.Dao) *tripCollaboratorDo {
	t.DO = *do.(*gen.DO)
	return t
}
