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

func newTripImage(db *gorm.DB, opts ...gen.DOOption) tripImage {
	_tripImage := tripImage{}

	_tripImage.tripImageDo.UseDB(db, opts...)
	_tripImage.tripImageDo.UseModel(&model.TripImage{})

	tableName := _tripImage.tripImageDo.TableName()
	_tripImage.ALL = field.NewAsterisk(tableName)
	_tripImage.CreatedAt = field.NewTime(tableName, "created_at")
	_tripImage.UpdatedAt = field.NewTime(tableName, "updated_at")
	_tripImage.DeletedAt = field.NewField(tableName, "deleted_at")
	_tripImage.ID = field.NewInt64(tableName, "id")
	_tripImage.TripID = field.NewInt64(tableName, "trip_id")
	_tripImage.ObjectKey = field.NewString(tableName, "object_key")
	_tripImage.URL = field.NewString(tableName, "url")
	_tripImage.Position = field.NewInt(tableName, "position")

	_tripImage.fillFieldMap()

	return _tripImage
}

type tripImage struct {
	tripImageDo

	ALL       field.Asterisk
	CreatedAt field.Time
	UpdatedAt field.Time
	DeletedAt field.Field
	ID        field.Int64
	TripID    field.Int64
	ObjectKey field.String
	URL       field.String
	Position  field.Int

	fieldMap map[string]field.Expr
}

func (t tripImage) Table(newTableName string) *tripImage {
	t.tripImageDo.UseTable(newTableName)
	return t.updateTableName(newTableName)
}

func (t tripImage) As(alias string) *tripImage {
	t.tripImageDo.DO = *(t.tripImageDo.As(alias).(*gen.DO))
	return t.updateTableName(alias)
}

func (t *tripImage) updateTableName(table string) *tripImage {
	t.ALL = field.NewAsterisk(table)
	t.CreatedAt = field.NewTime(table, "created_at")
	t.UpdatedAt = field.NewTime(table, "updated_at")
	t.DeletedAt = field.NewField(table, "deleted_at")
	t.ID = field.NewInt64(table, "id")
	t.TripID = field.NewInt64(table, "trip_id")
	t.ObjectKey = field.NewString(table, "object_key")
	t.URL = field.NewString(table, "url")
	t.Position = field.NewInt(table, "position")

	t.fillFieldMap()

	return t
}

func (t *tripImage) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := t.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (t *tripImage) fillFieldMap() {
	t.fieldMap = make(map[string]field.Expr, 8)
	t.fieldMap["created_at"] = t.CreatedAt
	t.fieldMap["updated_at"] = t.UpdatedAt
	t.fieldMap["deleted_at"] = t.DeletedAt
	t.fieldMap["id"] = t.ID
	t.fieldMap["trip_id"] = t.TripID
	t.fieldMap["object_key"] = t.ObjectKey
	t.fieldMap["url"] = t.URL
	t.fieldMap["position"] = t.Position
}

func (t tripImage) clone(db *gorm.DB) tripImage {
	t.tripImageDo.ReplaceConnPool(db.Statement.ConnPool)
	return t
}

func (t tripImage) replaceDB(db *gorm.DB) tripImage {
	t.tripImageDo.ReplaceDB(db)
	return t
}

type tripImageDo struct{ gen.DO }

type ITripImageDo interface {
	gen.SubQuery
	Debug() ITripImageDo
	WithContext(ctx context.Context) ITripImageDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() ITripImageDo
	WriteDB() ITripImageDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) ITripImageDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) ITripImageDo
	Not(conds ...gen.Condition) ITripImageDo
	Or(conds ...gen.Condition) ITripImageDo
	Select(conds ...field.Expr) ITripImageDo
	Where(conds ...gen.Condition) ITripImageDo
	Order(conds ...field.Expr) ITripImageDo
	Distinct(cols ...field.Expr) ITripImageDo
	Omit(cols ...field.Expr) ITripImageDo
	Join(table schema.Tabler, on ...field.Expr) ITripImageDo
	LeftJoin(table schema.Tabler, on ...field.Expr) ITripImageDo
	RightJoin(table schema.Tabler, on ...field.Expr) ITripImageDo
	Group(cols ...field.Expr) ITripImageDo
	Having(conds ...gen.Condition) ITripImageDo
	Limit(limit int) ITripImageDo
	Offset(offset int) ITripImageDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) ITripImageDo
	Unscoped() ITripImageDo
	Create(values ...*model.TripImage) error
	CreateInBatches(values []*model.TripImage, batchSize int) error
	Save(values ...*model.TripImage) error
	First() (*model.TripImage, error)
	Take() (*model.TripImage, error)
	Last() (*model.TripImage, error)
	Find() ([]*model.TripImage, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TripImage, err error)
	FindInBatches(result *[]*model.TripImage, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.TripImage) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) ITripImageDo
	Assign(attrs ...field.AssignExpr) ITripImageDo
	Joins(fields ...field.RelationField) ITripImageDo
	Preload(fields ...field.RelationField) ITripImageDo
	FirstOrInit() (*model.TripImage, error)
	FirstOrCreate() (*model.TripImage, error)
	FindByPage(offset int, limit int) (result []*model.TripImage, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) ITripImageDo
	UnderlyingDB() *gorm.DB
	schema.Tabler
}

func (t tripImageDo) Debug() ITripImageDo {
	return t.withDO(t.DO.Debug())
}

func (t tripImageDo) WithContext(ctx context.Context) ITripImageDo {
	return t.withDO(t.DO.WithContext(ctx))
}

func (t tripImageDo) ReadDB() ITripImageDo {
	return t.Clauses(dbresolver.Read)
}

func (t tripImageDo) WriteDB() ITripImageDo {
	return t.Clauses(dbresolver.Write)
}

func (t tripImageDo) Session(config *gorm.Session) ITripImageDo {
	return t.withDO(t.DO.Session(config))
}

func (t tripImageDo) Clauses(conds ...clause.Expression) ITripImageDo {
	return t.withDO(t.DO.Clauses(conds...))
}

func (t tripImageDo) Returning(value interface{}, columns ...string) ITripImageDo {
	return t.withDO(t.DO.Returning(value, columns...))
}

func (t tripImageDo) Not(conds ...gen.Condition) ITripImageDo {
	return t.withDO(t.DO.Not(conds...))
}

func (t tripImageDo) Or(conds ...gen.Condition) ITripImageDo {
	return t.withDO(t.DO.Or(conds...))
}

func (t tripImageDo) Select(conds ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.Select(conds...))
}

func (t tripImageDo) Where(conds ...gen.Condition) ITripImageDo {
	return t.withDO(t.DO.Where(conds...))
}

func (t tripImageDo) Order(conds ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.Order(conds...))
}

func (t tripImageDo) Distinct(cols ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.Distinct(cols...))
}

func (t tripImageDo) Omit(cols ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.Omit(cols...))
}

func (t tripImageDo) Join(table schema.Tabler, on ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.Join(table, on...))
}

func (t tripImageDo) LeftJoin(table schema.Tabler, on ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.LeftJoin(table, on...))
}

func (t tripImageDo) RightJoin(table schema.Tabler, on ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.RightJoin(table, on...))
}

func (t tripImageDo) Group(cols ...field.Expr) ITripImageDo {
	return t.withDO(t.DO.Group(cols...))
}

func (t tripImageDo) Having(conds ...gen.Condition) ITripImageDo {
	return t.withDO(t.DO.Having(conds...))
}

func (t tripImageDo) Limit(limit int) ITripImageDo {
	return t.withDO(t.DO.Limit(limit))
}

func (t tripImageDo) Offset(offset int) ITripImageDo {
	return t.withDO(t.DO.Offset(offset))
}

func (t tripImageDo) Scopes(funcs ...func(gen.Dao) gen.Dao) ITripImageDo {
	return t.withDO(t.DO.Scopes(funcs...))
}

func (t tripImageDo) Unscoped() ITripImageDo {
	return t.withDO(t.DO.Unscoped())
}

func (t tripImageDo) Create(values ...*model.TripImage) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Create(values)
}

func (t tripImageDo) CreateInBatches(values []*model.TripImage, batchSize int) error {
	return t.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (t tripImageDo) Save(values ...*model.TripImage) error {
	if len(values) == 0 {
		return nil
	}
	return t.DO.Save(values)
}

func (t tripImageDo) First() (*model.TripImage, error) {
	if result, err := t.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripImage), nil
	}
}

func (t tripImageDo) Take() (*model.TripImage, error) {
	if result, err := t.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripImage), nil
	}
}

func (t tripImageDo) Last() (*model.TripImage, error) {
	if result, err := t.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripImage), nil
	}
}

func (t tripImageDo) Find() ([]*model.TripImage, error) {
	result, err := t.DO.Find()
	return result.([]*model.TripImage), err
}

func (t tripImageDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.TripImage, err error) {
	buf := make([]*model.TripImage, 0, batchSize)
	err = t.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (t tripImageDo) FindInBatches(result *[]*model.TripImage, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return t.DO.FindInBatches(result, batchSize, fc)
}

func (t tripImageDo) Attrs(attrs ...field.AssignExpr) ITripImageDo {
	return t.withDO(t.DO.Attrs(attrs...))
}

func (t tripImageDo) Assign(attrs ...field.AssignExpr) ITripImageDo {
	return t.withDO(t.DO.Assign(attrs...))
}

func (t tripImageDo) Joins(fields ...field.RelationField) ITripImageDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Joins(_f))
	}
	return &t
}

func (t tripImageDo) Preload(fields ...field.RelationField) ITripImageDo {
	for _, _f := range fields {
		t = *t.withDO(t.DO.Preload(_f))
	}
	return &t
}

func (t tripImageDo) FirstOrInit() (*model.TripImage, error) {
	if result, err := t.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripImage), nil
	}
}

func (t tripImageDo) FirstOrCreate() (*model.TripImage, error) {
	if result, err := t.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.TripImage), nil
	}
}

func (t tripImageDo) FindByPage(offset int, limit int) (result []*model.TripImage, count int64, err error) {
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

func (t tripImageDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = t.Count()
	if err != nil {
		return
	}

	err = t.Offset(offset).Limit(limit).Scan(result)
	return
}

func (t tripImageDo) Scan(result interface{}) (err error) {
	return t.DO.Scan(result)
}

func (t tripImageDo) Delete(models ...*model.TripImage) (result gen.ResultInfo, err error) {
	return t.DO.Delete(models)
}

func (t *tripImageDo) withDO(do gen.Dao) *tripImageDo {
	t.DO = *do.(*gen.DO)
	return t
}
