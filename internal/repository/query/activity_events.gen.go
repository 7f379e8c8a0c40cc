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

func newActivityEvent(db *gorm.DB, opts ...gen.DOOption) activityEvent {
	_activityEvent := activityEvent{}

	_activityEvent.activityEventDo.UseDB(db, opts...)
	_activityEvent.activityEventDo.UseModel(&model.ActivityEvent{})

	tableName := _activityEvent.activityEventDo.TableName()
	_activityEvent.ALL = field.NewAsterisk(tableName)
	_activityEvent.CreatedAt = field.NewTime(tableName, "created_at")
	_activityEvent.UpdatedAt = field.NewTime(tableName, "updated_at")
	_activityEvent.DeletedAt = field.NewField(tableName, "deleted_at")
	_activityEvent.ID = field.NewInt64(tableName, "id")
	_activityEvent.UserID = field.NewInt64(tableName, "user_id")
	_activityEvent.Verb = field.NewString(tableName, "verb")
	_activityEvent.SubjectType = field.NewString(tableName, "subject_type")
	_activityEvent.SubjectID = field.NewInt64(tableName, "subject_id")
	_activityEvent.Payload = field.NewField(tableName, "payload")

	_activityEvent.fillFieldMap()

	return _activityEvent
}

type activityEvent struct {
	activityEventDo

	ALL         field.Asterisk
	CreatedAt   field.Time
	UpdatedAt   field.Time
	DeletedAt   field.Field
	ID          field.Int64
	UserID      field.Int64
	Verb        field.String
	SubjectType field.String
	SubjectID   field.Int64
	Payload     field.Field

	fieldMap map[string]field.Expr
}

func (a activityEvent) Table(newTableName string) *activityEvent {
	a.activityEventDo.UseTable(newTableName)
	return a.updateTableName(newTableName)
}

func (a activityEvent) As(alias string) *activityEvent {
	a.activityEventDo.DO = *(a.activityEventDo.As(alias).(*gen.DO))
	return a.updateTableName(alias)
}

func (a *activityEvent) updateTableName(table string) *activityEvent {
	a.ALL = field.NewAsterisk(table)
	a.CreatedAt = field.NewTime(table, "created_at")
	a.UpdatedAt = field.NewTime(table, "updated_at")
	a.DeletedAt = field.NewField(table, "deleted_at")
	a.ID = field.NewInt64(table, "id")
	a.UserID = field.NewInt64(table, "user_id")
	a.Verb = field.NewString(table, "verb")
	a.SubjectType = field.NewString(table, "subject_type")
	a.SubjectID = field.NewInt64(table, "subject_id")
	a.Payload = field.NewField(table, "payload")

	a.fillFieldMap()

	return a
}

func (a *activityEvent) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := a.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (a *activityEvent) fillFieldMap() {
	a.fieldMap = make(map[string]field.Expr, 9)
	a.fieldMap["created_at"] = a.CreatedAt
	a.fieldMap["updated_at"] = a.UpdatedAt
	a.fieldMap["deleted_at"] = a.DeletedAt
	a.fieldMap["id"] = a.ID
	a.fieldMap["user_id"] = a.UserID
	a.fieldMap["verb"] = a.Verb
	a.fieldMap["subject_type"] = a.SubjectType
	a.fieldMap["subject_id"] = a.SubjectID
	a.fieldMap["payload"] = a.Payload
}

func (a activityEvent) clone(db *gorm.DB) activityEvent {
	a.activityEventDo.ReplaceConnPool(db.Statement.ConnPool)
	return a
}

func (a activityEvent) replaceDB(db *gorm.DB) activityEvent {
	a.activityEventDo.ReplaceDB(db)
	return a
}

type activityEventDo struct{ gen.DO }

type IActivityEventDo interface {
	gen.SubQuery
	Debug() IActivityEventDo
	WithContext(ctx context.Context) IActivityEventDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() IActivityEventDo
	WriteDB() IActivityEventDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) IActivityEventDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) IActivityEventDo
	Not(conds ...gen.Condition) IActivityEventDo
	Or(conds ...gen.Condition) IActivityEventDo
	Select(conds ...field.Expr) IActivityEventDo
	Where(conds ...gen.Condition) IActivityEventDo
	Order(conds ...field.Expr) IActivityEventDo
	Distinct(cols ...field.Expr) IActivityEventDo
	Omit(cols ...field.Expr) IActivityEventDo
	Join(table schema.Tabler, on ...field.Expr) IActivityEventDo
	LeftJoin(table schema.Tabler, on ...field.Expr) IActivityEventDo
	RightJoin(table schema.Tabler, on ...field.Expr) IActivityEventDo
	Group(cols ...field.Expr) IActivityEventDo
	Having(conds ...gen.Condition) IActivityEventDo
	Limit(limit int) IActivityEventDo
	Offset(offset int) IActivityEventDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) IActivityEventDo
	Unscoped() IActivityEventDo
	Create(values ...*model.ActivityEvent) error
	CreateInBatches(values []*model.ActivityEvent, batchSize int) error
	Save(values ...*model.ActivityEvent) error
	First() (*model.ActivityEvent, error)
	Take() (*model.ActivityEvent, error)
	Last() (*model.ActivityEvent, error)
	Find() ([]*model.ActivityEvent, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.ActivityEvent, err error)
	FindInBatches(result *[]*model.ActivityEvent, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.ActivityEvent) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) IActivityEventDo
	Assign(attrs ...field.AssignExpr) IActivityEventDo
	Joins(fields ...field.RelationField) IActivityEventDo
	Preload(fields ...field.RelationField) IActivityEventDo
	FirstOrInit() (*model.ActivityEvent, error)
	FirstOrCreate() (*model.ActivityEvent, error)
	FindByPage(offset int, limit int) (result []*model.ActivityEvent, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) IActivityEventDo
	UnderlyingDB() *gorm.DB
	schema.Tabler

	ListByUser(userID int64, cursorID int64, limit int) (result []*model.ActivityEvent, err error)
}

// ListByUser 按用户查询活动事件（游标分页）
//
// SELECT * FROM @@table
// WHERE user_id = @userID
//
//	{{if cursorID > 0}}
//	AND id < @cursorID
//	{{end}}
//
// ORDER BY id DESC
// LIMIT @limit
func (a activityEventDo) ListByUser(userID int64, cursorID int64, limit int) (result []*model.ActivityEvent, err error) {
	var params []interface{}

	var generateSQL strings.Builder
	params = append(params, userID)
	generateSQL.WriteString("SELECT * FROM activity_events WHERE user_id = ? ")
	if cursorID > 0 {
		params = append(params, cursorID)
		generateSQL.WriteString("AND id < ? ")
	}
	params = append(params, limit)
	generateSQL.WriteString("ORDER BY id DESC LIMIT ? ")

	var executeSQL *gorm.DB
	executeSQL = a.UnderlyingDB().Raw(generateSQL.String(), params...).Find(&result) // ignore_security_alert
	err = executeSQL.Error

	return
}

func (a activityEventDo) Debug() IActivityEventDo {
	return a.withDO(a.DO.Debug())
}

func (a activityEventDo) WithContext(ctx context.Context) IActivityEventDo {
	return a.withDO(a.DO.WithContext(ctx))
}

func (a activityEventDo) ReadDB() IActivityEventDo {
	return a.Clauses(dbresolver.Read)
}

func (a activityEventDo) WriteDB() IActivityEventDo {
	return a.Clauses(dbresolver.Write)
}

func (a activityEventDo) Session(config *gorm.Session) IActivityEventDo {
	return a.withDO(a.DO.Session(config))
}

func (a activityEventDo) Clauses(conds ...clause.Expression) IActivityEventDo {
	return a.withDO(a.DO.Clauses(conds...))
}

func (a activityEventDo) Returning(value interface{}, columns ...string) IActivityEventDo {
	return a.withDO(a.DO.Returning(value, columns...))
}

func (a activityEventDo) Not(conds ...gen.Condition) IActivityEventDo {
	return a.withDO(a.DO.Not(conds...))
}

func (a activityEventDo) Or(conds ...gen.Condition) IActivityEventDo {
	return a.withDO(a.DO.Or(conds...))
}

func (a activityEventDo) Select(conds ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.Select(conds...))
}

func (a activityEventDo) Where(conds ...gen.Condition) IActivityEventDo {
	return a.withDO(a.DO.Where(conds...))
}

func (a activityEventDo) Order(conds ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.Order(conds...))
}

func (a activityEventDo) Distinct(cols ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.Distinct(cols...))
}

func (a activityEventDo) Omit(cols ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.Omit(cols...))
}

func (a activityEventDo) Join(table schema.Tabler, on ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.Join(table, on...))
}

func (a activityEventDo) LeftJoin(table schema.Tabler, on ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.LeftJoin(table, on...))
}

func (a activityEventDo) RightJoin(table schema.Tabler, on ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.RightJoin(table, on...))
}

func (a activityEventDo) Group(cols ...field.Expr) IActivityEventDo {
	return a.withDO(a.DO.Group(cols...))
}

func (a activityEventDo) Having(conds ...gen.Condition) IActivityEventDo {
	return a.withDO(a.DO.Having(conds...))
}

func (a activityEventDo) Limit(limit int) IActivityEventDo {
	return a.withDO(a.DO.Limit(limit))
}

func (a activityEventDo) Offset(offset int) IActivityEventDo {
	return a.withDO(a.DO.Offset(offset))
}

func (a activityEventDo) Scopes(funcs ...func(gen.Dao) gen.Dao) IActivityEventDo {
	return a.withDO(a.DO.Scopes(funcs...))
}

func (a activityEventDo) Unscoped() IActivityEventDo {
	return a.withDO(a.DO.Unscoped())
}

func (a activityEventDo) Create(values ...*model.ActivityEvent) error {
	if len(values) == 0 {
		return nil
	}
	return a.DO.Create(values)
}

func (a activityEventDo) CreateInBatches(values []*model.ActivityEvent, batchSize int) error {
	return a.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (a activityEventDo) Save(values ...*model.ActivityEvent) error {
	if len(values) == 0 {
		return nil
	}
	return a.DO.Save(values)
}

func (a activityEventDo) First() (*model.ActivityEvent, error) {
	if result, err := a.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.ActivityEvent), nil
	}
}

func (a activityEventDo) Take() (*model.ActivityEvent, error) {
	if result, err := a.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.ActivityEvent), nil
	}
}

func (a activityEventDo) Last() (*model.ActivityEvent, error) {
	if result, err := a.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.ActivityEvent), nil
	}
}

func (a activityEventDo) Find() ([]*model.ActivityEvent, error) {
	result, err := a.DO.Find()
	return result.([]*model.ActivityEvent), err
}

func (a activityEventDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.ActivityEvent, err error) {
	buf := make([]*model.ActivityEvent, 0, batchSize)
	err = a.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (a activityEventDo) FindInBatches(result *[]*model.ActivityEvent, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return a.DO.FindInBatches(result, batchSize, fc)
}

func (a activityEventDo) Attrs(attrs ...field.AssignExpr) IActivityEventDo {
	return a.withDO(a.DO.Attrs(attrs...))
}

func (a activityEventDo) Assign(attrs ...field.AssignExpr) IActivityEventDo {
	return a.withDO(a.DO.Assign(attrs...))
}

func (a activityEventDo) Joins(fields ...field.RelationField) IActivityEventDo {
	for _, _f := range fields {
		a = *a.withDO(a.DO.Joins(_f))
	}
	return &a
}

func (a activityEventDo) Preload(fields ...field.RelationField) IActivityEventDo {
	for _, _f := range fields {
		a = *a.withDO(a.DO.Preload(_f))
	}
	return &a
}

func (a activityEventDo) FirstOrInit() (*model.ActivityEvent, error) {
	if result, err := a.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.ActivityEvent), nil
	}
}

func (a activityEventDo) FirstOrCreate() (*model.ActivityEvent, error) {
	if result, err := a.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.ActivityEvent), nil
	}
}

func (a activityEventDo) FindByPage(offset int, limit int) (result []*model.ActivityEvent, count int64, err error) {
	result, err = a.Offset(offset).Limit(limit).Find()
	if err != nil {
		return
	}

	if size := len(result); 0 < limit && 0 < size && size < limit {
		count = int64(size + offset)
		return
	}

	count, err = a.Offset(-1).Limit(-1).Count()
	return
}

func (a activityEventDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = a.Count()
	if err != nil {
		return
	}

	err = a.Offset(offset).Limit(limit).Scan(result)
	return
}

func (a activityEventDo) Scan(result interface{}) (err error) {
	return a.DO.Scan(result)
}

func (a activityEventDo) Delete(models ...*model.ActivityEvent) (result gen.ResultInfo, err error) {
	return a.DO.Delete(models)
}

func (a *activityEventDo) withDO(do gen.Dao) *activityEventDo {
	a.DO = *do.(*gen.DO)
	return a
}
