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

func newPaymentLink(db *gorm.DB, opts ...gen.DOOption) paymentLink {
	_paymentLink := paymentLink{}

	_paymentLink.paymentLinkDo.UseDB(db, opts...)
	_paymentLink.paymentLinkDo.UseModel(&model.PaymentLink{})

	tableName := _paymentLink.paymentLinkDo.TableName()
	_paymentLink.ALL = field.NewAsterisk(tableName)
	_paymentLink.CreatedAt = field.NewTime(tableName, "created_at")
	_paymentLink.UpdatedAt = field.NewTime(tableName, "updated_at")
	_paymentLink.DeletedAt = field.NewField(tableName, "deleted_at")
	_paymentLink.ID = field.NewInt64(tableName, "id")
	_paymentLink.UserID = field.NewInt64(tableName, "user_id")
	_paymentLink.Provider = field.NewString(tableName, "provider")
	_paymentLink.URL = field.NewString(tableName, "url")

	_paymentLink.fillFieldMap()

	return _paymentLink
}

type paymentLink struct {
	paymentLinkDo

	ALL       field.Asterisk
	CreatedAt field.Time
	UpdatedAt field.Time
	DeletedAt field.Field
	ID        field.Int64
	UserID    field.Int64
	Provider  field.String
	URL       field.String

	fieldMap map[string]field.Expr
}

func (p paymentLink) Table(newTableName string) *paymentLink {
	p.paymentLinkDo.UseTable(newTableName)
	return p.updateTableName(newTableName)
}

func (p paymentLink) As(alias string) *paymentLink {
	p.paymentLinkDo.DO = *(p.paymentLinkDo.As(alias).(*gen.DO))
	return p.updateTableName(alias)
}

func (p *paymentLink) updateTableName(table string) *paymentLink {
	p.ALL = field.NewAsterisk(table)
	p.CreatedAt = field.NewTime(table, "created_at")
	p.UpdatedAt = field.NewTime(table, "updated_at")
	p.DeletedAt = field.NewField(table, "deleted_at")
	p.ID = field.NewInt64(table, "id")
	p.UserID = field.NewInt64(table, "user_id")
	p.Provider = field.NewString(table, "provider")
	p.URL = field.NewString(table, "url")

	p.fillFieldMap()

	return p
}

func (p *paymentLink) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := p.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (p *paymentLink) fillFieldMap() {
	p.fieldMap = make(map[string]field.Expr, 7)
	p.fieldMap["created_at"] = p.CreatedAt
	p.fieldMap["updated_at"] = p.UpdatedAt
	p.fieldMap["deleted_at"] = p.DeletedAt
	p.fieldMap["id"] = p.ID
	p.fieldMap["user_id"] = p.UserID
	p.fieldMap["provider"] = p.Provider
	p.fieldMap["url"] = p.URL
}

func (p paymentLink) clone(db *gorm.DB) paymentLink {
	p.paymentLinkDo.ReplaceConnPool(db.Statement.ConnPool)
	return p
}

func (p paymentLink) replaceDB(db *gorm.DB) paymentLink {
	p.paymentLinkDo.ReplaceDB(db)
	return p
}

type paymentLinkDo struct{ gen.DO }

type IPaymentLinkDo interface {
	gen.SubQuery
	Debug() IPaymentLinkDo
	WithContext(ctx context.Context) IPaymentLinkDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() IPaymentLinkDo
	WriteDB() IPaymentLinkDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) IPaymentLinkDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) IPaymentLinkDo
	Not(conds ...gen.Condition) IPaymentLinkDo
	Or(conds ...gen.Condition) IPaymentLinkDo
	Select(conds ...field.Expr) IPaymentLinkDo
	Where(conds ...gen.Condition) IPaymentLinkDo
	Order(conds ...field.Expr) IPaymentLinkDo
	Distinct(cols ...field.Expr) IPaymentLinkDo
	Omit(cols ...field.Expr) IPaymentLinkDo
	Join(table schema.Tabler, on ...field.Expr) IPaymentLinkDo
	LeftJoin(table schema.Tabler, on ...field.Expr) IPaymentLinkDo
	RightJoin(table schema.Tabler, on ...field.Expr) IPaymentLinkDo
	Group(cols ...field.Expr) IPaymentLinkDo
	Having(conds ...gen.Condition) IPaymentLinkDo
	Limit(limit int) IPaymentLinkDo
	Offset(offset int) IPaymentLinkDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) IPaymentLinkDo
	Unscoped() IPaymentLinkDo
	Create(values ...*model.PaymentLink) error
	CreateInBatches(values []*model.PaymentLink, batchSize int) error
	Save(values ...*model.PaymentLink) error
	First() (*model.PaymentLink, error)
	Take() (*model.PaymentLink, error)
	Last() (*model.PaymentLink, error)
	Find() ([]*model.PaymentLink, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.PaymentLink, err error)
	FindInBatches(result *[]*model.PaymentLink, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.PaymentLink) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) IPaymentLinkDo
	Assign(attrs ...field.AssignExpr) IPaymentLinkDo
	Joins(fields ...field.RelationField) IPaymentLinkDo
	Preload(fields ...field.RelationField) IPaymentLinkDo
	FirstOrInit() (*model.PaymentLink, error)
	FirstOrCreate() (*model.PaymentLink, error)
	FindByPage(offset int, limit int) (result []*model.PaymentLink, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) IPaymentLinkDo
	UnderlyingDB() *gorm.DB
	schema.Tabler
}

func (p paymentLinkDo) Debug() IPaymentLinkDo {
	return p.withDO(p.DO.Debug())
}

func (p paymentLinkDo) WithContext(ctx context.Context) IPaymentLinkDo {
	return p.withDO(p.DO.WithContext(ctx))
}

func (p paymentLinkDo) ReadDB() IPaymentLinkDo {
	return p.Clauses(dbresolver.Read)
}

func (p paymentLinkDo) WriteDB() IPaymentLinkDo {
	return p.Clauses(dbresolver.Write)
}

func (p paymentLinkDo) Session(config *gorm.Session) IPaymentLinkDo {
	return p.withDO(p.DO.Session(config))
}

func (p paymentLinkDo) Clauses(conds ...clause.Expression) IPaymentLinkDo {
	return p.withDO(p.DO.Clauses(conds...))
}

func (p paymentLinkDo) Returning(value interface{}, columns ...string) IPaymentLinkDo {
	return p.withDO(p.DO.Returning(value, columns...))
}

func (p paymentLinkDo) Not(conds ...gen.Condition) IPaymentLinkDo {
	return p.withDO(p.DO.Not(conds...))
}

func (p paymentLinkDo) Or(conds ...gen.Condition) IPaymentLinkDo {
	return p.withDO(p.DO.Or(conds...))
}

func (p paymentLinkDo) Select(conds ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.Select(conds...))
}

func (p paymentLinkDo) Where(conds ...gen.Condition) IPaymentLinkDo {
	return p.withDO(p.DO.Where(conds...))
}

func (p paymentLinkDo) Order(conds ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.Order(conds...))
}

func (p paymentLinkDo) Distinct(cols ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.Distinct(cols...))
}

func (p paymentLinkDo) Omit(cols ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.Omit(cols...))
}

func (p paymentLinkDo) Join(table schema.Tabler, on ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.Join(table, on...))
}

func (p paymentLinkDo) LeftJoin(table schema.Tabler, on ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.LeftJoin(table, on...))
}

func (p paymentLinkDo) RightJoin(table schema.Tabler, on ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.RightJoin(table, on...))
}

func (p paymentLinkDo) Group(cols ...field.Expr) IPaymentLinkDo {
	return p.withDO(p.DO.Group(cols...))
}

func (p paymentLinkDo) Having(conds ...gen.Condition) IPaymentLinkDo {
	return p.withDO(p.DO.Having(conds...))
}

func (p paymentLinkDo) Limit(limit int) IPaymentLinkDo {
	return p.withDO(p.DO.Limit(limit))
}

func (p paymentLinkDo) Offset(offset int) IPaymentLinkDo {
	return p.withDO(p.DO.Offset(offset))
}

func (p paymentLinkDo) Scopes(funcs ...func(gen.Dao) gen.Dao) IPaymentLinkDo {
	return p.withDO(p.DO.Scopes(funcs...))
}

func (p paymentLinkDo) Unscoped() IPaymentLinkDo {
	return p.withDO(p.DO.Unscoped())
}

func (p paymentLinkDo) Create(values ...*model.PaymentLink) error {
	if len(values) == 0 {
		return nil
	}
	return p.DO.Create(values)
}

func (p paymentLinkDo) CreateInBatches(values []*model.PaymentLink, batchSize int) error {
	return p.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (p paymentLinkDo) Save(values ...*model.PaymentLink) error {
	if len(values) == 0 {
		return nil
	}
	return p.DO.Save(values)
}

func (p paymentLinkDo) First() (*model.PaymentLink, error) {
	if result, err := p.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.PaymentLink), nil
	}
}

func (p paymentLinkDo) Take() (*model.PaymentLink, error) {
	if result, err := p.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.PaymentLink), nil
	}
}

func (p paymentLinkDo) Last() (*model.PaymentLink, error) {
	if result, err := p.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.PaymentLink), nil
	}
}

func (p paymentLinkDo) Find() ([]*model.PaymentLink, error) {
	result, err := p.DO.Find()
	return result.([]*model.PaymentLink), err
}

func (p paymentLinkDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.PaymentLink, err error) {
	buf := make([]*model.PaymentLink, 0, batchSize)
	err = p.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (p paymentLinkDo) FindInBatches(result *[]*model.PaymentLink, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return p.DO.FindInBatches(result, batchSize, fc)
}

func (p paymentLinkDo) Attrs(attrs ...field.AssignExpr) IPaymentLinkDo {
	return p.withDO(p.DO.Attrs(attrs...))
}

func (p paymentLinkDo) Assign(attrs ...field.AssignExpr) IPaymentLinkDo {
	return p.withDO(p.DO.Assign(attrs...))
}

func (p paymentLinkDo) Joins(fields ...field.RelationField) IPaymentLinkDo {
	for _, _f := range fields {
		p = *p.withDO(p.DO.Joins(_f))
	}
	return &p
}

func (p paymentLinkDo) Preload(fields ...field.RelationField) IPaymentLinkDo {
	for _, _f := range fields {
		p = *p.withDO(p.DO.Preload(_f))
	}
	return &p
}

func (p paymentLinkDo) FirstOrInit() (*model.PaymentLink, error) {
	if result, err := p.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.PaymentLink), nil
	}
}

func (p paymentLinkDo) FirstOrCreate() (*model.PaymentLink, error) {
	if result, err := p.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.PaymentLink), nil
	}
}

func (p paymentLinkDo) FindByPage(offset int, limit int) (result []*model.PaymentLink, count int64, err error) {
	result, err = p.Offset(offset).Limit(limit).Find()
	if err != nil {
		return
	}

	if size := len(result); 0 < limit && 0 < size && size < limit {
		count = int64(size + offset)
		return
	}

	count, err = p.Offset(-1).Limit(-1).Count()
	return
}

func (p paymentLinkDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = p.Count()
	if err != nil {
		return
	}

	err = p.Offset(offset).Limit(limit).Scan(result)
	return
}

func (p paymentLinkDo) Scan(result interface{}) (err error) {
	return p.DO.Scan(result)
}

func (p paymentLinkDo) Delete(models ...*model.PaymentLink) (result gen.ResultInfo, err error) {
	return p.DO.Delete(models)
}

func (p *paymentLinkDo) withDO(do gen.Dao) *paymentLinkDo {
	p.DO = *do.(*gen.DO)
	return p
}
