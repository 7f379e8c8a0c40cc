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

func newSocialLink(db *gorm.DB, opts ...gen.DOOption) socialLink {
	_socialLink := socialLink{}

	_socialLink.socialLinkDo.UseDB(db, opts...)
	_socialLink.socialLinkDo.UseModel(&model.SocialLink{})

	tableName := _socialLink.socialLinkDo.TableName()
	_socialLink.ALL = field.NewAsterisk(tableName)
	_socialLink.CreatedAt = field.NewTime(tableName, "created_at")
	_socialLink.UpdatedAt = field.NewTime(tableName, "updated_at")
	_socialLink.DeletedAt = field.NewField(tableName, "deleted_at")
	_socialLink.ID = field.NewInt64(tableName, "id")
	_socialLink.UserID = field.NewInt64(tableName, "user_id")
	_socialLink.Platform = field.NewString(tableName, "platform")
	_socialLink.URL = field.NewString(tableName, "url")

	_socialLink.fillFieldMap()

	return _socialLink
}

type socialLink struct {
	socialLinkDo

	ALL       field.Asterisk
	CreatedAt field.Time
	UpdatedAt field.Time
	DeletedAt field.Field
	ID        field.Int64
	UserID    field.Int64
	Platform  field.String
	URL       field.String

	fieldMap map[string]field.Expr
}

func (s socialLink) Table(newTableName string) *socialLink {
	s.socialLinkDo.UseTable(newTableName)
	return s.updateTableName(newTableName)
}

func (s socialLink) As(alias string) *socialLink {
	s.socialLinkDo.DO = *(s.socialLinkDo.As(alias).(*gen.DO))
	return s.updateTableName(alias)
}

func (s *socialLink) updateTableName(table string) *socialLink {
	s.ALL = field.NewAsterisk(table)
	s.CreatedAt = field.NewTime(table, "created_at")
	s.UpdatedAt = field.NewTime(table, "updated_at")
	s.DeletedAt = field.NewField(table, "deleted_at")
	s.ID = field.NewInt64(table, "id")
	s.UserID = field.NewInt64(table, "user_id")
	s.Platform = field.NewString(table, "platform")
	s.URL = field.NewString(table, "url")

	s.fillFieldMap()

	return s
}

func (s *socialLink) GetFieldByName(fieldName string) (field.OrderExpr, bool) {
	_f, ok := s.fieldMap[fieldName]
	if !ok || _f == nil {
		return nil, false
	}
	_oe, ok := _f.(field.OrderExpr)
	return _oe, ok
}

func (s *socialLink) fillFieldMap() {
	s.fieldMap = make(map[string]field.Expr, 7)
	s.fieldMap["created_at"] = s.CreatedAt
	s.fieldMap["updated_at"] = s.UpdatedAt
	s.fieldMap["deleted_at"] = s.DeletedAt
	s.fieldMap["id"] = s.ID
	s.fieldMap["user_id"] = s.UserID
	s.fieldMap["platform"] = s.Platform
	s.fieldMap["url"] = s.URL
}

func (s socialLink) clone(db *gorm.DB) socialLink {
	s.socialLinkDo.ReplaceConnPool(db.Statement.ConnPool)
	return s
}

func (s socialLink) replaceDB(db *gorm.DB) socialLink {
	s.socialLinkDo.ReplaceDB(db)
	return s
}

type socialLinkDo struct{ gen.DO }

type ISocialLinkDo interface {
	gen.SubQuery
	Debug() ISocialLinkDo
	WithContext(ctx context.Context) ISocialLinkDo
	WithResult(fc func(tx gen.Dao)) gen.ResultInfo
	ReplaceDB(db *gorm.DB)
	ReadDB() ISocialLinkDo
	WriteDB() ISocialLinkDo
	As(alias string) gen.Dao
	Session(config *gorm.Session) ISocialLinkDo
	Columns(cols ...field.Expr) gen.Columns
	Clauses(conds ...clause.Expression) ISocialLinkDo
	Not(conds ...gen.Condition) ISocialLinkDo
	Or(conds ...gen.Condition) ISocialLinkDo
	Select(conds ...field.Expr) ISocialLinkDo
	Where(conds ...gen.Condition) ISocialLinkDo
	Order(conds ...field.Expr) ISocialLinkDo
	Distinct(cols ...field.Expr) ISocialLinkDo
	Omit(cols ...field.Expr) ISocialLinkDo
	Join(table schema.Tabler, on ...field.Expr) ISocialLinkDo
	LeftJoin(table schema.Tabler, on ...field.Expr) ISocialLinkDo
	RightJoin(table schema.Tabler, on ...field.Expr) ISocialLinkDo
	Group(cols ...field.Expr) ISocialLinkDo
	Having(conds ...gen.Condition) ISocialLinkDo
	Limit(limit int) ISocialLinkDo
	Offset(offset int) ISocialLinkDo
	Count() (count int64, err error)
	Scopes(funcs ...func(gen.Dao) gen.Dao) ISocialLinkDo
	Unscoped() ISocialLinkDo
	Create(values ...*model.SocialLink) error
	CreateInBatches(values []*model.SocialLink, batchSize int) error
	Save(values ...*model.SocialLink) error
	First() (*model.SocialLink, error)
	Take() (*model.SocialLink, error)
	Last() (*model.SocialLink, error)
	Find() ([]*model.SocialLink, error)
	FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.SocialLink, err error)
	FindInBatches(result *[]*model.SocialLink, batchSize int, fc func(tx gen.Dao, batch int) error) error
	Pluck(column field.Expr, dest interface{}) error
	Delete(...*model.SocialLink) (info gen.ResultInfo, err error)
	Update(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	Updates(value interface{}) (info gen.ResultInfo, err error)
	UpdateColumn(column field.Expr, value interface{}) (info gen.ResultInfo, err error)
	UpdateColumnSimple(columns ...field.AssignExpr) (info gen.ResultInfo, err error)
	UpdateColumns(value interface{}) (info gen.ResultInfo, err error)
	UpdateFrom(q gen.SubQuery) gen.Dao
	Attrs(attrs ...field.AssignExpr) ISocialLinkDo
	Assign(attrs ...field.AssignExpr) ISocialLinkDo
	Joins(fields ...field.RelationField) ISocialLinkDo
	Preload(fields ...field.RelationField) ISocialLinkDo
	FirstOrInit() (*model.SocialLink, error)
	FirstOrCreate() (*model.SocialLink, error)
	FindByPage(offset int, limit int) (result []*model.SocialLink, count int64, err error)
	ScanByPage(result interface{}, offset int, limit int) (count int64, err error)
	Rows() (*sql.Rows, error)
	Row() *sql.Row
	Scan(result interface{}) (err error)
	Returning(value interface{}, columns ...string) ISocialLinkDo
	UnderlyingDB() *gorm.DB
	schema.Tabler
}

func (s socialLinkDo) Debug() ISocialLinkDo {
	return s.withDO(s.DO.Debug())
}

func (s socialLinkDo) WithContext(ctx context.Context) ISocialLinkDo {
	return s.withDO(s.DO.WithContext(ctx))
}

func (s socialLinkDo) ReadDB() ISocialLinkDo {
	return s.Clauses(dbresolver.Read)
}

func (s socialLinkDo) WriteDB() ISocialLinkDo {
	return s.Clauses(dbresolver.Write)
}

func (s socialLinkDo) Session(config *gorm.Session) ISocialLinkDo {
	return s.withDO(s.DO.Session(config))
}

func (s socialLinkDo) Clauses(conds ...clause.Expression) ISocialLinkDo {
	return s.withDO(s.DO.Clauses(conds...))
}

func (s socialLinkDo) Returning(value interface{}, columns ...string) ISocialLinkDo {
	return s.withDO(s.DO.Returning(value, columns...))
}

func (s socialLinkDo) Not(conds ...gen.Condition) ISocialLinkDo {
	return s.withDO(s.DO.Not(conds...))
}

func (s socialLinkDo) Or(conds ...gen.Condition) ISocialLinkDo {
	return s.withDO(s.DO.Or(conds...))
}

func (s socialLinkDo) Select(conds ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.Select(conds...))
}

func (s socialLinkDo) Where(conds ...gen.Condition) ISocialLinkDo {
	return s.withDO(s.DO.Where(conds...))
}

func (s socialLinkDo) Order(conds ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.Order(conds...))
}

func (s socialLinkDo) Distinct(cols ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.Distinct(cols...))
}

func (s socialLinkDo) Omit(cols ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.Omit(cols...))
}

func (s socialLinkDo) Join(table schema.Tabler, on ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.Join(table, on...))
}

func (s socialLinkDo) LeftJoin(table schema.Tabler, on ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.LeftJoin(table, on...))
}

func (s socialLinkDo) RightJoin(table schema.Tabler, on ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.RightJoin(table, on...))
}

func (s socialLinkDo) Group(cols ...field.Expr) ISocialLinkDo {
	return s.withDO(s.DO.Group(cols...))
}

func (s socialLinkDo) Having(conds ...gen.Condition) ISocialLinkDo {
	return s.withDO(s.DO.Having(conds...))
}

func (s socialLinkDo) Limit(limit int) ISocialLinkDo {
	return s.withDO(s.DO.Limit(limit))
}

func (s socialLinkDo) Offset(offset int) ISocialLinkDo {
	return s.withDO(s.DO.Offset(offset))
}

func (s socialLinkDo) Scopes(funcs ...func(gen.Dao) gen.Dao) ISocialLinkDo {
	return s.withDO(s.DO.Scopes(funcs...))
}

func (s socialLinkDo) Unscoped() ISocialLinkDo {
	return s.withDO(s.DO.Unscoped())
}

func (s socialLinkDo) Create(values ...*model.SocialLink) error {
	if len(values) == 0 {
		return nil
	}
	return s.DO.Create(values)
}

func (s socialLinkDo) CreateInBatches(values []*model.SocialLink, batchSize int) error {
	return s.DO.CreateInBatches(values, batchSize)
}

// Save : !!! underlying implementation is different with GORM
// The method is equivalent to executing the statement: db.Clauses(clause.OnConflict{UpdateAll: true}).Create(values)
func (s socialLinkDo) Save(values ...*model.SocialLink) error {
	if len(values) == 0 {
		return nil
	}
	return s.DO.Save(values)
}

func (s socialLinkDo) First() (*model.SocialLink, error) {
	if result, err := s.DO.First(); err != nil {
		return nil, err
	} else {
		return result.(*model.SocialLink), nil
	}
}

func (s socialLinkDo) Take() (*model.SocialLink, error) {
	if result, err := s.DO.Take(); err != nil {
		return nil, err
	} else {
		return result.(*model.SocialLink), nil
	}
}

func (s socialLinkDo) Last() (*model.SocialLink, error) {
	if result, err := s.DO.Last(); err != nil {
		return nil, err
	} else {
		return result.(*model.SocialLink), nil
	}
}

func (s socialLinkDo) Find() ([]*model.SocialLink, error) {
	result, err := s.DO.Find()
	return result.([]*model.SocialLink), err
}

func (s socialLinkDo) FindInBatch(batchSize int, fc func(tx gen.Dao, batch int) error) (results []*model.SocialLink, err error) {
	buf := make([]*model.SocialLink, 0, batchSize)
	err = s.DO.FindInBatches(&buf, batchSize, func(tx gen.Dao, batch int) error {
		defer func() { results = append(results, buf...) }()
		return fc(tx, batch)
	})
	return results, err
}

func (s socialLinkDo) FindInBatches(result *[]*model.SocialLink, batchSize int, fc func(tx gen.Dao, batch int) error) error {
	return s.DO.FindInBatches(result, batchSize, fc)
}

func (s socialLinkDo) Attrs(attrs ...field.AssignExpr) ISocialLinkDo {
	return s.withDO(s.DO.Attrs(attrs...))
}

func (s socialLinkDo) Assign(attrs ...field.AssignExpr) ISocialLinkDo {
	return s.withDO(s.DO.Assign(attrs...))
}

func (s socialLinkDo) Joins(fields ...field.RelationField) ISocialLinkDo {
	for _, _f := range fields {
		s = *s.withDO(s.DO.Joins(_f))
	}
	return &s
}

func (s socialLinkDo) Preload(fields ...field.RelationField) ISocialLinkDo {
	for _, _f := range fields {
		s = *s.withDO(s.DO.Preload(_f))
	}
	return &s
}

func (s socialLinkDo) FirstOrInit() (*model.SocialLink, error) {
	if result, err := s.DO.FirstOrInit(); err != nil {
		return nil, err
	} else {
		return result.(*model.SocialLink), nil
	}
}

func (s socialLinkDo) FirstOrCreate() (*model.SocialLink, error) {
	if result, err := s.DO.FirstOrCreate(); err != nil {
		return nil, err
	} else {
		return result.(*model.SocialLink), nil
	}
}

func (s socialLinkDo) FindByPage(offset int, limit int) (result []*model.SocialLink, count int64, err error) {
	result, err = s.Offset(offset).Limit(limit).Find()
	if err != nil {
		return
	}

	if size := len(result); 0 < limit && 0 < size && size < limit {
		count = int64(size + offset)
		return
	}

	count, err = s.Offset(-1).Limit(-1).Count()
	return
}

func (s socialLinkDo) ScanByPage(result interface{}, offset int, limit int) (count int64, err error) {
	count, err = s.Count()
	if err != nil {
		return
	}

	err = s.Offset(offset).Limit(limit).Scan(result)
	return
}

func (s socialLinkDo) Scan(result interface{}) (err error) {
	return s.DO.Scan(result)
}

func (s socialLinkDo) Delete(models ...*model.SocialLink) (result gen.ResultInfo, err error) {
	return s.DO.Delete(models)
}

func (s *socialLinkDo) withDO(do gen.Dao) *socialLinkDo {
	s.DO = *do.(*gen.DO)
	return s
}
