package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/errors"
	"bdgaraj/internal/infra/persistence/docstore"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentModel is one stored document. Body holds the JSON encoding of the entity.
type documentModel struct {
	Collection string         `gorm:"primaryKey;type:text"`
	ID         string         `gorm:"primaryKey;type:text"`
	Body       datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (documentModel) TableName() string { return "documents" }

type store struct {
	db *gorm.DB
}

func newStore(db *gorm.DB) *store {
	return &store{db: db}
}

func (s *store) migrate(ctx context.Context) error {
	return errors.Wrap(s.db.WithContext(ctx).AutoMigrate(&documentModel{}), "migrate documents table")
}

func (s *store) Collection(name string) docstore.Collection {
	return &collection{db: s.db, name: name}
}

func (s *store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}

type collection struct {
	db   *gorm.DB
	name string
}

func (c *collection) scoped(ctx context.Context, filter repository.Filter) *gorm.DB {
	tx := c.db.WithContext(ctx).Model(&documentModel{}).Where("collection = ?", c.name)
	for key, value := range filter {
		tx = tx.Where("body->>? = ?", key, fmt.Sprint(value))
	}

	return tx
}

func (c *collection) Insert(ctx context.Context, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}

	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return errors.Wrap(err, "read document id")
	}
	if head.ID == "" {
		return errors.New("document id is empty")
	}

	model := &documentModel{Collection: c.name, ID: head.ID, Body: datatypes.JSON(body)}

	return errors.Wrap(c.db.WithContext(ctx).Create(model).Error, "insert document")
}

func (c *collection) FindOne(ctx context.Context, filter repository.Filter, out any) error {
	var model documentModel
	err := c.scoped(ctx, filter).Order("id").Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return docstore.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "find document")
	}

	return errors.Wrap(json.Unmarshal(model.Body, out), "decode document")
}

func (c *collection) Find(ctx context.Context, filter repository.Filter, opts docstore.FindOptions, out any) error {
	tx := c.scoped(ctx, filter)
	if opts.Sort.Field != "" {
		tx = tx.Clauses(clause.OrderBy{Expression: orderExpr(opts.Sort)})
	}

	var models []documentModel
	if err := tx.Find(&models).Error; err != nil {
		return errors.Wrap(err, "find documents")
	}

	bodies := make([]json.RawMessage, 0, len(models))
	for _, m := range models {
		bodies = append(bodies, json.RawMessage(m.Body))
	}
	raw, err := json.Marshal(bodies)
	if err != nil {
		return errors.Wrap(err, "encode documents")
	}

	return errors.Wrap(json.Unmarshal(raw, out), "decode documents")
}

func (c *collection) Set(ctx context.Context, filter repository.Filter, fields map[string]any) (int64, error) {
	patch, err := json.Marshal(fields)
	if err != nil {
		return 0, errors.Wrap(err, "encode fields")
	}

	result := c.scoped(ctx, filter).Update("body", gorm.Expr("body || ?::jsonb", string(patch)))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "update documents")
	}

	return result.RowsAffected, nil
}

func (c *collection) Delete(ctx context.Context, filter repository.Filter) (int64, error) {
	result := c.scoped(ctx, filter).Delete(&documentModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "delete documents")
	}

	return result.RowsAffected, nil
}

func (c *collection) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	var n int64
	err := c.scoped(ctx, filter).Count(&n).Error

	return n, errors.Wrap(err, "count documents")
}

// orderExpr casts the JSON field according to the sort kind so numbers and
// timestamps do not compare as text.
func orderExpr(sort repository.Sort) clause.Expression {
	cast := ""
	switch sort.Kind {
	case repository.SortNumber:
		cast = "::numeric"
	case repository.SortTime:
		cast = "::timestamptz"
	}

	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	return clause.Expr{
		SQL:  "(body->>?)" + cast + " " + direction + ", id",
		Vars: []any{sort.Field},
	}
}
