// Package ownership persists aggregates (a parent row plus its ordered child rows)
// that belong to exactly one account. Every query it issues is filtered by the owning
// user id, which callers must pass explicitly.
package ownership

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
)

// OwnerColumn is the column holding the owning user id on parent and child tables.
const OwnerColumn = "user_id"

// Schema describes how one aggregate maps onto its parent and child tables.
type Schema[P, C any] struct {
	// Resource names the aggregate in error messages ("Team", "Match").
	Resource string
	// ChildKey is the child column holding the parent id.
	ChildKey string
	// ListOrder is the ORDER BY clause used by List.
	ListOrder string

	// NewParent returns a fresh parent row keyed by (ownerID, id).
	NewParent func(ownerID uint, id string) P
	ParentID  func(p *P) string
	// Attach sets the loaded, position-ordered children on a parent.
	Attach func(p *P, children []C)

	ChildParentID func(c *C) string
	// Bind keys a child row to its parent at position and clears any stored child id.
	Bind func(c *C, ownerID uint, parentID string, position int)
}

// Mutate applies scalar changes to row, which exists in the store when exists is true.
// It returns the replacement child collection and whether the stored one should be replaced.
// A newly created row always gets the returned children.
type Mutate[P, C any] func(row *P, exists bool) (children []C, replace bool)

type saveMode int

const (
	upsert saveMode = iota
	createOnly
	updateOnly
)

// Repository is the ownership-scoped store for one aggregate type.
type Repository[P, C any] struct {
	db     *gorm.DB
	schema Schema[P, C]
}

// New returns a repository for the aggregate described by schema.
func New[P, C any](db *gorm.DB, schema Schema[P, C]) *Repository[P, C] {
	return &Repository[P, C]{db: db, schema: schema}
}

func (r *Repository[P, C]) owned(tx *gorm.DB, ownerID uint) *gorm.DB {
	return tx.Where(OwnerColumn+" = ?", ownerID)
}

func (r *Repository[P, C]) notFound() error {
	return common.NotFound(r.schema.Resource + " not found")
}

// List returns every aggregate owned by ownerID in the schema's list order.
func (r *Repository[P, C]) List(ctx context.Context, ownerID uint) ([]P, error) {
	db := r.db.WithContext(ctx)

	var rows []P
	if err := r.owned(db, ownerID).Order(r.schema.ListOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s rows: %w", r.schema.Resource, err)
	}
	if err := r.loadChildren(db, ownerID, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Get loads one aggregate. An id owned by another account is reported exactly like a missing one.
func (r *Repository[P, C]) Get(ctx context.Context, ownerID uint, id string) (*P, error) {
	db := r.db.WithContext(ctx)

	row, err := r.find(db, ownerID, id)
	if err != nil {
		return nil, err
	}
	rows := []P{*row}
	if err := r.loadChildren(db, ownerID, rows); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// Upsert creates the aggregate under ownerID or, if ownerID already has one with id, updates it in place.
func (r *Repository[P, C]) Upsert(ctx context.Context, ownerID uint, id string, mutate Mutate[P, C]) (*P, error) {
	return r.save(ctx, ownerID, id, upsert, mutate)
}

// Create inserts a new aggregate and fails with a conflict if ownerID already has one with id.
func (r *Repository[P, C]) Create(ctx context.Context, ownerID uint, id string, mutate Mutate[P, C]) (*P, error) {
	return r.save(ctx, ownerID, id, createOnly, mutate)
}

// Update changes an existing aggregate and fails with not found otherwise.
func (r *Repository[P, C]) Update(ctx context.Context, ownerID uint, id string, mutate Mutate[P, C]) (*P, error) {
	return r.save(ctx, ownerID, id, updateOnly, mutate)
}

// Delete removes one aggregate and its children in a single transaction.
func (r *Repository[P, C]) Delete(ctx context.Context, ownerID uint, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.find(tx, ownerID, id); err != nil {
			return err
		}
		if err := r.owned(tx, ownerID).Where(r.schema.ChildKey+" = ?", id).Delete(new(C)).Error; err != nil {
			return fmt.Errorf("delete %s children: %w", r.schema.Resource, err)
		}
		if err := r.owned(tx, ownerID).Where("id = ?", id).Delete(new(P)).Error; err != nil {
			return fmt.Errorf("delete %s: %w", r.schema.Resource, err)
		}
		return nil
	})
}

// DeleteAll removes every aggregate owned by ownerID. Owning nothing is not an error.
func (r *Repository[P, C]) DeleteAll(ctx context.Context, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.owned(tx, ownerID).Delete(new(C)).Error; err != nil {
			return fmt.Errorf("delete all %s children: %w", r.schema.Resource, err)
		}
		if err := r.owned(tx, ownerID).Delete(new(P)).Error; err != nil {
			return fmt.Errorf("delete all %s rows: %w", r.schema.Resource, err)
		}
		return nil
	})
}

func (r *Repository[P, C]) save(ctx context.Context, ownerID uint, id string, mode saveMode, mutate Mutate[P, C]) (*P, error) {
	var saved P
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := r.find(tx, ownerID, id)
		exists := err == nil
		switch {
		case errors.Is(err, common.ErrNotFound):
			if mode == updateOnly {
				return err
			}
			fresh := r.schema.NewParent(ownerID, id)
			row = &fresh
		case err != nil:
			return err
		case mode == createOnly:
			return common.Conflict(r.schema.Resource + " already exists")
		}

		children, replace := mutate(row, exists)

		if exists {
			if err := tx.Save(row).Error; err != nil {
				return fmt.Errorf("update %s: %w", r.schema.Resource, err)
			}
		} else {
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("create %s: %w", r.schema.Resource, err)
			}
		}

		if replace || !exists {
			if err := r.replaceChildren(tx, ownerID, id, children); err != nil {
				return err
			}
		}

		rows := []P{*row}
		if err := r.loadChildren(tx, ownerID, rows); err != nil {
			return err
		}
		saved = rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// replaceChildren deletes every stored child of the parent and inserts children in input order.
func (r *Repository[P, C]) replaceChildren(tx *gorm.DB, ownerID uint, parentID string, children []C) error {
	if err := r.owned(tx, ownerID).Where(r.schema.ChildKey+" = ?", parentID).Delete(new(C)).Error; err != nil {
		return fmt.Errorf("clear %s children: %w", r.schema.Resource, err)
	}
	if len(children) == 0 {
		return nil
	}
	for i := range children {
		r.schema.Bind(&children[i], ownerID, parentID, i)
	}
	if err := tx.Create(&children).Error; err != nil {
		return fmt.Errorf("insert %s children: %w", r.schema.Resource, err)
	}
	return nil
}

func (r *Repository[P, C]) find(tx *gorm.DB, ownerID uint, id string) (*P, error) {
	var row P
	err := r.owned(tx, ownerID).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.notFound()
	}
	if err != nil {
		return nil, fmt.Errorf("load %s %q: %w", r.schema.Resource, id, err)
	}
	return &row, nil
}

func (r *Repository[P, C]) loadChildren(tx *gorm.DB, ownerID uint, rows []P) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = r.schema.ParentID(&rows[i])
	}

	var children []C
	err := r.owned(tx, ownerID).
		Where(r.schema.ChildKey+" IN ?", ids).
		Order("position ASC").
		Find(&children).Error
	if err != nil {
		return fmt.Errorf("load %s children: %w", r.schema.Resource, err)
	}

	byParent := make(map[string][]C, len(rows))
	for i := range children {
		pid := r.schema.ChildParentID(&children[i])
		byParent[pid] = append(byParent[pid], children[i])
	}
	for i := range rows {
		kids := byParent[ids[i]]
		if kids == nil {
			kids = []C{}
		}
		r.schema.Attach(&rows[i], kids)
	}
	return nil
}
