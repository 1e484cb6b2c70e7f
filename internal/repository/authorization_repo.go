package repository

import (
	"context"

	"carf-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuthorizationRepository stores the denormalized (groupcode, menucmd) →
// accesslevel rows plus the menu schema tree they fan out over.
type AuthorizationRepository interface {
	Get(ctx context.Context, groupcode, menucmd string) (*model.GroupAuthorization, error)
	Upsert(ctx context.Context, auth *model.GroupAuthorization) error
	ListForGroup(ctx context.Context, groupcode string) ([]model.GroupAuthorization, error)

	FindSchema(ctx context.Context, menucmd string) (*model.MenuSchema, error)
	ChildrenOf(ctx context.Context, menuid, menutype string) ([]model.MenuSchema, error)
	ListSchemas(ctx context.Context) ([]model.MenuSchema, error)
	ListGroups(ctx context.Context) ([]model.UserGroup, error)
}

type authorizationRepository struct {
	db *gorm.DB
}

func NewAuthorizationRepository(db *gorm.DB) AuthorizationRepository {
	return &authorizationRepository{db: db}
}

func (r *authorizationRepository) Get(ctx context.Context, groupcode, menucmd string) (*model.GroupAuthorization, error) {
	var auth model.GroupAuthorization
	err := GetDB(ctx, r.db).
		First(&auth, "groupcode = ? AND menucmd = ?", groupcode, menucmd).Error
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// Upsert is idempotent per (groupcode, menucmd): re-running a partially
// applied fan-out converges instead of failing on the unique constraint.
func (r *authorizationRepository) Upsert(ctx context.Context, auth *model.GroupAuthorization) error {
	return GetDB(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "groupcode"}, {Name: "menucmd"}},
			DoUpdates: clause.AssignmentColumns([]string{"accesslevel", "updated_at"}),
		}).
		Create(auth).Error
}

func (r *authorizationRepository) ListForGroup(ctx context.Context, groupcode string) ([]model.GroupAuthorization, error) {
	var out []model.GroupAuthorization
	err := GetDB(ctx, r.db).
		Where("groupcode = ?", groupcode).
		Order("menucmd ASC").
		Find(&out).Error
	return out, err
}

func (r *authorizationRepository) FindSchema(ctx context.Context, menucmd string) (*model.MenuSchema, error) {
	var schema model.MenuSchema
	if err := GetDB(ctx, r.db).First(&schema, "menucmd = ?", menucmd).Error; err != nil {
		return nil, err
	}
	return &schema, nil
}

func (r *authorizationRepository) ChildrenOf(ctx context.Context, menuid, menutype string) ([]model.MenuSchema, error) {
	var out []model.MenuSchema
	err := GetDB(ctx, r.db).
		Where("menuid = ? AND menutype = ?", menuid, menutype).
		Order("itemid ASC").
		Find(&out).Error
	return out, err
}

func (r *authorizationRepository) ListSchemas(ctx context.Context) ([]model.MenuSchema, error) {
	var out []model.MenuSchema
	err := GetDB(ctx, r.db).Order("itemid ASC").Find(&out).Error
	return out, err
}

func (r *authorizationRepository) ListGroups(ctx context.Context) ([]model.UserGroup, error) {
	var out []model.UserGroup
	err := GetDB(ctx, r.db).Order("groupcode ASC").Find(&out).Error
	return out, err
}
