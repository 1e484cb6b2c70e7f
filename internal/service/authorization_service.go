package service

import (
	"context"
	"encoding/json"
	"errors"

	"carf-backend/internal/model"
	"carf-backend/internal/repository"
	"carf-backend/pkg/apperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SetAuthorizationRequest struct {
	GroupCode   string `json:"groupcode" binding:"required"`
	MenuCmd     string `json:"menucmd" binding:"required"`
	AccessLevel string `json:"accesslevel" binding:"required,oneof=FULL NONE"`
}

// AuthorizationService answers "may this group use this program" and applies
// grants. Grants on a menu fan out to every descendant at write time, so
// reads stay one indexed lookup.
type AuthorizationService interface {
	AccessLevel(ctx context.Context, groupcode, menucmd string) (string, error)
	Set(ctx context.Context, req SetAuthorizationRequest, actor Actor) (int, error)
	ListForGroup(ctx context.Context, groupcode string) ([]model.GroupAuthorization, error)
	ListSchemas(ctx context.Context) ([]model.MenuSchema, error)
	ListGroups(ctx context.Context) ([]model.UserGroup, error)
}

type authorizationService struct {
	repo   repository.AuthorizationRepository
	audits repository.AuditRepository
	users  repository.UserRepository
	tx     repository.TransactionManager
	log    *zap.Logger
}

func NewAuthorizationService(
	repo repository.AuthorizationRepository,
	audits repository.AuditRepository,
	users repository.UserRepository,
	tx repository.TransactionManager,
	log *zap.Logger,
) AuthorizationService {
	return &authorizationService{repo: repo, audits: audits, users: users, tx: tx, log: log}
}

// AccessLevel is fail-closed: a missing row means NONE, never an error.
func (s *authorizationService) AccessLevel(ctx context.Context, groupcode, menucmd string) (string, error) {
	auth, err := s.repo.Get(ctx, groupcode, menucmd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AccessNone, nil
		}
		return model.AccessNone, err
	}
	if auth.AccessLevel != model.AccessFull {
		return model.AccessNone, nil
	}
	return model.AccessFull, nil
}

// Set applies an access level to a node and every descendant beneath it.
// The whole fan-out commits atomically; upserts make a replayed grant
// converge instead of conflicting. Returns the number of rows written.
func (s *authorizationService) Set(ctx context.Context, req SetAuthorizationRequest, actor Actor) (int, error) {
	root, err := s.repo.FindSchema(ctx, req.MenuCmd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound("menu item", req.MenuCmd)
		}
		return 0, err
	}

	targets, err := s.collectSubtree(ctx, root)
	if err != nil {
		return 0, err
	}

	written := 0
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, node := range targets {
			auth := &model.GroupAuthorization{
				GroupCode:   req.GroupCode,
				MenuCmd:     node.MenuCmd,
				AccessLevel: req.AccessLevel,
			}
			if err := s.repo.Upsert(txCtx, auth); err != nil {
				return err
			}
			written++
		}

		details, _ := json.Marshal(map[string]interface{}{
			"groupcode":   req.GroupCode,
			"menucmd":     req.MenuCmd,
			"accesslevel": req.AccessLevel,
			"fanout_rows": len(targets),
		})
		entry := &model.AuditLog{
			Action:     model.ActionSetAuthorization,
			EntityID:   req.MenuCmd,
			EntityName: req.GroupCode,
			Details:    string(details),
		}
		if user, err := s.users.GetByUserID(txCtx, actor.UserID); err == nil {
			entry.UserID = &user.ID
		}
		return s.audits.Log(txCtx, entry)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("authorization set",
		zap.String("groupcode", req.GroupCode),
		zap.String("menucmd", req.MenuCmd),
		zap.String("accesslevel", req.AccessLevel),
		zap.Int("rows", written))
	return written, nil
}

// collectSubtree walks the menu tree breadth-first from root, gathering the
// node itself plus every submenu and program under it.
func (s *authorizationService) collectSubtree(ctx context.Context, root *model.MenuSchema) ([]model.MenuSchema, error) {
	nodes := []model.MenuSchema{*root}
	queue := []model.MenuSchema{*root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// Programs are leaves; only menus have children to follow.
		if current.MenuType != model.MenuTypeMenu {
			continue
		}

		for _, kind := range []string{model.MenuTypeMenu, model.MenuTypeProgram} {
			children, err := s.repo.ChildrenOf(ctx, current.MenuCmd, kind)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, children...)
			queue = append(queue, children...)
		}
	}
	return nodes, nil
}

func (s *authorizationService) ListForGroup(ctx context.Context, groupcode string) ([]model.GroupAuthorization, error) {
	return s.repo.ListForGroup(ctx, groupcode)
}

func (s *authorizationService) ListSchemas(ctx context.Context) ([]model.MenuSchema, error) {
	return s.repo.ListSchemas(ctx)
}

func (s *authorizationService) ListGroups(ctx context.Context) ([]model.UserGroup, error) {
	return s.repo.ListGroups(ctx)
}
