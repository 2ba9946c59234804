package services

import (
	"esuka/models"
)

// PermissionService answers who may do what. Letters and disposisi are open to
// every signed-in account; users and reference data are admin territory.
type PermissionService struct {
	strictHierarchy bool
}

func NewPermissionService(strictHierarchy bool) *PermissionService {
	return &PermissionService{strictHierarchy: strictHierarchy}
}

func (ps *PermissionService) StrictHierarchy() bool {
	return ps != nil && ps.strictHierarchy
}

func (ps *PermissionService) CanManageUsers(actor *Actor) error {
	if actor == nil || actor.ID == 0 {
		return ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

func (ps *PermissionService) CanManageReference(actor *Actor) error {
	if actor == nil || actor.ID == 0 {
		return ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return ErrReferenceAdminOnly
	}
	return nil
}

// CanForward checks the actor and the target jabatan of a forward. Outside
// strict mode only membership in the jabatan set is enforced.
func (ps *PermissionService) CanForward(actor *Actor, d *models.Disposisi, target models.Jabatan) error {
	if actor == nil || actor.ID == 0 {
		return ErrUnauthorized
	}
	if d == nil {
		return ErrNotFound
	}
	if target == "" {
		return ErrJabatanRequired
	}
	if !target.IsValid() {
		return ErrInvalidJabatan
	}

	if !ps.StrictHierarchy() {
		return nil
	}
	if !actor.IsAdmin() && actor.Jabatan != d.TujuanJabatan {
		return ErrNotDisposisiHolder
	}
	if !d.TujuanJabatan.CanForwardTo(target) {
		return ErrInvalidTransition
	}
	return nil
}
