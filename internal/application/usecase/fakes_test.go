package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Implementan los
// mismos puertos que los repositorios Postgres, incluyendo el contrato
// (nil, nil) cuando el recurso no existe.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) GetByIDs(ids []string) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		if u, _ := r.GetByID(id); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeRestaurantRepo struct {
	restaurants []*entity.Restaurant
	accessRepo  *fakeAccessRepo // para ListByUser
}

func (r *fakeRestaurantRepo) Create(rest *entity.Restaurant) error {
	cp := *rest
	r.restaurants = append(r.restaurants, &cp)
	return nil
}

func (r *fakeRestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.ID == id {
			cp := *rest
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRestaurantRepo) Update(rest *entity.Restaurant) error {
	for i, existing := range r.restaurants {
		if existing.ID == rest.ID {
			cp := *rest
			r.restaurants[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeRestaurantRepo) Delete(id string) error {
	for i, rest := range r.restaurants {
		if rest.ID == id {
			r.restaurants = append(r.restaurants[:i], r.restaurants[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRestaurantRepo) ListByUser(userID string) ([]*entity.Restaurant, error) {
	var out []*entity.Restaurant
	for _, rest := range r.restaurants {
		role, _ := r.accessRepo.GetRole(userID, rest.ID)
		if role != "" {
			cp := *rest
			out = append(out, &cp)
		}
	}
	return out, nil
}

type grantKey struct{ userID, restaurantID string }

type fakeAccessRepo struct {
	grants map[grantKey]*entity.AccessGrant
}

func newFakeAccessRepo() *fakeAccessRepo {
	return &fakeAccessRepo{grants: make(map[grantKey]*entity.AccessGrant)}
}

func (r *fakeAccessRepo) Upsert(g *entity.AccessGrant) error {
	cp := *g
	r.grants[grantKey{g.UserID, g.RestaurantID}] = &cp
	return nil
}

func (r *fakeAccessRepo) GetRole(userID, restaurantID string) (string, error) {
	if g, ok := r.grants[grantKey{userID, restaurantID}]; ok {
		return g.Role, nil
	}
	return "", nil
}

func (r *fakeAccessRepo) ListByRestaurant(restaurantID string) ([]*entity.AccessGrant, error) {
	var out []*entity.AccessGrant
	for _, g := range r.grants {
		if g.RestaurantID == restaurantID {
			cp := *g
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *fakeAccessRepo) Delete(userID, restaurantID string) error {
	delete(r.grants, grantKey{userID, restaurantID})
	return nil
}

func (r *fakeAccessRepo) DeleteByRestaurant(restaurantID string) error {
	for k, g := range r.grants {
		if g.RestaurantID == restaurantID {
			delete(r.grants, k)
		}
	}
	return nil
}

type fakeItemRepo struct {
	items []*entity.InventoryItem
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			cp := *item
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeItemRepo) ListByRestaurant(restaurantID string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) DeleteByRestaurant(restaurantID string) error {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.RestaurantID != restaurantID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}

type fakeReceiptRepo struct {
	receipts []*entity.Receipt
}

func (r *fakeReceiptRepo) Create(rec *entity.Receipt) error {
	cp := *rec
	r.receipts = append(r.receipts, &cp)
	return nil
}

func (r *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	for _, rec := range r.receipts {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) Delete(id string) error {
	for i, rec := range r.receipts {
		if rec.ID == id {
			r.receipts = append(r.receipts[:i], r.receipts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeReceiptRepo) ListByRestaurant(restaurantID string) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for _, rec := range r.receipts {
		if rec.RestaurantID == restaurantID {
			cp := *rec
			cp.Image = nil // el listado no incluye la imagen
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (r *fakeReceiptRepo) DeleteByRestaurant(restaurantID string) error {
	kept := r.receipts[:0]
	for _, rec := range r.receipts {
		if rec.RestaurantID != restaurantID {
			kept = append(kept, rec)
		}
	}
	r.receipts = kept
	return nil
}

type fakeInviteRepo struct {
	invites []*entity.Invite
}

func (r *fakeInviteRepo) Create(inv *entity.Invite) error {
	cp := *inv
	cp.RestaurantIDs = append([]string(nil), inv.RestaurantIDs...)
	r.invites = append(r.invites, &cp)
	return nil
}

func (r *fakeInviteRepo) GetUnusedByCode(code string) (*entity.Invite, error) {
	for _, inv := range r.invites {
		if inv.Code == code && !inv.Used {
			cp := *inv
			cp.RestaurantIDs = append([]string(nil), inv.RestaurantIDs...)
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInviteRepo) MarkUsed(id, usedBy string) error {
	for _, inv := range r.invites {
		if inv.ID == id && !inv.Used {
			now := time.Now()
			inv.Used = true
			inv.UsedBy = usedBy
			inv.UsedAt = &now
			return nil
		}
	}
	return domain.ErrInviteInvalid
}

func (r *fakeInviteRepo) ListByCreator(createdBy string) ([]*entity.Invite, error) {
	var out []*entity.Invite
	for _, inv := range r.invites {
		if inv.CreatedBy == createdBy {
			cp := *inv
			cp.RestaurantIDs = append([]string(nil), inv.RestaurantIDs...)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) StripRestaurant(restaurantID string) error {
	kept := r.invites[:0]
	for _, inv := range r.invites {
		var ids []string
		for _, id := range inv.RestaurantIDs {
			if id != restaurantID {
				ids = append(ids, id)
			}
		}
		inv.RestaurantIDs = ids
		if !inv.Used && len(ids) == 0 {
			continue // invitación sin restaurantes: se elimina
		}
		kept = append(kept, inv)
	}
	r.invites = kept
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner y PendingInviteStore en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente sobre los mismos repos en
// memoria (los fakes no necesitan aislamiento transaccional).
type fakeTxRunner struct {
	repos usecase.TxRepos
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repos usecase.TxRepos) error) error {
	return fn(r.repos)
}

type fakePendingStore struct {
	codes map[string]bool
}

func newFakePendingStore() *fakePendingStore {
	return &fakePendingStore{codes: make(map[string]bool)}
}

func (s *fakePendingStore) Put(_ context.Context, code string, _ time.Duration) error {
	s.codes[code] = true
	return nil
}

func (s *fakePendingStore) Consume(_ context.Context, code string) (bool, error) {
	if s.codes[code] {
		delete(s.codes, code)
		return true, nil
	}
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: repos compartidos y constructores de apoyo
// ──────────────────────────────────────────────────────────────────────────────

type world struct {
	users       *fakeUserRepo
	restaurants *fakeRestaurantRepo
	access      *fakeAccessRepo
	items       *fakeItemRepo
	receipts    *fakeReceiptRepo
	invites     *fakeInviteRepo
	tx          *fakeTxRunner
	pending     *fakePendingStore
}

func newWorld() *world {
	access := newFakeAccessRepo()
	w := &world{
		users:       &fakeUserRepo{},
		restaurants: &fakeRestaurantRepo{accessRepo: access},
		access:      access,
		items:       &fakeItemRepo{},
		receipts:    &fakeReceiptRepo{},
		invites:     &fakeInviteRepo{},
		pending:     newFakePendingStore(),
	}
	w.tx = &fakeTxRunner{repos: usecase.TxRepos{
		Restaurants: w.restaurants,
		Items:       w.items,
		Receipts:    w.receipts,
		Access:      w.access,
		Invites:     w.invites,
	}}
	return w
}

// grant otorga un rol directamente, saltándose los casos de uso.
func (w *world) grant(userID, restaurantID, role string) {
	_ = w.access.Upsert(&entity.AccessGrant{
		UserID:       userID,
		RestaurantID: restaurantID,
		Role:         role,
		GrantedAt:    time.Now(),
	})
}

// addRestaurant inserta un restaurante con su grant de owner.
func (w *world) addRestaurant(id, name, ownerID string) {
	now := time.Now()
	_ = w.restaurants.Create(&entity.Restaurant{
		ID: id, Name: name, OwnerID: ownerID, CreatedAt: now, UpdatedAt: now,
	})
	w.grant(ownerID, id, entity.RoleOwner)
}
