package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"

	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/repositories"
	apperrors "materieelbeheer/pkg/errors"
	"materieelbeheer/pkg/types"
)

// In-memory vervangers voor de repositories. De transactie-parameter wordt
// genegeerd; de nep-txmanager geeft nil door.

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeMaterialRepo struct {
	materials map[uint64]*entities.Material
	nextID    uint64

	statusWrites  map[uint64]string
	outcomeWrites map[uint64]string
	usageWrites   map[uint64]string
	failStatusFor map[uint64]bool
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{
		materials:     make(map[uint64]*entities.Material),
		nextID:        1,
		statusWrites:  make(map[uint64]string),
		outcomeWrites: make(map[uint64]string),
		usageWrites:   make(map[uint64]string),
		failStatusFor: make(map[uint64]bool),
	}
}

func (r *fakeMaterialRepo) add(m entities.Material) *entities.Material {
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	if m.InspectionStatus == "" {
		m.InspectionStatus = "no_inspection"
	}
	if m.Status == "" {
		m.Status = entities.StatusNotInUse
	}
	cp := m
	r.materials[cp.ID] = &cp
	return &cp
}

func (r *fakeMaterialRepo) GetMaterials(ctx context.Context, filter types.Filter) ([]*entities.Material, uint64, error) {
	var out []*entities.Material
	for _, m := range r.materials {
		out = append(out, m)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeMaterialRepo) FindMaterial(ctx context.Context, id uint64) (*entities.Material, error) {
	m, ok := r.materials[id]
	if !ok || m.IsDeleted {
		return nil, apperrors.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaterialRepo) CreateMaterial(ctx context.Context, m entities.Material) (uint64, error) {
	return r.add(m).ID, nil
}

func (r *fakeMaterialRepo) UpdateMaterial(ctx context.Context, id uint64, m entities.Material) error {
	if _, ok := r.materials[id]; !ok {
		return apperrors.ErrNotFound
	}
	m.ID = id
	cp := m
	r.materials[id] = &cp
	return nil
}

func (r *fakeMaterialRepo) DeleteMaterial(ctx context.Context, id uint64) error {
	m, ok := r.materials[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.IsDeleted = true
	return nil
}

func (r *fakeMaterialRepo) GetAllForReconciliation(ctx context.Context) ([]entities.Material, error) {
	var out []entities.Material
	for _, m := range r.materials {
		if !m.IsDeleted {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) UpdateInspectionStatus(ctx context.Context, materialID uint64, status string) error {
	if r.failStatusFor[materialID] {
		return apperrors.ErrNotFound
	}
	m, ok := r.materials[materialID]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.InspectionStatus = status
	r.statusWrites[materialID] = status
	return nil
}

func (r *fakeMaterialRepo) RecordInspectionOutcome(ctx context.Context, q repositories.Querier, materialID uint64, status string, lastInspection time.Time) error {
	m, ok := r.materials[materialID]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.InspectionStatus = status
	m.LastInspection = null.TimeFrom(lastInspection)
	r.outcomeWrites[materialID] = status
	return nil
}

func (r *fakeMaterialRepo) UpdateUsageState(ctx context.Context, q repositories.Querier, materialID uint64, status string, assignedTo null.String, werfID null.Uint64, site null.String) error {
	m, ok := r.materials[materialID]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.Status = status
	m.AssignedTo = assignedTo
	r.usageWrites[materialID] = status
	return nil
}

type fakeInspectionRepo struct {
	records map[uint64][]entities.InspectionRecord
	nextID  uint64
}

func newFakeInspectionRepo() *fakeInspectionRepo {
	return &fakeInspectionRepo{records: make(map[uint64][]entities.InspectionRecord), nextID: 1}
}

func (r *fakeInspectionRepo) add(rec entities.InspectionRecord) entities.InspectionRecord {
	if rec.ID == 0 {
		rec.ID = r.nextID
		r.nextID++
	}
	r.records[rec.MaterialID] = append(r.records[rec.MaterialID], rec)
	return rec
}

func (r *fakeInspectionRepo) GetByMaterial(ctx context.Context, materialID uint64) ([]entities.InspectionRecord, error) {
	out := make([]entities.InspectionRecord, len(r.records[materialID]))
	copy(out, r.records[materialID])
	return out, nil
}

func (r *fakeInspectionRepo) FindRecord(ctx context.Context, id uint64) (*entities.InspectionRecord, error) {
	for _, list := range r.records {
		for i := range list {
			if list[i].ID == id {
				cp := list[i]
				return &cp, nil
			}
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeInspectionRepo) LatestByMaterial(ctx context.Context) (map[uint64]entities.InspectionRecord, error) {
	latest := make(map[uint64]entities.InspectionRecord)
	for materialID, list := range r.records {
		for _, rec := range list {
			cur, ok := latest[materialID]
			if !ok || rec.InspectionDate.After(cur.InspectionDate) ||
				(rec.InspectionDate.Equal(cur.InspectionDate) && rec.ID > cur.ID) {
				latest[materialID] = rec
			}
		}
	}
	return latest, nil
}

func (r *fakeInspectionRepo) GetAllWithMaterial(ctx context.Context) ([]entities.InspectionRecord, map[uint64]*entities.Material, error) {
	var out []entities.InspectionRecord
	for _, list := range r.records {
		out = append(out, list...)
	}
	return out, map[uint64]*entities.Material{}, nil
}

func (r *fakeInspectionRepo) CreateRecord(ctx context.Context, q repositories.Querier, rec entities.InspectionRecord) (uint64, error) {
	return r.add(rec).ID, nil
}

func (r *fakeInspectionRepo) SetCertificatePath(ctx context.Context, id uint64, path string) error {
	for materialID, list := range r.records {
		for i := range list {
			if list[i].ID == id {
				r.records[materialID][i].CertificatePath = null.StringFrom(path)
				return nil
			}
		}
	}
	return apperrors.ErrNotFound
}

type fakeTypeRepo struct {
	types map[uint64]*entities.MaterialType
}

func newFakeTypeRepo() *fakeTypeRepo {
	return &fakeTypeRepo{types: make(map[uint64]*entities.MaterialType)}
}

func (r *fakeTypeRepo) GetMaterialTypes(ctx context.Context) ([]*entities.MaterialType, error) {
	var out []*entities.MaterialType
	for _, mt := range r.types {
		out = append(out, mt)
	}
	return out, nil
}

func (r *fakeTypeRepo) FindMaterialType(ctx context.Context, id uint64) (*entities.MaterialType, error) {
	mt, ok := r.types[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *mt
	return &cp, nil
}

func (r *fakeTypeRepo) CreateMaterialType(ctx context.Context, mt entities.MaterialType) (uint64, error) {
	id := uint64(len(r.types) + 1)
	mt.ID = id
	r.types[id] = &mt
	return id, nil
}

func (r *fakeTypeRepo) UpdateMaterialType(ctx context.Context, id uint64, mt entities.MaterialType) error {
	if _, ok := r.types[id]; !ok {
		return apperrors.ErrNotFound
	}
	mt.ID = id
	r.types[id] = &mt
	return nil
}

func (r *fakeTypeRepo) DeleteMaterialType(ctx context.Context, id uint64) error {
	delete(r.types, id)
	return nil
}

type fakeUsageRepo struct {
	usages map[uint64]*entities.UsageRecord
	nextID uint64
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{usages: make(map[uint64]*entities.UsageRecord), nextID: 1}
}

func (r *fakeUsageRepo) add(u entities.UsageRecord) *entities.UsageRecord {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	cp := u
	r.usages[cp.ID] = &cp
	return &cp
}

func (r *fakeUsageRepo) GetUsagesByMaterial(ctx context.Context, materialID uint64) ([]entities.UsageRecord, error) {
	var out []entities.UsageRecord
	for _, u := range r.usages {
		if u.MaterialID == materialID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUsageRepo) GetAllUsages(ctx context.Context) ([]entities.UsageRecord, error) {
	var out []entities.UsageRecord
	for _, u := range r.usages {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsageRepo) GetActiveUsages(ctx context.Context) ([]entities.UsageRecord, error) {
	var out []entities.UsageRecord
	for _, u := range r.usages {
		if u.IsActive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUsageRepo) FindUsage(ctx context.Context, id uint64) (*entities.UsageRecord, error) {
	u, ok := r.usages[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsageRepo) CreateUsage(ctx context.Context, q repositories.Querier, u entities.UsageRecord) (uint64, error) {
	u.IsActive = true
	return r.add(u).ID, nil
}

func (r *fakeUsageRepo) StopUsage(ctx context.Context, q repositories.Querier, id uint64, endTime time.Time) error {
	u, ok := r.usages[id]
	if !ok || !u.IsActive {
		return apperrors.ErrNotFound
	}
	u.IsActive = false
	u.EndTime = null.TimeFrom(endTime)
	return nil
}

func (r *fakeUsageRepo) AssignToWerf(ctx context.Context, id uint64, werfID uint64, site string) error {
	u, ok := r.usages[id]
	if !ok || !u.IsActive {
		return apperrors.ErrNotFound
	}
	u.WerfID = null.Uint64From(werfID)
	u.Site = null.StringFrom(site)
	return nil
}

type fakeUserRepo struct {
	users map[uint64]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*entities.User)}
}

func (r *fakeUserRepo) add(u entities.User) *entities.User {
	cp := u
	r.users[cp.ID] = &cp
	return &cp
}

func (r *fakeUserRepo) GetUsers(ctx context.Context) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u entities.User) (uint64, error) {
	id := uint64(len(r.users) + 1)
	u.ID = id
	r.add(u)
	return id, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id uint64, u entities.User) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrNotFound
	}
	u.ID = id
	r.add(u)
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id uint64) error {
	delete(r.users, id)
	return nil
}

type fakeWerfRepo struct {
	werven map[uint64]*entities.Werf
}

func newFakeWerfRepo() *fakeWerfRepo {
	return &fakeWerfRepo{werven: make(map[uint64]*entities.Werf)}
}

func (r *fakeWerfRepo) GetWerven(ctx context.Context) ([]*entities.Werf, error) {
	var out []*entities.Werf
	for _, w := range r.werven {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWerfRepo) FindWerf(ctx context.Context, id uint64) (*entities.Werf, error) {
	w, ok := r.werven[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWerfRepo) CreateWerf(ctx context.Context, w entities.Werf) (uint64, error) {
	id := uint64(len(r.werven) + 1)
	w.ID = id
	cp := w
	r.werven[id] = &cp
	return id, nil
}

func (r *fakeWerfRepo) UpdateWerf(ctx context.Context, id uint64, w entities.Werf) error {
	if _, ok := r.werven[id]; !ok {
		return apperrors.ErrNotFound
	}
	w.ID = id
	cp := w
	r.werven[id] = &cp
	return nil
}

func (r *fakeWerfRepo) DeleteWerf(ctx context.Context, id uint64) error {
	delete(r.werven, id)
	return nil
}

type fakeActivityRepo struct {
	actions []string
}

func (r *fakeActivityRepo) LogActivity(ctx context.Context, action, materialName, serial, userName string) error {
	r.actions = append(r.actions, action)
	return nil
}

func (r *fakeActivityRepo) GetActivities(ctx context.Context, filter repositories.ActivityFilter) ([]entities.Activity, error) {
	return nil, nil
}

func (r *fakeActivityRepo) GetUniqueUsers(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeCache struct {
	values map[string]string
	gets   int
	sets   int
	dels   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.gets++
	v, ok := c.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.sets++
	c.values[key] = value.(string)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	c.dels++
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}
