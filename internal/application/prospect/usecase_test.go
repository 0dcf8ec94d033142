package prospect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/pkg/logger"
)

type memProspectRepo struct {
	prospects map[string]*entity.Prospect
}

func (m *memProspectRepo) Create(_ context.Context, p *entity.Prospect) error {
	m.prospects[p.ID] = p
	return nil
}
func (m *memProspectRepo) GetByID(_ context.Context, id string) (*entity.Prospect, error) {
	return m.prospects[id], nil
}
func (m *memProspectRepo) ListAll(_ context.Context, _, _ int) ([]*entity.Prospect, error) {
	out := make([]*entity.Prospect, 0, len(m.prospects))
	for _, p := range m.prospects {
		out = append(out, p)
	}
	return out, nil
}
func (m *memProspectRepo) ListByOwner(_ context.Context, ownerID string, _, _ int) ([]*entity.Prospect, error) {
	var out []*entity.Prospect
	for _, p := range m.prospects {
		if p.CreatedBy == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m *memProspectRepo) Update(_ context.Context, p *entity.Prospect) error {
	m.prospects[p.ID] = p
	return nil
}
func (m *memProspectRepo) Delete(_ context.Context, id string) error {
	delete(m.prospects, id)
	return nil
}

type nullActivityRepo struct{}

func (nullActivityRepo) Create(_ context.Context, _ *entity.ActivityLog) error { return nil }
func (nullActivityRepo) ListAll(_ context.Context, _, _ int) ([]*entity.ActivityLog, error) {
	return nil, nil
}
func (nullActivityRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.ActivityLog, error) {
	return nil, nil
}
func (nullActivityRepo) Purge(_ context.Context) error { return nil }

func newProspectFixture() *UseCase {
	repo := &memProspectRepo{prospects: make(map[string]*entity.Prospect)}
	recorder := activity.NewRecorder(nullActivityRepo{}, logger.New(logger.Config{Env: "test", Level: "error"}))
	return NewUseCase(repo, recorder)
}

func TestProspect_UserNoAccedeAlAjeno(t *testing.T) {
	uc := newProspectFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, "owner-1", dto.CreateProspectRequest{Name: "Prospecto A"})
	require.NoError(t, err)

	// Otro user (mismo rol, distinto creador) no puede leerlo ni tocarlo.
	_, err = uc.GetByID(ctx, "otro-user", entity.RoleUser, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(ctx, "otro-user", entity.RoleUser, created.ID, dto.UpdateProspectRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(ctx, "otro-user", entity.RoleUser, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProspect_DuenoYAdminSiAcceden(t *testing.T) {
	uc := newProspectFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, "owner-1", dto.CreateProspectRequest{Name: "Prospecto A"})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, "owner-1", entity.RoleUser, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = uc.GetByID(ctx, "cualquier-admin", entity.RoleAdmin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestProspect_ListFiltraPorPropietarioSegunRol(t *testing.T) {
	uc := newProspectFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, "owner-1", dto.CreateProspectRequest{Name: "De owner-1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "owner-2", dto.CreateProspectRequest{Name: "De owner-2"})
	require.NoError(t, err)

	own, err := uc.List(ctx, "owner-1", entity.RoleUser, 20, 0)
	require.NoError(t, err)
	require.Len(t, own, 1, "un user solo ve sus prospectos")
	assert.Equal(t, "De owner-1", own[0].Name)

	all, err := uc.List(ctx, "cualquier-admin", entity.RoleAdmin, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2, "un rol elevado ve todos")
}
