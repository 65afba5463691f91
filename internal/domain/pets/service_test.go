package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
	err  error // si no es nil, toda operación falla con este error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[p.ID]; ok {
		return ErrConflict
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	if r.err != nil {
		return Pet{}, r.err
	}
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Pet, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []Pet
	for _, p := range r.byID {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	f.Sort(out)
	return out, nil
}

// clock devuelve un reloj que avanza un minuto en cada llamada.
func clock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * time.Minute)
		n++
		return t
	}
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = clock(time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC))
	return svc, repo
}

func validRequest(org, name string) PetRequest {
	return PetRequest{
		OrganizationID: org,
		Name:           name,
		Species:        SpeciesCat,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesAndStamps(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Create(context.Background(), PetRequest{
		OrganizationID: "  org-1 ",
		Name:           " Luna ",
		Species:        "CAT",
		Sex:            "",
		ImageURLs:      []string{" https://cdn.example.com/a.jpg ", "  "},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "org-1", p.OrganizationID)
	assert.Equal(t, "Luna", p.Name)
	assert.Equal(t, SpeciesCat, p.Species)
	assert.Equal(t, SexUnknown, p.Sex)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, p.ImageURLs)
	assert.Equal(t, p.CreatedAt, p.LastUpdateTime)
	assert.Contains(t, repo.byID, p.ID)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), PetRequest{
		Name:      "   ",
		Species:   "dragon",
		AgeMonths: -1,
		ImageURLs: []string{"not a url"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Error
	}
	assert.Equal(t, "is required", fields["organizationId"])
	assert.Equal(t, "is required", fields["name"])
	assert.Contains(t, fields["species"], "must be one of")
	assert.Contains(t, fields, "ageMonths")
	assert.Contains(t, fields, "imageUrls[0]")
	assert.Empty(t, repo.byID)
}

func TestService_FindByID_FoundAndNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("org-1", "Luna"))
	require.NoError(t, err)

	got, found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created, got)

	_, found, err = svc.FindByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = svc.FindByID(ctx, "  ")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_FindByID_PropagatesRepoErrors(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection reset")

	_, found, err := svc.FindByID(context.Background(), "p-1")
	assert.False(t, found)
	assert.EqualError(t, err, "connection reset")
}

func TestService_Update_ReplacesFieldsKeepsIdentity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := validRequest("org-1", "Luna")
	req.Breed = "siamese"
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, PetRequest{
		OrganizationID: "org-1",
		Name:           "Luna II",
		Species:        SpeciesCat,
		IsAdopted:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.LastUpdateTime.After(created.LastUpdateTime))
	assert.Equal(t, "Luna II", updated.Name)
	assert.Empty(t, updated.Breed)
	assert.True(t, updated.IsAdopted)

	got, _, _ := svc.FindByID(ctx, created.ID)
	assert.Equal(t, updated, got)
}

func TestService_Update_Errors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", validRequest("org-1", "X"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "", validRequest("org-1", "X"))
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := svc.Create(ctx, validRequest("org-1", "Luna"))
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID, PetRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest("org-1", "Luna"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestService_Filters(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mk := func(org, name string, published, adopted bool) Pet {
		req := validRequest(org, name)
		req.IsPublished = published
		req.IsAdopted = adopted
		p, err := svc.Create(ctx, req)
		require.NoError(t, err)
		return p
	}
	a := mk("org-1", "A", true, false)
	b := mk("org-1", "B", false, true)
	c := mk("org-2", "C", true, true)
	d := mk("org-2", "D", false, false)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID, c.ID, d.ID}, petIDs(all))

	org1, err := svc.FindAllWithinOrganization(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, petIDs(org1))
	for _, p := range org1 {
		assert.Equal(t, "org-1", p.OrganizationID)
	}

	// Estados: más recientes primero
	published, err := svc.FindAllByPublishStatus(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, a.ID}, petIDs(published))

	notAdopted, err := svc.FindAllByAdoptionStatus(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID, a.ID}, petIDs(notAdopted))

	orgPublished, err := svc.FindAllByPublishStatusOrg(ctx, "org-2", false)
	require.NoError(t, err)
	assert.Equal(t, []string{d.ID}, petIDs(orgPublished))

	orgAdopted, err := svc.FindAllByAdoptionStatusOrg(ctx, "org-1", true)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, petIDs(orgAdopted))

	none, err := svc.FindAllByAdoptionStatusOrg(ctx, "org-9", true)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestService_Filters_CombinedIsIntersection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i, org := range []string{"org-1", "org-2", "org-1", "org-2", "org-1"} {
		req := validRequest(org, "pet")
		req.IsPublished = i%2 == 0
		req.IsAdopted = i%3 == 0
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	for _, org := range []string{"org-1", "org-2"} {
		byOrg, err := svc.FindAllWithinOrganization(ctx, org)
		require.NoError(t, err)

		for _, flag := range []bool{true, false} {
			byPublished, err := svc.FindAllByPublishStatus(ctx, flag)
			require.NoError(t, err)
			combined, err := svc.FindAllByPublishStatusOrg(ctx, org, flag)
			require.NoError(t, err)
			assert.ElementsMatch(t, intersect(byOrg, byPublished), petIDs(combined))

			byAdopted, err := svc.FindAllByAdoptionStatus(ctx, flag)
			require.NoError(t, err)
			combined, err = svc.FindAllByAdoptionStatusOrg(ctx, org, flag)
			require.NoError(t, err)
			assert.ElementsMatch(t, intersect(byOrg, byAdopted), petIDs(combined))
		}
	}
}

func TestService_OrganizationRequired(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.FindAllWithinOrganization(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.FindAllByPublishStatusOrg(ctx, "", true)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.FindAllByAdoptionStatusOrg(ctx, "", true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_PropagatesRepoErrors(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("db down")

	_, err := svc.FindAll(context.Background())
	assert.EqualError(t, err, "db down")
}

func petIDs(items []Pet) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func intersect(a, b []Pet) []string {
	inB := map[string]struct{}{}
	for _, p := range b {
		inB[p.ID] = struct{}{}
	}
	out := make([]string, 0)
	for _, p := range a {
		if _, ok := inB[p.ID]; ok {
			out = append(out, p.ID)
		}
	}
	return out
}
