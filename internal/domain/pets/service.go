package pets

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "furiends-pets/internal/domain/pets"

type Service struct {
	repo     Repository
	now      func() time.Time
	validate *validator.Validate
	tracer   trace.Tracer
}

func NewService(repo Repository) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo como en el JSON, para que el cliente los reconozca.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Service{
		repo:     repo,
		now:      time.Now,
		validate: v,
		tracer:   otel.Tracer(tracerName),
	}
}

func (s *Service) FindAll(ctx context.Context) ([]Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.FindAll")
	defer span.End()

	return s.list(ctx, span, Filter{Order: OrderCreatedAsc})
}

func (s *Service) FindAllWithinOrganization(ctx context.Context, organizationID string) ([]Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.FindAllWithinOrganization")
	defer span.End()

	org, err := orgID(organizationID)
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(attribute.String("pet.organization_id", org))

	return s.list(ctx, span, Filter{OrganizationID: &org, Order: OrderCreatedAsc})
}

// FindByID devuelve found=false (sin error) cuando la mascota no existe.
func (s *Service) FindByID(ctx context.Context, id string) (Pet, bool, error) {
	ctx, span := s.tracer.Start(ctx, "pets.FindByID")
	defer span.End()

	id = strings.TrimSpace(id)
	span.SetAttributes(attribute.String("pet.id", id))
	if id == "" {
		return Pet{}, false, nil
	}

	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Pet{}, false, nil
	}
	if err != nil {
		return Pet{}, false, recordErr(span, err)
	}
	return p, true, nil
}

// FindAllByPublishStatus lista por estado de publicación, más recientes primero.
func (s *Service) FindAllByPublishStatus(ctx context.Context, isPublished bool) ([]Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.FindAllByPublishStatus",
		trace.WithAttributes(attribute.Bool("pet.is_published", isPublished)))
	defer span.End()

	return s.list(ctx, span, Filter{Published: &isPublished, Order: OrderUpdatedDesc})
}

func (s *Service) FindAllByPublishStatusOrg(ctx context.Context, organizationID string, isPublished bool) ([]Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.FindAllByPublishStatusOrg",
		trace.WithAttributes(attribute.Bool("pet.is_published", isPublished)))
	defer span.End()

	org, err := orgID(organizationID)
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(attribute.String("pet.organization_id", org))

	return s.list(ctx, span, Filter{OrganizationID: &org, Published: &isPublished, Order: OrderUpdatedDesc})
}

// FindAllByAdoptionStatus lista por estado de adopción, más recientes primero.
func (s *Service) FindAllByAdoptionStatus(ctx context.Context, isAdopted bool) ([]Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.FindAllByAdoptionStatus",
		trace.WithAttributes(attribute.Bool("pet.is_adopted", isAdopted)))
	defer span.End()

	return s.list(ctx, span, Filter{Adopted: &isAdopted, Order: OrderUpdatedDesc})
}

func (s *Service) FindAllByAdoptionStatusOrg(ctx context.Context, organizationID string, isAdopted bool) ([]Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.FindAllByAdoptionStatusOrg",
		trace.WithAttributes(attribute.Bool("pet.is_adopted", isAdopted)))
	defer span.End()

	org, err := orgID(organizationID)
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(attribute.String("pet.organization_id", org))

	return s.list(ctx, span, Filter{OrganizationID: &org, Adopted: &isAdopted, Order: OrderUpdatedDesc})
}

func (s *Service) Create(ctx context.Context, req PetRequest) (Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.Create")
	defer span.End()

	req = normalize(req)
	if err := s.check(req); err != nil {
		return Pet{}, recordErr(span, err)
	}

	now := s.now()
	p := apply(Pet{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}, req)
	p.LastUpdateTime = now
	span.SetAttributes(attribute.String("pet.id", p.ID))

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, recordErr(span, err)
	}
	return p, nil
}

// Update reemplaza todos los campos mutables; conserva ID y CreatedAt.
func (s *Service) Update(ctx context.Context, id string, req PetRequest) (Pet, error) {
	ctx, span := s.tracer.Start(ctx, "pets.Update")
	defer span.End()

	id = strings.TrimSpace(id)
	span.SetAttributes(attribute.String("pet.id", id))
	if id == "" {
		return Pet{}, ErrNotFound
	}

	req = normalize(req)
	if err := s.check(req); err != nil {
		return Pet{}, recordErr(span, err)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, recordErr(span, err)
	}

	updated := apply(current, req)
	updated.LastUpdateTime = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Pet{}, recordErr(span, err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "pets.Delete")
	defer span.End()

	id = strings.TrimSpace(id)
	span.SetAttributes(attribute.String("pet.id", id))
	if id == "" {
		return ErrNotFound
	}

	return recordErr(span, s.repo.Delete(ctx, id))
}

func (s *Service) list(ctx context.Context, span trace.Span, f Filter) ([]Pet, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, recordErr(span, err)
	}
	if items == nil {
		items = []Pet{}
	}
	span.SetAttributes(attribute.Int("pet.count", len(items)))
	return items, nil
}

func (s *Service) check(req PetRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Error: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "failed on " + fe.Tag()
	}
}

func normalize(req PetRequest) PetRequest {
	req.OrganizationID = strings.TrimSpace(req.OrganizationID)
	req.Name = strings.TrimSpace(req.Name)
	req.Species = Species(strings.ToLower(strings.TrimSpace(string(req.Species))))
	req.Breed = strings.TrimSpace(req.Breed)
	req.Sex = Sex(strings.ToLower(strings.TrimSpace(string(req.Sex))))
	req.Size = Size(strings.ToLower(strings.TrimSpace(string(req.Size))))
	req.Color = strings.TrimSpace(req.Color)
	req.Description = strings.TrimSpace(req.Description)

	urls := make([]string, 0, len(req.ImageURLs))
	for _, u := range req.ImageURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	req.ImageURLs = urls
	return req
}

func apply(p Pet, req PetRequest) Pet {
	p.OrganizationID = req.OrganizationID
	p.Name = req.Name
	p.Species = req.Species
	p.Breed = req.Breed
	p.Sex = req.Sex
	if p.Sex == "" {
		p.Sex = SexUnknown
	}
	p.AgeMonths = req.AgeMonths
	p.Size = req.Size
	p.Color = req.Color
	p.Description = req.Description
	p.ImageURLs = append([]string(nil), req.ImageURLs...)
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	p.IsPublished = req.IsPublished
	p.IsAdopted = req.IsAdopted
	return p
}

func orgID(raw string) (string, error) {
	org := strings.TrimSpace(raw)
	if org == "" {
		return "", &ValidationError{Fields: []FieldError{{Field: "organizationId", Error: "is required"}}}
	}
	return org, nil
}

// recordErr marca el span como fallido salvo para ErrNotFound, que es un resultado esperado.
func recordErr(span trace.Span, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
