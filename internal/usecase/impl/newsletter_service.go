// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"dealdigest/config"
	"dealdigest/internal/domain/entity"
	domainerrors "dealdigest/internal/domain/errors"
	"dealdigest/internal/domain/repository"
	"dealdigest/internal/domain/service"
	"dealdigest/internal/usecase"
	"dealdigest/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// weeklyLookahead admits deals whose window opens within the coming week, so
// a weekly digest covers upcoming flyers too.
const weeklyLookahead = 7 * 24 * time.Hour

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	dealRepo       repository.DealRepository
	analyticsRepo  repository.AnalyticsRepository
	recommender    service.RecommendationProvider
	config         *config.Config
	logger         *slog.Logger
}

// NewsletterServiceParams holds dependencies for the newsletter service, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
	DealRepo       repository.DealRepository
	AnalyticsRepo  repository.AnalyticsRepository
	Recommender    service.RecommendationProvider
	Config         *config.Config
	Logger         *slog.Logger
}

// NewNewsletterService creates a new newsletter service instance.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
		dealRepo:       params.DealRepo,
		analyticsRepo:  params.AnalyticsRepo,
		recommender:    params.Recommender,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// Generate builds a newsletter from the current deal set and persists it.
// All validation happens before the candidate query, so a bad request never
// touches storage.
func (s *newsletterService) Generate(ctx context.Context, opts usecase.GenerateOptions) (*entity.Newsletter, error) {
	frequency := entity.FrequencyDaily
	if opts.Frequency != "" {
		frequency = entity.Frequency(opts.Frequency)
		if !frequency.Valid() {
			return nil, domainerrors.ErrInvalidFrequency
		}
	}

	filter := repository.CandidateFilter{
		Now:      time.Now(),
		StoreIDs: opts.StoreIDs,
	}
	if frequency == entity.FrequencyWeekly {
		filter.Lookahead = weeklyLookahead
	}
	// Unknown category names are dropped rather than rejected; an empty
	// result after dropping means no category restriction was usable.
	for _, name := range opts.FocusCategories {
		if category := entity.DealCategory(name); category.Valid() {
			filter.Categories = append(filter.Categories, category)
		}
	}

	candidates, err := s.dealRepo.FindCandidates(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve candidate deals")
	}

	rankDeals(candidates)

	newsletter := &entity.Newsletter{
		ID:                    uuid.New(),
		GeneratedAt:           time.Now().UTC(),
		Frequency:             frequency,
		Greeting:              s.greeting(frequency, opts.CustomGreeting),
		Closing:               s.closing(opts.CustomClosing),
		StoresIncluded:        storesInOrder(candidates),
		Deals:                 candidates,
		TotalDealsCount:       len(candidates),
		TotalPotentialSavings: totalSavings(candidates),
	}

	includeRecipes := opts.IncludeRecipes == nil || *opts.IncludeRecipes
	if includeRecipes {
		recipes, err := s.recommender.RecipeSuggestions(ctx, candidates, s.config.Newsletter.MaxRecipeSuggestions)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch recipe suggestions")
		}
		newsletter.Recipes = recipes
	}

	if opts.AIEnhancements {
		commentary, err := s.recommender.Commentary(ctx, frequency, candidates)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch commentary")
		}
		newsletter.Commentary = commentary
	}

	if err := s.newsletterRepo.Create(ctx, newsletter); err != nil {
		return nil, err
	}

	s.recordEvent(ctx, entity.EventNewsletterGenerated,
		fmt.Sprintf(`{"id":%q,"frequency":%q,"deals":%d}`, newsletter.ID, frequency, newsletter.TotalDealsCount))

	return newsletter, nil
}

// GetByID retrieves a newsletter by its public ID string.
func (s *newsletterService) GetByID(ctx context.Context, id string) (*entity.Newsletter, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		// An unparseable ID can't match anything; report not-found.
		return nil, domainerrors.ErrNewsletterNotFound
	}

	newsletter, err := s.newsletterRepo.FindByID(ctx, parsed)
	if err != nil {
		if errors.Is(err, repository.ErrNewsletterNotFound) {
			return nil, domainerrors.ErrNewsletterNotFound
		}

		return nil, errors.Wrap(err, "failed to find newsletter")
	}

	return newsletter, nil
}

// Latest retrieves the most recent newsletter, or nil when none exist.
func (s *newsletterService) Latest(ctx context.Context) (*entity.Newsletter, error) {
	newsletter, err := s.newsletterRepo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNewsletterNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest newsletter")
	}

	return newsletter, nil
}

// List retrieves newsletters newest-first with the total stored count.
func (s *newsletterService) List(ctx context.Context, limit int) ([]*entity.Newsletter, int64, error) {
	if limit <= 0 {
		limit = usecase.DefaultListLimit
	}
	if limit > usecase.MaxListLimit {
		limit = usecase.MaxListLimit
	}

	newsletters, err := s.newsletterRepo.List(ctx, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list newsletters")
	}

	total, err := s.newsletterRepo.Count(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count newsletters")
	}

	return newsletters, total, nil
}

// Delete removes a newsletter by its public ID string.
func (s *newsletterService) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domainerrors.ErrNewsletterNotFound
	}

	if err := s.newsletterRepo.DeleteByID(ctx, parsed); err != nil {
		if errors.Is(err, repository.ErrNewsletterNotFound) {
			return domainerrors.ErrNewsletterNotFound
		}

		return errors.Wrap(err, "failed to delete newsletter")
	}

	s.recordEvent(ctx, entity.EventNewsletterDeleted, fmt.Sprintf(`{"id":%q}`, id))

	return nil
}

// ClearAll removes every stored newsletter.
func (s *newsletterService) ClearAll(ctx context.Context) error {
	return s.newsletterRepo.DeleteAll(ctx)
}

// recordEvent writes an analytics event best-effort.
func (s *newsletterService) recordEvent(ctx context.Context, eventType, payload string) {
	event := &entity.AnalyticsEvent{EventType: eventType, Payload: payload}
	if err := s.analyticsRepo.Record(ctx, event); err != nil {
		s.logger.Warn("Failed to record analytics event",
			slog.String("event", eventType),
			slog.String("error", err.Error()),
		)
	}
}

func (s *newsletterService) greeting(frequency entity.Frequency, custom string) string {
	if custom != "" {
		return custom
	}
	if s.config.Newsletter != nil && s.config.Newsletter.DefaultGreeting != "" {
		return s.config.Newsletter.DefaultGreeting
	}
	if frequency == entity.FrequencyWeekly {
		return "Happy shopping! Here are the best grocery deals for the week ahead."
	}

	return "Good morning! Here are today's best grocery deals."
}

func (s *newsletterService) closing(custom string) string {
	if custom != "" {
		return custom
	}
	if s.config.Newsletter != nil && s.config.Newsletter.DefaultClosing != "" {
		return s.config.Newsletter.DefaultClosing
	}

	return "Eat well and spend less — see you in the next digest."
}

// rankDeals sorts deals in place: discount percent descending, featured first
// on ties, then store name and product name ascending for determinism.
func rankDeals(deals []*entity.Deal) {
	sort.SliceStable(deals, func(i, j int) bool {
		a, b := deals[i], deals[j]
		if a.DiscountPercent() != b.DiscountPercent() {
			return a.DiscountPercent() > b.DiscountPercent()
		}
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.StoreName != b.StoreName {
			return a.StoreName < b.StoreName
		}

		return a.ProductName < b.ProductName
	})
}

// storesInOrder returns distinct store names in first-appearance order of the
// ranked deal list.
func storesInOrder(deals []*entity.Deal) []string {
	seen := make(map[string]bool, len(deals))
	stores := make([]string, 0, len(deals))
	for _, deal := range deals {
		if !seen[deal.StoreName] {
			seen[deal.StoreName] = true
			stores = append(stores, deal.StoreName)
		}
	}

	return stores
}

// totalSavings sums per-deal savings (each clamped non-negative) and rounds
// the total to cents.
func totalSavings(deals []*entity.Deal) float64 {
	var total float64
	for _, deal := range deals {
		total += deal.Savings()
	}

	return util.RoundCents(total)
}
