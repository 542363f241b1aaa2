// Package seed loads the fixture reference data for a regional Newfoundland
// market: stores, a week of deals, and shopper tips.
package seed

import (
	"context"
	"log/slog"
	"time"

	"dealdigest/internal/domain/entity"
	"dealdigest/internal/domain/repository"

	"github.com/pkg/errors"
)

// Seeder inserts fixture rows into an empty database.
type Seeder struct {
	stores repository.StoreRepository
	deals  repository.DealRepository
	tips   repository.TipRepository
	logger *slog.Logger
}

// New is the constructor for Seeder.
func New(
	stores repository.StoreRepository,
	deals repository.DealRepository,
	tips repository.TipRepository,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		stores: stores,
		deals:  deals,
		tips:   tips,
		logger: logger,
	}
}

// Run seeds fixtures when the stores table is empty; otherwise it is a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.stores.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check store count")
	}
	if count > 0 {
		s.logger.Debug("Skipping seed, stores already present", slog.Int64("stores", count))

		return nil
	}

	now := time.Now()

	for _, store := range Stores() {
		if err := s.stores.Create(ctx, &store); err != nil {
			return errors.Wrapf(err, "failed to seed store %s", store.ID)
		}
	}
	for _, deal := range Deals(now) {
		if err := s.deals.Create(ctx, &deal); err != nil {
			return errors.Wrapf(err, "failed to seed deal %s", deal.ProductName)
		}
	}
	for _, tip := range Tips() {
		if err := s.tips.Create(ctx, &tip); err != nil {
			return errors.Wrapf(err, "failed to seed tip %s", tip.Title)
		}
	}

	s.logger.Info("Seeded fixture data",
		slog.Int("stores", len(Stores())),
		slog.Int("deals", len(Deals(now))),
		slog.Int("tips", len(Tips())),
	)

	return nil
}

// Stores returns the fixture store set.
func Stores() []entity.Store {
	return []entity.Store{
		{
			ID: "sobeys-avalon-mall", Name: "Sobeys Avalon Mall", Chain: "Sobeys",
			Address: "48 Kenmount Rd", City: "St. John's", Region: entity.RegionAvalon,
			Phone: "(709) 726-1415", LoyaltyProgram: "Scene+",
			Type: entity.StoreTypeGrocery, IsActive: true,
		},
		{
			ID: "dominion-blackmarsh", Name: "Dominion Blackmarsh Road", Chain: "Dominion",
			Address: "20 Blackmarsh Rd", City: "St. John's", Region: entity.RegionAvalon,
			LoyaltyProgram: "PC Optimum",
			Type:           entity.StoreTypeGrocery, IsActive: true,
		},
		{
			ID: "costco-st-johns", Name: "Costco St. John's", Chain: "Costco",
			Address: "28 Danny Dr", City: "St. John's", Region: entity.RegionAvalon,
			LoyaltyProgram: "Costco Membership",
			Type:           entity.StoreTypeWholesale, IsActive: true,
		},
		{
			ID: "no-frills-mount-pearl", Name: "No Frills Mount Pearl", Chain: "No Frills",
			Address: "760 Topsail Rd", City: "Mount Pearl", Region: entity.RegionAvalon,
			LoyaltyProgram: "PC Optimum",
			Type:           entity.StoreTypeDiscount, IsActive: true,
		},
		{
			ID: "colemans-cbs", Name: "Colemans Conception Bay South", Chain: "Colemans",
			Address: "120 Conception Bay Hwy", City: "Conception Bay South", Region: entity.RegionAvalon,
			Type: entity.StoreTypeGrocery, IsActive: true,
		},
		{
			ID: "bidgoods-goulds", Name: "Bidgood's Supermarket", Chain: "Bidgood's",
			Address: "635 Main Rd", City: "Goulds", Region: entity.RegionAvalon,
			Type: entity.StoreTypeSpecialty, IsActive: true,
		},
		{
			ID: "st-johns-farmers-market", Name: "St. John's Farmers' Market", Chain: "",
			Address: "245 Freshwater Rd", City: "St. John's", Region: entity.RegionAvalon,
			Type: entity.StoreTypeFarmersMarket, IsActive: true,
		},
		{
			ID: "colemans-gander", Name: "Colemans Gander", Chain: "Colemans",
			Address: "66 Bennett Dr", City: "Gander", Region: entity.RegionCentral,
			Type: entity.StoreTypeGrocery, IsActive: true,
		},
		{
			ID: "dominion-corner-brook", Name: "Dominion Corner Brook", Chain: "Dominion",
			Address: "9 Murphy Square", City: "Corner Brook", Region: entity.RegionWestern,
			LoyaltyProgram: "PC Optimum",
			Type:           entity.StoreTypeGrocery, IsActive: true,
		},
		{
			ID: "northmart-happy-valley", Name: "NorthMart Happy Valley-Goose Bay", Chain: "NorthMart",
			Address: "2 Hillcrest Rd", City: "Happy Valley-Goose Bay", Region: entity.RegionLabrador,
			Type: entity.StoreTypeGrocery, IsActive: true,
		},
	}
}

// Deals returns the fixture deal set with validity windows anchored at now.
func Deals(now time.Time) []entity.Deal {
	weekStart := now.AddDate(0, 0, -1)
	weekEnd := now.AddDate(0, 0, 6)
	nextWeek := now.AddDate(0, 0, 3)
	nextWeekEnd := now.AddDate(0, 0, 10)

	return []entity.Deal{
		{
			StoreID: "sobeys-avalon-mall", ProductName: "Chicken Breast Club Pack",
			Category: entity.CategoryMeat, RegularPrice: 24.99, SalePrice: 14.99, Unit: "per pack",
			LoyaltyPoints: 100, LoyaltyValue: 1.00,
			Description: "Boneless skinless chicken breast, approx. 2 kg.",
			ValidFrom:   weekStart, ValidUntil: weekEnd, Featured: true,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "sobeys-avalon-mall", ProductName: "Fresh Atlantic Salmon Fillets",
			Category: entity.CategorySeafood, RegularPrice: 12.99, SalePrice: 9.99, Unit: "per lb",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "dominion-blackmarsh", ProductName: "PC Blue Menu Pasta",
			Category: entity.CategoryPantry, RegularPrice: 2.99, SalePrice: 1.79, Unit: "900 g",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "dominion-blackmarsh", ProductName: "Strawberries",
			Category: entity.CategoryProduce, RegularPrice: 5.99, SalePrice: 2.99, Unit: "1 lb clamshell",
			Description: "Product of USA, No. 1 grade.",
			ValidFrom:   weekStart, ValidUntil: weekEnd, Featured: true,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "costco-st-johns", ProductName: "Kirkland Signature Coffee",
			Category: entity.CategoryBeverages, RegularPrice: 23.99, SalePrice: 17.99, Unit: "1.36 kg",
			ValidFrom: weekStart, ValidUntil: nextWeekEnd,
			Source: "instant_savings", IsActive: true,
		},
		{
			StoreID: "no-frills-mount-pearl", ProductName: "No Name Frozen Mixed Vegetables",
			Category: entity.CategoryFrozen, RegularPrice: 3.49, SalePrice: 2.49, Unit: "750 g",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "no-frills-mount-pearl", ProductName: "2% Milk",
			Category: entity.CategoryDairy, RegularPrice: 6.29, SalePrice: 5.49, Unit: "2 L",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "colemans-cbs", ProductName: "Homestyle White Bread",
			Category: entity.CategoryBakery, RegularPrice: 3.99, SalePrice: 2.50, Unit: "675 g",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "colemans-cbs", ProductName: "Salt Beef",
			Category: entity.CategoryMeat, RegularPrice: 10.99, SalePrice: 8.99, Unit: "per lb",
			Description: "For your Sunday Jiggs dinner.",
			ValidFrom:   nextWeek, ValidUntil: nextWeekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "bidgoods-goulds", ProductName: "Fresh Cod Fillets",
			Category: entity.CategorySeafood, RegularPrice: 14.99, SalePrice: 11.99, Unit: "per lb",
			ValidFrom: weekStart, ValidUntil: weekEnd, Featured: true,
			Source: "in_store", IsActive: true,
		},
		{
			StoreID: "st-johns-farmers-market", ProductName: "Local Root Vegetable Bundle",
			Category: entity.CategoryProduce, RegularPrice: 12.00, SalePrice: 9.00, Unit: "per bundle",
			Description: "Carrots, turnip, beets and potatoes from area growers.",
			ValidFrom:   weekStart, ValidUntil: weekEnd,
			Source: "in_store", IsActive: true,
		},
		{
			StoreID: "colemans-gander", ProductName: "Purity Cream Crackers",
			Category: entity.CategorySnacks, RegularPrice: 4.49, SalePrice: 3.29, Unit: "400 g",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "dominion-corner-brook", ProductName: "Paper Towels 6-Pack",
			Category: entity.CategoryHousehold, RegularPrice: 9.99, SalePrice: 6.99, Unit: "6 rolls",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
		{
			StoreID: "northmart-happy-valley", ProductName: "Frozen Blueberries",
			Category: entity.CategoryFrozen, RegularPrice: 8.99, SalePrice: 6.49, Unit: "600 g",
			ValidFrom: weekStart, ValidUntil: weekEnd,
			Source: "weekly_flyer", IsActive: true,
		},
	}
}

// Tips returns the fixture shopper tip set.
func Tips() []entity.Tip {
	return []entity.Tip{
		{
			Title: "Shop the perimeter first", Category: entity.CategoryProduce,
			Body: "Fresh produce, dairy and meat line the outside aisles; fill your cart there before the packaged middle.",
		},
		{
			Title: "Price per unit beats price per package",
			Body:  "Compare the per-100g or per-litre shelf labels; the bigger package is not always the better deal.",
		},
		{
			Title: "Freeze this week's protein deals", Category: entity.CategoryMeat,
			Body: "Club-pack meat on deep discount portions well; wrap and freeze what you won't use in two days.",
		},
		{
			Title: "Frozen produce is picked ripe", Category: entity.CategoryFrozen,
			Body: "Frozen fruit and vegetables are flash-frozen at peak and often cheaper per serving than fresh out of season.",
		},
		{
			Title: "Match loyalty offers to the flyer",
			Body:  "Stack weekly flyer prices with loyalty point offers; the points often close the gap to a competitor's price.",
		},
		{
			Title: "Plan meals around what's on sale",
			Body:  "Pick recipes after reading the flyer, not before; the same week's deals usually cover a full dish.",
		},
	}
}
