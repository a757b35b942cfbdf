// Package seed fills an empty database with a demo catalog, recipes and reviews.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/events"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/recipes"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/utils"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

var ErrAlreadySeeded = errors.New("database already has products")

type Options struct {
	// Seed makes the generated shoppers and reviews reproducible. Zero picks a random seed.
	Seed     uint64
	Shoppers int
}

type Summary struct {
	Products int
	Variants int
	Recipes  int
	Shoppers int
	Ratings  int
}

var gameTypes = []string{"Venison", "Duck", "Elk", "Pheasant", "Wild Turkey", "Wild Boar"}

var recipeCategories = []string{"Grilling", "Smoking", "Braising", "Curing"}

type productSeed struct {
	name     string
	category string
	price    int64
	tags     string
	option   string
	values   []string
}

var products = []productSeed{
	{"Venison Backstrap Rub", "Rubs & Seasonings", 1299, "rubs,venison", "Size", []string{"4 oz", "8 oz"}},
	{"Upland Bird Brine", "Brines", 1599, "brines,upland", "Size", []string{"Single", "Double"}},
	{"Wild Game Jerky Cure", "Rubs & Seasonings", 999, "jerky,cure", "Flavor", []string{"Original", "Teriyaki", "Hot"}},
	{"Cherry Chipotle Duck Glaze", "Sauces", 1149, "sauces,waterfowl", "", nil},
	{"Boning Knife", "Tools", 4999, "tools,butchering", "", nil},
}

type recipeSeed struct {
	title       string
	gameType    string
	category    string
	prep, cook  int64
	servings    int64
	ingredients []string
	steps       []string
}

var recipeSeeds = []recipeSeed{
	{
		"Smoked Duck Breast", "Duck", "Smoking", 20, 90, 4,
		[]string{"4 duck breasts", "2 tbsp kosher salt", "1 tbsp cracked pepper", "Cherry wood chunks"},
		[]string{"Score the skin in a crosshatch.", "Dry brine overnight.", "Smoke at 225F to 135F internal.", "Sear skin side down to render."},
	},
	{
		"Venison Backstrap with Juniper", "Venison", "Grilling", 15, 20, 4,
		[]string{"1 venison backstrap", "8 juniper berries, crushed", "2 cloves garlic", "Olive oil"},
		[]string{"Rub the backstrap with oil, garlic and juniper.", "Grill over high heat to 125F.", "Rest ten minutes before slicing."},
	},
	{
		"Braised Elk Shanks", "Elk", "Braising", 30, 240, 6,
		[]string{"4 elk shanks", "1 bottle red wine", "2 onions", "4 carrots", "Beef stock"},
		[]string{"Brown the shanks on all sides.", "Soften the vegetables.", "Braise covered at 300F until tender."},
	},
	{
		"Pheasant Pot Pie", "Pheasant", "Braising", 40, 60, 6,
		[]string{"2 pheasants, poached and pulled", "1 sheet puff pastry", "2 cups stock", "Peas and carrots"},
		[]string{"Make a roux and whisk in the stock.", "Fold in the meat and vegetables.", "Top with pastry and bake at 400F."},
	},
	{
		"Wild Boar Carnitas", "Wild Boar", "Braising", 20, 180, 8,
		[]string{"3 lb boar shoulder", "1 orange", "1 tbsp cumin", "Lard"},
		[]string{"Cube and season the shoulder.", "Simmer in lard and orange juice until tender.", "Crisp under the broiler."},
	},
}

// Run seeds an empty database. It refuses to touch a database that already has products.
func Run(ctx context.Context, store *storage.Storage, opts Options) (*Summary, error) {
	existing, err := store.Queries.ListActiveProducts(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing products: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrAlreadySeeded
	}
	if opts.Shoppers <= 0 {
		opts.Shoppers = 12
	}

	faker := gofakeit.New(opts.Seed)
	summary := &Summary{}

	categoryIDs := map[string]string{}
	for i, p := range products {
		if _, ok := categoryIDs[p.category]; ok {
			continue
		}
		cat, err := store.Queries.CreateProductCategory(ctx, db.CreateProductCategoryParams{
			ID:           ulid.Make().String(),
			Name:         p.category,
			Slug:         utils.Slugify(p.category),
			DisplayOrder: int64(i),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create product category %q: %w", p.category, err)
		}
		categoryIDs[p.category] = cat.ID
	}

	for _, p := range products {
		n, err := seedProduct(ctx, store.Queries, faker, p, categoryIDs[p.category])
		if err != nil {
			return nil, err
		}
		summary.Products++
		summary.Variants += n
	}

	gameTypeIDs := map[string]string{}
	for _, name := range gameTypes {
		gt, err := store.Queries.CreateGameType(ctx, db.CreateGameTypeParams{
			ID:   ulid.Make().String(),
			Name: name,
			Slug: utils.Slugify(name),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create game type %q: %w", name, err)
		}
		gameTypeIDs[name] = gt.ID
	}

	recipeCategoryIDs := map[string]string{}
	for i, name := range recipeCategories {
		cat, err := store.Queries.CreateRecipeCategory(ctx, db.CreateRecipeCategoryParams{
			ID:           ulid.Make().String(),
			Name:         name,
			Slug:         utils.Slugify(name),
			DisplayOrder: int64(i),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create recipe category %q: %w", name, err)
		}
		recipeCategoryIDs[name] = cat.ID
	}

	recipeIDs := make([]string, 0, len(recipeSeeds))
	for _, r := range recipeSeeds {
		recipe, err := store.Queries.CreateRecipe(ctx, db.CreateRecipeParams{
			ID:           ulid.Make().String(),
			Title:        r.title,
			Slug:         utils.Slugify(r.title),
			Description:  sql.NullString{String: faker.Sentence(14), Valid: true},
			GameTypeID:   sql.NullString{String: gameTypeIDs[r.gameType], Valid: true},
			CategoryID:   sql.NullString{String: recipeCategoryIDs[r.category], Valid: true},
			PrepMinutes:  r.prep,
			CookMinutes:  r.cook,
			Servings:     r.servings,
			Ingredients:  strings.Join(r.ingredients, "\n"),
			Instructions: strings.Join(r.steps, "\n"),
			IsPublished:  true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create recipe %q: %w", r.title, err)
		}
		recipeIDs = append(recipeIDs, recipe.ID)
		summary.Recipes++
	}

	// Reviews go through the aggregator so the stored averages match the ratings.
	aggregator := recipes.NewAggregator(store, nil, events.LogPublisher{})
	for i := 0; i < opts.Shoppers; i++ {
		first, last := faker.FirstName(), faker.LastName()
		user, err := store.Queries.CreateUser(ctx, db.CreateUserParams{
			ID:        ulid.Make().String(),
			Email:     strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", first, last, i)),
			FirstName: sql.NullString{String: first, Valid: true},
			LastName:  sql.NullString{String: last, Valid: true},
			FullName:  first + " " + last,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create shopper: %w", err)
		}
		summary.Shoppers++

		for _, recipeID := range recipeIDs {
			if !faker.Bool() {
				continue
			}
			res, err := aggregator.SubmitRating(ctx, recipes.SubmitParams{
				RecipeID:   recipeID,
				UserID:     user.ID,
				Rating:     faker.IntRange(2, 5),
				ReviewText: faker.Sentence(10),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to rate recipe: %w", err)
			}
			summary.Ratings++

			if faker.Float64() < 0.7 {
				if _, err := aggregator.SetApproval(ctx, res.Rating.ID, true); err != nil {
					return nil, err
				}
			}
		}
	}

	slog.Info("database seeded",
		"products", summary.Products,
		"variants", summary.Variants,
		"recipes", summary.Recipes,
		"shoppers", summary.Shoppers,
		"ratings", summary.Ratings,
	)
	return summary, nil
}

func seedProduct(ctx context.Context, q *db.Queries, faker *gofakeit.Faker, p productSeed, categoryID string) (int, error) {
	product, err := q.CreateProduct(ctx, db.CreateProductParams{
		ID:             ulid.Make().String(),
		CategoryID:     sql.NullString{String: categoryID, Valid: categoryID != ""},
		Name:           p.name,
		Slug:           utils.Slugify(p.name),
		Description:    sql.NullString{String: faker.Sentence(18), Valid: true},
		BasePriceCents: p.price,
		TrackInventory: true,
		IsActive:       true,
		Tags:           p.tags,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create product %q: %w", p.name, err)
	}

	values := p.values
	if len(values) == 0 {
		values = []string{""}
	}
	for _, value := range values {
		params := db.CreateProductVariantParams{
			ID:                ulid.Make().String(),
			ProductID:         product.ID,
			Title:             "Default",
			Sku:               utils.GenerateSKU(product.Slug),
			InventoryQuantity: int64(faker.IntRange(5, 60)),
			IsActive:          true,
		}
		if value != "" {
			params.Title = value
			params.Sku = utils.GenerateSKU(product.Slug, value)
			params.Option1Name = sql.NullString{String: p.option, Valid: true}
			params.Option1Value = sql.NullString{String: value, Valid: true}
		}
		if _, err := q.CreateProductVariant(ctx, params); err != nil {
			return 0, fmt.Errorf("failed to create variant %q: %w", params.Sku, err)
		}
	}
	return len(values), nil
}
