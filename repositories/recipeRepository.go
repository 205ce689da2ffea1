package repositories

import (
	"context"

	"github.com/Kariqs/foodgram-api/models"
	"gorm.io/gorm"
)

// DefaultRecipeOrder lists newest recipes first.
const DefaultRecipeOrder = "recipes.pub_date DESC, recipes.name ASC, recipes.id DESC"

type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	FavoritedBy uint
	InCartOf    uint
}

type RecipeRepository struct {
	DB *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return RecipeRepository{DB: db}
}

// filtered builds a fresh query each call; gorm statements must not be
// reused between Count and Find.
func (r RecipeRepository) filtered(ctx context.Context, filter RecipeFilter) *gorm.DB {
	query := r.DB.WithContext(ctx).Model(&models.Recipe{})
	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		query = query.Where("recipes.id IN (?)", r.DB.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs))
	}
	if filter.FavoritedBy != 0 {
		query = query.Where("recipes.id IN (?)", r.DB.Model(&models.Favorite{}).
			Select("recipe_id").Where("user_id = ?", filter.FavoritedBy))
	}
	if filter.InCartOf != 0 {
		query = query.Where("recipes.id IN (?)", r.DB.Model(&models.ShoppingCartEntry{}).
			Select("recipe_id").Where("user_id = ?", filter.InCartOf))
	}
	return query
}

func withDetails(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Preload("RecipeIngredients.Ingredient")
}

// List returns one page of recipes and the total number of matches.
func (r RecipeRepository) List(ctx context.Context, filter RecipeFilter, limit, offset int) ([]models.Recipe, int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := withDetails(r.filtered(ctx, filter)).
		Order(DefaultRecipeOrder).
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error
	return recipes, count, err
}

func (r RecipeRepository) Get(ctx context.Context, id uint) (models.Recipe, error) {
	var recipe models.Recipe
	err := withDetails(r.DB.WithContext(ctx)).First(&recipe, id).Error
	return recipe, err
}

// ByAuthor returns up to limit recipes of an author; limit <= 0 means all.
func (r RecipeRepository) ByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error) {
	query := r.DB.WithContext(ctx).Where("author_id = ?", authorID).Order(DefaultRecipeOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	var recipes []models.Recipe
	err := query.Find(&recipes).Error
	return recipes, err
}

func (r RecipeRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// Marks tells which of recipeIDs the user has favorited or put in the cart.
type Marks struct {
	Favorited map[uint]bool
	InCart    map[uint]bool
}

func (r RecipeRepository) Marks(ctx context.Context, userID uint, recipeIDs []uint) (Marks, error) {
	marks := Marks{Favorited: map[uint]bool{}, InCart: map[uint]bool{}}
	if userID == 0 || len(recipeIDs) == 0 {
		return marks, nil
	}

	var favorited []uint
	if err := r.DB.WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &favorited).Error; err != nil {
		return marks, err
	}
	var inCart []uint
	if err := r.DB.WithContext(ctx).Model(&models.ShoppingCartEntry{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &inCart).Error; err != nil {
		return marks, err
	}

	for _, id := range favorited {
		marks.Favorited[id] = true
	}
	for _, id := range inCart {
		marks.InCart[id] = true
	}
	return marks, nil
}
