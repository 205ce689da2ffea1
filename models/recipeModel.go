package models

import "time"

type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:32;uniqueIndex;not null" binding:"required,max=32"`
	Slug string `json:"slug" gorm:"size:32;uniqueIndex;not null" binding:"required,max=32,slug"`
}

type Ingredient struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:128;not null;index;uniqueIndex:idx_ingredient_name_unit" binding:"required,max=128"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:64;not null;uniqueIndex:idx_ingredient_name_unit" binding:"required,max=64"`
}

type Recipe struct {
	ID                uint                `gorm:"primaryKey"`
	AuthorID          uint                `gorm:"not null;index"`
	Author            User                `gorm:"constraint:OnDelete:CASCADE"`
	Name              string              `gorm:"size:256;not null"`
	Image             string              `gorm:"size:512"`
	Text              string              `gorm:"type:text"`
	CookingTime       int                 `gorm:"not null"`
	PubDate           time.Time           `gorm:"autoCreateTime;index"`
	Tags              []Tag               `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	RecipeIngredients []RecipeIngredient  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Favorites         []Favorite          `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CartEntries       []ShoppingCartEntry `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:RESTRICT"`
	Amount       int        `gorm:"not null"`
}

type RecipeIngredientInput struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"required,min=1,max=32767"`
}

// RecipeInput is the payload for creating and updating recipes. Image is a
// base64 data URI and may be omitted on update.
type RecipeInput struct {
	Name        string                  `json:"name" binding:"required,max=256"`
	Text        string                  `json:"text" binding:"required"`
	CookingTime int                     `json:"cooking_time" binding:"required,min=1,max=32767"`
	Image       string                  `json:"image"`
	Tags        []uint                  `json:"tags" binding:"required,min=1,unique"`
	Ingredients []RecipeIngredientInput `json:"ingredients" binding:"required,min=1,unique=ID,dive"`
}
