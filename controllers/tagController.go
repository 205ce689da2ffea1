package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/foodgram-api/initializers"
	"github.com/Kariqs/foodgram-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetTags(ctx *gin.Context) {
	var tags []models.Tag
	if err := initializers.DB.Order("name").Find(&tags).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch tags", err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, tags)
}

func GetTag(ctx *gin.Context) {
	tagID, ok := parseID(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, "Tag not found")
		return
	}

	var tag models.Tag
	if err := initializers.DB.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Tag not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve tag", err)
		}
		return
	}
	sendJSONResponse(ctx, http.StatusOK, tag)
}

func CreateTag(ctx *gin.Context) {
	var tag models.Tag
	if err := ctx.ShouldBindJSON(&tag); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	tag.ID = 0

	var count int64
	if err := initializers.DB.Model(&models.Tag{}).
		Where("name = ? OR slug = ?", tag.Name, tag.Slug).
		Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create tag", err)
		return
	}
	if count > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Tag with this name or slug already exists")
		return
	}

	if err := initializers.DB.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Tag with this name or slug already exists")
			return
		}
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create tag", err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, tag)
}
