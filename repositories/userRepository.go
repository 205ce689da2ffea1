package repositories

import (
	"context"

	"github.com/Kariqs/foodgram-api/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return UserRepository{DB: db}
}

// Followed tells which of authorIDs the user is subscribed to.
func (r UserRepository) Followed(ctx context.Context, userID uint, authorIDs []uint) (map[uint]bool, error) {
	followed := map[uint]bool{}
	if userID == 0 || len(authorIDs) == 0 {
		return followed, nil
	}
	var ids []uint
	if err := r.DB.WithContext(ctx).Model(&models.Subscription{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error; err != nil {
		return followed, err
	}
	for _, id := range ids {
		followed[id] = true
	}
	return followed, nil
}

// Subscriptions returns one page of the authors the user follows.
func (r UserRepository) Subscriptions(ctx context.Context, userID uint, limit, offset int) ([]models.User, int64, error) {
	authors := func() *gorm.DB {
		return r.DB.WithContext(ctx).Model(&models.User{}).
			Where("users.id IN (?)", r.DB.Model(&models.Subscription{}).Select("author_id").Where("user_id = ?", userID))
	}

	var count int64
	if err := authors().Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := authors().Order("users.username").Limit(limit).Offset(offset).Find(&users).Error
	return users, count, err
}
