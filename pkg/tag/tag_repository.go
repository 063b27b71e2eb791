package tag

import (
	"context"

	"recipe-api/entities"
	"recipe-api/internal/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// TagRepository only exposes owner-scoped queries; there is no lookup
	// that skips the ownership predicate.
	TagRepository interface {
		CreateTag(ctx context.Context, tag *entities.Tag) error
		GetTags(ctx context.Context, userID string, assignedOnly bool) ([]*entities.Tag, error)
		GetTagByID(ctx context.Context, id uint, userID string) (*entities.Tag, error)
		GetTagsByIDs(ctx context.Context, ids []uint, userID string) ([]*entities.Tag, error)
		UpdateTag(ctx context.Context, tag *entities.Tag) error
		DeleteTag(ctx context.Context, tag *entities.Tag) error
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetTags(ctx context.Context, userID string, assignedOnly bool) ([]*entities.Tag, error) {
	var tags []*entities.Tag

	query := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Scopes(scope.OwnedBy("tags", userID))

	if assignedOnly {
		query = query.Scopes(scope.AssignedTo("recipe_tags", "tag_id", "tags"))
	}

	// The assigned_only join duplicates tags attached to several recipes.
	if err := query.
		Distinct("tags.*").
		Order("tags.name DESC").
		Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}

func (r *tagRepository) GetTagByID(ctx context.Context, id uint, userID string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).
		Scopes(scope.OwnedBy("tags", userID)).
		Where("tags.id = ?", id).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetTagsByIDs(ctx context.Context, ids []uint, userID string) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).
		Scopes(scope.OwnedBy("tags", userID)).
		Where("tags.id IN ?", ids).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

func (r *tagRepository) DeleteTag(ctx context.Context, tag *entities.Tag) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(tag).Error
}
