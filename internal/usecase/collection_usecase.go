package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type collectionUsecase struct {
	collectionRepo domain.CollectionRepository
	resolver       domain.UserResolver
}

func NewCollectionUsecase(collectionRepo domain.CollectionRepository, resolver domain.UserResolver) domain.CollectionUsecase {
	return &collectionUsecase{
		collectionRepo: collectionRepo,
		resolver:       resolver,
	}
}

func (u *collectionUsecase) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return u.collectionRepo.Fetch(ctx)
}

func (u *collectionUsecase) GetCollection(ctx context.Context, id int64) (*domain.Collection, error) {
	collection, err := u.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NotFound("Collection not found")
	}
	return collection, nil
}

func (u *collectionUsecase) ListCollectionsByUser(ctx context.Context, identifier string, hint domain.IdentifierHint) ([]domain.Collection, error) {
	userID, err := u.resolver.Resolve(ctx, identifier, hint)
	if err != nil {
		return nil, err
	}
	return u.collectionRepo.FetchByOwner(ctx, userID)
}

func (u *collectionUsecase) CreateCollection(ctx context.Context, input domain.CreateCollectionInput) (*domain.Collection, error) {
	if input.Name == "" || input.Description == "" {
		return nil, apperror.InvalidArgument("Name and description are required")
	}

	ownerID := input.UserID
	if ownerID == nil && input.UserEmail != "" {
		resolved, err := u.resolver.Resolve(ctx, input.UserEmail, domain.HintEmail)
		if err != nil {
			return nil, err
		}
		ownerID = &resolved
	}

	collection := &domain.Collection{
		Name:        input.Name,
		Description: input.Description,
		UserID:      ownerID,
	}
	if err := u.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}
	return u.collectionRepo.GetByID(ctx, collection.ID)
}

func (u *collectionUsecase) UpdateCollection(ctx context.Context, id int64, update domain.CollectionUpdate) (*domain.Collection, error) {
	existing, err := u.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Collection not found")
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.UserID != nil {
		existing.UserID = update.UserID
	}

	if err := u.collectionRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return u.collectionRepo.GetByID(ctx, id)
}

func (u *collectionUsecase) DeleteCollection(ctx context.Context, id int64) error {
	existing, err := u.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Collection not found")
	}
	return u.collectionRepo.Delete(ctx, id)
}
