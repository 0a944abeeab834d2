package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type userResolver struct {
	userRepo domain.UserRepository
}

// NewUserResolver builds the resolver that turns a caller-supplied
// identifier (numeric id or email) into the authoritative user id.
func NewUserResolver(userRepo domain.UserRepository) domain.UserResolver {
	return &userResolver{userRepo: userRepo}
}

// Resolve interprets the identifier per the hint, or auto-detects when
// the hint is empty: any string containing "@" is treated as an email,
// everything else must parse as an integer id. The "@" check is kept
// for compatibility with the previous backend even though it
// misclassifies malformed strings containing "@".
func (r *userResolver) Resolve(ctx context.Context, identifier string, hint domain.IdentifierHint) (int64, error) {
	if hint == domain.HintEmail || (hint == domain.HintAuto && strings.Contains(identifier, "@")) {
		user, err := r.userRepo.GetByEmail(ctx, identifier)
		if err != nil {
			return 0, err
		}
		if user == nil {
			return 0, apperror.NotFound(fmt.Sprintf("User with email %s not found", identifier))
		}
		return user.ID, nil
	}

	userID, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return 0, apperror.InvalidArgument(fmt.Sprintf("Invalid user identifier: %s", identifier))
	}

	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, apperror.NotFound(fmt.Sprintf("User with ID %d not found", userID))
	}

	return userID, nil
}
