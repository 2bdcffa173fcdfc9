package usecase

import (
	"context"

	"newsboard/pkg/apperr"
	"newsboard/pkg/authz"
	"newsboard/pkg/database"
	"newsboard/pkg/logger"
	"newsboard/pkg/password"
	"newsboard/pkg/validation"
	"newsboard/services/news/internal/entity"
	"newsboard/services/news/internal/repo/persistent"
)

const (
	samePassword  = "You cannot use the same password."
	sameUsername  = "You cannot use the same username."
	usernameRules = "notblank,max=150,username"
)

// Activity is what a user wrote or liked.
type Activity struct {
	News     []*entity.News
	Comments []*entity.Comment
}

type UserUseCase interface {
	// ResolvePrincipal loads the acting user named by a verified token.
	ResolvePrincipal(ctx context.Context, userID string) (*authz.Principal, error)
	GetUser(ctx context.Context, username string) (*entity.User, error)
	UpdateUser(ctx context.Context, p *authz.Principal, username string, changes entity.UserChanges) (*entity.User, error)
	DeleteUser(ctx context.Context, p *authz.Principal, username string) error
	Authored(ctx context.Context, username string) (*Activity, error)
	Liked(ctx context.Context, username string) (*Activity, error)
}

type userUseCase struct {
	userRepo    persistent.UserRepository
	newsRepo    persistent.NewsRepository
	commentRepo persistent.CommentRepository
	counter     likeCounter
	passwords   password.Validator
	hasher      password.Hasher
	validator   *validation.Validator
	logger      *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	newsRepo persistent.NewsRepository,
	commentRepo persistent.CommentRepository,
	newsLikes persistent.LikeRepository,
	commentLikes persistent.LikeRepository,
	passwords password.Validator,
	hasher password.Hasher,
	validator *validation.Validator,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:    userRepo,
		newsRepo:    newsRepo,
		commentRepo: commentRepo,
		counter:     likeCounter{newsLikes: newsLikes, commentLikes: commentLikes},
		passwords:   passwords,
		hasher:      hasher,
		validator:   validator,
		logger:      logger,
	}
}

func (uc *userUseCase) ResolvePrincipal(ctx context.Context, userID string) (*authz.Principal, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if database.IsNotFound(err) {
		return nil, apperr.Unauthenticated("User not found")
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Unauthenticated("User is inactive")
	}
	return user.Principal(), nil
}

func (uc *userUseCase) GetUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, notFoundOr(err, userNotFound)
	}
	return user, nil
}

// UpdateUser validates every supplied field first and writes nothing unless
// all of them pass.
func (uc *userUseCase) UpdateUser(ctx context.Context, p *authz.Principal, username string, changes entity.UserChanges) (*entity.User, error) {
	if p == nil {
		return nil, apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}

	target, err := uc.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := authz.Require(p, target, "You are not authorized to update this user."); err != nil {
		return nil, err
	}

	var msgs []string
	staged := entity.UserChanges{Email: changes.Email}

	if changes.Password != nil {
		candidate := *changes.Password
		if problems := uc.passwords.Validate(candidate, target.Username); len(problems) > 0 {
			msgs = append(msgs, problems...)
		} else if uc.hasher.Matches(target.Password, candidate) {
			msgs = append(msgs, samePassword)
		}
	}

	if changes.Username != nil {
		name := *changes.Username
		if name == target.Username {
			msgs = append(msgs, sameUsername)
		} else {
			msgs = append(msgs, uc.validator.Var("username", name, usernameRules)...)
		}
		staged.Username = &name
	}

	if changes.Email != nil {
		msgs = append(msgs, uc.validator.Var("email", *changes.Email, "omitempty,email")...)
	}

	if len(msgs) > 0 {
		return nil, apperr.Validation(msgs...)
	}

	if changes.Password != nil {
		hashed, err := uc.hasher.Hash(*changes.Password)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, err
		}
		staged.Password = &hashed
	}

	if err := uc.userRepo.Update(ctx, target.ID, staged); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("A user with that username already exists.")
		}
		return nil, notFoundOr(err, userNotFound)
	}

	updated, err := uc.userRepo.GetByID(ctx, target.ID)
	if err != nil {
		return nil, notFoundOr(err, userNotFound)
	}

	uc.logger.Info("User %s updated", updated.Username)
	return updated, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, p *authz.Principal, username string) error {
	if p == nil {
		return apperr.Unauthenticated(apperr.ErrUnauthenticated.Error())
	}

	target, err := uc.GetUser(ctx, username)
	if err != nil {
		return err
	}
	if err := authz.Require(p, target, "You are not authorized to delete this user."); err != nil {
		return err
	}

	if err := uc.userRepo.Delete(ctx, target.ID); err != nil {
		return notFoundOr(err, userNotFound)
	}

	uc.logger.Info("User %s deleted", username)
	return nil
}

func (uc *userUseCase) Authored(ctx context.Context, username string) (*Activity, error) {
	user, err := uc.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	news, err := uc.newsRepo.ListByCreator(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	comments, err := uc.commentRepo.ListByCreator(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return uc.withCounts(ctx, news, comments)
}

func (uc *userUseCase) Liked(ctx context.Context, username string) (*Activity, error) {
	user, err := uc.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	news, err := uc.newsRepo.ListLikedBy(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	comments, err := uc.commentRepo.ListLikedBy(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return uc.withCounts(ctx, news, comments)
}

func (uc *userUseCase) withCounts(ctx context.Context, news []*entity.News, comments []*entity.Comment) (*Activity, error) {
	if err := uc.counter.news(ctx, news...); err != nil {
		return nil, err
	}
	if err := uc.counter.comments(ctx, comments...); err != nil {
		return nil, err
	}
	return &Activity{News: news, Comments: comments}, nil
}
