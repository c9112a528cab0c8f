package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bzmarket.com/app/internal/shared/apperr"
	"bzmarket.com/app/internal/shared/slug"
)

type Service struct {
	repo *Repo
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepo(db)}
}

func (s *Service) Repo() *Repo { return s.repo }

type RegisterInput struct {
	Email    string
	Password string
	Role     string // client|vendor
	ShopName string // requis pour les vendeurs
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	role := in.Role
	if role != RoleVendor {
		role = RoleClient
	}

	fields := map[string]string{}
	if email == "" {
		fields["email"] = "Ce champ est obligatoire."
	}
	if len(in.Password) < 6 {
		fields["password"] = "Au moins 6 caractères."
	}
	shopName := strings.TrimSpace(in.ShopName)
	if role == RoleVendor && shopName == "" {
		fields["shop_name"] = "Le nom de la boutique est requis."
	}
	if len(fields) > 0 {
		return User{}, apperr.InvalidErr("Certains champs sont invalides.", fields)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, apperr.ConflictErr("Cette adresse e-mail est déjà utilisée.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, apperr.Wrap(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperr.Wrap(err)
	}

	now := time.Now()
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role == RoleVendor {
		shopSlug := slug.FromName(shopName)
		u.ShopName = &shopName
		u.ShopSlug = &shopSlug
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		return User{}, apperr.Wrap(err)
	}
	return u, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, apperr.UnauthorizedErr("E-mail ou mot de passe incorrect.")
		}
		return User{}, apperr.Wrap(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, apperr.UnauthorizedErr("E-mail ou mot de passe incorrect.")
	}
	return u, nil
}

// ChangePassword verifies the current password before setting a new one.
func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return apperr.Wrap(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return apperr.UnauthorizedErr("Mot de passe actuel incorrect.")
	}
	if len(next) < 6 {
		return apperr.InvalidErr("Mot de passe trop court.", map[string]string{"password": "Au moins 6 caractères."})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(err)
	}
	return s.repo.Update(ctx, userID, map[string]any{"password_hash": string(hash)})
}
