package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	staffRepo "fairway/database/repository/staff"
	"fairway/models"
	"fairway/utils"
)

const tokenDuration = 12 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or PIN")

// Service manages staff accounts and console sign-in.
type Service interface {
	Register(ctx context.Context, member models.StaffMember, pin string) (*models.StaffMember, error)
	Authenticate(ctx context.Context, email, pin string) (token string, member *models.StaffMember, err error)
	GetByID(ctx context.Context, staffID string) (*models.StaffMember, error)
	List(ctx context.Context, activeOnly bool) ([]models.StaffMember, error)
}

type DefaultService struct {
	Repo   staffRepo.StaffRepository
	Logger *zap.Logger
}

func (s *DefaultService) Register(ctx context.Context, member models.StaffMember, pin string) (*models.StaffMember, error) {
	if member.Email == "" || member.Name == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(pin) < 4 {
		return nil, fmt.Errorf("PIN must be at least 4 digits")
	}
	if member.Role == "" {
		member.Role = models.RoleStaff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}
	member.PINHash = string(hash)
	member.IsActive = true

	created, err := s.Repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("staff member registered",
		zap.String("staffID", created.ID), zap.String("role", created.Role))
	return created, nil
}

func (s *DefaultService) Authenticate(ctx context.Context, email, pin string) (string, *models.StaffMember, error) {
	member, err := s.Repo.GetByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		return "", nil, ErrInvalidCredentials
	} else if err != nil {
		return "", nil, err
	}
	if !member.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PINHash), []byte(pin)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(member.ID, member.Role, tokenDuration)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, member, nil
}

func (s *DefaultService) GetByID(ctx context.Context, staffID string) (*models.StaffMember, error) {
	return s.Repo.GetByID(ctx, staffID)
}

func (s *DefaultService) List(ctx context.Context, activeOnly bool) ([]models.StaffMember, error) {
	return s.Repo.List(ctx, activeOnly)
}
