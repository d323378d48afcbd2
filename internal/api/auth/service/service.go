package authService

import (
	"time"

	"github.com/N0mena/Expenses-Track/internal/api/auth"
	authRepository "github.com/N0mena/Expenses-Track/internal/api/auth/repository"
	"github.com/N0mena/Expenses-Track/pkg/bcrypt"
	"github.com/N0mena/Expenses-Track/pkg/redis"
	"github.com/N0mena/Expenses-Track/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterUserRequest) (auth.RegisterUserResponse, error)
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	Logout(ctx context.Context, token string, remaining time.Duration) error
	GetProfile(ctx context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	redisServer redis.IRedis
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	redisServer redis.IRedis,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:         log,
		repo:        repo,
		redisServer: redisServer,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
