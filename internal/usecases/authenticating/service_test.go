package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/estacionsb/cuadres-api/infrastructure/repository/mocks"
	"github.com/estacionsb/cuadres-api/internal/config"
	"github.com/estacionsb/cuadres-api/internal/domain"
)

const claveSecreta = "clave-de-prueba"

func servicioDePrueba(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: claveSecreta}

	return NewService(userRepo, cfg), userRepo
}

func usuarioActivo(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Elena",
		Lastname:     "Ruiz",
		Email:        "elena@estacionsb.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       2,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("Credenciales válidas devuelven un token verificable", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)
		user := usuarioActivo(t, "secreto123")

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "elena@estacionsb.com").
			Return(user, nil)

		token, err := servicio.LoginUser(context.Background(), " Elena@EstacionSB.com ", "secreto123")

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := servicio.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "elena@estacionsb.com", claims.UserEmail)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Contraseña incorrecta", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)
		user := usuarioActivo(t, "secreto123")

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "elena@estacionsb.com").
			Return(user, nil)

		_, err := servicio.LoginUser(context.Background(), "elena@estacionsb.com", "otra-cosa")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuario inexistente", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "nadie@estacionsb.com").
			Return(nil, nil)

		_, err := servicio.LoginUser(context.Background(), "nadie@estacionsb.com", "secreto123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Cuenta desactivada", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)
		user := usuarioActivo(t, "secreto123")
		user.Active = false

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "elena@estacionsb.com").
			Return(user, nil)

		_, err := servicio.LoginUser(context.Background(), "elena@estacionsb.com", "secreto123")

		assert.ErrorIs(t, err, ErrUserDisabled)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, 7, authErr.UserID)
	})

	t.Run("Credenciales incompletas", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		_, err := servicio.LoginUser(context.Background(), "", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Token adulterado", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		_, err := servicio.ValidateToken("no.es.un-jwt")

		assert.Error(t, err)
	})

	t.Run("Token firmado con otra clave", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		otroServicio := NewService(mocks.NewMockUserRepository(ctrl), &config.Config{SecretKey: "otra-clave"})

		servicio, userRepo := servicioDePrueba(t)
		user := usuarioActivo(t, "secreto123")

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "elena@estacionsb.com").
			Return(user, nil)

		token, err := servicio.LoginUser(context.Background(), "elena@estacionsb.com", "secreto123")
		require.NoError(t, err)

		_, err = otroServicio.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Crea el usuario con la contraseña hasheada y rol por defecto", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "nuevo@estacionsb.com").
			Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.NotEqual(t, "secreto123", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secreto123")))
				assert.Equal(t, 3, u.RoleID)
				assert.False(t, u.Active)
				u.ID = 11
				return u, nil
			})

		creado, err := servicio.CreateUser(context.Background(), &domain.User{
			Name:         "Nuevo",
			Lastname:     "Usuario",
			Email:        "Nuevo@EstacionSB.com",
			PasswordHash: "secreto123",
		})

		require.NoError(t, err)
		assert.Equal(t, 11, creado.ID)
		assert.Equal(t, "nuevo@estacionsb.com", creado.Email)
	})

	t.Run("Email ya registrado", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "elena@estacionsb.com").
			Return(&domain.User{ID: 7}, nil)

		_, err := servicio.CreateUser(context.Background(), &domain.User{
			Name:         "Elena",
			Lastname:     "Ruiz",
			Email:        "elena@estacionsb.com",
			PasswordHash: "secreto123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Datos incompletos", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		_, err := servicio.CreateUser(context.Background(), &domain.User{Email: "solo@estacionsb.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("Actualiza el hash cuando la contraseña actual es correcta", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)
		user := usuarioActivo(t, "secreto123")

		userRepo.EXPECT().
			GetUserByID(gomock.Any(), 7).
			Return(user, nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("nuevoSecreto9")))
				return nil
			})

		err := servicio.ChangePassword(context.Background(), 7, "secreto123", "nuevoSecreto9")

		assert.NoError(t, err)
	})

	t.Run("Contraseña actual incorrecta", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)
		user := usuarioActivo(t, "secreto123")

		userRepo.EXPECT().
			GetUserByID(gomock.Any(), 7).
			Return(user, nil)

		err := servicio.ChangePassword(context.Background(), 7, "equivocada", "nuevoSecreto9")

		assert.ErrorContains(t, err, "contraseña actual incorrecta")
	})

	t.Run("Contraseña nueva demasiado corta", func(t *testing.T) {
		servicio, userRepo := servicioDePrueba(t)
		user := usuarioActivo(t, "secreto123")

		userRepo.EXPECT().
			GetUserByID(gomock.Any(), 7).
			Return(user, nil)

		err := servicio.ChangePassword(context.Background(), 7, "secreto123", "corta")

		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
