package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/testutil"
	"movie-reviews/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(store *testutil.Store) UserService {
	return NewUserService(store.Repository(), testutil.Config(), zap.NewNop())
}

func TestRegister_HashesPassword(t *testing.T) {
	store := testutil.NewStore()
	svc := newUserService(store)

	bio := "Springfield"
	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username:  "lisa",
		Email:     "lisa@mail.com",
		Password:  "1234",
		FirstName: "Lisa",
		LastName:  "Simpson",
		Bio:       &bio,
		IsCritic:  true,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsCritic)
	assert.False(t, resp.IsSuperuser)

	user, err := store.Repository().User.FindByUsername(context.Background(), "lisa")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "1234", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("1234", user.PasswordHash))
	assert.True(t, user.IsActive)
	assert.Equal(t, &bio, user.Bio)
}

// raceUsers hides existing rows from the pre-insert checks, as if a
// concurrent registration committed between the check and the insert.
type raceUsers struct {
	repository.UserRepository
}

func (raceUsers) FindByUsername(context.Context, string) (*entity.User, error) { return nil, nil }
func (raceUsers) FindByEmail(context.Context, string) (*entity.User, error)    { return nil, nil }

func TestRegister_LostRaceBecomesFieldError(t *testing.T) {
	store := testutil.NewStore()
	store.SeedUser(t, "lisa")

	repo := store.Repository()
	repo.User = raceUsers{repo.User}
	svc := NewUserService(repo, testutil.Config(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "lisa", Email: "new@mail.com", Password: "x", FirstName: "L", LastName: "S",
	})

	var fe utils.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, []string{msgUsernameTaken}, fe["username"])
}

func TestRegister_StoreFailure(t *testing.T) {
	store := testutil.NewStore()
	store.FailWith = errors.New("db down")

	_, err := newUserService(store).Register(context.Background(), &request.RegisterRequest{Username: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.FailWith)

	var fe utils.FieldErrors
	assert.False(t, errors.As(err, &fe))
}

func TestCreateAdmin(t *testing.T) {
	store := testutil.NewStore()
	svc := newUserService(store)

	admin, err := svc.CreateAdmin(context.Background(), "root", "root@mail.com", "secret")
	require.NoError(t, err)
	assert.True(t, admin.IsSuperuser)
	assert.False(t, admin.IsCritic)
	assert.True(t, utils.CheckPasswordHash("secret", admin.PasswordHash))
}

func TestCreateAdmin_Conflicts(t *testing.T) {
	store := testutil.NewStore()
	store.SeedUser(t, "root")
	svc := newUserService(store)

	tests := []struct {
		name     string
		username string
		email    string
		want     error
	}{
		{"username wins when both clash", "root", "root@example.com", ErrUsernameTaken},
		{"username", "root", "other@mail.com", ErrUsernameTaken},
		{"email", "other", "root@example.com", ErrEmailTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAdmin(context.Background(), tt.username, tt.email, "pw")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListUsers_PageWindow(t *testing.T) {
	store := testutil.NewStore()
	for _, name := range []string{"dave", "carol", "bob", "alice", "erin"} {
		store.SeedUser(t, name)
	}
	svc := newUserService(store)

	page, err := svc.ListUsers(context.Background(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 4, page.Size)
	require.Len(t, page.Items, 4)
	assert.Equal(t, "alice", page.Items[0].Username)

	page, err = svc.ListUsers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "erin", page.Items[0].Username)

	_, err = svc.ListUsers(context.Background(), 3)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}
