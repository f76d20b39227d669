package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type DatabaseTestSuite struct {
	suite.Suite
	client *Client
}

func (s *DatabaseTestSuite) SetupTest() {
	client, err := New(":memory:")
	s.Require().NoError(err)
	s.client = client
}

func (s *DatabaseTestSuite) TearDownTest() {
	s.Require().NoError(s.client.Close())
}

func (s *DatabaseTestSuite) TestCreateUser() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)
	s.NotZero(user.ID)
	s.Equal("alice", user.Username)

	got, err := s.client.GetUserByUsername(ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
	s.Equal("hash", got.PasswordHash)
}

func (s *DatabaseTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()

	_, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	_, err = s.client.CreateUser(ctx, "alice", "otherhash")
	s.ErrorIs(err, ErrUsernameTaken)

	count, err := s.client.CountUsers(ctx)
	s.Require().NoError(err)
	s.EqualValues(1, count)
}

func (s *DatabaseTestSuite) TestGetUserByUsername_NotFound() {
	_, err := s.client.GetUserByUsername(context.Background(), "nobody")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *DatabaseTestSuite) TestGetUserByID() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	got, err := s.client.GetUserByID(ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("alice", got.Username)
}

func (s *DatabaseTestSuite) TestAddAndListFavorites() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	_, err = s.client.AddFavorite(ctx, user.ID, "Kirra")
	s.Require().NoError(err)
	_, err = s.client.AddFavorite(ctx, user.ID, "Duranbah")
	s.Require().NoError(err)

	favorites, err := s.client.ListFavorites(ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(favorites, 2)

	// Insertion order is preserved.
	s.Equal("Kirra", favorites[0].Spot)
	s.Equal("Duranbah", favorites[1].Spot)
}

func (s *DatabaseTestSuite) TestAddFavorite_Duplicate() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	_, err = s.client.AddFavorite(ctx, user.ID, "Kirra")
	s.Require().NoError(err)

	_, err = s.client.AddFavorite(ctx, user.ID, "Kirra")
	s.ErrorIs(err, ErrDuplicateFavorite)

	favorites, err := s.client.ListFavorites(ctx, user.ID)
	s.Require().NoError(err)
	s.Len(favorites, 1)
}

func (s *DatabaseTestSuite) TestFavoriteExists() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	exists, err := s.client.FavoriteExists(ctx, user.ID, "Kirra")
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.client.AddFavorite(ctx, user.ID, "Kirra")
	s.Require().NoError(err)

	exists, err = s.client.FavoriteExists(ctx, user.ID, "Kirra")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *DatabaseTestSuite) TestRemoveFavorite() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	_, err = s.client.AddFavorite(ctx, user.ID, "Kirra")
	s.Require().NoError(err)
	_, err = s.client.AddFavorite(ctx, user.ID, "Duranbah")
	s.Require().NoError(err)

	removed, err := s.client.RemoveFavorite(ctx, user.ID, "Kirra")
	s.Require().NoError(err)
	s.True(removed)

	// Other favorites are untouched.
	favorites, err := s.client.ListFavorites(ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(favorites, 1)
	s.Equal("Duranbah", favorites[0].Spot)
}

func (s *DatabaseTestSuite) TestRemoveFavorite_Absent() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	removed, err := s.client.RemoveFavorite(ctx, user.ID, "Atlantis")
	s.Require().NoError(err)
	s.False(removed)
}

func (s *DatabaseTestSuite) TestRemoveThenReAddFavorite() {
	ctx := context.Background()

	user, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)

	_, err = s.client.AddFavorite(ctx, user.ID, "Kirra")
	s.Require().NoError(err)

	removed, err := s.client.RemoveFavorite(ctx, user.ID, "Kirra")
	s.Require().NoError(err)
	s.True(removed)

	// A removed spot can be favorited again.
	_, err = s.client.AddFavorite(ctx, user.ID, "Kirra")
	s.NoError(err)
}

func (s *DatabaseTestSuite) TestFavoritesAreScopedPerUser() {
	ctx := context.Background()

	alice, err := s.client.CreateUser(ctx, "alice", "hash")
	s.Require().NoError(err)
	bob, err := s.client.CreateUser(ctx, "bob", "hash")
	s.Require().NoError(err)

	_, err = s.client.AddFavorite(ctx, alice.ID, "Kirra")
	s.Require().NoError(err)
	_, err = s.client.AddFavorite(ctx, bob.ID, "Kirra")
	s.Require().NoError(err)

	favorites, err := s.client.ListFavorites(ctx, alice.ID)
	s.Require().NoError(err)
	s.Len(favorites, 1)
}

func TestDatabaseTestSuite(t *testing.T) {
	suite.Run(t, new(DatabaseTestSuite))
}

func TestCountsOnEmptyDatabase(t *testing.T) {
	client, err := New(":memory:")
	require.NoError(t, err)
	defer client.Close() //nolint:errcheck

	users, err := client.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Zero(t, users)

	favorites, err := client.CountFavorites(context.Background())
	require.NoError(t, err)
	assert.Zero(t, favorites)
}
