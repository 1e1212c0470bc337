package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"linebot-admin/internal/models"
)

type LineBotConfigStoreTestSuite struct {
	suite.Suite
	db    *gorm.DB
	store *LineBotConfigStore
}

func TestLineBotConfigStore(t *testing.T) {
	suite.Run(t, new(LineBotConfigStoreTestSuite))
}

func (s *LineBotConfigStoreTestSuite) SetupTest() {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	s.Require().NoError(Migrate(db))
	s.db = db
	s.store = NewLineBotConfigStore(db)
}

func (s *LineBotConfigStoreTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	_ = sqlDB.Close()
}

func (s *LineBotConfigStoreTestSuite) insert(name string, enabled bool) *models.LineBotConfig {
	cfg := &models.LineBotConfig{
		Name:          name,
		AccessToken:   "tok-" + name,
		ChannelSecret: "sec-" + name,
		RecipientID:   "U-" + name,
		Enabled:       enabled,
	}
	s.Require().NoError(s.store.Insert(context.Background(), cfg))
	return cfg
}

func (s *LineBotConfigStoreTestSuite) TestInsertAssignsIDAndTimestamps() {
	cfg := s.insert("Main", true)

	s.NotEqual(uuid.Nil, cfg.ID)
	s.False(cfg.CreatedAt.IsZero())

	got, err := s.store.Find(context.Background(), cfg.ID)
	s.Require().NoError(err)
	s.Equal("Main", got.Name)
	s.Equal("tok-Main", got.AccessToken)
	s.Equal("sec-Main", got.ChannelSecret)
	s.Equal("U-Main", got.RecipientID)
	s.True(got.Enabled)
	s.Nil(got.Description)
}

func (s *LineBotConfigStoreTestSuite) TestFindMissing() {
	_, err := s.store.Find(context.Background(), uuid.New())
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *LineBotConfigStoreTestSuite) TestFindEnabled() {
	a := s.insert("a", true)
	s.insert("b", false)
	c := s.insert("c", true)

	all, err := s.store.FindAll(context.Background())
	s.Require().NoError(err)
	s.Len(all, 3)

	enabled, err := s.store.FindEnabled(context.Background())
	s.Require().NoError(err)
	s.Require().Len(enabled, 2)
	ids := []uuid.UUID{enabled[0].ID, enabled[1].ID}
	s.ElementsMatch([]uuid.UUID{a.ID, c.ID}, ids)
}

func (s *LineBotConfigStoreTestSuite) TestUpdatePersistsFalse() {
	cfg := s.insert("Main", true)
	cfg.Enabled = false
	s.Require().NoError(s.store.Update(context.Background(), cfg))

	got, err := s.store.Find(context.Background(), cfg.ID)
	s.Require().NoError(err)
	s.False(got.Enabled)

	enabled, err := s.store.FindEnabled(context.Background())
	s.Require().NoError(err)
	s.Empty(enabled)
}

func (s *LineBotConfigStoreTestSuite) TestDelete() {
	cfg := s.insert("Main", true)

	s.Require().NoError(s.store.Delete(context.Background(), cfg.ID))

	_, err := s.store.Find(context.Background(), cfg.ID)
	s.ErrorIs(err, models.ErrNotFound)

	err = s.store.Delete(context.Background(), cfg.ID)
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *LineBotConfigStoreTestSuite) TestPing() {
	s.NoError(Ping(s.db))
}
