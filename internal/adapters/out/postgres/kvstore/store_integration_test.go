package kvstore_test

import (
	"context"
	"testing"
	"time"

	"rentalvoice/internal/adapters/out/kv/orderstore"
	"rentalvoice/internal/adapters/out/postgres/kvstore"
	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// KeyValueStoreIntegrationTestSuite provides integration tests for the GORM
// key-value store using PostgreSQL containers to verify persistence behavior.
type KeyValueStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *kvstore.GormKeyValueStore
}

func (suite *KeyValueStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&kvstore.KVEntryDTO{}))
}

func (suite *KeyValueStoreIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE kv_entries").Error)
	suite.store = kvstore.NewGormKeyValueStore(suite.db)
}

func (suite *KeyValueStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *KeyValueStoreIntegrationTestSuite) TestSetThenGet() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "order:1000", `{"id":"ORD-1000"}`))

	value, found, err := suite.store.Get(ctx, "order:1000")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(`{"id":"ORD-1000"}`, value)
}

func (suite *KeyValueStoreIntegrationTestSuite) TestGetMissingKey() {
	value, found, err := suite.store.Get(context.Background(), "order:missing")
	suite.Require().NoError(err)
	suite.False(found)
	suite.Empty(value)
}

func (suite *KeyValueStoreIntegrationTestSuite) TestSetOverwritesExistingValue() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "order:1000", "first"))
	suite.Require().NoError(suite.store.Set(ctx, "order:1000", "second"))

	value, found, err := suite.store.Get(ctx, "order:1000")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("second", value)

	keys, err := suite.store.List(ctx, "order:")
	suite.Require().NoError(err)
	suite.Len(keys, 1)
}

func (suite *KeyValueStoreIntegrationTestSuite) TestListFiltersByPrefix() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "order:2000", "b"))
	suite.Require().NoError(suite.store.Set(ctx, "order:1000", "a"))
	suite.Require().NoError(suite.store.Set(ctx, "config:theme", "dark"))

	keys, err := suite.store.List(ctx, "order:")
	suite.Require().NoError(err)
	suite.Equal([]string{"order:1000", "order:2000"}, keys)
}

func (suite *KeyValueStoreIntegrationTestSuite) TestOrderStoreRoundTrip() {
	ctx := context.Background()
	orders := orderstore.NewStore(suite.store)

	ts, err := kernel.TimestampFromMillis(1735689600000)
	suite.Require().NoError(err)
	original, err := order.NewOrder(ts,
		kernel.NewField("excavator"), kernel.NewField("3 days"), kernel.UnsetField())
	suite.Require().NoError(err)

	suite.Require().NoError(orders.Put(ctx, original))

	listed, err := orders.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.True(listed[0].IsEqual(original))
	suite.Equal("excavator", listed[0].Equipment().Value())
	suite.False(listed[0].Location().IsSet())
}

func TestKeyValueStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KeyValueStoreIntegrationTestSuite))
}
