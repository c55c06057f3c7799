package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/thalassophobia/internal/catalog"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	mockuuid "github.com/KirkDiggler/thalassophobia/internal/uuid/mocks"
)

type RedisServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mock          redismock.ClientMock
	mockGenerator *mockuuid.MockGenerator
	svc           catalog.Service
	ctx           context.Context
}

func (s *RedisServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.mockGenerator = mockuuid.NewMockGenerator(s.ctrl)
	s.svc = catalog.NewRedisService(&catalog.RedisConfig{
		Client:        client,
		UUIDGenerator: s.mockGenerator,
	})
	s.ctx = context.Background()
}

func (s *RedisServiceTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RedisServiceTestSuite))
}

func (s *RedisServiceTestSuite) TestCreateHandle_New() {
	def := buildDefinition(s.T(), "Acidic Rounds", "ACID_ON_HIT", definition.Tier1)

	s.mockGenerator.EXPECT().New().Return("h-1")
	s.mock.ExpectSetNX("catalog:def:ITEM_ACID_ON_HIT", "h-1", 0).SetVal(true)
	s.mock.ExpectHSet("catalog:handle:h-1", "name", "Acidic Rounds", "token", "ACID_ON_HIT", "tier", "tier1").SetVal(3)

	handle, err := s.svc.CreateHandle(s.ctx, def)
	s.Require().NoError(err)
	s.Equal(definition.Handle("h-1"), handle)

	// served from the cache the second time
	again, err := s.svc.CreateHandle(s.ctx, def)
	s.Require().NoError(err)
	s.Equal(handle, again)
}

func (s *RedisServiceTestSuite) TestCreateHandle_Existing() {
	def := buildDefinition(s.T(), "Acidic Rounds", "ACID_ON_HIT", definition.Tier1)

	s.mockGenerator.EXPECT().New().Return("h-new")
	s.mock.ExpectSetNX("catalog:def:ITEM_ACID_ON_HIT", "h-new", 0).SetVal(false)
	s.mock.ExpectGet("catalog:def:ITEM_ACID_ON_HIT").SetVal("h-old")
	s.mock.ExpectHSet("catalog:handle:h-old", "name", "Acidic Rounds", "token", "ACID_ON_HIT", "tier", "tier1").SetVal(0)

	handle, err := s.svc.CreateHandle(s.ctx, def)
	s.Require().NoError(err)
	s.Equal(definition.Handle("h-old"), handle)
}

func (s *RedisServiceTestSuite) TestCreateHandle_DependencyError() {
	def := buildDefinition(s.T(), "Acidic Rounds", "ACID_ON_HIT", definition.Tier1)

	s.mockGenerator.EXPECT().New().Return("h-1")
	s.mock.ExpectSetNX("catalog:def:ITEM_ACID_ON_HIT", "h-1", 0).SetErr(errors.New("redis error"))

	_, err := s.svc.CreateHandle(s.ctx, def)
	s.Error(err)
}

func (s *RedisServiceTestSuite) TestRegisterRelationship() {
	pair := catalog.Pair{
		Type:            catalog.RelationshipContagious,
		Replaced:        "h-1",
		ReplacedName:    "Acidic Rounds",
		Replacement:     "h-2",
		ReplacementName: "Void Rounds",
	}
	data, err := json.Marshal(pair)
	s.Require().NoError(err)

	s.mockGenerator.EXPECT().New().Return("rel-1")
	s.mock.ExpectSetNX("catalog:pair:contagious_item:h-1:h-2", "rel-1", 0).SetVal(true)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("catalog:rel:rel-1", data, 0).SetVal("OK")
	s.mock.ExpectRPush("catalog:rels:contagious_item", "rel-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.svc.RegisterRelationship(s.ctx, pair))
}

func (s *RedisServiceTestSuite) TestRegisterRelationship_AlreadyRecorded() {
	pair := catalog.Pair{
		Type:            catalog.RelationshipContagious,
		Replaced:        "h-1",
		ReplacedName:    "Acidic Rounds",
		Replacement:     "h-2",
		ReplacementName: "Void Rounds",
	}

	s.mockGenerator.EXPECT().New().Return("rel-2")
	s.mock.ExpectSetNX("catalog:pair:contagious_item:h-1:h-2", "rel-2", 0).SetVal(false)

	// nothing is appended to the list
	s.NoError(s.svc.RegisterRelationship(s.ctx, pair))
}

func (s *RedisServiceTestSuite) TestCreateHandle_SameNameDifferentIdentifier() {
	shard := buildDefinition(s.T(), "Shard", "SHARD", definition.Tier1)
	voidShard := buildDefinition(s.T(), "Shard", "VOID_SHARD", definition.TierVoidTier1)

	s.mockGenerator.EXPECT().New().Return("h-1")
	s.mock.ExpectSetNX("catalog:def:ITEM_SHARD", "h-1", 0).SetVal(true)
	s.mock.ExpectHSet("catalog:handle:h-1", "name", "Shard", "token", "SHARD", "tier", "tier1").SetVal(3)
	s.mockGenerator.EXPECT().New().Return("h-2")
	s.mock.ExpectSetNX("catalog:def:ITEM_VOID_SHARD", "h-2", 0).SetVal(true)
	s.mock.ExpectHSet("catalog:handle:h-2", "name", "Shard", "token", "VOID_SHARD", "tier", "void_tier1").SetVal(3)

	first, err := s.svc.CreateHandle(s.ctx, shard)
	s.Require().NoError(err)
	second, err := s.svc.CreateHandle(s.ctx, voidShard)
	s.Require().NoError(err)

	s.NotEqual(first, second)
}

func (s *RedisServiceTestSuite) TestRelationships() {
	pair := catalog.Pair{
		Type:            catalog.RelationshipContagious,
		Replaced:        "h-1",
		ReplacedName:    "Acidic Rounds",
		Replacement:     "h-2",
		ReplacementName: "Void Rounds",
	}
	data, err := json.Marshal(pair)
	s.Require().NoError(err)

	s.mock.ExpectLRange("catalog:rels:contagious_item", 0, -1).SetVal([]string{"rel-1"})
	s.mock.ExpectGet("catalog:rel:rel-1").SetVal(string(data))

	pairs, err := s.svc.Relationships(s.ctx, catalog.RelationshipContagious)
	s.Require().NoError(err)
	s.Equal([]catalog.Pair{pair}, pairs)
}

func (s *RedisServiceTestSuite) TestSetTier_NotFound() {
	s.mock.ExpectExists("catalog:handle:missing").SetVal(0)

	err := s.svc.SetTier(s.ctx, "missing", definition.Tier2)
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisServiceTestSuite) TestSetTierAndTier() {
	s.mock.ExpectExists("catalog:handle:h-1").SetVal(1)
	s.mock.ExpectHSet("catalog:handle:h-1", "tier", "no_tier").SetVal(0)
	s.mock.ExpectHGet("catalog:handle:h-1", "tier").SetVal("no_tier")

	s.Require().NoError(s.svc.SetTier(s.ctx, "h-1", definition.TierNone))

	tier, err := s.svc.Tier(s.ctx, "h-1")
	s.Require().NoError(err)
	s.Equal(definition.TierNone, tier)
}
