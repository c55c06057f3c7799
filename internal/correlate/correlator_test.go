package correlate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/thalassophobia/internal/catalog"
	mockcatalog "github.com/KirkDiggler/thalassophobia/internal/catalog/mock"
	"github.com/KirkDiggler/thalassophobia/internal/correlate"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	"github.com/KirkDiggler/thalassophobia/internal/diagnostics"
	dnderr "github.com/KirkDiggler/thalassophobia/internal/errors"
	"github.com/KirkDiggler/thalassophobia/internal/lang"
	"github.com/KirkDiggler/thalassophobia/internal/registry"
)

type acidRounds struct{}
type voidRounds struct{}
type voidLens struct{}
type lunarCharm struct{}

type CorrelatorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *mockcatalog.MockService
	collector   *diagnostics.Collector
	correlator  *correlate.Correlator
	builder     *definition.Builder
	registry    *registry.Registry
	ctx         context.Context
}

func (s *CorrelatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = mockcatalog.NewMockService(s.ctrl)
	s.collector = diagnostics.NewCollector()
	s.ctx = context.Background()
	s.registry = registry.New()

	correlator, err := correlate.New(&correlate.Config{
		Catalog:  s.mockCatalog,
		Reporter: s.collector,
	})
	s.Require().NoError(err)
	s.correlator = correlator

	builder, err := definition.NewBuilder(&definition.BuilderConfig{
		Catalog: catalog.NewInMemory(nil),
		Lang:    lang.NewInMemory(),
	})
	s.Require().NoError(err)
	s.builder = builder
}

func TestCorrelatorTestSuite(t *testing.T) {
	suite.Run(t, new(CorrelatorTestSuite))
}

func (s *CorrelatorTestSuite) add(instance any, token, name string, tier definition.Tier, corrupts string) *definition.Definition {
	entry, err := registry.Register(s.registry, instance)
	s.Require().NoError(err)

	def, err := s.builder.Build(s.ctx, definition.NewAttributes(definition.KindItem, token, name).
		WithTexts("pickup", "", "").
		WithTier(tier).
		WithAssets("icon").
		Corrupts(corrupts).
		Attributes())
	s.Require().NoError(err)
	s.Require().NoError(entry.Bind(def))
	return def
}

func (s *CorrelatorTestSuite) TestRun_PairsVoidItems() {
	acid := s.add(&acidRounds{}, "ACID_ON_HIT", "Acidic Rounds", definition.Tier1, "")
	void := s.add(&voidRounds{}, "VOID_ROUNDS", "Void Rounds", definition.TierVoidTier1, "ITEM_ACID_ON_HIT_NAME")

	want := catalog.Pair{
		Type:            catalog.RelationshipContagious,
		Replaced:        acid.Handle(),
		ReplacedName:    "Acidic Rounds",
		Replacement:     void.Handle(),
		ReplacementName: "Void Rounds",
	}
	s.mockCatalog.EXPECT().RegisterRelationship(s.ctx, want).Return(nil)

	report, err := s.correlator.Run(s.ctx, s.registry.Snapshot())
	s.Require().NoError(err)
	s.Equal([]catalog.Pair{want}, report.Pairs)
	s.Empty(report.Unresolved)
}

func (s *CorrelatorTestSuite) TestRun_MatchesLangToken() {
	s.add(&acidRounds{}, "ACID_ON_HIT", "Acidic Rounds", definition.Tier1, "")
	s.add(&voidRounds{}, "VOID_ROUNDS", "Void Rounds", definition.TierVoidTier1, "ACID_ON_HIT")

	s.mockCatalog.EXPECT().RegisterRelationship(s.ctx, gomock.Any()).Return(nil)

	report, err := s.correlator.Run(s.ctx, s.registry.Snapshot())
	s.Require().NoError(err)
	s.Len(report.Pairs, 1)
}

func (s *CorrelatorTestSuite) TestRun_UnresolvedTokenContinues() {
	s.add(&acidRounds{}, "ACID_ON_HIT", "Acidic Rounds", definition.Tier1, "")
	s.add(&voidLens{}, "VOID_LENS", "Void Lens", definition.TierVoidTier2, "ITEM_CRIT_GLASSES_NAME")
	s.add(&voidRounds{}, "VOID_ROUNDS", "Void Rounds", definition.TierVoidTier1, "ITEM_ACID_ON_HIT_NAME")

	s.mockCatalog.EXPECT().RegisterRelationship(s.ctx, gomock.Any()).Return(nil).Times(1)

	report, err := s.correlator.Run(s.ctx, s.registry.Snapshot())
	s.Require().NoError(err)
	s.Equal([]string{"ITEM_CRIT_GLASSES_NAME"}, report.Unresolved)
	s.Len(report.Pairs, 1)
	s.Equal(1, s.collector.Count(dnderr.CodeUnresolvedCorrelation))
}

func (s *CorrelatorTestSuite) TestRun_UnresolvedOnlyYieldsNoPairs() {
	s.add(&voidLens{}, "VOID_LENS", "Void Lens", definition.TierVoidTier2, "ITEM_CRIT_GLASSES_NAME")

	report, err := s.correlator.Run(s.ctx, s.registry.Snapshot())
	s.Require().NoError(err)
	s.Empty(report.Pairs)
	s.Equal(1, s.collector.Count(dnderr.CodeUnresolvedCorrelation))
}

func (s *CorrelatorTestSuite) TestRun_SkipsNonVoidTiers() {
	s.add(&acidRounds{}, "ACID_ON_HIT", "Acidic Rounds", definition.Tier1, "")
	s.add(&lunarCharm{}, "LUNAR_CHARM", "Lunar Charm", definition.TierLunar, "ITEM_ACID_ON_HIT_NAME")

	report, err := s.correlator.Run(s.ctx, s.registry.Snapshot())
	s.Require().NoError(err)
	s.Empty(report.Pairs)
	s.Equal(1, report.Skipped)
	s.Empty(s.collector.Errors())
}

func (s *CorrelatorTestSuite) TestRun_CatalogFailure() {
	s.add(&acidRounds{}, "ACID_ON_HIT", "Acidic Rounds", definition.Tier1, "")
	s.add(&voidRounds{}, "VOID_ROUNDS", "Void Rounds", definition.TierVoidTier1, "ITEM_ACID_ON_HIT_NAME")

	s.mockCatalog.EXPECT().RegisterRelationship(s.ctx, gomock.Any()).Return(errors.New("catalog down"))

	_, err := s.correlator.Run(s.ctx, s.registry.Snapshot())
	s.Error(err)
}

func (s *CorrelatorTestSuite) TestAssignTiers() {
	acid := s.add(&acidRounds{}, "ACID_ON_HIT", "Acidic Rounds", definition.Tier1, "")
	hidden := s.add(&lunarCharm{}, "HIDDEN", "Hidden Thing", definition.TierNone, "")

	gomock.InOrder(
		s.mockCatalog.EXPECT().SetTier(s.ctx, acid.Handle(), definition.Tier1).Return(nil),
		s.mockCatalog.EXPECT().SetTier(s.ctx, hidden.Handle(), definition.TierNone).Return(nil),
	)

	assigned, err := s.correlator.AssignTiers(s.ctx, s.registry.Snapshot())
	s.Require().NoError(err)
	s.Equal(2, assigned)
}
