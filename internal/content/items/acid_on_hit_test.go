package items_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/thalassophobia/internal/catalog"
	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/config"
	"github.com/KirkDiggler/thalassophobia/internal/content"
	"github.com/KirkDiggler/thalassophobia/internal/content/items"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	mockdice "github.com/KirkDiggler/thalassophobia/internal/dice/mock"
	"github.com/KirkDiggler/thalassophobia/internal/diagnostics"
	"github.com/KirkDiggler/thalassophobia/internal/dot"
	"github.com/KirkDiggler/thalassophobia/internal/hooks"
	"github.com/KirkDiggler/thalassophobia/internal/lang"
	"github.com/KirkDiggler/thalassophobia/internal/testutils"
)

type AcidOnHitTestSuite struct {
	suite.Suite
	ctx       context.Context
	world     *combat.World
	roller    *mockdice.ManualMockRoller
	collector *diagnostics.Collector
	chain     *hooks.Chain
	engine    *dot.Engine
	acid      *items.AcidOnHit
	attacker  *combat.Body
	victim    *combat.Body
}

func (s *AcidOnHitTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.world = combat.NewWorld()
	s.roller = mockdice.NewManualMockRoller()
	s.collector = diagnostics.NewCollector()
	s.chain = hooks.NewChain(&hooks.Config{Reporter: s.collector})

	engine, err := dot.NewEngine(&dot.Config{
		Bodies:   s.world,
		Sink:     s.world,
		Roller:   s.roller,
		Reporter: s.collector,
	})
	s.Require().NoError(err)
	s.engine = engine

	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	env := &content.Env{Config: &cfg.Content, Hooks: s.chain, Dots: s.engine, World: s.world}

	builder, err := definition.NewBuilder(&definition.BuilderConfig{
		Catalog: catalog.NewInMemory(nil),
		Lang:    lang.NewInMemory(),
	})
	s.Require().NoError(err)

	s.acid = items.NewAcidOnHit()
	s.Require().NoError(s.acid.Configure(s.ctx, env))
	def, err := builder.Build(s.ctx, s.acid.Attributes())
	s.Require().NoError(err)
	s.acid.SetDefinition(def)
	s.Require().NoError(s.acid.AttachHooks(s.ctx, env))

	s.attacker = testutils.CreateTestBody("player", "Commando", 100, 110)
	s.victim = testutils.CreateTestBody("beetle", "Beetle", 12, 1000)
	s.world.Spawn(s.attacker)
	s.world.Spawn(s.victim)
}

func TestAcidOnHitTestSuite(t *testing.T) {
	suite.Run(t, new(AcidOnHitTestSuite))
}

func (s *AcidOnHitTestSuite) hit(event hooks.Event, damage *combat.DamageInfo) {
	_, err := s.chain.Fire(s.ctx, event, hooks.NewHitContext(event, damage, s.attacker, s.victim))
	s.Require().NoError(err)
}

func (s *AcidOnHitTestSuite) TestDefinition() {
	def := s.acid.Definition()
	s.Equal("ITEM_ACID_ON_HIT_NAME", def.NameToken())
	s.Equal(definition.Tier1, def.Tier())
	s.True(def.HasTag(definition.TagDamage))

	chance, ok := def.Param(definition.ParamChance)
	s.True(ok)
	s.Equal(20.0, chance)
	s.Contains(def.Description(), "3 times over 3 seconds")

	registered, ok := s.engine.Definition(items.AcidDot)
	s.True(ok)
	s.Equal("Acidic Affliction", registered.Buff)
	s.Equal(combat.DamageColorWeakPoint, registered.Color)
}

func (s *AcidOnHitTestSuite) TestProcInflictsStacksEqualToItemCount() {
	s.attacker.Inventory.Give("ITEM_ACID_ON_HIT", 4)
	s.roller.SetNextRoll(5)

	s.hit(hooks.EventOnHitEnemy, &combat.DamageInfo{AttackerID: "player", Damage: 100, ProcCoefficient: 1})

	s.Equal(4, s.engine.Stacks(s.victim.ID, items.AcidDot))

	s.engine.Advance(1)
	s.InDelta(900.0, s.victim.Stats().Health, 1e-9)
}

func (s *AcidOnHitTestSuite) TestProcCoefficientScalesChance() {
	s.attacker.Inventory.Give("ITEM_ACID_ON_HIT", 1)
	// 20 * 0.5 = 10, so 15 misses
	s.roller.SetNextRoll(15)

	s.hit(hooks.EventOnHitEnemy, &combat.DamageInfo{AttackerID: "player", ProcCoefficient: 0.5})

	s.Zero(s.engine.Stacks(s.victim.ID, items.AcidDot))
	s.Equal(1, s.roller.Used())
}

func (s *AcidOnHitTestSuite) TestRejectedHitNeverRolls() {
	s.attacker.Inventory.Give("ITEM_ACID_ON_HIT", 1)

	s.hit(hooks.EventOnHitEnemy, &combat.DamageInfo{AttackerID: "player", ProcCoefficient: 1, Rejected: true})

	s.Zero(s.roller.Used())
	s.Zero(s.engine.Stacks(s.victim.ID, items.AcidDot))
	s.Empty(s.collector.Errors())
}

func (s *AcidOnHitTestSuite) TestNoItemsNoRoll() {
	s.hit(hooks.EventOnHitEnemy, &combat.DamageInfo{AttackerID: "player", ProcCoefficient: 1})
	s.Zero(s.roller.Used())
}

func (s *AcidOnHitTestSuite) TestDiceRerollProcsAgain() {
	s.attacker.Inventory.Give("ITEM_ACID_ON_HIT", 2)
	s.roller.SetNextRoll(1)
	s.roller.SetNextRoll(1)

	damage := &combat.DamageInfo{AttackerID: "player", ProcCoefficient: 1}
	s.hit(hooks.EventOnHitEnemy, damage)
	s.hit(hooks.EventDiceReroll, damage)

	s.Equal(4, s.engine.Stacks(s.victim.ID, items.AcidDot))
}

func (s *AcidOnHitTestSuite) TestRollFailureIsReported() {
	s.attacker.Inventory.Give("ITEM_ACID_ON_HIT", 1)
	// no rolls queued

	s.hit(hooks.EventOnHitEnemy, &combat.DamageInfo{AttackerID: "player", ProcCoefficient: 1})

	s.Len(s.collector.Errors(), 1)
}

func (s *AcidOnHitTestSuite) TestAttachHooksFailureLeavesNothingAttached() {
	chain := hooks.NewChain(&hooks.Config{Reporter: s.collector})
	_, err := chain.Attach(hooks.EventDiceReroll, s.acid.Name(), func(context.Context, *hooks.Context, hooks.Result) error {
		return nil
	})
	s.Require().NoError(err)

	err = s.acid.AttachHooks(s.ctx, &content.Env{Hooks: chain, Dots: s.engine, World: s.world})
	s.Error(err)

	s.Empty(chain.Records(hooks.EventOnHitEnemy))
	s.Len(chain.Records(hooks.EventDiceReroll), 1)
}
