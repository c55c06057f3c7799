//go:build integration

package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/thalassophobia/internal/catalog"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	"github.com/KirkDiggler/thalassophobia/internal/lang"
	"github.com/KirkDiggler/thalassophobia/internal/testutils"
)

func TestRedisService_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	ctx := context.Background()

	svc := catalog.NewRedis(client)
	builder, err := definition.NewBuilder(&definition.BuilderConfig{
		Catalog:  svc,
		Lang:     lang.NewRedis(client),
		Language: language.English,
	})
	require.NoError(t, err)

	acid, err := builder.Build(ctx, testutils.CreateTestItemAttributes("ACID_ON_HIT", "Acidic Rounds", definition.Tier1).Attributes())
	require.NoError(t, err)

	t.Run("handles survive a fresh cache", func(t *testing.T) {
		again, err := catalog.NewRedis(client).CreateHandle(ctx, acid)
		require.NoError(t, err)
		assert.Equal(t, acid.Handle(), again)
	})

	t.Run("relationships keep registration order", func(t *testing.T) {
		for i := range 3 {
			void, err := builder.Build(ctx, testutils.CreateTestItemAttributes(
				fmt.Sprintf("VOID_%d", i), fmt.Sprintf("Void %d", i), definition.TierVoidTier1).Attributes())
			require.NoError(t, err)

			require.NoError(t, svc.RegisterRelationship(ctx, catalog.Pair{
				Type:            catalog.RelationshipContagious,
				Replaced:        acid.Handle(),
				ReplacedName:    acid.Name(),
				Replacement:     void.Handle(),
				ReplacementName: void.Name(),
			}))
		}

		pairs, err := svc.Relationships(ctx, catalog.RelationshipContagious)
		require.NoError(t, err)
		require.Len(t, pairs, 3)

		// a second run records nothing new
		require.NoError(t, svc.RegisterRelationship(ctx, pairs[0]))
		again, err := svc.Relationships(ctx, catalog.RelationshipContagious)
		require.NoError(t, err)
		assert.Len(t, again, 3)
		for i, p := range pairs {
			assert.Equal(t, fmt.Sprintf("Void %d", i), p.ReplacementName)
		}
	})

	t.Run("tiers", func(t *testing.T) {
		require.NoError(t, svc.SetTier(ctx, acid.Handle(), definition.TierNone))
		tier, err := svc.Tier(ctx, acid.Handle())
		require.NoError(t, err)
		assert.Equal(t, definition.TierNone, tier)
	})

	t.Run("strings", func(t *testing.T) {
		name, err := lang.NewRedis(client).Get(ctx, language.English, acid.Key().WithField(lang.FieldName))
		require.NoError(t, err)
		assert.Equal(t, "Acidic Rounds", name)
	})
}
