package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type builderModel struct {
	bun.BaseModel `bun:"table:builder_models"`

	ID   int64  `bun:"id,pk"`
	Name string `bun:"name"`
}

func TestQueryBuilderRecordsRelations(t *testing.T) {
	q := Query[builderModel](nil).
		Relation("Images").
		Relation("Items")

	require.Len(t, q.relations, 2)
	assert.Equal(t, "Images", q.relations[0].Name)
	assert.Empty(t, q.relations[0].Apply)
	assert.Equal(t, "Items", q.relations[1].Name)
}

func TestQueryBuilderRelationKeepsApplyFuncs(t *testing.T) {
	applied := false
	order := func(sq *bun.SelectQuery) *bun.SelectQuery {
		applied = true
		return sq
	}

	q := Query[builderModel](nil).Relation("Images", order)

	require.Len(t, q.relations, 1)
	require.Len(t, q.relations[0].Apply, 1)

	// The recorded func must be the one handed in, so relation subqueries
	// actually get modified when the select is built.
	q.relations[0].Apply[0](nil)
	assert.True(t, applied)
}

func TestQueryBuilderAccumulatesClauses(t *testing.T) {
	q := Query[builderModel](nil).
		Where("name", "candle").
		WhereNotNull("id").
		OrderBy("name", ASC).
		Limit(10).
		Offset(5)

	require.Len(t, q.wheres, 2)
	assert.Equal(t, "=", q.wheres[0].Operator)
	assert.Equal(t, "IS NOT NULL", q.wheres[1].Operator)
	require.Len(t, q.orders, 1)
	assert.Equal(t, "ASC", q.orders[0].Direction)
	require.NotNil(t, q.limitVal)
	assert.Equal(t, 10, *q.limitVal)
	require.NotNil(t, q.offsetVal)
	assert.Equal(t, 5, *q.offsetVal)
}
