package test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nasdf/blogql"
	"github.com/nasdf/blogql/core"
	"github.com/nasdf/blogql/graphql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func (tc TestCase) Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := core.NewStore()
	if tc.Seed {
		require.NoError(t, core.Seed(ctx, store), "failed to seed store")
	}

	db, err := blogql.New(store,
		blogql.WithIDGenerator(core.NewSequenceGenerator("id-")),
		blogql.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err, "failed to create db")

	for _, op := range tc.Operations {
		data, err := db.Execute(ctx, op.Params)

		actual, err := json.Marshal(graphql.NewQueryResponse(data, err))
		require.NoError(t, err)

		assert.JSONEq(t, op.Response, string(actual), "query: %s", op.Params.Query)
	}
}

func TestCases(t *testing.T) {
	testCases, err := LoadTestCases()
	require.NoError(t, err, "failed to load test cases")
	require.NotEmpty(t, testCases)

	for _, testCase := range testCases {
		t.Logf("Running test case %s: %s", testCase.Name, testCase.Description)
		t.Run(testCase.Name, testCase.Run)
	}
}
