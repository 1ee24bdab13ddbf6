package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Philanthropists/parseint/internal/logging"
	"github.com/Philanthropists/parseint/pkg/intparse"
)

func Test_HandleReturnsOrderedRecords(t *testing.T) {
	ctx := logging.Wrap(zap.NewNop()).GetContext(context.Background())

	resp, err := handle(ctx, Request{Inputs: []string{"2147483647", "1o1", "-"}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.True(t, resp.Results[0].OK)
	assert.Equal(t, int32(2147483647), *resp.Results[0].Value)

	assert.False(t, resp.Results[1].OK)
	assert.Equal(t, 1, *resp.Results[1].Position)
	assert.Equal(t, "o", resp.Results[1].Char)

	assert.Equal(t, "no digits", resp.Results[2].Reason)

	assert.Equal(t, 3, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.ByReason[intparse.InvalidCharacter])
}

func Test_HandleRejectsHugeRequests(t *testing.T) {
	_, err := handle(context.Background(), Request{Inputs: make([]string, maxInputs+1)})
	assert.Error(t, err)
}
