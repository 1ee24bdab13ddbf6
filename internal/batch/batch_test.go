package batch

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/Philanthropists/parseint/internal/logging"
	"github.com/Philanthropists/parseint/pkg/intparse"
)

func testContext() context.Context {
	return logging.Wrap(zap.NewNop()).GetContext(context.Background())
}

func Test_RunKeepsInputOrder(t *testing.T) {
	const Size = 1000
	inputs := make([]string, Size)
	for i := range inputs {
		inputs[i] = strconv.Itoa(i - Size/2)
	}

	items, summary, err := Run(testContext(), 8, inputs, nil)
	require.NoError(t, err)
	require.Len(t, items, Size)

	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, inputs[i], item.Input)
		assert.Equal(t, intparse.Success{Value: int32(i - Size/2)}, item.Outcome)
	}

	assert.Equal(t, Summary{Total: Size, Succeeded: Size}, summary)
}

func Test_SummaryCountsReasons(t *testing.T) {
	inputs := []string{"1", "1o1", "--1", "", "-", "2147483648", "x", "-7"}

	items, summary, err := Run(testContext(), 3, inputs, intparse.ParseInt)
	require.NoError(t, err)
	require.Len(t, items, len(inputs))

	assert.Equal(t, 8, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 6, summary.Failed)
	assert.Equal(t, map[intparse.Reason]int{
		intparse.InvalidCharacter: 2,
		intparse.DuplicateSign:    1,
		intparse.Empty:            1,
		intparse.NoDigits:         1,
		intparse.Overflow:         1,
	}, summary.ByReason)
}

func Test_UsesGivenParseFunc(t *testing.T) {
	var calls int64
	parse := func(s string) intparse.Outcome {
		atomic.AddInt64(&calls, 1)
		return intparse.ParseInt(s)
	}

	_, _, err := Run(testContext(), 0, []string{"1", "2", "3"}, parse)
	require.NoError(t, err)
	assert.Equal(t, int64(3), atomic.LoadInt64(&calls))
}

func Test_CancelledContextStopsWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	in := make(chan string)
	items, _, err := Collect(ctx, Parse(ctx, 4, in, nil))

	assert.Empty(t, items)
	require.Error(t, err)
	assert.True(t, Error.Has(err))
	assert.Contains(t, err.Error(), context.Canceled.Error())
}

func Test_LinesKeepWhitespace(t *testing.T) {
	r := strings.NewReader("1\r\n 2\n3 \n\n-4")

	lines, errc := Lines(context.Background(), r)

	var got []string
	for l := range lines {
		got = append(got, l)
	}

	assert.NoError(t, <-errc)
	assert.True(t, slices.Equal([]string{"1", " 2", "3 ", "", "-4"}, got))
}

func Test_LinesReportsTooLongLine(t *testing.T) {
	r := strings.NewReader(strings.Repeat("1", maxLineSize+1))

	lines, errc := Lines(context.Background(), r)
	for range lines {
	}

	err := <-errc
	require.Error(t, err)
	assert.True(t, Error.Has(err))
}

func Test_LinesThroughParse(t *testing.T) {
	ctx := testContext()
	lines, errc := Lines(ctx, strings.NewReader("10\n1o1\n-3\n"))

	items, summary, err := Collect(ctx, Parse(ctx, 2, lines, nil))
	require.NoError(t, err)
	require.NoError(t, <-errc)

	var inputs []string
	for _, item := range items {
		inputs = append(inputs, item.Input)
	}
	assert.True(t, slices.Equal([]string{"10", "1o1", "-3"}, inputs))
	assert.True(t, slices.Contains(inputs, "1o1"))
	assert.Equal(t, 1, summary.Failed)
}
