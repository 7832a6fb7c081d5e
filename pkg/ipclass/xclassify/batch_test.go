package xclassify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_ClassifyBatch(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	ips := []string{"127.0.0.1", "bogus", "8.8.8.8", "fc00::1", "", "224.0.0.1"}
	for _, workers := range []int{0, 1, 3, 100} {
		items, err := c.ClassifyBatch(context.Background(), ips, workers)
		require.NoError(t, err)
		require.Len(t, items, len(ips))

		for i, ip := range ips {
			assert.Equal(t, ip, items[i].Result.IP, "workers=%d", workers)
		}
		assert.True(t, items[0].Result.Loopback)
		assert.ErrorIs(t, items[1].Err, ErrClassify)
		assert.True(t, items[2].Result.Global)
		assert.True(t, items[3].Result.PrivateNetwork)
		assert.ErrorIs(t, items[4].Err, ErrClassify)
		assert.True(t, items[5].Result.Multicast)
	}
}

func TestClassifier_ClassifyBatch_Empty(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	items, err := c.ClassifyBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClassifier_ClassifyBatch_Canceled(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items, err := c.ClassifyBatch(ctx, []string{"127.0.0.1", "::1"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, items)
}

func TestClassifier_ClassifyBatch_NilContext(t *testing.T) {
	c, err := NewClassifier()
	require.NoError(t, err)

	//nolint:staticcheck // 验证 nil ctx 的兼容处理
	items, err := c.ClassifyBatch(nil, []string{"::1"}, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Result.Loopback)
}
