package services

import (
	"testing"

	"github.com/YongHui-X/ecoplate-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransactionFeedFiltersAndPreservesOrder(t *testing.T) {
	// Input arrives newest-first straight from the store.
	page := []models.Interaction{
		{ID: "i4", Date: "2026-09-03", Type: models.ActionConsumed, Points: 5},
		{ID: "i3", Date: "2026-09-02", Type: models.ActionAdd},
		{ID: "i2", Date: "2026-09-02", Type: models.ActionSold, Points: 8},
		{ID: "i1", Date: "2026-09-01", Type: models.ActionWasted, Points: -3, SkipRecording: true},
	}

	feed := BuildTransactionFeed(page, true)
	require.Len(t, feed, 2, "adds and drafts never reach the feed")
	assert.Equal(t, "i4", feed[0].ID)
	assert.Equal(t, "i2", feed[1].ID)
}

func TestBuildTransactionFeedSharedPolicy(t *testing.T) {
	page := []models.Interaction{
		{ID: "i2", Date: "2026-09-02", Type: models.ActionShared, Points: 10},
		{ID: "i1", Date: "2026-09-01", Type: models.ActionConsumed, Points: 5},
	}

	withShared := BuildTransactionFeed(page, true)
	require.Len(t, withShared, 2)

	withoutShared := BuildTransactionFeed(page, false)
	require.Len(t, withoutShared, 1)
	assert.Equal(t, "i1", withoutShared[0].ID)
}

func TestBuildTransactionFeedCanonicalizesLegacyTypes(t *testing.T) {
	page := []models.Interaction{
		{ID: "i1", Date: "2026-09-01", Type: "Consume", Points: 5},
	}

	feed := BuildTransactionFeed(page, true)
	require.Len(t, feed, 1)
	assert.Equal(t, models.ActionConsumed, feed[0].Type)
}

func TestBuildTransactionFeedEmptyPage(t *testing.T) {
	assert.Empty(t, BuildTransactionFeed(nil, true))
}
