package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavor118/notes/internal/entity"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestBuildCategoryTreeEmpty(t *testing.T) {
	tree := buildCategoryTree(nil)
	assert.Empty(t, tree)
}

func TestBuildCategoryTreeFlat(t *testing.T) {
	categories := []*entity.Category{
		{Id: 1, Title: "Work"},
		{Id: 2, Title: "Home"},
	}

	tree := buildCategoryTree(categories)

	require.Len(t, tree, 2)
	assert.Equal(t, "Work", tree[0].Title)
	assert.Empty(t, tree[0].SubCategories)
	assert.Equal(t, "Home", tree[1].Title)
}

func TestBuildCategoryTreeNested(t *testing.T) {
	categories := []*entity.Category{
		{Id: 1, Title: "Work"},
		{Id: 2, Title: "Projects", ParentId: uintPtr(1)},
		{Id: 3, Title: "Backlog", ParentId: uintPtr(2)},
		{Id: 4, Title: "Home"},
	}

	tree := buildCategoryTree(categories)

	require.Len(t, tree, 2)
	work := tree[0]
	assert.Equal(t, uint(1), work.Id)
	require.Len(t, work.SubCategories, 1)

	projects := work.SubCategories[0]
	assert.Equal(t, uint(2), projects.Id)
	require.Len(t, projects.SubCategories, 1)
	assert.Equal(t, uint(3), projects.SubCategories[0].Id)
	assert.Empty(t, projects.SubCategories[0].SubCategories)

	assert.Equal(t, uint(4), tree[1].Id)
}

func TestBuildCategoryTreeOrphanPromoted(t *testing.T) {
	// A child pointing at a parent that is not in the list still shows
	// up, as a root.
	categories := []*entity.Category{
		{Id: 2, Title: "Stray", ParentId: uintPtr(99)},
	}

	tree := buildCategoryTree(categories)

	require.Len(t, tree, 1)
	assert.Equal(t, uint(2), tree[0].Id)
}

func TestBuildCategoryTreeSiblingOrder(t *testing.T) {
	categories := []*entity.Category{
		{Id: 1, Title: "Root"},
		{Id: 2, Title: "First", ParentId: uintPtr(1)},
		{Id: 3, Title: "Second", ParentId: uintPtr(1)},
	}

	tree := buildCategoryTree(categories)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].SubCategories, 2)
	assert.Equal(t, uint(2), tree[0].SubCategories[0].Id)
	assert.Equal(t, uint(3), tree[0].SubCategories[1].Id)
}
